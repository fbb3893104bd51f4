package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nerdneilsfield/cohere-translator/pkg/languages"
)

// newLanguagesCommand 列出支持的语言
func newLanguagesCommand() *cobra.Command {
	var codesOnly bool

	cmd := &cobra.Command{
		Use:   "languages [filter]",
		Short: "列出支持的语言代码",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := languages.Default()
			out := cmd.OutOrStdout()

			filter := ""
			if len(args) == 1 {
				filter = strings.ToLower(args[0])
			}

			entries := filterEntries(catalog.Entries(), filter)
			if codesOnly {
				for _, e := range entries {
					fmt.Fprintln(out, e.Code)
				}
				return nil
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(out)
			tw.AppendHeader(table.Row{"代码", "名称"})
			for _, e := range entries {
				tw.AppendRow(table.Row{e.Code, e.Name})
			}
			tw.AppendFooter(table.Row{"合计", len(entries)})
			tw.SetStyle(table.StyleLight)
			tw.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&codesOnly, "codes", false, "只输出语言代码")
	return cmd
}

func filterEntries(entries []languages.Entry, filter string) []languages.Entry {
	if filter == "" {
		return entries
	}
	out := make([]languages.Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Code), filter) || strings.Contains(strings.ToLower(e.Name), filter) {
			out = append(out, e)
		}
	}
	return out
}
