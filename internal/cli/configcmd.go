package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nerdneilsfield/cohere-translator/internal/config"
)

// newConfigCommand 配置相关的子命令
func newConfigCommand(v *viper.Viper, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "查看或初始化配置",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "写入默认配置文件",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfgFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				p, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				path = p
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists, use --force to overwrite", path)
			}

			if err := config.SaveConfig(config.NewDefaultConfig(), path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✅ 已写入配置文件 %s，请填写 api_key\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "覆盖已存在的配置文件")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "显示生效的配置（API Key 已遮蔽）",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, opts.cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			summary := cfg.Summary()
			keys := make([]string, 0, len(summary))
			for k := range summary {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"项", "值"})
			for _, k := range keys {
				tw.AppendRow(table.Row{k, summary[k]})
			}
			tw.SetStyle(table.StyleLight)
			tw.Render()

			if err := cfg.Validate(); err != nil {
				color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "⚠ %v\n", err)
			}
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
