package cli

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nerdneilsfield/cohere-translator/internal/config"
	"github.com/nerdneilsfield/cohere-translator/pkg/providers/stats"
)

// ErrNoStatsFile 未配置 stats_file
var ErrNoStatsFile = errors.New("stats_file is not configured")

// newStatsCommand 显示累计的调用统计
func newStatsCommand(v *viper.Viper, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "显示累计的 Cohere 调用统计",
		Long: `显示 stats_file 中累计的调用统计，包括成功率、延迟和错误分类。

需要在配置文件中设置 stats_file，或设置环境变量 COHERE_TRANSLATOR_STATS_FILE。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, opts.cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cfg.StatsFile == "" {
				return ErrNoStatsFile
			}

			manager := stats.NewManager(cfg.StatsFile, nil)
			if err := manager.Load(); err != nil {
				return err
			}

			all := manager.All()
			if len(all) == 0 {
				color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "暂无统计数据")
				return nil
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"提供商", "模型", "请求", "成功率", "平均延迟", "最大延迟", "增量", "输出字节", "错误"})
			for _, s := range all {
				tw.AppendRow(table.Row{
					s.ProviderName,
					s.ModelName,
					s.TotalRequests,
					fmt.Sprintf("%.1f%%", s.SuccessRate()),
					s.AverageLatency.Round(time.Millisecond),
					s.MaxLatency.Round(time.Millisecond),
					s.TotalDeltas,
					s.TotalOutputSize,
					formatErrorTypes(s.ErrorTypes),
				})
			}
			tw.SetStyle(table.StyleLight)
			tw.Render()
			return nil
		},
	}
}

func formatErrorTypes(errorTypes map[string]int64) string {
	if len(errorTypes) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(errorTypes))
	for k := range errorTypes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := ""
	for i, k := range keys {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s=%d", k, errorTypes[k])
	}
	return out
}
