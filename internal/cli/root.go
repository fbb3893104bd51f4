package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nerdneilsfield/cohere-translator/internal/config"
	"github.com/nerdneilsfield/cohere-translator/internal/logger"
	"github.com/nerdneilsfield/cohere-translator/pkg/languages"
	"github.com/nerdneilsfield/cohere-translator/pkg/providers/cohere"
	"github.com/nerdneilsfield/cohere-translator/pkg/providers/stats"
	"github.com/nerdneilsfield/cohere-translator/pkg/translation"
)

// ErrNoText 没有可翻译的文本
var ErrNoText = errors.New("no text to translate")

// rootOptions 命令行标志
type rootOptions struct {
	cfgFile    string
	sourceLang string
	targetLang string
}

// NewRootCommand 创建根命令
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	opts := &rootOptions{}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "cohere-translator [flags] [text]",
		Short: "使用 Cohere 流式接口翻译、润色或回答文本",
		Long: `使用 Cohere /v1/chat 流式接口处理文本，结果边生成边输出。

支持的模式:
  - translate: 直接翻译（默认）
  - polish:    润色，不改变原意
  - answer:    回答问题
  - custom:    使用 --prompt 指定的系统指令

未提供 text 参数时从标准输入读取。`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, v, opts, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", "", "配置文件路径 (默认 $HOME/.cohere-translator.yaml)")
	flags.String("api-url", "", "Cohere API 地址 (默认 "+cohere.DefaultAPIEndpoint+")")
	flags.String("log-level", "", "日志级别 (debug, info, warn, error)")
	flags.Bool("debug", false, "启用调试日志")

	local := rootCmd.Flags()
	local.StringVarP(&opts.sourceLang, "from", "f", languages.CodeAuto, "源语言代码")
	local.StringVarP(&opts.targetLang, "to", "t", languages.CodeSimplifiedChinese, "目标语言代码")
	local.StringP("mode", "m", "", "模式: translate, polish, answer, custom")
	local.String("model", "", "模型 (默认 "+cohere.DefaultModel+")")
	local.String("prompt", "", "custom 模式下的系统指令")

	bindFlag(v, "api_url", flags, "api-url")
	bindFlag(v, "log_level", flags, "log-level")
	bindFlag(v, "debug", flags, "debug")
	bindFlag(v, "mode", local, "mode")
	bindFlag(v, "model", local, "model")
	bindFlag(v, "customize_prompt", local, "prompt")

	rootCmd.AddCommand(newLanguagesCommand())
	rootCmd.AddCommand(newConfigCommand(v, opts))
	rootCmd.AddCommand(newStatsCommand(v, opts))

	return rootCmd
}

// runTranslate 执行一次翻译并把结果流式写到标准输出
func runTranslate(cmd *cobra.Command, v *viper.Viper, opts *rootOptions, args []string) error {
	text, err := readText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(v, opts.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	recorder := stats.NewManager(cfg.StatsFile, log.Named("stats"))
	if err := recorder.Load(); err != nil {
		log.Warn("加载统计数据失败", zap.Error(err))
	}
	defer func() {
		if err := recorder.Save(); err != nil {
			log.Warn("保存统计数据失败", zap.Error(err))
		}
	}()

	svc, err := newService(cfg, log, recorder)
	if err != nil {
		return err
	}

	catalog := languages.Default()
	query := &translation.Query{
		Text:       text,
		DetectFrom: catalog.Canonical(opts.sourceLang),
		DetectTo:   catalog.Canonical(opts.targetLang),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	completion := translateStreaming(ctx, svc, query, cmd.OutOrStdout())
	if completion.Error != nil {
		printError(cmd.ErrOrStderr(), catalog, query, completion.Error)
		return completion.Error
	}

	log.Debug("输出完成", zap.String("query_id", query.ID))
	return nil
}

// newService 根据配置创建翻译服务，提供商调用会记录到 recorder
func newService(cfg *config.Config, log *zap.Logger, recorder *stats.Manager) (*translation.Service, error) {
	options, err := cfg.TranslationOptions()
	if err != nil {
		return nil, err
	}

	provider, err := cohere.New(cfg.ProviderConfig(), log.Named("cohere"))
	if err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	return translation.New(stats.NewMiddleware(provider, recorder, options.Model), languages.Default(), options,
		translation.WithLogger(log.Named("translation")))
}

// translateStreaming 把每次增量中新增的部分写到 out，返回终止结果
func translateStreaming(ctx context.Context, svc *translation.Service, query *translation.Query, out io.Writer) *translation.Completion {
	var (
		printed    int
		completion *translation.Completion
	)

	query.OnStream = func(result *translation.Result) {
		text := result.Text()
		if len(text) > printed {
			fmt.Fprint(out, text[printed:])
			printed = len(text)
		}
	}
	query.OnCompletion = func(c *translation.Completion) {
		completion = c
		if c.Succeeded() {
			if text := c.Result.Text(); len(text) > printed {
				fmt.Fprint(out, text[printed:])
				printed = len(text)
			}
		}
		if printed > 0 {
			fmt.Fprintln(out)
		}
	}

	svc.Translate(ctx, query)

	if completion == nil {
		completion = &translation.Completion{Error: translation.NewError(translation.KindUnknown, translation.MessageUnknown, "")}
	}
	return completion
}

// printError 输出分类错误，不支持的语言附带候选
func printError(w io.Writer, catalog *languages.Catalog, query *translation.Query, e *translation.Error) {
	title := color.New(color.FgRed, color.Bold)
	title.Fprintf(w, "✗ %s\n", e.Message)

	detail := color.New(color.FgYellow)
	if e.Addition != "" && e.Addition != e.Message {
		detail.Fprintf(w, "  %s\n", e.Addition)
	}

	switch e.Type {
	case translation.KindUnsupportedLanguage:
		if suggestions := catalog.Suggest(query.DetectTo, 3); len(suggestions) > 0 {
			detail.Fprintf(w, "  是否要使用: %s\n", strings.Join(suggestions, ", "))
		}
		detail.Fprintln(w, "  运行 `cohere-translator languages` 查看全部语言")
	case translation.KindSecretKey:
		detail.Fprintf(w, "  请设置 api_key 或环境变量 %s_API_KEY / COHERE_API_KEY\n", config.EnvPrefix)
	}
}

// readText 从参数或标准输入读取待翻译文本
func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		text := strings.Join(args, " ")
		if strings.TrimSpace(text) == "" {
			return "", ErrNoText
		}
		return text, nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimRight(string(data), "\r\n")
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}
