package translation

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nerdneilsfield/cohere-translator/pkg/languages"
)

// Service 翻译服务，宿主每个请求调用一次 Translate
type Service struct {
	provider Provider
	catalog  *languages.Catalog
	prompts  *PromptBuilder
	options  Options
	logger   *zap.Logger
	newID    func() string
}

// New 创建翻译服务
func New(provider Provider, catalog *languages.Catalog, options Options, opts ...Option) (*Service, error) {
	if provider == nil {
		return nil, ErrNoProvider
	}
	if catalog == nil {
		return nil, ErrNoCatalog
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}

	so := defaultServiceOptions()
	for _, opt := range opts {
		opt(&so)
	}

	return &Service{
		provider: provider,
		catalog:  catalog,
		prompts:  NewPromptBuilder(catalog),
		options:  options,
		logger:   so.logger,
		newID:    so.idGenerator,
	}, nil
}

// SupportedLanguages 返回支持的语言代码
func (s *Service) SupportedLanguages() []string {
	return s.catalog.SupportedCodes()
}

// Options 返回当前配置
func (s *Service) Options() Options {
	return s.options
}

// Translate 执行一次翻译。调用会阻塞到流结束；OnStream 按增量顺序回调，
// OnCompletion 恰好回调一次。ctx 取消会中止进行中的请求。
// q 为 nil 时没有可回调的对象，只记录错误日志后返回。
func (s *Service) Translate(ctx context.Context, q *Query) {
	if q == nil {
		s.logger.Error("收到空的翻译请求")
		return
	}
	if q.ID == "" {
		q.ID = s.newID()
	}

	call := &callState{query: q}
	log := s.logger.With(
		zap.String("query_id", q.ID),
		zap.String("from", q.DetectFrom),
		zap.String("to", q.DetectTo),
		zap.String("mode", s.options.Mode.String()),
	)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.Error("翻译过程中发生 panic", zap.Any("panic", r))
			call.fail(NewError(KindUnknown, fmt.Sprint(r), fmt.Sprintf("panic: %v", r)))
		}
	}()

	if !s.catalog.Supports(q.DetectTo) {
		log.Warn("不支持的目标语言")
		call.fail(NewUnsupportedLanguageError(q.DetectTo))
		return
	}

	prompt, err := s.prompts.Build(s.options.Mode, s.options.CustomPrompt, q.DetectFrom, q.DetectTo)
	if err != nil {
		log.Error("构建提示词失败", zap.Error(err))
		call.fail(classifyTransportError(err))
		return
	}

	log.Debug("发送流式请求",
		zap.String("provider", s.provider.Name()),
		zap.String("model", s.options.Model),
		zap.Int("text_length", len(q.Text)),
	)

	state := Accumulation{}
	outcome := s.provider.StreamChat(ctx, ChatInput{
		Model:  s.options.Model,
		Prompt: prompt,
		Text:   q.Text,
	}, func(delta Delta) error {
		next, emit := Accumulate(state, delta)
		state = next
		if emit {
			call.stream(state.Text())
		}
		return nil
	})

	if classified := Classify(outcome); classified != nil {
		log.Warn("翻译失败",
			zap.String("kind", string(classified.Type)),
			zap.String("message", classified.Message),
			zap.Duration("duration", time.Since(start)),
		)
		call.fail(classified)
		return
	}

	log.Info("翻译完成",
		zap.Int("deltas", state.Deltas()),
		zap.Int("result_length", len(state.Text())),
		zap.Duration("duration", time.Since(start)),
	)
	call.succeed(state.Text())
}

// callState 保证每个请求只结束一次
type callState struct {
	query *Query
	done  bool
}

func (c *callState) result(text string) *Result {
	return &Result{
		From:         c.query.DetectFrom,
		To:           c.query.DetectTo,
		ToParagraphs: []string{text},
	}
}

func (c *callState) stream(text string) {
	if c.done || c.query.OnStream == nil {
		return
	}
	c.query.OnStream(c.result(text))
}

func (c *callState) succeed(text string) {
	c.complete(&Completion{Result: c.result(text)})
}

func (c *callState) fail(err *Error) {
	c.complete(&Completion{Error: err})
}

func (c *callState) complete(completion *Completion) {
	if c.done {
		return
	}
	c.done = true
	if c.query.OnCompletion != nil {
		c.query.OnCompletion(completion)
	}
}
