package translation

import (
	"context"
	"errors"
)

// Query 宿主发起的一次翻译请求。
// 取消通过传给 Service.Translate 的 context 完成。
type Query struct {
	// ID 请求标识，为空时由服务生成
	ID string `json:"id,omitempty"`

	// Text 待翻译的原文
	Text string `json:"text"`

	// DetectFrom 源语言代码，可能为 auto
	DetectFrom string `json:"detect_from"`

	// DetectTo 目标语言代码
	DetectTo string `json:"detect_to"`

	// OnStream 每收到一段非空增量后调用，参数为累计的译文
	OnStream func(result *Result) `json:"-"`

	// OnCompletion 每个请求恰好调用一次，成功或失败
	OnCompletion func(completion *Completion) `json:"-"`
}

// Result 增量或最终的翻译结果
type Result struct {
	From         string   `json:"from"`
	To           string   `json:"to"`
	ToParagraphs []string `json:"toParagraphs"`
}

// Text 返回结果的完整文本
func (r *Result) Text() string {
	if r == nil || len(r.ToParagraphs) == 0 {
		return ""
	}
	return r.ToParagraphs[0]
}

// Completion 终止回调的参数，Result 与 Error 只会有一个非空
type Completion struct {
	Result *Result `json:"result,omitempty"`
	Error  *Error  `json:"error,omitempty"`
}

// Succeeded 是否成功
func (c *Completion) Succeeded() bool {
	return c != nil && c.Error == nil && c.Result != nil
}

// Prompt 构建好的系统指令与用户指令
type Prompt struct {
	System string `json:"system"`
	User   string `json:"user"`
}

// Delta 流式响应中解析出的一段增量
type Delta struct {
	// Unfinished 仅当 is_finished 是 JSON 布尔值 false 时为 true，只有这样的增量才会被拼接
	Unfinished   bool   `json:"-"`
	IsFinished   bool   `json:"is_finished"`
	Text         string `json:"text,omitempty"`
	EventType    string `json:"event_type,omitempty"`
	FinishReason string `json:"finish_reason,omitempty"`
}

// DeltaHandler 按到达顺序处理增量，返回错误会中止整个流
type DeltaHandler func(delta Delta) error

// ChatInput 提供商组装请求所需的全部输入
type ChatInput struct {
	Model  string
	Prompt Prompt
	Text   string
}

// Provider 流式聊天传输能力
type Provider interface {
	// Name 提供商名称
	Name() string

	// StreamChat 发起一次流式请求，按顺序回调增量，并返回唯一的终止结果
	StreamChat(ctx context.Context, input ChatInput, onDelta DeltaHandler) Outcome
}

// Response 传输层成功拿到的 HTTP 响应描述
type Response struct {
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status,omitempty"`
	Body       string `json:"body,omitempty"`
}

// Outcome 传输层的终止结果：要么是响应，要么是传输错误
type Outcome struct {
	response *Response
	err      error
}

var errNilResponse = errors.New("transport returned no response")

// Ok 传输完成并拿到响应
func Ok(resp *Response) Outcome {
	if resp == nil {
		return Failed(errNilResponse)
	}
	return Outcome{response: resp}
}

// Failed 传输过程中出错，没有可用的响应
func Failed(err error) Outcome {
	if err == nil {
		err = errors.New("transport failed without a cause")
	}
	return Outcome{err: err}
}

// Response 返回响应，传输失败时第二个返回值为 false
func (o Outcome) Response() (*Response, bool) {
	return o.response, o.response != nil
}

// Err 返回传输错误
func (o Outcome) Err() error {
	return o.err
}
