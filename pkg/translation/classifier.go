package translation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Classify 检查传输层的终止结果，成功时返回 nil
func Classify(outcome Outcome) *Error {
	if err := outcome.Err(); err != nil {
		return classifyTransportError(err)
	}

	resp, ok := outcome.Response()
	if !ok {
		return classifyTransportError(errNilResponse)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return NewSecretKeyError()
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return newResponseError(KindParam, resp)
	case resp.StatusCode >= 500:
		return newResponseError(KindAPI, resp)
	default:
		return nil
	}
}

func newResponseError(kind Kind, resp *Response) *Error {
	addition, err := json.Marshal(resp)
	if err != nil {
		addition = []byte(fmt.Sprintf("%d %s", resp.StatusCode, resp.Body))
	}
	return &Error{
		Type:     kind,
		Message:  fmt.Sprintf("接口响应错误 - %d", resp.StatusCode),
		Addition: string(addition),
	}
}

// classifyTransportError 没有响应的错误：保留自带的分类，否则为 unknown
func classifyTransportError(err error) *Error {
	var classified *Error
	if errors.As(err, &classified) {
		out := *classified
		if out.Type == "" {
			out.Type = KindUnknown
		}
		if out.Message == "" {
			out.Message = MessageUnknown
		}
		return &out
	}

	message := err.Error()
	if message == "" {
		message = MessageUnknown
	}
	return &Error{
		Type:     KindUnknown,
		Message:  message,
		Addition: message,
		Cause:    err,
	}
}
