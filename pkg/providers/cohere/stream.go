package cohere

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/nerdneilsfield/cohere-translator/pkg/translation"
)

// 流式事件类型
const (
	EventStreamStart    = "stream-start"
	EventTextGeneration = "text-generation"
	EventStreamEnd      = "stream-end"
)

const maxEventSize = 1024 * 1024

// DecodeError 流式事件无法解析
type DecodeError struct {
	Data string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode stream event: %q", e.Data)
}

// DecodeDelta 解析一行流式事件
func DecodeDelta(data []byte) (translation.Delta, error) {
	if !gjson.ValidBytes(data) {
		return translation.Delta{}, &DecodeError{Data: string(data)}
	}

	event := gjson.ParseBytes(data)
	if !event.IsObject() {
		return translation.Delta{}, &DecodeError{Data: string(data)}
	}

	finished := event.Get("is_finished")
	delta := translation.Delta{
		Unfinished:   finished.Type == gjson.False,
		IsFinished:   finished.Type == gjson.True,
		EventType:    event.Get("event_type").String(),
		FinishReason: event.Get("finish_reason").String(),
	}

	// 非字符串的 text 不是增量文本
	if text := event.Get("text"); text.Type == gjson.String {
		delta.Text = text.Str
	}
	return delta, nil
}

// readStream 逐行读取 NDJSON 事件并按顺序交给 onDelta
func readStream(body io.Reader, onDelta translation.DeltaHandler) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())

		// 跳过空行
		if len(line) == 0 {
			continue
		}

		delta, err := DecodeDelta(line)
		if err != nil {
			return err
		}

		if err := onDelta(delta); err != nil {
			return err
		}

		if delta.IsFinished && isErrorFinish(delta.FinishReason) {
			return translation.NewError(translation.KindAPI,
				fmt.Sprintf("接口返回错误 - %s", delta.FinishReason), string(line))
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stream: %w", err)
	}
	return nil
}

// isErrorFinish 结束原因是否为服务端错误，例如 ERROR、ERROR_TOXIC
func isErrorFinish(reason string) bool {
	return strings.HasPrefix(strings.ToUpper(reason), "ERROR")
}
