package cohere

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdneilsfield/cohere-translator/pkg/translation"
)

func TestDecodeDelta(t *testing.T) {
	d, err := DecodeDelta([]byte(`{"is_finished":false,"event_type":"text-generation","text":"Hel"}`))
	require.NoError(t, err)
	assert.False(t, d.IsFinished)
	assert.Equal(t, "Hel", d.Text)
	assert.Equal(t, EventTextGeneration, d.EventType)

	d, err = DecodeDelta([]byte(`{"is_finished":true,"event_type":"stream-end","finish_reason":"COMPLETE","response":{"text":"Hello"}}`))
	require.NoError(t, err)
	assert.True(t, d.IsFinished)
	assert.Equal(t, "", d.Text)
	assert.Equal(t, "COMPLETE", d.FinishReason)

	// 缺少 text 字段
	d, err = DecodeDelta([]byte(`{"is_finished":false,"event_type":"stream-start"}`))
	require.NoError(t, err)
	assert.Equal(t, "", d.Text)
}

func TestDecodeDelta_Invalid(t *testing.T) {
	for _, data := range []string{`{"is_finished":false,`, `not json`, `[1,2]`, `"text"`} {
		_, err := DecodeDelta([]byte(data))
		var decodeErr *DecodeError
		assert.True(t, errors.As(err, &decodeErr), data)
	}
}

func TestReadStream(t *testing.T) {
	body := strings.Join([]string{
		`{"is_finished":false,"event_type":"stream-start","generation_id":"g"}`,
		``,
		`{"is_finished":false,"event_type":"text-generation","text":"Hel"}`,
		`  {"is_finished":false,"event_type":"text-generation","text":"lo"}  `,
		`{"is_finished":true,"event_type":"stream-end","finish_reason":"COMPLETE"}`,
	}, "\n")

	var deltas []translation.Delta
	err := readStream(strings.NewReader(body), func(d translation.Delta) error {
		deltas = append(deltas, d)
		return nil
	})

	require.NoError(t, err)
	require.Len(t, deltas, 4)
	assert.Equal(t, "Hel", deltas[1].Text)
	assert.Equal(t, "lo", deltas[2].Text)
	assert.True(t, deltas[3].IsFinished)
}

func TestReadStream_StopsOnMalformedEvent(t *testing.T) {
	body := "{\"is_finished\":false,\"text\":\"a\"}\n{broken\n{\"is_finished\":false,\"text\":\"b\"}\n"

	var texts []string
	err := readStream(strings.NewReader(body), func(d translation.Delta) error {
		texts = append(texts, d.Text)
		return nil
	})

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "{broken", decodeErr.Data)
	assert.Equal(t, []string{"a"}, texts)
}

func TestReadStream_HandlerError(t *testing.T) {
	stop := errors.New("stop")
	err := readStream(strings.NewReader("{\"text\":\"a\"}\n{\"text\":\"b\"}\n"), func(translation.Delta) error {
		return stop
	})
	assert.ErrorIs(t, err, stop)
}

func TestReadStream_ErrorFinishReason(t *testing.T) {
	body := "{\"is_finished\":false,\"text\":\"a\"}\n{\"is_finished\":true,\"event_type\":\"stream-end\",\"finish_reason\":\"ERROR_TOXIC\"}\n"

	err := readStream(strings.NewReader(body), func(translation.Delta) error { return nil })
	require.Error(t, err)
	assert.Equal(t, translation.KindAPI, translation.KindOf(err))
}

func TestDecodeDelta_StrictFieldTypes(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		unfinished bool
		finished   bool
		text       string
	}{
		{"explicit false", `{"is_finished":false,"text":"ok"}`, true, false, "ok"},
		{"missing is_finished", `{"event_type":"text-generation","text":"ghost"}`, false, false, "ghost"},
		{"string false", `{"is_finished":"false","text":"str"}`, false, false, "str"},
		{"null is_finished", `{"is_finished":null,"text":"nil"}`, false, false, "nil"},
		{"numeric text", `{"is_finished":false,"text":42}`, true, false, ""},
		{"object text", `{"is_finished":false,"text":{"a":1}}`, true, false, ""},
		{"finished", `{"is_finished":true,"event_type":"stream-end"}`, false, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := DecodeDelta([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.unfinished, d.Unfinished)
			assert.Equal(t, tt.finished, d.IsFinished)
			assert.Equal(t, tt.text, d.Text)
		})
	}
}

func TestReadStream_OnlyExplicitlyUnfinishedEventsAccumulate(t *testing.T) {
	body := strings.Join([]string{
		`{"event_type":"text-generation","text":"ghost"}`,
		`{"is_finished":"false","text":"str"}`,
		`{"is_finished":false,"text":7}`,
		`{"is_finished":false,"event_type":"text-generation","text":"real"}`,
		`{"is_finished":true,"event_type":"stream-end","finish_reason":"COMPLETE"}`,
	}, "\n")

	state := translation.Accumulation{}
	var streams []string
	err := readStream(strings.NewReader(body), func(d translation.Delta) error {
		next, emit := translation.Accumulate(state, d)
		state = next
		if emit {
			streams = append(streams, state.Text())
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"real"}, streams)
	assert.Equal(t, "real", state.Text())
}
