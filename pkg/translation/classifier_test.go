package translation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_HTTPStatus(t *testing.T) {
	tests := []struct {
		status int
		want   Kind
	}{
		{401, KindSecretKey},
		{400, KindParam},
		{403, KindParam},
		{429, KindParam},
		{499, KindParam},
		{500, KindAPI},
		{503, KindAPI},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			e := Classify(Ok(&Response{StatusCode: tt.status, Body: `{"message":"bad"}`}))
			require.NotNil(t, e)
			assert.Equal(t, tt.want, e.Type)
		})
	}
}

func TestClassify_Success(t *testing.T) {
	assert.Nil(t, Classify(Ok(&Response{StatusCode: 200})))
	assert.Nil(t, Classify(Ok(&Response{StatusCode: 204})))
}

func TestClassify_Messages(t *testing.T) {
	e := Classify(Ok(&Response{StatusCode: 401}))
	assert.Equal(t, MessageSecretKey, e.Message)
	assert.Equal(t, AdditionSecretKey, e.Addition)

	e = Classify(Ok(&Response{StatusCode: 429, Body: "too many requests"}))
	assert.Equal(t, "接口响应错误 - 429", e.Message)
	assert.Contains(t, e.Addition, `"statusCode":429`)
	assert.Contains(t, e.Addition, "too many requests")
}

func TestClassify_TransportErrors(t *testing.T) {
	cause := errors.New("connection refused")
	e := Classify(Failed(cause))
	require.NotNil(t, e)
	assert.Equal(t, KindUnknown, e.Type)
	assert.Equal(t, "connection refused", e.Message)
	assert.ErrorIs(t, e, cause)

	// 自带分类的错误保持原样
	declared := NewError(KindAPI, "接口返回错误 - ERROR", "detail")
	e = Classify(Failed(fmt.Errorf("stream: %w", declared)))
	assert.Equal(t, KindAPI, e.Type)
	assert.Equal(t, "接口返回错误 - ERROR", e.Message)
	assert.Equal(t, "detail", e.Addition)

	e = Classify(Failed(errors.New("")))
	assert.Equal(t, MessageUnknown, e.Message)

	e = Classify(Failed(&Error{}))
	assert.Equal(t, KindUnknown, e.Type)
	assert.Equal(t, MessageUnknown, e.Message)

	e = Classify(Ok(nil))
	assert.Equal(t, KindUnknown, e.Type)
}

func TestOutcome_Tagged(t *testing.T) {
	ok := Ok(&Response{StatusCode: 200})
	resp, has := ok.Response()
	assert.True(t, has)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NoError(t, ok.Err())

	failed := Failed(nil)
	_, has = failed.Response()
	assert.False(t, has)
	assert.Error(t, failed.Err())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindSecretKey, KindOf(fmt.Errorf("x: %w", NewSecretKeyError())))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnsupportedLanguage, KindOf(NewUnsupportedLanguageError("xx")))
}
