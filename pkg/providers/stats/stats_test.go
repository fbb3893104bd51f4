package stats

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/nerdneilsfield/cohere-translator/pkg/translation"
)

type fakeProvider struct {
	deltas  []translation.Delta
	outcome translation.Outcome
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) StreamChat(_ context.Context, _ translation.ChatInput, onDelta translation.DeltaHandler) translation.Outcome {
	for _, d := range f.deltas {
		if err := onDelta(d); err != nil {
			return translation.Failed(err)
		}
	}
	return f.outcome
}

func TestManager_Record(t *testing.T) {
	m := NewManager("", nil)

	m.Record("cohere", "command-r", RequestResult{Success: true, Latency: 200 * time.Millisecond, Deltas: 3, OutputSize: 9})
	m.Record("cohere", "command-r", RequestResult{Success: false, Latency: 100 * time.Millisecond, ErrorType: "api"})
	m.Record("cohere", "command-r", RequestResult{Success: false, Latency: 300 * time.Millisecond, ErrorType: "api"})

	s, ok := m.Get("cohere", "command-r")
	require.True(t, ok)
	assert.Equal(t, int64(3), s.TotalRequests)
	assert.Equal(t, int64(1), s.SuccessfulRequests)
	assert.Equal(t, int64(2), s.FailedRequests)
	assert.Equal(t, int64(3), s.TotalDeltas)
	assert.Equal(t, int64(9), s.TotalOutputSize)
	assert.Equal(t, 100*time.Millisecond, s.MinLatency)
	assert.Equal(t, 300*time.Millisecond, s.MaxLatency)
	assert.Equal(t, 200*time.Millisecond, s.AverageLatency)
	assert.Equal(t, int64(2), s.ErrorTypes["api"])
	assert.InDelta(t, 33.33, s.SuccessRate(), 0.01)

	// 返回的是副本
	s.ErrorTypes["api"] = 100
	again, _ := m.Get("cohere", "command-r")
	assert.Equal(t, int64(2), again.ErrorTypes["api"])

	_, ok = m.Get("cohere", "other")
	assert.False(t, ok)
}

func TestManager_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats", "stats.json")

	m := NewManager(path, nil)
	m.Record("cohere", "command-r-plus", RequestResult{Success: true, Latency: time.Second, Deltas: 2, OutputSize: 6})
	m.Record("cohere", "command-r", RequestResult{ErrorType: "secretKey"})
	require.NoError(t, m.Save())

	loaded := NewManager(path, nil)
	require.NoError(t, loaded.Load())

	all := loaded.All()
	require.Len(t, all, 2)
	assert.Equal(t, "command-r", all[0].ModelName)
	assert.Equal(t, int64(1), all[0].ErrorTypes["secretKey"])
	assert.Equal(t, "command-r-plus", all[1].ModelName)
	assert.Equal(t, time.Second, all[1].TotalLatency)
}

func TestManager_LoadMissingFile(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.json"), nil)
	require.NoError(t, m.Load())
	assert.Empty(t, m.All())

	assert.NoError(t, NewManager("", nil).Save())
}

func TestMiddleware_RecordsSuccess(t *testing.T) {
	next := &fakeProvider{
		deltas: []translation.Delta{
			{Unfinished: true, Text: "Hel"},
			{Unfinished: true, Text: ""},
			{Unfinished: true, Text: "lo"},
			{IsFinished: true, EventType: "stream-end"},
		},
		outcome: translation.Ok(&translation.Response{StatusCode: 200}),
	}
	m := NewManager("", nil)
	mw := NewMiddleware(next, m, "command-r-plus")

	var forwarded int
	outcome := mw.StreamChat(context.Background(), translation.ChatInput{}, func(translation.Delta) error {
		forwarded++
		return nil
	})

	assert.Equal(t, "fake", mw.Name())
	assert.Equal(t, 4, forwarded)
	assert.Nil(t, translation.Classify(outcome))

	s, ok := m.Get("fake", "command-r-plus")
	require.True(t, ok)
	assert.Equal(t, int64(1), s.SuccessfulRequests)
	assert.Equal(t, int64(2), s.TotalDeltas)
	assert.Equal(t, int64(5), s.TotalOutputSize)
}

func TestMiddleware_RecordsFailureKind(t *testing.T) {
	m := NewManager("", nil)

	unauthorized := NewMiddleware(&fakeProvider{
		outcome: translation.Ok(&translation.Response{StatusCode: 401}),
	}, m, "default")
	unauthorized.StreamChat(context.Background(), translation.ChatInput{Model: "command-r"}, func(translation.Delta) error { return nil })

	broken := NewMiddleware(&fakeProvider{
		outcome: translation.Failed(errors.New("connection reset")),
	}, m, "default")
	broken.StreamChat(context.Background(), translation.ChatInput{Model: "command-r"}, func(translation.Delta) error { return nil })

	s, ok := m.Get("fake", "command-r")
	require.True(t, ok)
	assert.Equal(t, int64(2), s.FailedRequests)
	assert.Equal(t, int64(1), s.ErrorTypes[string(translation.KindSecretKey)])
	assert.Equal(t, int64(1), s.ErrorTypes[string(translation.KindUnknown)])
}

func TestMiddleware_CountsOnlyUnfinishedDeltas(t *testing.T) {
	next := &fakeProvider{
		deltas: []translation.Delta{
			{Text: "ghost"},
			{Unfinished: true, Text: "ok"},
		},
		outcome: translation.Ok(&translation.Response{StatusCode: 200}),
	}
	m := NewManager("", nil)
	NewMiddleware(next, m, "command-r").StreamChat(context.Background(), translation.ChatInput{}, func(translation.Delta) error { return nil })

	s, ok := m.Get("fake", "command-r")
	require.True(t, ok)
	assert.Equal(t, int64(1), s.TotalDeltas)
	assert.Equal(t, int64(2), s.TotalOutputSize)
}

func TestManager_ConcurrentSaves(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stats.json")
	m := NewManager(path, nil)

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			m.Record("cohere", "command-r", RequestResult{Success: true, Latency: time.Millisecond})
			return m.Save()
		})
	}
	require.NoError(t, g.Wait())
	require.NoError(t, m.Save())

	loaded := NewManager(path, nil)
	require.NoError(t, loaded.Load())
	s, ok := loaded.Get("cohere", "command-r")
	require.True(t, ok)
	assert.Equal(t, int64(8), s.TotalRequests)

	// 不留下临时文件
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "stats.json", entries[0].Name())
}
