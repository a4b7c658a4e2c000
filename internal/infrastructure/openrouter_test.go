package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"velya/internal/entities"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*OpenRouterClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewOpenRouterClient(OpenRouterOptions{
		APIKey:      "test-key",
		BaseURL:     srv.URL + "/v1",
		Model:       "openrouter/auto",
		Temperature: 0.7,
		MaxTokens:   300,
		Timeout:     2 * time.Second,
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
	}, zap.NewNop())
	return client, srv
}

func TestCompleteReturnsModelReply(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "gen-1",
			"object": "chat.completion",
			"created": 1,
			"model": "openrouter/auto",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "We have sneakers in all sizes."}, "finish_reason": "stop"}]
		}`))
	})

	got, err := client.Complete(context.Background(), "what sneakers do you have", entities.LocaleEnglish)
	require.NoError(t, err)
	assert.Equal(t, "We have sneakers in all sizes.", got)
}

func TestCompleteRetriesServerErrorsThreeTimes(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "upstream exploded", "type": "server_error"}}`))
	})

	_, err := client.Complete(context.Background(), "anything", entities.LocaleEnglish)
	assert.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestCompleteDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "bad request", "type": "invalid_request_error"}}`))
	})

	_, err := client.Complete(context.Background(), "anything", entities.LocaleEnglish)
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCompleteDoesNotRetryEmptyCompletions(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "gen-1",
			"object": "chat.completion",
			"created": 1,
			"model": "openrouter/auto",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "  "}, "finish_reason": "stop"}]
		}`))
	})

	_, err := client.Complete(context.Background(), "anything", entities.LocaleEnglish)
	assert.ErrorIs(t, err, errEmptyCompletion)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
