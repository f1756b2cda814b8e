package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChatGPT(t *testing.T, handler http.HandlerFunc) IChatGPT {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = srv.URL + "/v1"
	return NewChatGPTWithConfig(config, "gpt-test")
}

func TestComplete_SendsSystemPromptAndTokenCap(t *testing.T) {
	var got openai.ChatCompletionRequest

	client := newTestChatGPT(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"  Irrigate at crown root initiation.  "}}]}`))
	})

	text, err := client.Complete(context.Background(), "be helpful", "When should I irrigate wheat?", 300)
	require.NoError(t, err)
	assert.Equal(t, "Irrigate at crown root initiation.", text)

	assert.Equal(t, "gpt-test", got.Model)
	assert.Equal(t, 300, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, got.Messages[0].Role)
	assert.Equal(t, "be helpful", got.Messages[0].Content)
	assert.Equal(t, "When should I irrigate wheat?", got.Messages[1].Content)
}

func TestComplete_Errors(t *testing.T) {
	t.Run("upstream failure", func(t *testing.T) {
		client := newTestChatGPT(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"boom"}}`))
		})

		_, err := client.Complete(context.Background(), "sys", "hi", 10)
		assert.Error(t, err)
	})

	t.Run("blank content", func(t *testing.T) {
		client := newTestChatGPT(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"   "}}]}`))
		})

		_, err := client.Complete(context.Background(), "sys", "hi", 10)
		assert.ErrorIs(t, err, ErrEmptyCompletion)
	})

	t.Run("no choices", func(t *testing.T) {
		client := newTestChatGPT(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[]}`))
		})

		_, err := client.Complete(context.Background(), "sys", "hi", 10)
		assert.ErrorIs(t, err, ErrEmptyCompletion)
	})
}
