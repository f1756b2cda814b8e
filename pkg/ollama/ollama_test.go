package ollama

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"model":"llama3","response":" Use drip irrigation. ","done":true}`))
	}))
	defer srv.Close()

	client := New(Config{URL: srv.URL})
	text, err := client.Generate(context.Background(), "How to save water?")
	require.NoError(t, err)

	assert.Equal(t, "Use drip irrigation.", text)
	assert.Equal(t, DefaultModel, got.Model)
	assert.Equal(t, "How to save water?", got.Prompt)
	assert.False(t, got.Stream)
}

func TestGenerate_FailureModes(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "non-200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
		{
			name: "empty response field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"response":""}`))
			},
			wantErr: ErrEmptyResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := New(Config{URL: srv.URL}).Generate(context.Background(), "q")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGenerate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"response":"late"}`))
	}))
	defer srv.Close()

	_, err := New(Config{URL: srv.URL, Timeout: 20 * time.Millisecond}).Generate(context.Background(), "q")
	assert.Error(t, err)
}

func TestGenerate_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(Config{URL: url}).Generate(context.Background(), "q")
	assert.Error(t, err)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("OLLAMA_URL", "http://ollama:11434/api/generate")
	t.Setenv("OLLAMA_MODEL", "mistral")
	t.Setenv("OLLAMA_TIMEOUT", "3s")

	cfg := ConfigFromEnv()
	assert.Equal(t, "http://ollama:11434/api/generate", cfg.URL)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
}
