package audio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAudio(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/voice-1", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("xi-api-key"))
		assert.Equal(t, "audio/mpeg", r.Header.Get("Accept"))

		var body map[string]interface{}
		require.NoError(t, jsoniter.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Namaste", body["text"])

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte{0xff, 0xfb, 0x90})
	}))
	defer srv.Close()

	tts := NewTTSService("secret", "voice-1", srv.URL+"/")
	audio, err := tts.GenerateAudio(context.Background(), "Namaste")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xfb, 0x90}, audio)
}

func TestGenerateAudio_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	tts := NewTTSService("bad", "voice-1", srv.URL+"/")

	_, err := tts.GenerateAudio(context.Background(), "hello")
	assert.Error(t, err)

	_, err = tts.GenerateAudio(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestNewTTSFromEnv(t *testing.T) {
	t.Setenv("ELEVENLABS_API_KEY", "")
	assert.Nil(t, NewTTSFromEnv())

	t.Setenv("ELEVENLABS_API_KEY", "k")
	assert.NotNil(t, NewTTSFromEnv())
}
