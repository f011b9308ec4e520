package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JasminHed/project-final-sub000/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatConfig(url string) *config.Config {
	return &config.Config{
		ChatAPIKey:  "test-key",
		ChatAPIURL:  url,
		ChatModel:   "test-model",
		ChatTimeout: 5 * time.Second,
	}
}

func TestRelayReturnsReply(t *testing.T) {
	var gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "how do I stay motivated?", req.Messages[1].Content)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "one day at a time"}},
			},
		})
	}))
	defer upstream.Close()

	svc := NewChatService(chatConfig(upstream.URL))
	reply, err := svc.Relay("how do I stay motivated?")
	require.NoError(t, err)
	assert.Equal(t, "one day at a time", reply)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestRelayEmptyMessage(t *testing.T) {
	svc := NewChatService(chatConfig("http://127.0.0.1:0"))
	_, err := svc.Relay("")
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestRelayPropagatesUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer upstream.Close()

	svc := NewChatService(chatConfig(upstream.URL))
	_, err := svc.Relay("hello")

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusTooManyRequests, upstreamErr.Status)
	assert.Contains(t, upstreamErr.Body, "rate limited")
}
