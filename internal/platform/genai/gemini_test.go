package genai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	c := NewClient("test-key", "test-model")
	c.baseURL = serverURL
	return c
}

func TestGenerateText_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Halo warga!"}]}}]}`))
	}))
	defer server.Close()

	text, err := newTestClient(server.URL).GenerateText(context.Background(), "", "sapa warga")
	require.NoError(t, err)
	assert.Equal(t, "Halo warga!", text)
}

func TestGenerate_ServerErrorIsNotRetried(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GenerateText(context.Background(), "", "sapa warga")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overloaded")
	assert.Equal(t, 1, requests, "a failed generation is surfaced once, never retried")
}

func TestGenerate_MissingAPIKey(t *testing.T) {
	c := NewClient("", "test-model")
	_, err := c.GenerateText(context.Background(), "", "sapa warga")
	require.Error(t, err)
}
