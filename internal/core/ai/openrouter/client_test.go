package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"waste-to-feast/internal/infrastructure/config"
	"waste-to-feast/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		OpenRouter: config.OpenRouterConfig{
			APIKey:      "test-key",
			Model:       "test/model",
			VisionModel: "test/vision-model",
			MaxTokens:   256,
			Timeout:     5 * time.Second,
		},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(testConfig())
	client.SetBaseURL(server.URL)
	return client
}

func TestGenerateStream(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Stream)
		assert.Equal(t, "test/model", req.Model)

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"Hello\"}}]}\n\n")
		fmt.Fprint(w, ": keep-alive comment\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\" world\"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	})

	var fragments []string
	err := client.GenerateStream(context.Background(), "prompt", func(fragment string) error {
		fragments = append(fragments, fragment)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", " world"}, fragments)
}

func TestGenerateStreamAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"rate limited","code":429}}`)
	})

	err := client.GenerateStream(context.Background(), "prompt", func(string) error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestGenerateStreamErrorChunk(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"partial\"}}]}\n\n")
		fmt.Fprint(w, "data: {\"error\":{\"message\":\"upstream failed\",\"code\":502}}\n\n")
	})

	var fragments []string
	err := client.GenerateStream(context.Background(), "prompt", func(fragment string) error {
		fragments = append(fragments, fragment)
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream failed")
	assert.Equal(t, []string{"partial"}, fragments)
}

func TestGenerateStreamOnChunkError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"one\"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"two\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	})

	stop := errors.New("stop consuming")
	calls := 0
	err := client.GenerateStream(context.Background(), "prompt", func(string) error {
		calls++
		return stop
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestDescribeImage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test/vision-model", req.Model)
		require.Len(t, req.Messages, 1)
		require.Len(t, req.Messages[0].Content, 2)
		assert.Equal(t, "image_url", req.Messages[0].Content[1].Type)

		fmt.Fprint(w, `{"choices":[{"message":{"content":"Tomatoes, basil, garlic"}}]}`)
	})

	text, err := client.DescribeImage(context.Background(), "list ingredients", "data:image/jpeg;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, "Tomatoes, basil, garlic", text)
}

func TestDescribeImageEmptyResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	})

	_, err := client.DescribeImage(context.Background(), "prompt", "data:image/jpeg;base64,AAAA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty content")
}
