package genai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient("test-key", server.URL)
}

func TestGenerate_ReturnsFirstCandidate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Spending looks on track."}]}}]}`))
	})

	text, err := client.Generate(context.Background(), "How is spending?")
	require.NoError(t, err)
	assert.Equal(t, "Spending looks on track.", text)
}

func TestGenerate_RateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"status":"UNAVAILABLE","message":"slow down"}}`))
	})

	_, err := client.Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestGenerate_QuotaExhaustedOn429(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"status":"RESOURCE_EXHAUSTED","message":"quota"}}`))
	})

	_, err := client.Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrQuotaExhausted)
}

func TestGenerate_QuotaExhaustedOn403(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrQuotaExhausted)
}

func TestGenerate_ServerErrorIsNotASentinel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Generate(context.Background(), "hi")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
	assert.NotErrorIs(t, err, ErrQuotaExhausted)
}

func TestGenerate_EmptyCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.Generate(context.Background(), "hi")
	assert.Error(t, err)
}
