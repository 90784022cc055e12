package http_test

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/soilsync/vegbox-api/client/http"
)

func fastRetryConfig() *httpclient.RetryConfig {
	return &httpclient.RetryConfig{
		MaxRetries:           3,
		InitialInterval:      time.Millisecond,
		MaxInterval:          5 * time.Millisecond,
		Multiplier:           1.5,
		MaxElapsedTime:       time.Second,
		RetryableStatusCodes: []int{503},
	}
}

func TestHTTPClient_RetriesRetryableStatusCodes(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(nethttp.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := httpclient.NewHTTPClient(
		httpclient.WithBaseURL(server.URL),
		httpclient.WithRetryConfig(fastRetryConfig()),
	)

	resp, err := client.Get(context.Background(), "/health")
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())

	var body map[string]string
	require.NoError(t, client.ProcessJSONResponse(resp, &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHTTPClient_ErrorResponsesCarryTheBody(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusNotFound)
		w.Write([]byte(`{"error":"no such subscription"}`))
	}))
	defer server.Close()

	client := httpclient.NewHTTPClient(httpclient.WithBaseURL(server.URL))

	_, err := client.Get(context.Background(), "/v1/subscriptions/missing")
	require.Error(t, err)

	var httpErr *httpclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, nethttp.StatusNotFound, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "no such subscription")
}

func TestHTTPClient_DefaultHeadersAndRequestOptions(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		w.WriteHeader(nethttp.StatusNoContent)
	}))
	defer server.Close()

	client := httpclient.NewHTTPClient(httpclient.WithBaseURL(server.URL))

	resp, err := client.Get(context.Background(), "/items",
		httpclient.WithBearerToken("token-123"),
		httpclient.WithQueryParam("page", "1"),
	)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, nethttp.StatusNoContent, resp.StatusCode)
}
