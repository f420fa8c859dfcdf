package httpclient_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Behyna/sms-services/templateconsole/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEchoServer() *httptest.Server {
	handler := http.NewServeMux()
	handler.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("X-Seen-Method", r.Method)
		w.Header().Set("X-Seen-Request-ID", r.Header.Get("X-Request-ID"))
		w.Header().Set("X-Seen-User-Agent", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
	return httptest.NewServer(handler)
}

func TestHttpClient_Get(t *testing.T) {
	server := setupEchoServer()
	defer server.Close()

	client := httpclient.NewHTTPClient(5 * time.Second)

	resp, err := client.Get(context.Background(), server.URL+"/echo", map[string]string{"X-Request-ID": "req-1"})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.MethodGet, resp.Header.Get("X-Seen-Method"))
	assert.Equal(t, "req-1", resp.Header.Get("X-Seen-Request-ID"))
	assert.Equal(t, httpclient.DefaultUserAgent, resp.Header.Get("X-Seen-User-Agent"))
}

func TestHttpClient_UserAgentOverride(t *testing.T) {
	server := setupEchoServer()
	defer server.Close()

	client := httpclient.NewHTTPClient(5 * time.Second)

	resp, err := client.Get(context.Background(), server.URL+"/echo", map[string]string{"User-Agent": "probe"})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "probe", resp.Header.Get("X-Seen-User-Agent"))
}

func TestHttpClient_Post(t *testing.T) {
	server := setupEchoServer()
	defer server.Close()

	client := httpclient.NewHTTPClient(5 * time.Second)

	resp, err := client.Post(context.Background(), server.URL+"/echo", strings.NewReader(`{"name":"welcome"}`), nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, resp.Header.Get("X-Seen-Method"))
	assert.Equal(t, `{"name":"welcome"}`, string(body))
}

func TestHttpClient_Do(t *testing.T) {
	server := setupEchoServer()
	defer server.Close()

	client := httpclient.NewHTTPClient(5 * time.Second)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+"/echo", nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHttpClient_CancelledContext(t *testing.T) {
	server := setupEchoServer()
	defer server.Close()

	client := httpclient.NewHTTPClient(5 * time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, server.URL+"/echo", nil)
	assert.Error(t, err)
}
