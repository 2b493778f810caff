package importer

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julisunkan/LearnMan/internal/app_errors"
)

func TestFetchRejectsNonHTTPScheme(t *testing.T) {
	f := NewFetcher(time.Second, 1024)

	for _, rawURL := range []string{
		"file:///etc/passwd",
		"ftp://example.com/doc.txt",
		"gopher://example.com",
	} {
		_, err := f.Fetch(context.Background(), rawURL)
		require.Error(t, err, rawURL)
		assert.Equal(t, app_errors.FetchInvalidScheme, app_errors.ReasonOf(err), rawURL)
	}
}

func TestFetchBlocksLoopbackAddress(t *testing.T) {
	handlerInvoked := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerInvoked = true
	}))
	defer srv.Close()

	f := NewFetcher(time.Second, 1024)
	_, err := f.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, app_errors.FetchPrivateAddressBlocked, app_errors.ReasonOf(err))
	assert.False(t, handlerInvoked, "connection must be refused before the request is sent")
}

func TestBlockedAddressRanges(t *testing.T) {
	blocked := []string{"127.0.0.1", "10.0.0.5", "172.16.1.1", "192.168.1.10", "169.254.0.1", "0.0.0.0", "::1"}
	for _, addr := range blocked {
		assert.True(t, isBlockedAddr(net.ParseIP(addr)), addr)
	}
	allowed := []string{"93.184.216.34", "8.8.8.8", "2606:2800:220:1:248:1893:25c8:1946"}
	for _, addr := range allowed {
		assert.False(t, isBlockedAddr(net.ParseIP(addr)), addr)
	}
}

// loopbackFetcher bypasses the address guard so the HTTP-level behavior can
// be exercised against a local test server.
func loopbackFetcher(srv *httptest.Server, maxBody int64) *Fetcher {
	return &Fetcher{client: srv.Client(), maxBody: maxBody}
}

func TestFetchReturnsBodyAndContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fetchUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	f := loopbackFetcher(srv, 1024)
	result, err := f.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "<html><body>hello</body></html>", string(result.Body))
	assert.Equal(t, "text/html; charset=utf-8", result.ContentType)
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 200)))
	}))
	defer srv.Close()

	f := loopbackFetcher(srv, 64)
	_, err := f.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	assert.Equal(t, app_errors.FetchTooLarge, app_errors.ReasonOf(err))
}

func TestFetchReportsHTTPStatusErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := loopbackFetcher(srv, 1024)
	_, err := f.Fetch(context.Background(), srv.URL)

	require.Error(t, err)
	var fe *app_errors.FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, app_errors.FetchHTTPError, fe.Reason)
}
