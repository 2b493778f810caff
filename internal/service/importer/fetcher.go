package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"github.com/julisunkan/LearnMan/internal/app_errors"
)

const fetchUserAgent = "LearnMan-Importer/1.0"

// FetchResult is the raw outcome of retrieving a remote document.
type FetchResult struct {
	Body        []byte
	ContentType string
}

// Fetcher retrieves remote documents for the import pipeline. It refuses
// non-HTTP(S) schemes and any connection to loopback, link-local or
// private-range addresses, and caps the response size while streaming.
type Fetcher struct {
	client  *http.Client
	maxBody int64
}

func NewFetcher(timeout time.Duration, maxBodyBytes int64) *Fetcher {
	dialer := &net.Dialer{
		Timeout: timeout,
		// The guard runs after DNS resolution on the address actually being
		// dialed, so redirects and multi-record hostnames cannot smuggle a
		// connection to an internal service.
		Control: func(network, address string, _ syscall.RawConn) error {
			host, _, err := net.SplitHostPort(address)
			if err != nil {
				return &app_errors.FetchError{Reason: app_errors.FetchPrivateAddressBlocked, Err: err}
			}
			ip := net.ParseIP(host)
			if ip == nil || isBlockedAddr(ip) {
				return &app_errors.FetchError{Reason: app_errors.FetchPrivateAddressBlocked}
			}
			return nil
		},
	}
	transport := &http.Transport{
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: timeout,
	}
	return &Fetcher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		maxBody: maxBodyBytes,
	}
}

func isBlockedAddr(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified()
}

// Fetch retrieves the document at rawURL. Failures carry a FetchError with a
// machine-readable reason; there are no retries.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (FetchResult, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return FetchResult{}, &app_errors.FetchError{Reason: app_errors.FetchInvalidScheme, Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return FetchResult{}, &app_errors.FetchError{Reason: app_errors.FetchInvalidScheme}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return FetchResult{}, &app_errors.FetchError{Reason: app_errors.FetchHTTPError, Err: err}
	}
	req.Header.Set("User-Agent", fetchUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return FetchResult{}, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return FetchResult{}, &app_errors.FetchError{
			Reason: app_errors.FetchHTTPError,
			Err:    fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
	if resp.ContentLength > f.maxBody {
		return FetchResult{}, &app_errors.FetchError{Reason: app_errors.FetchTooLarge}
	}

	// Read one byte past the ceiling so an oversized body is detected without
	// ever buffering the whole thing.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return FetchResult{}, classifyTransportError(err)
	}
	if int64(len(body)) > f.maxBody {
		return FetchResult{}, &app_errors.FetchError{Reason: app_errors.FetchTooLarge}
	}

	return FetchResult{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func classifyTransportError(err error) error {
	var fe *app_errors.FetchError
	if errors.As(err, &fe) {
		return fe
	}
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return &app_errors.FetchError{Reason: app_errors.FetchTimeout, Err: err}
	}
	return &app_errors.FetchError{Reason: app_errors.FetchHTTPError, Err: err}
}
