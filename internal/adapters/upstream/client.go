package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/selivandex/worldmap-intel/pkg/models"
)

const maxErrorBody = 512

// Error is a classified upstream failure
type Error struct {
	Kind   models.ErrorKind
	Status int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Kind, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Malformed builds an upstream_malformed error
func Malformed(format string, args ...any) *Error {
	return &Error{Kind: models.ErrorUpstreamMalformed, Detail: fmt.Sprintf(format, args...)}
}

// Unsupported builds an unsupported_subject error
func Unsupported(format string, args ...any) *Error {
	return &Error{Kind: models.ErrorUnsupportedSubject, Detail: fmt.Sprintf(format, args...)}
}

// Classify maps any error to a kind and detail for FetchResult
func Classify(err error) (models.ErrorKind, string) {
	var upErr *Error
	if errors.As(err, &upErr) {
		return upErr.Kind, upErr.Error()
	}
	if isTimeout(err) {
		return models.ErrorUpstreamTimeout, err.Error()
	}
	return models.ErrorUpstreamHTTP, err.Error()
}

// FailedResult converts err into a failed FetchResult
func FailedResult[T any](err error) models.FetchResult[T] {
	kind, detail := Classify(err)
	return models.Failed[T](kind, detail)
}

// Client performs bounded JSON GET requests against upstream APIs
type Client struct {
	http *http.Client
}

// NewClient creates upstream client with per-call timeout
func NewClient(timeout time.Duration) *Client {
	return &Client{http: &http.Client{Timeout: timeout}}
}

// NewClientWithHTTP wraps an existing http.Client
func NewClientWithHTTP(c *http.Client) *Client {
	return &Client{http: c}
}

// HTTP returns the underlying http.Client
func (c *Client) HTTP() *http.Client {
	return c.http
}

// GetJSON fetches rawURL with query params and decodes the body into dest.
// Every returned error is an *Error.
func (c *Client) GetJSON(ctx context.Context, rawURL string, params url.Values, dest any) error {
	if len(params) > 0 {
		rawURL = rawURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &Error{Kind: models.ErrorUpstreamHTTP, Detail: "failed to create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &Error{Kind: models.ErrorUpstreamTimeout, Detail: "request timed out", Err: err}
		}
		return &Error{Kind: models.ErrorUpstreamHTTP, Detail: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &Error{Kind: models.ErrorUpstreamHTTP, Status: resp.StatusCode, Detail: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		if isTimeout(err) {
			return &Error{Kind: models.ErrorUpstreamTimeout, Detail: "response read timed out", Err: err}
		}
		return &Error{Kind: models.ErrorUpstreamMalformed, Detail: "failed to decode response", Err: err}
	}

	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
