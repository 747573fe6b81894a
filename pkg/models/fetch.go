package models

import "time"

// ErrorKind classifies why an upstream fetch failed
type ErrorKind string

const (
	ErrorUnsupportedSubject ErrorKind = "unsupported_subject"
	ErrorUpstreamTimeout    ErrorKind = "upstream_timeout"
	ErrorUpstreamHTTP       ErrorKind = "upstream_http_error"
	ErrorUpstreamMalformed  ErrorKind = "upstream_malformed"
)

// FetchResult is the outcome of one connector call: either a payload or a
// classified failure, never both.
type FetchResult[T any] struct {
	Payload   T         `json:"payload"`
	FetchedAt time.Time `json:"fetched_at"`
	Kind      ErrorKind `json:"error_kind,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	ok        bool
}

// Ok builds a successful result
func Ok[T any](payload T, fetchedAt time.Time) FetchResult[T] {
	return FetchResult[T]{Payload: payload, FetchedAt: fetchedAt, ok: true}
}

// Failed builds a failed result
func Failed[T any](kind ErrorKind, detail string) FetchResult[T] {
	return FetchResult[T]{Kind: kind, Detail: detail}
}

// IsOk reports whether the fetch succeeded
func (r FetchResult[T]) IsOk() bool {
	return r.ok
}
