package completion

import (
	"context"
	"errors"
	"fmt"
)

// Kind categorizes a completion failure for logs and metrics.
type Kind string

const (
	// KindTimeout means the call exceeded its deadline or was canceled.
	KindTimeout Kind = "timeout"
	// KindTransport means the request never produced a usable HTTP response.
	KindTransport Kind = "transport"
	// KindMalformed means the service answered but the payload carried no completion.
	KindMalformed Kind = "malformed"
	// KindAuth means the credential was rejected.
	KindAuth Kind = "auth"
	// KindQuota means the service refused the request for rate or quota reasons.
	KindQuota Kind = "quota"
)

// Error is a categorized completion failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("completion failed: %s", e.Kind)
	}
	return fmt.Sprintf("completion failed (%s): %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from an error chain. Unrecognized errors
// count as transport faults.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindTimeout
	}
	return KindTransport
}

// classifyStatus maps an HTTP status from a provider API error to a Kind.
func classifyStatus(status int) Kind {
	switch status {
	case 401, 403:
		return KindAuth
	case 429:
		return KindQuota
	default:
		return KindTransport
	}
}

// wrap builds a *Error around err, honoring context expiry over the HTTP
// status classification.
func wrap(kind Kind, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		kind = KindTimeout
	}
	return &Error{Kind: kind, Err: err}
}
