package sheets

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

type Kind string

const (
	KindAuth              Kind = "auth"
	KindNotFound          Kind = "not_found"
	KindRemoteUnavailable Kind = "remote_unavailable"
	KindInternal          Kind = "internal"
)

// Error is a classified gateway failure. Sentinels below match on Kind with errors.Is.
type Error struct {
	Kind   Kind
	Op     string
	Status int
	Err    error
}

var (
	ErrAuth              = &Error{Kind: KindAuth}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrRemoteUnavailable = &Error{Kind: KindRemoteUnavailable}
)

func (e *Error) Error() string {
	if e.Err == nil {
		return "sheets: " + string(e.Kind)
	}
	if e.Op == "" {
		return fmt.Sprintf("sheets: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("sheets: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Err == nil && t.Kind == e.Kind
}

// Retryable reports whether another attempt could succeed.
func (e *Error) Retryable() bool {
	return e.Kind == KindRemoteUnavailable
}

// token source 에서 발생한 에러 표시용
type tokenError struct {
	err error
}

func (e *tokenError) Error() string { return "token: " + e.err.Error() }
func (e *tokenError) Unwrap() error { return e.err }

func classify(op string, err error) *Error {
	if err == nil {
		return nil
	}
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &Error{Kind: kindForStatus(apiErr.Code), Op: op, Status: apiErr.Code, Err: err}
	}

	var tokErr *tokenError
	if errors.As(err, &tokErr) {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(tokErr.err, &retrieveErr) && retrieveErr.Response != nil && retrieveErr.Response.StatusCode >= 500 {
			return &Error{Kind: KindRemoteUnavailable, Op: op, Status: retrieveErr.Response.StatusCode, Err: err}
		}
		if isTransient(tokErr.err) {
			return &Error{Kind: KindRemoteUnavailable, Op: op, Err: err}
		}
		return &Error{Kind: KindAuth, Op: op, Err: err}
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return &Error{Kind: KindAuth, Op: op, Err: err}
	}

	if isTransient(err) {
		return &Error{Kind: KindRemoteUnavailable, Op: op, Err: err}
	}
	return &Error{Kind: KindInternal, Op: op, Err: err}
}

func kindForStatus(code int) Kind {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return KindAuth
	case code == http.StatusNotFound:
		return KindNotFound
	case code == http.StatusTooManyRequests || code >= 500:
		return KindRemoteUnavailable
	default:
		return KindInternal
	}
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
