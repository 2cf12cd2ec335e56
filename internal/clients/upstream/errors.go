package upstream

import (
	"errors"
	"fmt"
)

// Kind classifies every adapter failure. Call sites branch on the kind
// explicitly instead of inspecting status codes or nil records.
type Kind int

const (
	// KindNotFound: the upstream reported the entity absent (HTTP 404).
	KindNotFound Kind = iota
	// KindUnavailable: the call could not complete (dial failure, timeout).
	KindUnavailable
	// KindUnexpected: any other non-success response.
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unexpected"
	}
}

type Error struct {
	Kind    Kind
	Service string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "upstream: <nil error>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Service, e.Kind, e.Err)
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (http %d)", e.Service, e.Kind, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Service, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(service string) *Error {
	return &Error{Kind: KindNotFound, Service: service, Status: 404}
}

func Unavailable(service string, err error) *Error {
	return &Error{Kind: KindUnavailable, Service: service, Err: err}
}

func Unexpected(service string, status int, err error) *Error {
	return &Error{Kind: KindUnexpected, Service: service, Status: status, Err: err}
}

func KindOf(err error) (Kind, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind, true
	}
	return 0, false
}

func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

func IsUnavailable(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindUnavailable
}
