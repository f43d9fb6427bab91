package scraper

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// FailureKind enumerates the ways a supplier lookup can fail. Keeping the
// set closed makes the adapter contract testable: every failure maps to
// exactly one of these, and each renders a stable message in the record's
// error field.
type FailureKind int

const (
	FailureHTTPStatus FailureKind = iota
	FailureTimeout
	FailureNotFound
	FailureInternal
)

// Failure is a typed lookup failure. It is carried inside the returned
// ProductRecord, never as a Go error: the adapter always returns a record.
type Failure struct {
	Kind   FailureKind
	Status int
	Detail string
}

func (f Failure) Message() string {
	switch f.Kind {
	case FailureHTTPStatus:
		return fmt.Sprintf("HTTP error %d", f.Status)
	case FailureTimeout:
		return "Timeout: the supplier server is not responding"
	case FailureNotFound:
		return "Product not found"
	default:
		return "Error: " + f.Detail
	}
}

// classify maps a transport error to a failure. Timeouts get their own
// kind so callers can tell a slow upstream from a broken one.
func classify(err error) Failure {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Failure{Kind: FailureTimeout}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Failure{Kind: FailureTimeout}
	}
	return Failure{Kind: FailureInternal, Detail: err.Error()}
}
