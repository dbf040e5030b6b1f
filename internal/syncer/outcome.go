package syncer

import (
	"errors"
	"fmt"
	"net"
)

// ErrOffline marks outcomes of operations that could not reach the remote
// store. The local half of the operation, if any, has already committed.
var ErrOffline = errors.New("no internet connection")

// Outcome is the ephemeral result of one sync operation, surfaced to the UI
// layer as transient feedback. It is never persisted.
//
// Deferred outcomes are designed, recoverable failures: the local write went
// through and the remote half will happen on the next full sync. Callers
// should inform, not alarm.
type Outcome struct {
	Err      error
	Deferred bool
	Message  string
}

// OK reports whether the operation fully succeeded.
func (o Outcome) OK() bool { return o.Err == nil }

// Success builds a success outcome with a formatted message.
func Success(format string, args ...any) Outcome {
	return Outcome{Message: fmt.Sprintf(format, args...)}
}

// Deferredf builds an offline-deferred outcome.
func Deferredf(format string, args ...any) Outcome {
	return Outcome{Err: ErrOffline, Deferred: true, Message: fmt.Sprintf(format, args...)}
}

// Failure builds a failure outcome wrapping the triggering error. The message
// falls back to the error text when none is given.
func Failure(err error, message string) Outcome {
	if message == "" {
		message = err.Error()
	}
	return Outcome{Err: err, Message: message}
}

// hostUnreachable reports whether err looks like a DNS or connection-level
// failure, which gets a clearer user-facing message than a generic remote
// rejection.
func hostUnreachable(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
