package riskapi

import "fmt"

// FailureKind classifies a fetch failure: transport errors never reached
// the server, status errors carry a non-success HTTP status, decode errors
// mean the payload shape was unexpected.
type FailureKind string

const (
	FailureTransport FailureKind = "transport"
	FailureStatus    FailureKind = "status"
	FailureDecode    FailureKind = "decode"
)

// FetchError is the typed failure returned by every client method. The
// caller decides whether to swallow it (best-effort dashboard panels) or
// surface it (driver risk submissions), rather than the fetch layer
// deciding by omission.
type FetchError struct {
	Kind     FailureKind
	Endpoint string
	Status   int // HTTP status, set for FailureStatus

	// ServerMessage carries the `error` field of an error payload when the
	// server provided one.
	ServerMessage string

	Err error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FailureStatus:
		if e.ServerMessage != "" {
			return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.Status, e.ServerMessage)
		}
		return fmt.Sprintf("%s: status %d", e.Endpoint, e.Status)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Endpoint, e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// outcome returns the metrics label for this failure.
func (e *FetchError) outcome() string {
	return string(e.Kind) + "_error"
}
