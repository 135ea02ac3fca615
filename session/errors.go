package session

import "errors"

var (
	// ErrSessionBusy is returned when a submission is attempted while
	// another one is in flight. Submissions are rejected, never queued.
	ErrSessionBusy = errors.New("a payment submission is already in flight")

	// ErrSessionTerminal is returned for any operation on a session that
	// reached a terminal state.
	ErrSessionTerminal = errors.New("session has reached a terminal state")

	// ErrActiveWaitingTimeout is returned when the poll attempt bound is
	// exhausted before the partner action completes.
	ErrActiveWaitingTimeout = errors.New("active waiting did not complete within the attempt bound")

	// ErrUnexpectedState is returned when an operation does not apply to
	// the current session state.
	ErrUnexpectedState = errors.New("operation does not apply to the current session state")
)
