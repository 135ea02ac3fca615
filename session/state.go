// Package session implements the checkout session state machine. A Store
// owns one session token, holds the latest gateway snapshot, and serializes
// payment submissions against it.
package session

import "github.com/monext/checkout.sdk.go/models"

// State is the machine-facing view of a session. It tracks the gateway's
// session types plus Loading, the initial and fallback state.
type State int

const (
	// StateLoading is the state before the first snapshot and the fallback
	// for session types this version does not know.
	StateLoading State = iota
	StatePaymentMethods
	StateRedirection
	StatePending
	StateActiveWaiting
	StateChallenge
	StateSuccess
	StateFailure
	StateCancelled
	StateTokenExpired
)

var stateNames = [...]string{
	"loading",
	"payment-methods",
	"redirection",
	"pending",
	"active-waiting",
	"challenge",
	"success",
	"failure",
	"cancelled",
	"token-expired",
}

func (s State) String() string {
	return stateNames[s]
}

// IsTerminal reports whether the machine can never leave this state.
func (s State) IsTerminal() bool {
	switch s {
	case StateSuccess, StateFailure, StateCancelled, StateTokenExpired:
		return true
	}
	return false
}

// stateFor maps a gateway session type onto a machine state. Unknown types
// fall back to Loading rather than failing the session.
func stateFor(t models.SessionType) State {
	switch t {
	case models.SessionTypePaymentMethods:
		return StatePaymentMethods
	case models.SessionTypeRedirection:
		return StateRedirection
	case models.SessionTypePending:
		return StatePending
	case models.SessionTypeActiveWaiting:
		return StateActiveWaiting
	case models.SessionTypeSdkChallenge:
		return StateChallenge
	case models.SessionTypeSuccess:
		return StateSuccess
	case models.SessionTypeFailure:
		return StateFailure
	case models.SessionTypeCancelled:
		return StateCancelled
	case models.SessionTypeTokenExpired:
		return StateTokenExpired
	default:
		return StateLoading
	}
}
