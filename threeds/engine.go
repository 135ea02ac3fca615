// Package threeds drives the native 3DS2 engine: scheme resolution, engine
// initialization, transaction lifecycle and challenge execution. The engine
// itself is vendor code consumed through the Engine interface.
package threeds

import (
	"context"

	"github.com/monext/checkout.sdk.go/models"
)

// Protocol constants sent with every authentication context.
const (
	MessageVersion = "2.2.0"

	deviceRenderingOptionsIF = "01"
	deviceRenderOptionsUI    = "03"
	contextMaxTimeout        = 60

	// Challenge timeout handed to the engine, in minutes.
	challengeTimeout = 10
)

// EngineConfig carries everything the native engine needs to initialize for
// one card scheme.
type EngineConfig struct {
	APIKey string
	Locale string
	Scheme models.Scheme
}

// Engine is the native 3DS2 engine surface. Initialize reports its result
// through the callbacks; vendor engines may invoke them from arbitrary
// goroutines.
type Engine interface {
	Initialize(cfg EngineConfig, success func(), failure func(error))
	CreateTransaction(directoryServerID, messageVersion string) (Transaction, error)
	Warnings() ([]Warning, error)
	Cleanup() error
}

// Transaction is one open 3DS2 transaction at the engine.
type Transaction interface {
	AuthenticationRequestParameters() (*AuthenticationRequestParameters, error)
	DoChallenge(ctx context.Context, params models.ChallengeParameters, receiver ChallengeStatusReceiver, timeoutMinutes int) error
	Close() error
}

// AuthenticationRequestParameters is the engine-generated material embedded
// in the authentication context.
type AuthenticationRequestParameters struct {
	DeviceData            string
	SDKTransactionID      string
	SDKAppID              string
	SDKReferenceNumber    string
	SDKEphemeralPublicKey string
	MessageVersion        string
}

// Warning is a runtime integrity warning raised by the engine.
type Warning struct {
	Severity string
	Message  string
}

// ChallengeStatusReceiver is the callback surface the engine invokes exactly
// once when a challenge finishes.
type ChallengeStatusReceiver interface {
	Completed(event CompletionEvent)
	Cancelled()
	TimedOut()
	ProtocolError(event ProtocolErrorEvent)
	RuntimeError(event RuntimeErrorEvent)
}

// CompletionEvent reports a challenge the cardholder saw through to the end.
type CompletionEvent struct {
	SDKTransactionID  string
	TransactionStatus string
}

// ProtocolErrorEvent reports an EMVCo protocol failure during a challenge.
type ProtocolErrorEvent struct {
	SDKTransactionID string
	ErrorCode        string
	ErrorMessage     string
}

// RuntimeErrorEvent reports an engine-internal failure during a challenge.
type RuntimeErrorEvent struct {
	ErrorCode    string
	ErrorMessage string
}
