package builders

import "errors"

// Build failures surfaced to the caller before anything reaches the gateway.
var (
	ErrSessionTokenMissing      = errors.New("session token is missing")
	ErrInvalidPaymentParameters = errors.New("payment parameters are invalid")
	ErrInvalidCardInfo          = errors.New("card cannot be mapped to an authentication network")
	ErrWalletNotSelected        = errors.New("no wallet entry is selected")
	ErrWalletCvvMissing         = errors.New("wallet confirmation cvv is missing")
)
