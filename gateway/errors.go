package gateway

import "fmt"

// NetworkError wraps a transport-level failure talking to the gateway. It is
// surfaced to the caller and never retried by the SDK itself.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("error sending request to gateway: [%v]", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-2xx gateway response.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("error status [%v] back from gateway", e.StatusCode)
}

// DecodingError reports a malformed gateway payload. Fatal for the call that
// produced it; the previous session snapshot stays intact.
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("error reading response from gateway: [%v]", e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}
