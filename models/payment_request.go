package models

import "encoding/json"

// PaymentRequest is the standard (non-secured) submission shape.
type PaymentRequest struct {
	CardCode                     string        `json:"cardCode"`
	MerchantReturnURL            string        `json:"merchantReturnUrl"`
	IsEmbeddedRedirectionAllowed bool          `json:"isEmbeddedRedirectionAllowed"`
	PaymentParams                PaymentParams `json:"paymentParams"`
	ContractNumber               string        `json:"contractNumber"`
}

// SecuredPaymentRequest is the cryptographic/3DS submission shape: the
// standard fields plus a device fingerprint and the sensitive card data.
type SecuredPaymentRequest struct {
	CardCode                     string               `json:"cardCode"`
	ContractNumber               string               `json:"contractNumber"`
	DeviceInfo                   DeviceInfo           `json:"deviceInfo"`
	IsEmbeddedRedirectionAllowed bool                 `json:"isEmbeddedRedirectionAllowed"`
	MerchantReturnURL            string               `json:"merchantReturnUrl"`
	PaymentParams                PaymentParams        `json:"paymentParams"`
	SecuredPaymentParams         SecuredPaymentParams `json:"securedPaymentParams"`
}

// WalletPaymentRequest pays with a stored wallet entry by index.
type WalletPaymentRequest struct {
	CardCode                     string            `json:"cardCode"`
	Index                        int               `json:"index"`
	IsEmbeddedRedirectionAllowed bool              `json:"isEmbeddedRedirectionAllowed"`
	MerchantReturnURL            string            `json:"merchantReturnUrl"`
	PaymentParams                PaymentParams     `json:"paymentParams"`
	SecuredPaymentParams         map[string]string `json:"securedPaymentParams,omitempty"`
}

// PaymentParams carries the per-method parameters. Wire keys are uppercase;
// the 3DS context blob is nested as a JSON-encoded string, and any
// server-described custom form fields are merged in alongside the fixed keys.
type PaymentParams struct {
	Network         string
	ExpirationDate  string
	SavePaymentData bool
	HolderName      string
	ApplePayToken   *ApplePayToken
	SDKContextData  *SDKContextData
	CustomFields    map[string]string
}

// MarshalJSON flattens the fixed keys and the custom fields into one object.
// The context blob is double-encoded: the gateway expects SDK_CONTEXT_DATA
// to be a string containing JSON.
func (p PaymentParams) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(p.CustomFields)+6)
	for k, v := range p.CustomFields {
		out[k] = v
	}
	out["NETWORK"] = p.Network
	out["EXPI_DATE"] = p.ExpirationDate
	out["SAVE_PAYMENT_DATA"] = p.SavePaymentData
	out["HOLDER"] = p.HolderName
	if p.ApplePayToken != nil {
		out["APPLE_PAY_TOKEN"] = p.ApplePayToken
	}
	if p.SDKContextData != nil {
		blob, err := json.Marshal(p.SDKContextData)
		if err != nil {
			return nil, err
		}
		out["SDK_CONTEXT_DATA"] = string(blob)
	}
	return json.Marshal(out)
}

// SecuredPaymentParams carries the sensitive card fields, plus any custom
// secured form fields for server-described methods.
type SecuredPaymentParams struct {
	PAN          string
	CVV          string
	CustomFields map[string]string
}

// MarshalJSON merges PAN/CVV with the custom secured fields. Empty card
// fields are omitted so alternative-method submissions stay clean.
func (p SecuredPaymentParams) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(p.CustomFields)+2)
	for k, v := range p.CustomFields {
		out[k] = v
	}
	if p.PAN != "" {
		out["PAN"] = p.PAN
	}
	if p.CVV != "" {
		out["CVV"] = p.CVV
	}
	return json.Marshal(out)
}

// DeviceInfo is the browser-style device fingerprint attached to secured
// requests. Color depth and java support are fixed values on this platform,
// not probed.
type DeviceInfo struct {
	ColorDepth      int     `json:"colorDepth"`
	ContainerHeight float64 `json:"containerHeight"`
	ContainerWidth  float64 `json:"containerWidth"`
	JavaEnabled     bool    `json:"javaEnabled"`
	ScreenHeight    int     `json:"screenHeight"`
	ScreenWidth     int     `json:"screenWidth"`
	TimeZoneOffset  int     `json:"timeZoneOffset"`
}

// ApplePayToken is the native pay token forwarded verbatim to the gateway.
type ApplePayToken struct {
	PaymentData           ApplePaymentData   `json:"paymentData"`
	TransactionIdentifier string             `json:"transactionIdentifier"`
	PaymentMethod         ApplePaymentMethod `json:"paymentMethod"`
}

// ApplePaymentData is the signed payment blob inside an Apple Pay token.
type ApplePaymentData struct {
	Data      string                 `json:"data"`
	Signature string                 `json:"signature"`
	Header    ApplePaymentDataHeader `json:"header"`
	Version   string                 `json:"version"`
}

// ApplePaymentDataHeader carries the token's key material references.
type ApplePaymentDataHeader struct {
	EphemeralPublicKey string `json:"ephemeralPublicKey"`
	PublicKeyHash      string `json:"publicKeyHash"`
	TransactionID      string `json:"transactionId"`
}

// ApplePaymentMethod describes the instrument behind an Apple Pay token.
type ApplePaymentMethod struct {
	DisplayName string `json:"displayName"`
	Type        string `json:"type"`
	Network     string `json:"network"`
}
