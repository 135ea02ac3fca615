package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// SessionType is the discriminant reported by the gateway on every session
// state response. Exactly one payload field of SessionState is populated for
// each value.
type SessionType string

// Session types as they appear on the wire.
const (
	SessionTypePaymentMethods SessionType = "PAYMENT_METHODS_LIST"
	SessionTypeRedirection    SessionType = "PAYMENT_REDIRECT_NO_RESPONSE"
	SessionTypePending        SessionType = "PAYMENT_ONHOLD_PARTNER"
	SessionTypeSuccess        SessionType = "PAYMENT_SUCCESS"
	SessionTypeSdkChallenge   SessionType = "SDK_CHALLENGE"
	SessionTypeActiveWaiting  SessionType = "ACTIVE_WAITING"
	SessionTypeFailure        SessionType = "PAYMENT_FAILURE"
	SessionTypeCancelled      SessionType = "PAYMENT_CANCELED"
	SessionTypeTokenExpired   SessionType = "TOKEN_EXPIRED"
)

// IsTerminal reports whether the session can never leave this type again.
func (t SessionType) IsTerminal() bool {
	switch t {
	case SessionTypeSuccess, SessionTypeFailure, SessionTypeCancelled, SessionTypeTokenExpired:
		return true
	}
	return false
}

// SessionState is the authoritative checkout state returned by every gateway
// call. It is immutable once decoded; a new response supersedes it wholesale.
type SessionState struct {
	Token                          string                     `json:"token" validate:"required"`
	Type                           SessionType                `json:"type"  validate:"required"`
	AutomaticRedirectAtSessionsEnd bool                       `json:"automaticRedirectAtSessionsEnd,omitempty"`
	CancelURL                      string                     `json:"cancelUrl,omitempty"`
	CreationDate                   string                     `json:"creationDate,omitempty"`
	Info                           *SessionInfo               `json:"info,omitempty"`
	IsSandbox                      bool                       `json:"isSandbox,omitempty"`
	Language                       string                     `json:"language,omitempty"`
	PointOfSale                    string                     `json:"pointOfSale,omitempty"`
	ReturnURL                      string                     `json:"returnUrl,omitempty"`
	PaymentMethodsList             *PaymentMethodsList        `json:"paymentMethodsList,omitempty"`
	PaymentRedirectNoResponse      *PaymentRedirectNoResponse `json:"paymentRedirectNoResponse,omitempty"`
	PaymentOnholdPartner           *PaymentOnholdPartner      `json:"paymentOnholdPartner,omitempty"`
	PaymentSuccess                 *PaymentSuccess            `json:"paymentSuccess,omitempty"`
	PaymentFailure                 *PaymentFailure            `json:"paymentFailure,omitempty"`
	PaymentSdkChallenge            *PaymentSdkChallenge       `json:"paymentSdkChallenge,omitempty"`
	ActiveWaiting                  *ActiveWaiting             `json:"activeWaiting,omitempty"`
}

// SessionInfo carries order and amount information on payment-methods
// responses. Field names on the wire carry the gateway's legacy prefix.
type SessionInfo struct {
	AmountSmallestUnit      int64  `json:"PaylineAmountSmallestUnit"`
	BuyerIP                 string `json:"PaylineBuyerIp,omitempty"`
	BuyerMobilePhone        string `json:"PaylineBuyerMobilePhone,omitempty"`
	CurrencyCode            string `json:"PaylineCurrencyCode"`
	CurrencyDigits          int32  `json:"PaylineCurrencyDigits"`
	FormattedAmount         string `json:"PaylineFormattedAmount"`
	FormattedOrderAmount    string `json:"PaylineFormattedOrderAmount"`
	MerchantCountry         string `json:"PaylineMerchantCountry"`
	OrderAmountSmallestUnit int64  `json:"PaylineOrderAmountSmallestUnit"`
	OrderDate               string `json:"PaylineOrderDate"`
	OrderRef                string `json:"PaylineOrderRef"`
}

// Amount converts the smallest-unit integer amount into a decimal value in
// currency units, e.g. 1050 with 2 currency digits is 10.50.
func (i *SessionInfo) Amount() decimal.Decimal {
	return decimal.New(i.AmountSmallestUnit, -i.CurrencyDigits)
}

// DisplayAmount renders the amount with its currency code, used when the
// gateway omits the preformatted string.
func (i *SessionInfo) DisplayAmount() string {
	if i.FormattedAmount != "" {
		return i.FormattedAmount
	}
	return i.Amount().StringFixed(i.CurrencyDigits) + " " + i.CurrencyCode
}

// PaymentRedirectNoResponse describes an off-SDK redirect.
type PaymentRedirectNoResponse struct {
	CardCode        string          `json:"cardCode"`
	ContractNumber  string          `json:"contractNumber"`
	RedirectionData RedirectionData `json:"redirectionData"`
	WalletCardIndex *int            `json:"walletCardIndex,omitempty"`
}

// RedirectionData is the redirect descriptor: target URL, HTTP method, field
// payload and the URL prefix marking redirect completion.
type RedirectionData struct {
	IsCompletionMethod bool              `json:"isCompletionMethod"`
	RequestType        string            `json:"requestType"`
	RequestURL         string            `json:"requestUrl"`
	TimeoutInMs        int               `json:"timeoutInMs"`
	RequestFields      map[string]string `json:"requestFields,omitempty"`
}

// PaymentOnholdPartner is a partner-displayed pending message.
type PaymentOnholdPartner struct {
	Message                *CustomMessage `json:"message,omitempty"`
	SelectedCardCode       string         `json:"selectedCardCode"`
	SelectedContractNumber string         `json:"selectedContractNumber"`
}

// ActiveWaiting is a poll descriptor requiring the client to re-poll until
// an asynchronous partner action completes.
type ActiveWaiting struct {
	NeedActiveWaitingAction bool           `json:"needActiveWaitingAction"`
	Message                 *CustomMessage `json:"message,omitempty"`
	CardCode                string         `json:"cardCode,omitempty"`
	ContractNumber          string         `json:"contractNumber,omitempty"`
	WalletCardIndex         *int           `json:"walletCardIndex,omitempty"`
	MerchantReturnURL       string         `json:"merchantReturnUrl,omitempty"`
}

// PaymentSdkChallenge carries opaque challenge parameters for the 3DS2
// authentication manager.
type PaymentSdkChallenge struct {
	SdkChallengeData SdkChallengeData `json:"sdkChallengeData"`
}

// PaymentSuccess is the terminal success payload: receipt lines and the
// selected method.
type PaymentSuccess struct {
	DisplayTicket          bool         `json:"displayTicket"`
	Fragmented             bool         `json:"fragmented"`
	PaymentCard            string       `json:"paymentCard,omitempty"`
	SelectedCardCode       string       `json:"selectedCardCode"`
	SelectedContractNumber string       `json:"selectedContractNumber"`
	Ticket                 []TicketLine `json:"ticket,omitempty"`
}

// TicketLine is one receipt line. Wire keys are single letters.
type TicketLine struct {
	Interline bool   `json:"i"`
	Key       string `json:"k,omitempty"`
	Style     string `json:"s,omitempty"`
	T         int    `json:"t"`
	Value     string `json:"v"`
}

// PaymentFailure is the terminal failure payload with a localized error.
type PaymentFailure struct {
	Message                CustomMessage `json:"message"`
	SelectedCardCode       string        `json:"selectedCardCode"`
	SelectedContractNumber string        `json:"selectedContractNumber"`
}

// CustomMessage is a server-localized message shown by the partner.
type CustomMessage struct {
	Type             string `json:"type"`
	LocalizedMessage string `json:"localizedMessage"`
	DisplayIcon      bool   `json:"displayIcon"`
}

var validate = validator.New()

// payload returns the non-nil payload pointers together with the session
// type each belongs to.
func (s *SessionState) payloads() map[SessionType]bool {
	present := map[SessionType]bool{}
	if s.PaymentMethodsList != nil {
		present[SessionTypePaymentMethods] = true
	}
	if s.PaymentRedirectNoResponse != nil {
		present[SessionTypeRedirection] = true
	}
	if s.PaymentOnholdPartner != nil {
		present[SessionTypePending] = true
	}
	if s.PaymentSuccess != nil {
		present[SessionTypeSuccess] = true
	}
	if s.PaymentFailure != nil {
		present[SessionTypeFailure] = true
	}
	if s.PaymentSdkChallenge != nil {
		present[SessionTypeSdkChallenge] = true
	}
	if s.ActiveWaiting != nil {
		present[SessionTypeActiveWaiting] = true
	}
	return present
}

// Validate checks required fields and that at most one payload is populated,
// matching the discriminant. Cancelled and token-expired states carry no
// payload.
func (s *SessionState) Validate() error {
	if err := validate.Struct(s); err != nil {
		return err
	}

	present := s.payloads()
	switch len(present) {
	case 0:
		switch s.Type {
		case SessionTypeCancelled, SessionTypeTokenExpired:
			return nil
		}
		return fmt.Errorf("session state of type [%s] is missing its payload", s.Type)
	case 1:
		if !present[s.Type] {
			return fmt.Errorf("session state payload does not match type [%s]", s.Type)
		}
		return nil
	default:
		return fmt.Errorf("session state of type [%s] carries %d payloads", s.Type, len(present))
	}
}
