package validation

import (
	"time"

	"github.com/monext/checkout.sdk.go/models"
)

// CardForm holds the transient card input for the active form session: raw
// digit strings plus the detected issuer and selected network. It is owned
// by one form session and discarded when the method selection changes.
type CardForm struct {
	CardNumber      string
	Expiry          string
	CVV             string
	HolderName      string
	SaveCard        bool
	SelectedNetwork *models.CardNetwork

	methods []models.PaymentMethodData
	now     func() time.Time
}

// NewCardForm creates a form bound to the session's card methods.
func NewCardForm(methods []models.PaymentMethodData) *CardForm {
	return &CardForm{
		methods: methods,
		now:     time.Now,
	}
}

// Issuer detects the issuer from the current card number.
func (f *CardForm) Issuer() Issuer {
	return LookupIssuer(f.CardNumber)
}

// DerivedPaymentMethod pairs the detected issuer with the session method it
// routes through. Nil until an issuer resolves to a known method.
func (f *CardForm) DerivedPaymentMethod() *models.PaymentMethodData {
	return f.Issuer().CorrespondingPaymentMethod(f.methods)
}

// Reset clears all input, e.g. when the form is dismissed.
func (f *CardForm) Reset() {
	f.CardNumber = ""
	f.Expiry = ""
	f.CVV = ""
	f.HolderName = ""
	f.SaveCard = false
	f.SelectedNetwork = nil
}

// Valid reports aggregate form validity: every option the derived method
// declares must be individually valid, and the issuer/method pairing must
// exist.
func (f *CardForm) Valid() bool {
	issuer := f.Issuer()
	if issuer == IssuerUnknown {
		return false
	}
	method := issuer.CorrespondingPaymentMethod(f.methods)
	if method == nil {
		return false
	}

	if method.HasOption(models.OptionCVV) && !issuer.IsValidCVV(f.CVV) {
		return false
	}
	if method.HasOption(models.OptionExpirationDate) && !IsValidExpiry(f.Expiry, f.now()) {
		return false
	}
	if method.HasOption(models.OptionCardHolder) && f.HolderName == "" {
		return false
	}

	return issuer.IsValidCardNumber(f.CardNumber)
}

// LookupPrefix returns the number prefix used for co-badged network lookups:
// at most ten digits, and empty below the six-digit lookup threshold.
func (f *CardForm) LookupPrefix() string {
	if len(f.CardNumber) < 6 {
		return ""
	}
	if len(f.CardNumber) > issuerPrefixLength {
		return f.CardNumber[:issuerPrefixLength]
	}
	return f.CardNumber
}

// NetworkCode is the selected co-badged network code, empty when the
// gateway's default should apply.
func (f *CardForm) NetworkCode() string {
	if f.SelectedNetwork == nil {
		return ""
	}
	return f.SelectedNetwork.Code
}

// WalletCVVValid checks a wallet confirmation CVV against the wallet card
// code's issuer rule. Wallets that do not require confirmation are always
// valid.
func WalletCVVValid(wallet *models.Wallet, cvv string) bool {
	if !wallet.RequiresCVV() {
		return true
	}
	issuer := LookupWalletIssuer(wallet)
	if issuer == IssuerUnknown {
		return cvv != ""
	}
	return issuer.IsValidCVV(cvv)
}
