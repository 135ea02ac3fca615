// Package validation implements card issuer detection, checksum and expiry
// rules, and schema-driven validation of server-described forms.
package validation

import (
	"regexp"

	"github.com/monext/checkout.sdk.go/models"
)

// Issuer enumerates the card networks this SDK can detect locally.
type Issuer int

// Known issuers. IssuerUnknown means no rule matched; the form stays invalid
// until an issuer resolves.
const (
	IssuerUnknown Issuer = iota
	Visa
	Mastercard
	Amex
)

var issuerNames = [...]string{
	"unknown",
	"visa",
	"mastercard",
	"amex",
}

func (i Issuer) String() string {
	return issuerNames[i]
}

// issuerRule couples an issuer's detection pattern with its accepted card
// number lengths and CVV length.
type issuerRule struct {
	issuer    Issuer
	pattern   *regexp.Regexp
	lengths   []int
	cvvLength int
	cardCodes []string
}

// Ordered table, first match wins.
var issuerRules = []issuerRule{
	{Visa, regexp.MustCompile(`^4`), []int{13, 16, 19}, 3, []string{models.CardCodeCB, models.CardCodeMCVisa}},
	{Mastercard, regexp.MustCompile(`^5[1-5]|^2[2-7]`), []int{16}, 3, []string{models.CardCodeCB, models.CardCodeMCVisa}},
	{Amex, regexp.MustCompile(`^3[47]`), []int{15}, 4, []string{models.CardCodeAmex}},
}

// issuerPrefixLength caps how much of the card number issuer detection ever
// inspects.
const issuerPrefixLength = 10

func (i Issuer) rule() *issuerRule {
	for idx := range issuerRules {
		if issuerRules[idx].issuer == i {
			return &issuerRules[idx]
		}
	}
	return nil
}

// LookupIssuer detects the issuer for a card number prefix. Only the first
// ten digits are inspected.
func LookupIssuer(cardNumber string) Issuer {
	prefix := cardNumber
	if len(prefix) > issuerPrefixLength {
		prefix = prefix[:issuerPrefixLength]
	}
	for _, r := range issuerRules {
		if r.pattern.MatchString(prefix) {
			return r.issuer
		}
	}
	return IssuerUnknown
}

// LookupWalletIssuer resolves an issuer from a stored wallet entry's card
// code rather than a number.
func LookupWalletIssuer(wallet *models.Wallet) Issuer {
	for _, r := range issuerRules {
		for _, code := range r.cardCodes {
			if code == wallet.CardCode {
				return r.issuer
			}
		}
	}
	return IssuerUnknown
}

// CorrespondingPaymentMethod pairs a detected issuer with the session's
// payment method carrying a card code the issuer routes through.
func (i Issuer) CorrespondingPaymentMethod(methods []models.PaymentMethodData) *models.PaymentMethodData {
	r := i.rule()
	if r == nil {
		return nil
	}
	for idx := range methods {
		if methods[idx].CardCode == "" {
			continue
		}
		for _, code := range r.cardCodes {
			if methods[idx].CardCode == code {
				return &methods[idx]
			}
		}
	}
	return nil
}

// PassesLuhn runs the Luhn checksum over a digit string: from the rightmost
// digit, double every second digit, subtract 9 from doubled values over 9,
// and require the sum to be a multiple of ten.
func PassesLuhn(cardNumber string) bool {
	if cardNumber == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(cardNumber) - 1; i >= 0; i-- {
		c := cardNumber[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// IsValidCardNumber reports whether the number matches the issuer's pattern,
// has an accepted length and passes the Luhn checksum.
func (i Issuer) IsValidCardNumber(cardNumber string) bool {
	r := i.rule()
	if r == nil || !r.pattern.MatchString(cardNumber) {
		return false
	}
	accepted := false
	for _, l := range r.lengths {
		if len(cardNumber) == l {
			accepted = true
			break
		}
	}
	return accepted && PassesLuhn(cardNumber)
}

// IsValidCVV requires an exact length match to the issuer's CVV length.
func (i Issuer) IsValidCVV(cvv string) bool {
	r := i.rule()
	if r == nil || len(cvv) != r.cvvLength {
		return false
	}
	for j := 0; j < len(cvv); j++ {
		if cvv[j] < '0' || cvv[j] > '9' {
			return false
		}
	}
	return true
}
