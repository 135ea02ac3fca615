package validation

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/monext/checkout.sdk.go/models"
)

func TestUnitLookupIssuer(t *testing.T) {
	Convey("Prefixes detect their issuer", t, func() {
		So(LookupIssuer("4242424242424242"), ShouldEqual, Visa)
		So(LookupIssuer("4"), ShouldEqual, Visa)
		So(LookupIssuer("5500005555555559"), ShouldEqual, Mastercard)
		So(LookupIssuer("2221000000000009"), ShouldEqual, Mastercard)
		So(LookupIssuer("340000000000009"), ShouldEqual, Amex)
		So(LookupIssuer("370000000000002"), ShouldEqual, Amex)
	})

	Convey("Unmatched prefixes stay unknown", t, func() {
		So(LookupIssuer(""), ShouldEqual, IssuerUnknown)
		So(LookupIssuer("9999999999999999"), ShouldEqual, IssuerUnknown)
		So(LookupIssuer("6011000000000004"), ShouldEqual, IssuerUnknown)
		So(LookupIssuer("5600000000000000"), ShouldEqual, IssuerUnknown)
		So(LookupIssuer("2800000000000000"), ShouldEqual, IssuerUnknown)
	})

	Convey("Detection only ever reads the first ten digits", t, func() {
		// Digits beyond the cap cannot change the match.
		So(LookupIssuer("5500005555"+"4444444444"), ShouldEqual, Mastercard)
	})
}

func TestUnitLookupWalletIssuer(t *testing.T) {
	Convey("Wallet card codes resolve through the issuer table", t, func() {
		So(LookupWalletIssuer(&models.Wallet{CardCode: models.CardCodeCB}), ShouldEqual, Visa)
		So(LookupWalletIssuer(&models.Wallet{CardCode: models.CardCodeMCVisa}), ShouldEqual, Visa)
		So(LookupWalletIssuer(&models.Wallet{CardCode: models.CardCodeAmex}), ShouldEqual, Amex)
		So(LookupWalletIssuer(&models.Wallet{CardCode: models.CardCodePayPal}), ShouldEqual, IssuerUnknown)
	})
}

func TestUnitCorrespondingPaymentMethod(t *testing.T) {
	methods := []models.PaymentMethodData{
		{CardCode: models.CardCodePayPal},
		{CardCode: models.CardCodeMCVisa, ContractNumber: "77"},
		{CardCode: models.CardCodeAmex, ContractNumber: "88"},
	}

	Convey("Issuers pair with the first method carrying a routable code", t, func() {
		So(Visa.CorrespondingPaymentMethod(methods).ContractNumber, ShouldEqual, "77")
		So(Mastercard.CorrespondingPaymentMethod(methods).ContractNumber, ShouldEqual, "77")
		So(Amex.CorrespondingPaymentMethod(methods).ContractNumber, ShouldEqual, "88")
	})

	Convey("Unknown issuers and empty method lists pair with nothing", t, func() {
		So(IssuerUnknown.CorrespondingPaymentMethod(methods), ShouldBeNil)
		So(Visa.CorrespondingPaymentMethod(nil), ShouldBeNil)
	})
}

func TestUnitPassesLuhn(t *testing.T) {
	Convey("Valid checksums pass", t, func() {
		So(PassesLuhn("4242424242424242"), ShouldBeTrue)
		So(PassesLuhn("340000000000009"), ShouldBeTrue)
		So(PassesLuhn("5555555555554444"), ShouldBeTrue)
	})

	Convey("Broken checksums and non-digits fail", t, func() {
		So(PassesLuhn("4242424242424241"), ShouldBeFalse)
		So(PassesLuhn("424242424242424a"), ShouldBeFalse)
		So(PassesLuhn(""), ShouldBeFalse)
	})
}

func randomDigits(rng *rand.Rand, length int) string {
	digits := make([]byte, length)
	for i := range digits {
		digits[i] = byte('0' + rng.Intn(10))
	}
	return string(digits)
}

// luhnCheckDigit computes the digit that makes prefix+digit pass the
// checksum. The rightmost prefix digit sits in a doubled position once the
// check digit is appended.
func luhnCheckDigit(prefix string) byte {
	sum := 0
	double := true
	for i := len(prefix) - 1; i >= 0; i-- {
		d := int(prefix[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return byte('0' + (10-sum%10)%10)
}

func TestUnitLuhnRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	Convey("Appending the computed check digit always yields a valid number", t, func() {
		for i := 0; i < 100; i++ {
			prefix := randomDigits(rng, 12+rng.Intn(7))
			So(PassesLuhn(prefix+string(luhnCheckDigit(prefix))), ShouldBeTrue)
		}
	})

	Convey("Changing any single digit breaks the checksum", t, func() {
		for i := 0; i < 20; i++ {
			prefix := randomDigits(rng, 15)
			number := prefix + string(luhnCheckDigit(prefix))
			for pos := 0; pos < len(number); pos++ {
				mutated := []byte(number)
				mutated[pos] = '0' + (mutated[pos]-'0'+1)%10
				So(PassesLuhn(string(mutated)), ShouldBeFalse)
			}
		}
	})
}

func TestUnitIsValidCardNumber(t *testing.T) {
	Convey("Pattern, length and checksum must all hold", t, func() {
		So(Visa.IsValidCardNumber("4242424242424242"), ShouldBeTrue)
		So(Amex.IsValidCardNumber("340000000000009"), ShouldBeTrue)
		So(Mastercard.IsValidCardNumber("5555555555554444"), ShouldBeTrue)

		// Wrong issuer for the number.
		So(Visa.IsValidCardNumber("5555555555554444"), ShouldBeFalse)
		// Right prefix, unsupported length.
		So(Visa.IsValidCardNumber("42424242424242"), ShouldBeFalse)
		// Right prefix and length, bad checksum.
		So(Visa.IsValidCardNumber("4242424242424241"), ShouldBeFalse)
		So(IssuerUnknown.IsValidCardNumber("4242424242424242"), ShouldBeFalse)
	})
}

func TestUnitIsValidCVV(t *testing.T) {
	Convey("CVV length follows the issuer", t, func() {
		So(Visa.IsValidCVV("123"), ShouldBeTrue)
		So(Visa.IsValidCVV("1234"), ShouldBeFalse)
		So(Amex.IsValidCVV("1234"), ShouldBeTrue)
		So(Amex.IsValidCVV("123"), ShouldBeFalse)
		So(Mastercard.IsValidCVV("12a"), ShouldBeFalse)
		So(IssuerUnknown.IsValidCVV("123"), ShouldBeFalse)
	})
}
