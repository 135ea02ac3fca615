package builders

import (
	"testing"

	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/monext/checkout.sdk.go/config"
	"github.com/monext/checkout.sdk.go/gateway"
	"github.com/monext/checkout.sdk.go/models"
	"github.com/monext/checkout.sdk.go/validation"
)

const (
	testToken     = "1ok7AK2ML6JgYJVMI1521746021774476"
	testReturnURL = "https://homologation-payment.payline.com/v2?token=" + testToken
)

func cardMethods() []models.PaymentMethodData {
	return []models.PaymentMethodData{
		{
			CardCode:       models.CardCodeCB,
			ContractNumber: "1234",
			Options:        []string{models.OptionCVV, models.OptionExpirationDate, models.OptionCardHolder},
		},
	}
}

func validCardForm() *validation.CardForm {
	form := validation.NewCardForm(cardMethods())
	form.CardNumber = "4242424242424242"
	form.Expiry = "1230"
	form.CVV = "123"
	form.HolderName = "J Smith"
	form.SelectedNetwork = &models.CardNetwork{Network: "CB", Code: "CB"}
	return form
}

func contextData() *models.SDKContextData {
	return &models.SDKContextData{
		DeviceRenderingOptionsIF: "01",
		DeviceRenderOptionsUI:    "03",
		MaxTimeout:               60,
		ReferenceNumber:          "ref",
		EphemPubKey:              "P-256;EC;x;y",
		AppID:                    "app",
		TransID:                  "trans",
		EncData:                  "enc",
	}
}

func testBuilder(t *testing.T, mockCtrl *gomock.Controller) (*RequestBuilder, *gateway.MockClient) {
	cfg := config.DefaultConfig()
	cfg.ScreenHeight = 844
	cfg.ScreenWidth = 390
	cfg.ContainerHeight = 844
	cfg.ContainerWidth = 390
	client := gateway.NewMockClient(mockCtrl)
	return NewRequestBuilder(cfg, client), client
}

func TestUnitDeviceInfo(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Device fingerprint uses fixed and configured values", t, func() {
		builder, _ := testBuilder(t, mockCtrl)

		info := builder.DeviceInfo()
		So(info.ColorDepth, ShouldEqual, 32)
		So(info.JavaEnabled, ShouldBeFalse)
		So(info.ScreenHeight, ShouldEqual, 844)
		So(info.ScreenWidth, ShouldEqual, 390)
		So(info.ContainerHeight, ShouldEqual, 844)
		So(info.ContainerWidth, ShouldEqual, 390)
	})
}

func TestUnitSecuredCard(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Missing session token is rejected", t, func() {
		builder, _ := testBuilder(t, mockCtrl)
		req, err := builder.SecuredCard("", validCardForm(), contextData())
		So(req, ShouldBeNil)
		So(err, ShouldEqual, ErrSessionTokenMissing)
	})

	Convey("Invalid card form is rejected", t, func() {
		builder, _ := testBuilder(t, mockCtrl)
		form := validCardForm()
		form.CVV = "12"

		req, err := builder.SecuredCard(testToken, form, contextData())
		So(req, ShouldBeNil)
		So(err, ShouldEqual, ErrInvalidPaymentParameters)
	})

	Convey("Missing authentication context is rejected", t, func() {
		builder, _ := testBuilder(t, mockCtrl)
		req, err := builder.SecuredCard(testToken, validCardForm(), nil)
		So(req, ShouldBeNil)
		So(err, ShouldEqual, ErrInvalidPaymentParameters)
	})

	Convey("Valid form builds the full secured request", t, func() {
		builder, client := testBuilder(t, mockCtrl)
		client.EXPECT().ReturnURL(testToken).Return(testReturnURL)

		req, err := builder.SecuredCard(testToken, validCardForm(), contextData())
		So(err, ShouldBeNil)
		So(req.CardCode, ShouldEqual, models.CardCodeCB)
		So(req.ContractNumber, ShouldEqual, "1234")
		So(req.MerchantReturnURL, ShouldEqual, testReturnURL)
		So(req.IsEmbeddedRedirectionAllowed, ShouldBeTrue)
		So(req.PaymentParams.Network, ShouldEqual, "CB")
		So(req.PaymentParams.ExpirationDate, ShouldEqual, "1230")
		So(req.PaymentParams.HolderName, ShouldEqual, "J Smith")
		So(req.PaymentParams.SDKContextData, ShouldNotBeNil)
		So(req.SecuredPaymentParams.PAN, ShouldEqual, "4242424242424242")
		So(req.SecuredPaymentParams.CVV, ShouldEqual, "123")
		So(req.DeviceInfo.ColorDepth, ShouldEqual, 32)
	})

	Convey("Expiry separators are stripped from the wire value", t, func() {
		builder, client := testBuilder(t, mockCtrl)
		client.EXPECT().ReturnURL(testToken).Return(testReturnURL)
		form := validCardForm()
		form.Expiry = "1230"

		req, err := builder.SecuredCard(testToken, form, contextData())
		So(err, ShouldBeNil)
		So(req.PaymentParams.ExpirationDate, ShouldEqual, "1230")
	})
}

func TestUnitMethod(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	standardMethod := &models.PaymentMethodData{
		CardCode:       models.CardCodePayPal,
		ContractNumber: "5678",
		HasForm:        true,
		Form: &models.PaymentMethodForm{
			FormFields: []models.PaymentMethodFormField{
				{Key: "EMAIL", Required: true, Validation: &models.FieldValidation{Pattern: `\S+@\S+`}},
			},
		},
	}
	securedMethod := &models.PaymentMethodData{
		CardCode:       "SEPA",
		ContractNumber: "9999",
		HasForm:        true,
		Form: &models.PaymentMethodForm{
			FormFields: []models.PaymentMethodFormField{
				{Key: "IBAN", Required: true, Secured: true},
			},
		},
	}

	Convey("Form values failing validation are rejected", t, func() {
		builder, _ := testBuilder(t, mockCtrl)
		submission, err := builder.Method(testToken, standardMethod, false, map[string]string{"EMAIL": "not an email"})
		So(submission, ShouldBeNil)
		So(err, ShouldEqual, ErrInvalidPaymentParameters)
	})

	Convey("Standard method carries custom fields in payment params", t, func() {
		builder, client := testBuilder(t, mockCtrl)
		client.EXPECT().ReturnURL(testToken).Return(testReturnURL)

		submission, err := builder.Method(testToken, standardMethod, true, map[string]string{"EMAIL": "buyer@example.com"})
		So(err, ShouldBeNil)
		So(submission.Secured, ShouldBeNil)
		So(submission.Standard.CardCode, ShouldEqual, models.CardCodePayPal)
		So(submission.Standard.PaymentParams.SavePaymentData, ShouldBeTrue)
		So(submission.Standard.PaymentParams.CustomFields["EMAIL"], ShouldEqual, "buyer@example.com")
	})

	Convey("Secured method carries custom fields in secured params", t, func() {
		builder, client := testBuilder(t, mockCtrl)
		client.EXPECT().ReturnURL(testToken).Return(testReturnURL)

		submission, err := builder.Method(testToken, securedMethod, false, map[string]string{"IBAN": "FR7630001007941234567890185"})
		So(err, ShouldBeNil)
		So(submission.Standard, ShouldBeNil)
		So(submission.Secured.CardCode, ShouldEqual, "SEPA")
		So(submission.Secured.SecuredPaymentParams.CustomFields["IBAN"], ShouldNotBeEmpty)
		So(submission.Secured.PaymentParams.CustomFields, ShouldBeNil)
	})
}

func TestUnitApplePay(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	method := &models.PaymentMethodData{CardCode: models.CardCodeApplePay, ContractNumber: "777"}

	Convey("Missing token is rejected", t, func() {
		builder, _ := testBuilder(t, mockCtrl)
		req, err := builder.ApplePay(method, testReturnURL, nil)
		So(req, ShouldBeNil)
		So(err, ShouldEqual, ErrInvalidPaymentParameters)
	})

	Convey("Pay token rides in the payment params without embedded redirection", t, func() {
		builder, _ := testBuilder(t, mockCtrl)
		payToken := &models.ApplePayToken{TransactionIdentifier: "txn-1"}

		req, err := builder.ApplePay(method, testReturnURL, payToken)
		So(err, ShouldBeNil)
		So(req.IsEmbeddedRedirectionAllowed, ShouldBeFalse)
		So(req.PaymentParams.ApplePayToken, ShouldEqual, payToken)
		So(req.PaymentParams.SavePaymentData, ShouldBeFalse)
		So(req.MerchantReturnURL, ShouldEqual, testReturnURL)
	})
}

func TestUnitWallet(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	confirmWallet := &models.Wallet{
		CardCode: models.CardCodeCB,
		Index:    2,
		Confirm:  []string{models.OptionCVV},
	}

	Convey("Unselected wallet is rejected", t, func() {
		builder, _ := testBuilder(t, mockCtrl)
		req, err := builder.Wallet(testToken, nil, "", nil)
		So(req, ShouldBeNil)
		So(err, ShouldEqual, ErrWalletNotSelected)
	})

	Convey("Required confirmation CVV must be present and valid", t, func() {
		builder, _ := testBuilder(t, mockCtrl)

		req, err := builder.Wallet(testToken, confirmWallet, "", nil)
		So(req, ShouldBeNil)
		So(err, ShouldEqual, ErrWalletCvvMissing)

		req, err = builder.Wallet(testToken, confirmWallet, "12", nil)
		So(req, ShouldBeNil)
		So(err, ShouldEqual, ErrWalletCvvMissing)
	})

	Convey("Confirmed wallet payment carries the CVV", t, func() {
		builder, client := testBuilder(t, mockCtrl)
		client.EXPECT().ReturnURL(testToken).Return(testReturnURL)

		req, err := builder.Wallet(testToken, confirmWallet, "123", contextData())
		So(err, ShouldBeNil)
		So(req.CardCode, ShouldEqual, models.CardCodeCB)
		So(req.Index, ShouldEqual, 2)
		So(req.SecuredPaymentParams[models.OptionCVV], ShouldEqual, "123")
		So(req.PaymentParams.SDKContextData, ShouldNotBeNil)
	})

	Convey("Wallets without confirmation submit without secured params", t, func() {
		builder, client := testBuilder(t, mockCtrl)
		client.EXPECT().ReturnURL(testToken).Return(testReturnURL)
		wallet := &models.Wallet{CardCode: models.CardCodePayPal, Index: 0}

		req, err := builder.Wallet(testToken, wallet, "", nil)
		So(err, ShouldBeNil)
		So(req.SecuredPaymentParams, ShouldBeEmpty)
		So(req.PaymentParams.SDKContextData, ShouldBeNil)
	})
}
