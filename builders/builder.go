// Package builders assembles the gateway payment request shapes from
// validated form input. Builders never talk to the network; callers submit
// the returned requests through the gateway client.
package builders

import (
	"strings"
	"time"

	"github.com/monext/checkout.sdk.go/config"
	"github.com/monext/checkout.sdk.go/gateway"
	"github.com/monext/checkout.sdk.go/models"
	"github.com/monext/checkout.sdk.go/validation"
)

// deviceColorDepth is fixed: there is no portable color depth probe.
const deviceColorDepth = 32

// RequestBuilder builds payment requests for one configured environment.
type RequestBuilder struct {
	cfg    *config.Config
	client gateway.Client
	now    func() time.Time
}

// NewRequestBuilder returns a builder using the client's return URL scheme.
func NewRequestBuilder(cfg *config.Config, client gateway.Client) *RequestBuilder {
	return &RequestBuilder{
		cfg:    cfg,
		client: client,
		now:    time.Now,
	}
}

// DeviceInfo builds the device fingerprint attached to secured requests.
// The timezone offset is in minutes, rounded down.
func (b *RequestBuilder) DeviceInfo() models.DeviceInfo {
	_, offsetSeconds := b.now().Zone()
	offsetMinutes := offsetSeconds / 60
	if offsetSeconds%60 != 0 && offsetSeconds < 0 {
		offsetMinutes--
	}

	return models.DeviceInfo{
		ColorDepth:      deviceColorDepth,
		ContainerHeight: b.cfg.ContainerHeight,
		ContainerWidth:  b.cfg.ContainerWidth,
		JavaEnabled:     false,
		ScreenHeight:    b.cfg.ScreenHeight,
		ScreenWidth:     b.cfg.ScreenWidth,
		TimeZoneOffset:  offsetMinutes,
	}
}

// SecuredCard builds the secured submission for a validated card form. The
// authentication context is mandatory here: a card payment must never reach
// the gateway without its 3DS context.
func (b *RequestBuilder) SecuredCard(token string, form *validation.CardForm, contextData *models.SDKContextData) (*models.SecuredPaymentRequest, error) {
	if token == "" {
		return nil, ErrSessionTokenMissing
	}
	if form == nil || !form.Valid() {
		return nil, ErrInvalidPaymentParameters
	}
	method := form.DerivedPaymentMethod()
	if method == nil {
		return nil, ErrInvalidPaymentParameters
	}
	if contextData == nil {
		return nil, ErrInvalidPaymentParameters
	}

	return &models.SecuredPaymentRequest{
		CardCode:                     method.CardCode,
		ContractNumber:               method.ContractNumber,
		DeviceInfo:                   b.DeviceInfo(),
		IsEmbeddedRedirectionAllowed: true,
		MerchantReturnURL:            b.client.ReturnURL(token),
		PaymentParams: models.PaymentParams{
			Network:         form.NetworkCode(),
			ExpirationDate:  digitsOnly(form.Expiry),
			SavePaymentData: form.SaveCard,
			HolderName:      form.HolderName,
			SDKContextData:  contextData,
		},
		SecuredPaymentParams: models.SecuredPaymentParams{
			PAN: form.CardNumber,
			CVV: form.CVV,
		},
	}, nil
}

// MethodSubmission is the build result for a selected method: standard or
// secured, depending on whether the method's form declares secured fields.
type MethodSubmission struct {
	Standard *models.PaymentRequest
	Secured  *models.SecuredPaymentRequest
}

// Method builds the submission for an alternative (server-described) method.
// Form values must satisfy the method's declared validation patterns. For
// secured methods the custom fields travel in the secured parameters, for
// standard methods in the payment parameters.
func (b *RequestBuilder) Method(token string, method *models.PaymentMethodData, saveCard bool, formValues map[string]string) (*MethodSubmission, error) {
	if token == "" {
		return nil, ErrSessionTokenMissing
	}
	if method == nil {
		return nil, ErrInvalidPaymentParameters
	}
	if !validation.FormValuesValid(method.Form, formValues) {
		return nil, ErrInvalidPaymentParameters
	}

	if method.IsSecured() {
		return &MethodSubmission{
			Secured: &models.SecuredPaymentRequest{
				CardCode:                     method.CardCode,
				ContractNumber:               method.ContractNumber,
				DeviceInfo:                   b.DeviceInfo(),
				IsEmbeddedRedirectionAllowed: true,
				MerchantReturnURL:            b.client.ReturnURL(token),
				PaymentParams: models.PaymentParams{
					SavePaymentData: saveCard,
				},
				SecuredPaymentParams: models.SecuredPaymentParams{
					CustomFields: formValues,
				},
			},
		}, nil
	}

	return &MethodSubmission{
		Standard: &models.PaymentRequest{
			CardCode:                     method.CardCode,
			ContractNumber:               method.ContractNumber,
			MerchantReturnURL:            b.client.ReturnURL(token),
			IsEmbeddedRedirectionAllowed: true,
			PaymentParams: models.PaymentParams{
				SavePaymentData: saveCard,
				CustomFields:    formValues,
			},
		},
	}, nil
}

// ApplePay builds the standard submission carrying a native pay token. The
// return URL comes from the session state, and embedded redirection is off:
// the wallet sheet owns the flow end.
func (b *RequestBuilder) ApplePay(method *models.PaymentMethodData, returnURL string, token *models.ApplePayToken) (*models.PaymentRequest, error) {
	if method == nil || token == nil {
		return nil, ErrInvalidPaymentParameters
	}

	return &models.PaymentRequest{
		CardCode:                     method.CardCode,
		ContractNumber:               method.ContractNumber,
		MerchantReturnURL:            returnURL,
		IsEmbeddedRedirectionAllowed: false,
		PaymentParams: models.PaymentParams{
			SavePaymentData: false,
			ApplePayToken:   token,
		},
	}, nil
}

// Wallet builds the submission paying with a stored wallet entry. Wallets
// whose confirm list requires a CVV must supply a valid one; the
// authentication context is optional since not every wallet card
// authenticates natively.
func (b *RequestBuilder) Wallet(token string, wallet *models.Wallet, cvv string, contextData *models.SDKContextData) (*models.WalletPaymentRequest, error) {
	if token == "" {
		return nil, ErrSessionTokenMissing
	}
	if wallet == nil {
		return nil, ErrWalletNotSelected
	}
	if wallet.RequiresCVV() && cvv == "" {
		return nil, ErrWalletCvvMissing
	}
	if !validation.WalletCVVValid(wallet, cvv) {
		return nil, ErrWalletCvvMissing
	}

	securedParams := map[string]string{}
	if cvv != "" {
		securedParams[models.OptionCVV] = cvv
	}

	return &models.WalletPaymentRequest{
		CardCode:                     wallet.CardCode,
		Index:                        wallet.Index,
		IsEmbeddedRedirectionAllowed: true,
		MerchantReturnURL:            b.client.ReturnURL(token),
		PaymentParams: models.PaymentParams{
			SDKContextData: contextData,
		},
		SecuredPaymentParams: securedParams,
	}, nil
}

func digitsOnly(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out.WriteByte(s[i])
		}
	}
	return out.String()
}
