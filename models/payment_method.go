package models

// Card codes with dedicated handling. Every other code is an alternative
// method described by its server-driven form.
const (
	CardCodeCB       = "CB"
	CardCodeMCVisa   = "MCVISA"
	CardCodeAmex     = "AMEX"
	CardCodeApplePay = "APPLE_PAY"
	CardCodePayPal   = "PAYPAL"
)

// Option keys a payment method may declare on its card form.
const (
	OptionCVV                = "CVV"
	OptionAlternativeNetwork = "ALT_NETWORK"
	OptionExpirationDate     = "EXPI_DATE"
	OptionCardHolder         = "HOLDER"
	OptionSaveCard           = "SAVE_PAYMENT_DATA"
)

// PaymentMethodsList is the payload of a PAYMENT_METHODS_LIST session state.
type PaymentMethodsList struct {
	IsOriginalCreditTransfer bool                `json:"isOriginalCreditTransfer"`
	NeedsDeviceFingerprint   bool                `json:"needsDeviceFingerprint"`
	PaymentMethodsData       []PaymentMethodData `json:"paymentMethods"`
	SensitiveContentMasked   bool                `json:"sensitiveInputContentMasked"`
	Wallets                  []Wallet            `json:"wallets"`
}

// PaymentMethodData is one selectable method as described by the server.
// Read-only once decoded.
type PaymentMethodData struct {
	CardCode       string             `json:"cardCode,omitempty"`
	ContractNumber string             `json:"contractNumber,omitempty"`
	Disabled       bool               `json:"disabled,omitempty"`
	HasForm        bool               `json:"hasForm,omitempty"`
	Form           *PaymentMethodForm `json:"form,omitempty"`
	IsIsolated     bool               `json:"isIsolated,omitempty"`
	Options        []string           `json:"options,omitempty"`
	AdditionalData AdditionalData     `json:"additionalData"`
	State          string             `json:"state,omitempty"`
}

// IsCard reports whether the method belongs to the hardcoded card group.
func (p *PaymentMethodData) IsCard() bool {
	switch p.CardCode {
	case CardCodeCB, CardCodeMCVisa, CardCodeAmex:
		return true
	}
	return false
}

// IsSecured reports whether the method requires the secured submission path:
// its declared form contains at least one field marked secured.
func (p *PaymentMethodData) IsSecured() bool {
	if p.Form == nil {
		return false
	}
	for _, f := range p.Form.FormFields {
		if f.Secured {
			return true
		}
	}
	return false
}

// HasOption reports whether the method declares the given form option.
func (p *PaymentMethodData) HasOption(key string) bool {
	for _, o := range p.Options {
		if o == key {
			return true
		}
	}
	return false
}

// PaymentMethodForm is a server-described form for alternative methods.
type PaymentMethodForm struct {
	DisplayButton bool                     `json:"displayButton"`
	Description   string                   `json:"description,omitempty"`
	ButtonText    string                   `json:"buttonText,omitempty"`
	FormFields    []PaymentMethodFormField `json:"formFields,omitempty"`
	FormType      string                   `json:"formType,omitempty"`
}

// PaymentMethodFormField is one field of a server-described form.
type PaymentMethodFormField struct {
	Content                string           `json:"content,omitempty"`
	FormFieldType          string           `json:"formFieldType,omitempty"`
	ValidationErrorMessage string           `json:"validationErrorMessage,omitempty"`
	Placeholder            string           `json:"placeholder,omitempty"`
	Key                    string           `json:"key,omitempty"`
	Label                  string           `json:"label,omitempty"`
	Required               bool             `json:"required,omitempty"`
	RequiredErrorMessage   string           `json:"requiredErrorMessage,omitempty"`
	Secured                bool             `json:"secured,omitempty"`
	Disabled               bool             `json:"disabled,omitempty"`
	Validation             *FieldValidation `json:"validation,omitempty"`
}

// FieldValidation carries the optional regex pattern of a form field.
type FieldValidation struct {
	Pattern string `json:"pattern,omitempty"`
}

// AdditionalData carries method- or wallet-specific extras. Wire keys are
// uppercase.
type AdditionalData struct {
	Networks             []string `json:"NETWORKS,omitempty"`
	ApplePayMerchantID   string   `json:"APPLE_PAY_MERCHANT_ID,omitempty"`
	ApplePayMerchantName string   `json:"APPLE_PAY_MERCHANT_NAME,omitempty"`
	SavePaymentChecked   bool     `json:"SAVE_PAYMENT_DATA_CHECKED,omitempty"`
	Email                string   `json:"EMAIL,omitempty"`
	Date                 string   `json:"DATE,omitempty"`
	Holder               string   `json:"HOLDER,omitempty"`
	PAN                  string   `json:"PAN,omitempty"`
}

// Wallet is one stored payment instrument attached to the buyer.
type Wallet struct {
	AdditionalData    AdditionalData `json:"additionalData"`
	CardCode          string         `json:"cardCode"`
	CardType          string         `json:"cardType"`
	Confirm           []string       `json:"confirm"`
	ExpiredMore6M     bool           `json:"expiredMore6Months"`
	Index             int            `json:"index"`
	IsDefault         bool           `json:"isDefault"`
	IsExpired         bool           `json:"isExpired"`
	Options           []string       `json:"options,omitempty"`
	HasSpecificScreen bool           `json:"hasSpecificDisplay"`
}

// RequiresCVV reports whether paying with this wallet entry needs a fresh
// CVV confirmation.
func (w *Wallet) RequiresCVV() bool {
	for _, c := range w.Confirm {
		if c == OptionCVV {
			return true
		}
	}
	return false
}

// PaymentMethodKind discriminates the closed set of method shapes consumers
// switch over.
type PaymentMethodKind int

const (
	// MethodKindCards groups every hardcoded card method into one entry.
	MethodKindCards PaymentMethodKind = iota

	// MethodKindApplePay is the wallet-like native pay method.
	MethodKindApplePay

	// MethodKindAlternative is a server-described form method.
	MethodKindAlternative
)

// PaymentMethod is the closed union over method shapes. Cards is populated
// for MethodKindCards, Data for the other kinds.
type PaymentMethod struct {
	Kind  PaymentMethodKind
	Cards []PaymentMethodData
	Data  *PaymentMethodData
}

// PaymentMethods groups the raw method list: all card methods collapse into
// a single leading Cards entry; Apple Pay and form-bearing alternative
// methods become individual entries; anything else is dropped.
func (l *PaymentMethodsList) PaymentMethods() []PaymentMethod {
	var group []PaymentMethod
	var cards []PaymentMethodData

	for i := range l.PaymentMethodsData {
		pm := l.PaymentMethodsData[i]
		if pm.IsCard() {
			cards = append(cards, pm)
			continue
		}
		switch {
		case pm.CardCode == CardCodeApplePay:
			group = append(group, PaymentMethod{Kind: MethodKindApplePay, Data: &l.PaymentMethodsData[i]})
		case pm.HasForm:
			group = append(group, PaymentMethod{Kind: MethodKindAlternative, Data: &l.PaymentMethodsData[i]})
		}
	}

	if len(cards) > 0 {
		group = append([]PaymentMethod{{Kind: MethodKindCards, Cards: cards}}, group...)
	}
	return group
}

// SelectablePaymentMethods filters out methods that cannot be selected from
// the method list itself (Apple Pay has its own dedicated entry point).
func (l *PaymentMethodsList) SelectablePaymentMethods() []PaymentMethod {
	all := l.PaymentMethods()
	selectable := all[:0]
	for _, pm := range all {
		if pm.Kind != MethodKindApplePay {
			selectable = append(selectable, pm)
		}
	}
	return selectable
}
