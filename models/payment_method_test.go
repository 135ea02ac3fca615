package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func methodList() *PaymentMethodsList {
	return &PaymentMethodsList{
		PaymentMethodsData: []PaymentMethodData{
			{CardCode: CardCodeCB, ContractNumber: "1"},
			{CardCode: CardCodeApplePay, ContractNumber: "2"},
			{CardCode: CardCodeMCVisa, ContractNumber: "3"},
			{CardCode: CardCodePayPal, ContractNumber: "4", HasForm: true, Form: &PaymentMethodForm{}},
			{CardCode: "OBSCURE", ContractNumber: "5"},
		},
	}
}

func TestUnitPaymentMethodsGrouping(t *testing.T) {
	methods := methodList().PaymentMethods()

	// Cards collapse into one leading entry; the formless unknown method
	// is dropped.
	assert.Len(t, methods, 3)
	assert.Equal(t, MethodKindCards, methods[0].Kind)
	assert.Len(t, methods[0].Cards, 2)
	assert.Equal(t, MethodKindApplePay, methods[1].Kind)
	assert.Equal(t, MethodKindAlternative, methods[2].Kind)
	assert.Equal(t, CardCodePayPal, methods[2].Data.CardCode)
}

func TestUnitSelectablePaymentMethods(t *testing.T) {
	selectable := methodList().SelectablePaymentMethods()

	assert.Len(t, selectable, 2)
	for _, m := range selectable {
		assert.NotEqual(t, MethodKindApplePay, m.Kind)
	}
}

func TestUnitPaymentMethodPredicates(t *testing.T) {
	card := PaymentMethodData{CardCode: CardCodeAmex, Options: []string{OptionCVV}}
	assert.True(t, card.IsCard())
	assert.True(t, card.HasOption(OptionCVV))
	assert.False(t, card.HasOption(OptionCardHolder))
	assert.False(t, card.IsSecured())

	secured := PaymentMethodData{
		CardCode: "SEPA",
		Form: &PaymentMethodForm{
			FormFields: []PaymentMethodFormField{{Key: "IBAN", Secured: true}},
		},
	}
	assert.False(t, secured.IsCard())
	assert.True(t, secured.IsSecured())
}

func TestUnitWalletRequiresCVV(t *testing.T) {
	assert.True(t, (&Wallet{Confirm: []string{OptionCVV}}).RequiresCVV())
	assert.False(t, (&Wallet{Confirm: []string{"OTHER"}}).RequiresCVV())
	assert.False(t, (&Wallet{}).RequiresCVV())
}
