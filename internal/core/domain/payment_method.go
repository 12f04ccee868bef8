package domain

import (
	"fmt"
	"strings"
)

// PaymentMethod labels a tendered amount. It carries no behavior.
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodOther      PaymentMethod = "other"
)

// PaymentMethods lists every accepted method in display order.
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCreditCard,
	PaymentMethodDebitCard,
	PaymentMethodPix,
	PaymentMethodOther,
}

// IsValid reports whether p is one of the known methods.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodPix, PaymentMethodOther:
		return true
	}
	return false
}

// ParsePaymentMethod normalizes case and surrounding space.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	p := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: unknown payment method %q", ErrInvalidArgument, s)
	}
	return p, nil
}
