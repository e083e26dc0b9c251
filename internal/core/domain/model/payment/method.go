package payment

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Method identifies how a payment is settled.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// MethodCash settles immediately at the till.
	MethodCash

	// MethodCard settles through the in-process card simulation.
	MethodCard

	// MethodMobileMoney settles through an external gateway and stays pending
	// until the gateway confirms or fails it.
	MethodMobileMoney
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown:     "Unknown",
		MethodCash:        "cash",
		MethodCard:        "card",
		MethodMobileMoney: "mobile_money",
	}
}

// MethodFromString parses a payment method name ("cash", "card", "mobile_money").
func MethodFromString(s string) (Method, error) {
	for method, name := range getMethodStrings() {
		if method != MethodUnknown && name == s {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method", fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the Method value is valid.
func (m Method) Validate() error {
	if m != MethodCash && m != MethodCard && m != MethodMobileMoney {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the lowercase method name used in persistence and APIs.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// SettlesImmediately reports whether payments of this method complete at
// creation time rather than waiting for a confirmation.
func (m Method) SettlesImmediately() bool {
	return m == MethodCash
}
