package menu

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// PrepArea identifies the station responsible for producing a menu item.
type PrepArea int

const (
	// PrepAreaUnknown represents an invalid or undefined preparation area.
	// This value (0) helps catch uninitialized PrepArea values.
	PrepAreaUnknown PrepArea = iota

	// PrepAreaKitchen routes items to the kitchen station.
	PrepAreaKitchen

	// PrepAreaBar routes items to the bar station.
	PrepAreaBar
)

func getPrepAreaStrings() map[PrepArea]string {
	return map[PrepArea]string{
		PrepAreaUnknown: "Unknown",
		PrepAreaKitchen: "kitchen",
		PrepAreaBar:     "bar",
	}
}

func getValidPrepAreaStrings() map[PrepArea]string {
	//nolint:exhaustive // PrepAreaUnknown is intentionally excluded as it's invalid
	return map[PrepArea]string{
		PrepAreaKitchen: "kitchen",
		PrepAreaBar:     "bar",
	}
}

// PrepAreaFromString parses a preparation area name ("kitchen" or "bar").
func PrepAreaFromString(s string) (PrepArea, error) {
	for area, name := range getValidPrepAreaStrings() {
		if name == s {
			return area, nil
		}
	}
	return PrepAreaUnknown, errs.NewValueIsInvalidErrorWithCause(
		"prep area", fmt.Errorf("%q is not a valid preparation area", s))
}

// Validate checks if the PrepArea value is valid.
func (a PrepArea) Validate() error {
	if _, ok := getValidPrepAreaStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"prep area", fmt.Errorf("%d is not a valid preparation area", a))
	}
	return nil
}

// String returns the lowercase station name used in persistence and APIs.
func (a PrepArea) String() string {
	if str, ok := getPrepAreaStrings()[a]; ok {
		return str
	}
	return "Unknown"
}
