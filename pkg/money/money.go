// Package money converts between wire-format decimal rupees and the int64
// paise used everywhere internally. Balances and amounts never exist as
// floats past the API boundary.
package money

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidAmount = errors.New("invalid money amount")

// ToPaise converts a rupee value (like 150.00) to paise as int64 safely.
func ToPaise(rupees float64) (int64, error) {
	if math.IsNaN(rupees) || math.IsInf(rupees, 0) {
		return 0, ErrInvalidAmount
	}
	if rupees < 0 {
		return 0, ErrInvalidAmount
	}
	// int64 max is ~9.2e18, so cap rupees well below 9.2e16.
	if rupees > 9e16 {
		return 0, fmt.Errorf("%w: too large", ErrInvalidAmount)
	}
	return int64(math.Round(rupees * 100.0)), nil
}

// ToRupees converts paise back to a decimal rupee value for responses.
func ToRupees(paise int64) float64 {
	return float64(paise) / 100.0
}

// String formats paise as a plain decimal string without float arithmetic.
func String(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	return fmt.Sprintf("%s%d.%02d", sign, paise/100, paise%100)
}
