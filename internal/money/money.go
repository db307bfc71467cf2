package money

import (
	"fmt"
	"math"
	"strings"

	"github.com/hance08/octopus/internal/constants"
	"github.com/hance08/octopus/internal/ledger"
	"github.com/shopspring/decimal"
)

var maxMinor = decimal.NewFromInt(math.MaxInt64)

// Parse converts a major-unit amount such as "150", "150.5" or "150.50" into
// minor units. Malformed input, more than MinorUnitDigits fractional digits,
// and values outside int64 are reported as ledger.ErrInvalidAmount.
func Parse(amountStr string) (int64, error) {
	s := strings.TrimSpace(amountStr)
	if s == "" {
		return 0, fmt.Errorf("%w: amount is required", ledger.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ledger.ErrInvalidAmount, s)
	}

	minor := d.Shift(constants.MinorUnitDigits)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("%w: %q has more than %d decimal places", ledger.ErrInvalidAmount, s, constants.MinorUnitDigits)
	}
	if minor.Abs().GreaterThan(maxMinor) {
		return 0, fmt.Errorf("%w: %q is too large", ledger.ErrInvalidAmount, s)
	}

	return minor.IntPart(), nil
}

// Format renders minor units as a fixed-point major-unit string.
func Format(minor int64) string {
	return formatDecimal(decimal.NewFromInt(minor))
}

// Sum adds minor-unit amounts exactly, past the int64 range if need be.
func Sum(amounts ...int64) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromInt(a))
	}
	return total
}

// FormatTotal sums amounts and renders the result with a currency code.
func FormatTotal(amounts []int64, currency string) string {
	return fmt.Sprintf("%s %s", formatDecimal(Sum(amounts...)), currency)
}

func formatDecimal(minor decimal.Decimal) string {
	return minor.Shift(-constants.MinorUnitDigits).StringFixed(constants.MinorUnitDigits)
}

func FormatWithCurrency(minor int64, currency string) string {
	return fmt.Sprintf("%s %s", Format(minor), currency)
}
