// Package format renders metric values as display strings: currency amounts
// with the location symbol and English thousands grouping, USD amounts with
// a "$" prefix, and two-decimal rates.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Amount returns a whole currency amount with a leading symbol and thousands
// separators (e.g., "GBP 69,920").
func Amount(symbol string, amount float64) string {
	return symbol + " " + Number(amount)
}

// USD returns a whole USD amount prefixed with a dollar sign (e.g., "$88,675").
func USD(amount float64) string {
	return "$" + Number(amount)
}

// Number returns a number with thousands separators. Whole values print
// without decimals; fractional values keep one decimal place (billable-hour
// totals are the only fractional case).
func Number(amount float64) string {
	if amount == math.Trunc(amount) {
		return printer.Sprintf("%d", int64(amount))
	}
	return printer.Sprintf("%.1f", amount)
}

// Rate returns a two-decimal rate without separators (e.g., "68.73").
func Rate(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// Percent returns a two-decimal percentage with a "%" suffix.
func Percent(amount float64) string {
	return fmt.Sprintf("%.2f%%", amount)
}
