// Package money renders amounts for people, using Vietnamese digit grouping.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const CurrencySuffix = "₫"

var printer = message.NewPrinter(language.Vietnamese)

// Group formats an amount with locale grouping, e.g. 150000 -> "150.000".
// Fractions are kept to two places only when present.
func Group(amount decimal.Decimal) string {
	if amount.IsInteger() {
		return printer.Sprintf("%d", amount.IntPart())
	}
	fixed := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + printer.Sprintf("%d", decimal.RequireFromString(whole).IntPart()) + "," + frac
}

// FormatVND formats an amount with grouping and the đồng suffix: "150.000₫".
func FormatVND(amount decimal.Decimal) string {
	return Group(amount) + CurrencySuffix
}
