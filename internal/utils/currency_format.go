package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount for display with the group's currency
// code: zero decimal places and thousands separators.
// Example: FormatCurrency(decimal.NewFromInt(1250500), "UGX") -> "UGX 1,250,500".
func FormatCurrency(amount decimal.Decimal, code string) string {
	rounded := amount.Round(0)

	digits := rounded.Abs().String()
	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}

	if code == "" {
		return b.String()
	}
	return code + " " + b.String()
}
