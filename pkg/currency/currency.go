package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders an amount for display: rounded to a whole number of pesos,
// grouped with a period as the thousands separator and prefixed with "$",
// e.g. 1234567.89 -> "$1.234.568".
func Format(amount decimal.Decimal) string {
	digits := amount.Round(0).BigInt().String()

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString("$")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return b.String()
}
