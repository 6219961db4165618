package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders an amount the way notification messages show money,
// e.g. 1500000 -> "Rp 1.500.000". Rupiah has no fractional unit in practice,
// so the amount is rounded to whole numbers first.
func FormatRupiah(amount decimal.Decimal) string {
	whole := amount.Round(0).String()

	neg := strings.HasPrefix(whole, "-")
	if neg {
		whole = whole[1:]
	}

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "Rp " + b.String()
	if neg {
		out = "-" + out
	}
	return out
}
