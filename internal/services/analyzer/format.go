package analyzer

import (
	"strconv"
	"strings"

	"finwatch/internal/models"
)

// formatAmount renders an amount as "SGD 1,234,567.89". Amounts are always
// positive, so no sign handling is needed.
func formatAmount(amount float64) string {
	raw := strconv.FormatFloat(amount, 'f', 2, 64)
	dot := strings.IndexByte(raw, '.')
	intPart, frac := raw[:dot], raw[dot:]

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	return models.DefaultCurrency + " " + b.String() + frac
}
