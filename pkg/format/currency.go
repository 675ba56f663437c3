// Package format renders currency and percentage values for display.
package format

import (
	"fmt"
	"math"
	"strings"
)

// CurrencySuffix is appended to formatted amounts. Bank exports consumed by
// this application are denominated in złoty.
const CurrencySuffix = " zł"

// Currency returns a currency string with thousands separators and the
// currency suffix (e.g., "-1,234.56 zł").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-" + formatted + CurrencySuffix
	}
	return formatted + CurrencySuffix
}

// Percent returns a whole-number percentage string (e.g., "45%").
func Percent(percent int) string {
	return fmt.Sprintf("%d%%", percent)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
