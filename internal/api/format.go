package api

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var turkish = message.NewPrinter(language.Turkish)

// FormatNumber renders n with Turkish digit grouping, e.g. 7043 -> "7.043".
func FormatNumber(n int) string {
	return turkish.Sprintf("%d", n)
}

// FormatCurrency renders a whole lira amount, e.g. 1234.4 -> "₺1.234".
func FormatCurrency(amount float64) string {
	return "₺" + FormatNumber(int(math.Round(amount)))
}

// FormatPercentage renders value with one decimal place, e.g. 7.94 -> "%7.9".
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%%%.1f", value)
}
