// Package currency formats rupiah amounts for receipts, notifications
// and CSV exports.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount with Indonesian digit grouping,
// e.g. 18000 -> "Rp 18.000".
func FormatRupiah(amount int64) string {
	return printer.Sprintf("Rp %d", amount)
}
