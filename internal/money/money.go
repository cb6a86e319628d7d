// Package money formats amounts for summaries and spreadsheet exports.
package money

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders amount with the symbol of the ISO 4217 currency code, rounded
// to the currency's standard number of decimals. Unknown codes are rendered as
// "<CODE> <amount>" with two decimals.
func Format(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %.2f", code, amount)
	}
	return printer.Sprint(currency.Symbol(unit.Amount(amount)))
}

// Code renders amount with the ISO code instead of the symbol, e.g. "ZAR 1,250.00"
func Code(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %.2f", code, amount)
	}
	return printer.Sprint(currency.ISO(unit.Amount(amount)))
}

// Valid reports whether code is a known ISO 4217 currency
func Valid(code string) bool {
	_, err := currency.ParseISO(strings.TrimSpace(code))
	return err == nil
}
