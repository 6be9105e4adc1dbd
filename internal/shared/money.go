package shared

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders a monetary value as a whole-unit amount with the
// currency code, e.g. "KWD 1,250". Display formatting is a collaborator
// concern; the engines themselves only deal in raw numbers.
func FormatAmount(currency string, amount float64) string {
	whole := math.Round(Finite(amount))
	return printer.Sprintf("%s %v", currency, number.Decimal(whole, number.MaxFractionDigits(0)))
}
