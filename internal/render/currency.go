package render

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	cnyPrinter = message.NewPrinter(language.SimplifiedChinese)

	// cnySymbol is the CLDR narrow symbol so the prefix stays ¥ under any locale.
	cnySymbol = cnyPrinter.Sprint(currency.NarrowSymbol(currency.CNY))
)

// FormatCurrency formats v as a CNY amount with zh-CN digit grouping and no
// fraction digits, e.g. ¥4,000 or -¥1,250.
//
// currency.Amount always renders the standard two fraction digits after a
// space, so only the symbol comes from the currency tables.
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return cnySymbol + "-"
	}
	rounded := math.Round(v)
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	return sign + cnySymbol + cnyPrinter.Sprint(number.Decimal(rounded, number.MaxFractionDigits(0)))
}
