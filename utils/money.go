// utils/money.go
package utils

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// ParseAmount accepts an amount typed with either decimal separator
// ("150,50" or "150.50") as well as the fully grouped pt-BR form
// ("1.234,50"). Unparseable input counts as zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		// A comma is always the decimal separator; periods are grouping.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatBRL renders an amount with a thousands separator, decimal comma and
// two fraction digits: 1234.5 -> "1.234,50".
func FormatBRL(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return brPrinter.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// RentalTotal computes days × daily rate for a rental period and returns the
// day count together with the formatted total. An incomplete period or a
// blank rate yields (0, "0,00").
func RentalTotal(start, end time.Time, dailyRate string) (int, string) {
	if strings.TrimSpace(dailyRate) == "" {
		return 0, "0,00"
	}
	days := RentalDays(start, end)
	if days == 0 {
		return 0, "0,00"
	}
	total := ParseAmount(dailyRate).Mul(decimal.NewFromInt(int64(days)))
	return days, FormatBRL(total)
}
