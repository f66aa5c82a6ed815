// utils/dates.go
package utils

import (
	"math"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ptUpper = cases.Upper(language.BrazilianPortuguese)

func upperPtBR(s string) string {
	return ptUpper.String(s)
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// RentalDays returns the inclusive day count of a rental period: a vehicle
// picked up and returned on the same date counts as 1 day. A zero-value
// start or end means no valid period and yields 0.
//
// The difference is taken as an absolute value, so a swapped pair produces
// the same count as the ordered pair; callers that care about ordering must
// validate start <= end before computing.
func RentalDays(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(float64(diff.Milliseconds()) / 86400000.0))
	return days + 1
}

// ParseDate parses a yyyy-mm-dd form value. Anything malformed yields the
// zero time instead of an error, mirroring how the forms treat bad input.
func ParseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatDateBR renders dd/mm/yyyy, or an empty string for the zero time.
func FormatDateBR(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

var monthsPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// LongDateBR renders the contract issue date in long form, with the month
// name upper-cased the way the legal documents print it: "28 de AGOSTO de 2026".
func LongDateBR(t time.Time) string {
	month := monthsPtBR[int(t.Month())-1]
	return t.Format("02") + " de " + upperPtBR(month) + " de " + t.Format("2006")
}
