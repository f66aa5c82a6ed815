// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	phoneRegex    = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	plateRegex    = regexp.MustCompile(`^[A-Z]{3}[0-9][0-9A-Z][0-9]{2}$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	return phoneRegex.MatchString(cleaned)
}

// ValidateCpfCnpj accepts a CPF (11 digits) or CNPJ (14 digits), with or
// without the usual punctuation.
func ValidateCpfCnpj(doc string) bool {
	digits := nonDigitRegex.ReplaceAllString(doc, "")
	return len(digits) == 11 || len(digits) == 14
}

// ValidatePlate accepts both the legacy (ABC1234) and Mercosul (ABC1D23)
// Brazilian license plate formats.
func ValidatePlate(plate string) bool {
	cleaned := strings.ToUpper(strings.ReplaceAll(plate, "-", ""))
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	return plateRegex.MatchString(cleaned)
}
