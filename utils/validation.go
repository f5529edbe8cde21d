// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var digitsOnly = regexp.MustCompile(`\D`)

// NormalizePhone strips everything but digits, producing the form the
// wa.me deep link expects.
func NormalizePhone(phone string) string {
	return digitsOnly.ReplaceAllString(phone, "")
}

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}
