package utils

import (
	"regexp"
	"strings"
)

var nonDigitRe = regexp.MustCompile(`\D`)

// NormalizePhoneNumber strips formatting and country prefixes down to the
// bare 10-digit Indian mobile number used for storage and wa.me links.
func NormalizePhoneNumber(phone string) string {
	digits := nonDigitRe.ReplaceAllString(phone, "")

	// Strip "+91" / "91" / leading zero variants.
	if len(digits) == 12 && strings.HasPrefix(digits, "91") {
		digits = digits[2:]
	}
	if len(digits) == 11 && strings.HasPrefix(digits, "0") {
		digits = digits[1:]
	}
	return digits
}

// IsValidMobile reports whether phone normalizes to a valid 10-digit Indian
// mobile number (first digit 6-9).
func IsValidMobile(phone string) bool {
	digits := NormalizePhoneNumber(phone)
	if len(digits) != 10 {
		return false
	}
	return digits[0] >= '6' && digits[0] <= '9'
}

// DisplayPhoneNumber formats for display as "+91 XXXXX XXXXX".
func DisplayPhoneNumber(phone string) string {
	digits := NormalizePhoneNumber(phone)
	if len(digits) != 10 {
		return phone
	}
	return "+91 " + digits[:5] + " " + digits[5:]
}
