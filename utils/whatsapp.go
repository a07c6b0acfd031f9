package utils

import (
	"fmt"
	"net/url"
)

// BuildWhatsAppLink builds a wa.me deep link for a 10-digit Indian mobile
// number. Returns "" when the phone is not usable.
func BuildWhatsAppLink(phone, message string) string {
	digits := NormalizePhoneNumber(phone)
	if len(digits) != 10 {
		return ""
	}
	return fmt.Sprintf("https://wa.me/91%s?text=%s", digits, url.QueryEscape(message))
}
