package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	nonDigits  = regexp.MustCompile(`\D`)
	hexColor   = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// DigitsOnly strips every non-digit rune. WhatsApp phone numbers are stored
// with display formatting but deep links need the bare digits.
func DigitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// IsValidHexColor reports whether s is a #rrggbb color.
func IsValidHexColor(s string) bool {
	return hexColor.MatchString(s)
}
