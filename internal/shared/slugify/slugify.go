// Package slugify derives the public URL identifier for a business from its
// display name. The slug is computed once at onboarding submission and is
// immutable afterwards.
package slugify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"chefviral/internal/shared/id"
)

const (
	// SuffixLength is the length of the random collision-avoidance suffix.
	SuffixLength = 4

	// MaxBaseLength bounds the normalized name part of the slug.
	MaxBaseLength = 48

	suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespace   = regexp.MustCompile(`[\s-]+`)

	stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Normalize lowercases the name, strips accents, removes characters outside
// [a-z0-9 -] and collapses whitespace runs into single hyphens.
// "Zé's Burger" becomes "ze-s-burger".
func Normalize(name string) string {
	s, _, err := transform.String(stripAccents, name)
	if err != nil {
		s = name
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "'", " ")
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(strings.TrimSpace(s), "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxBaseLength {
		s = strings.Trim(s[:MaxBaseLength], "-")
	}
	if s == "" {
		s = "menu"
	}
	return s
}

// Derive returns the normalized name joined with a random lowercase
// alphanumeric suffix, so two businesses with identical names never share a
// slug.
func Derive(name string) string {
	return Normalize(name) + "-" + randomSuffix()
}

func randomSuffix() string {
	// id.Generate is base62; fold into the lowercase alphabet so slugs stay
	// case-insensitive on all filesystems and URL handlers.
	raw := id.MustGenerate(SuffixLength)
	b := make([]byte, SuffixLength)
	for i := 0; i < SuffixLength; i++ {
		b[i] = suffixAlphabet[int(raw[i])%len(suffixAlphabet)]
	}
	return string(b)
}
