package helper

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName trims, NFC-normalises and collapses inner whitespace of a display name.
func NormalizeName(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

// NameKey is the comparison key for natural-key uniqueness: NormalizeName, diacritics stripped, lower-cased.
// "Điện  nước" and "dien nuoc" share a key.
func NameKey(s string) string {
	s = strings.ToLower(NormalizeName(s))
	var b strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch r {
		case 'đ':
			r = 'd'
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}
