// Package util holds small shared helpers for the console.
package util

import "strings"

// turkishFold maps Turkish-specific letters to their ASCII slug equivalents.
var turkishFold = strings.NewReplacer(
	"ş", "s", "Ş", "s",
	"ı", "i", "İ", "i",
	"ğ", "g", "Ğ", "g",
	"ç", "c", "Ç", "c",
	"ö", "o", "Ö", "o",
	"ü", "u", "Ü", "u",
)

// Slugify produces a URL-safe slug from a display name: Turkish characters
// are folded to ASCII, everything is lower-cased, and runs of
// non-alphanumerics collapse into single hyphens.
func Slugify(name string) string {
	s := strings.ToLower(turkishFold.Replace(strings.TrimSpace(name)))

	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := true // suppress a leading hyphen
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
