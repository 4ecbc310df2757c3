package analyzer

import (
	"unicode"

	"github.com/passaudit/passaudit/internal/model"
)

// scanCharset classifies every rune of the password in a single pass.
// Anything that is neither a letter nor a digit counts as a symbol,
// so arbitrary Unicode punctuation and whitespace all land in the
// symbol category. Non-ASCII letters (é, ß, Cyrillic, kana) count
// toward the letter categories; the alphabet-size contribution per
// category stays fixed regardless.
func scanCharset(password string) model.CharsetProfile {
	var profile model.CharsetProfile
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			profile.HasLower = true
		case unicode.IsUpper(r):
			profile.HasUpper = true
		case unicode.IsDigit(r):
			profile.HasDigit = true
		default:
			profile.HasSymbol = true
		}
	}
	return profile
}
