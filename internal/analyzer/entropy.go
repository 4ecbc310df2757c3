package analyzer

import (
	"math"

	"github.com/nbutton23/zxcvbn-go"
	"github.com/passaudit/passaudit/internal/model"
)

// maxGuessCheckLen limits the prefix handed to zxcvbn.
//
// zxcvbn's matcher runtime grows quickly with input length, so very long
// inputs become a denial-of-service vector. The first 50 runes carry
// more than enough signal for a corroborating estimate.
const maxGuessCheckLen = 50

// entropyBits estimates password entropy as length * log2(charset size).
//
// The charset size follows the additive convention: each character
// category judged present contributes its full alphabet size
// (26 + 26 + 10 + 33 = 95 when all four are present). The profile
// floors the size at 1, so the logarithm is always defined and the
// empty password yields exactly 0 bits.
func entropyBits(length int, profile model.CharsetProfile) float64 {
	if length == 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(profile.Size()))
}

// guessEstimate runs zxcvbn as a second opinion on the password.
// It returns the 0-4 zxcvbn score and a human-readable crack-time
// string. The result is informative only and never feeds back into
// the heuristic score.
func guessEstimate(password string) (int, string) {
	if password == "" {
		return 0, ""
	}
	runes := []rune(password)
	if len(runes) > maxGuessCheckLen {
		password = string(runes[:maxGuessCheckLen])
	}
	result := zxcvbn.PasswordStrength(password, nil)
	return result.Score, result.CrackTimeDisplay
}
