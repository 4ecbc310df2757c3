package analyzer

import (
	"strings"

	"github.com/passaudit/passaudit/internal/model"
)

// keyboardRows are the QWERTY letter rows used to build the sequence
// table. The table is a static list of adjacent-key 4-grams and their
// reverses, not a model of physical key geometry.
var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// keyboardSequences holds every 4-gram of the QWERTY rows plus its
// reverse, lowercased. Built once at package init; membership is a
// plain substring check at detection time.
var keyboardSequences = buildKeyboardSequences()

// buildKeyboardSequences slides a 4-rune window over each keyboard row
// and collects the window and its reverse.
func buildKeyboardSequences() []string {
	var seqs []string
	for _, row := range keyboardRows {
		for i := 0; i+4 <= len(row); i++ {
			gram := row[i : i+4]
			seqs = append(seqs, gram, reverseString(gram))
		}
	}
	return seqs
}

// reverseString reverses an ASCII string. Keyboard rows are ASCII only.
func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// KeyboardDetector finds keyboard walks such as "qwer", "asdf", and
// their reverses. These rank near the top of real-world cracking
// wordlists despite looking random.
type KeyboardDetector struct{}

// NewKeyboardDetector creates a KeyboardDetector.
func NewKeyboardDetector() *KeyboardDetector {
	return &KeyboardDetector{}
}

// Name returns the detector name.
func (d *KeyboardDetector) Name() string {
	return "keyboard"
}

// Detect reports the first keyboard sequence found as a substring of
// the password, compared case-insensitively.
func (d *KeyboardDetector) Detect(password string, _ model.CharsetProfile) []model.Finding {
	lower := strings.ToLower(password)
	for _, seq := range keyboardSequences {
		if strings.Contains(lower, seq) {
			return []model.Finding{{
				Type:        "keyboard_sequence",
				Title:       "Keyboard sequence",
				Description: "Adjacent-key sequences like qwer or asdf appear in every cracking wordlist.",
				Severity:    model.GetSeverity("keyboard_sequence"),
				Match:       seq,
			}}
		}
	}
	return nil
}
