package analyzer

import (
	_ "embed"
	"strings"

	"github.com/passaudit/passaudit/internal/model"
)

//go:embed common_passwords.txt
var commonPasswordsRaw string

// commonPasswords holds the embedded weak-password list, lowercased for
// case-insensitive lookup. The list is intentionally small: it catches
// the passwords every attacker tries first, not breached corpora.
var commonPasswords = parseCommonPasswords(commonPasswordsRaw)

// parseCommonPasswords splits the embedded list into a lookup set,
// skipping blank lines.
func parseCommonPasswords(raw string) map[string]struct{} {
	lines := strings.Split(raw, "\n")
	set := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		pw := strings.TrimSpace(line)
		if pw == "" {
			continue
		}
		set[strings.ToLower(pw)] = struct{}{}
	}
	return set
}

// CommonDetector flags passwords that match the embedded weak-password
// list exactly (case-insensitive), and passwords containing any word
// from a caller-supplied banned list (typically organization names or
// product names loaded from the policy file).
type CommonDetector struct {
	// bannedWords are extra words matched as case-insensitive
	// substrings. Lowercased at construction time.
	bannedWords []string
}

// CommonDetectorOption configures a CommonDetector.
type CommonDetectorOption func(*CommonDetector)

// WithBannedWords adds policy-supplied words to flag as substrings.
// Empty words are dropped.
func WithBannedWords(words []string) CommonDetectorOption {
	return func(d *CommonDetector) {
		for _, w := range words {
			w = strings.TrimSpace(strings.ToLower(w))
			if w == "" {
				continue
			}
			d.bannedWords = append(d.bannedWords, w)
		}
	}
}

// NewCommonDetector creates a CommonDetector.
func NewCommonDetector(opts ...CommonDetectorOption) *CommonDetector {
	d := &CommonDetector{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name returns the detector name.
func (d *CommonDetector) Name() string {
	return "common"
}

// Detect reports a common-password finding on an exact list match and
// a banned-word finding on the first banned substring found.
func (d *CommonDetector) Detect(password string, _ model.CharsetProfile) []model.Finding {
	var findings []model.Finding
	lower := strings.ToLower(password)

	if _, ok := commonPasswords[lower]; ok {
		findings = append(findings, model.Finding{
			Type:        "common_password",
			Title:       "Common password",
			Description: "This password appears on well-known weak-password lists and is guessed immediately.",
			Severity:    model.GetSeverity("common_password"),
		})
	}

	for _, word := range d.bannedWords {
		if strings.Contains(lower, word) {
			findings = append(findings, model.Finding{
				Type:        "banned_word",
				Title:       "Banned word",
				Description: "The password contains a word from the configured banned-word list.",
				Severity:    model.GetSeverity("banned_word"),
				Match:       word,
			})
			break
		}
	}

	return findings
}

// IsCommonPassword reports whether the password matches the embedded
// weak-password list, case-insensitively. Exposed for callers that only
// need the membership check.
func IsCommonPassword(password string) bool {
	_, ok := commonPasswords[strings.ToLower(password)]
	return ok
}
