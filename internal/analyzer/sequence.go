package analyzer

import (
	"strings"

	"github.com/passaudit/passaudit/internal/model"
)

// minDigitSequence is the shortest ascending or descending digit run
// that counts as a numeric sequence. Three digits appear too often in
// legitimate material (years, versions) to penalize.
const minDigitSequence = 4

// alphaSequences is the fixed table of alphabetic 4-grams treated as
// sequences. A static lookup table, matched case-insensitively.
var alphaSequences = []string{"abcd", "bcde", "cdef", "defg"}

// SequenceDetector finds ascending or descending runs of consecutive
// digits ("1234", "4321") and well-known alphabetic sequences ("abcd").
// Sequences are among the first candidates in any guessing attack.
type SequenceDetector struct{}

// NewSequenceDetector creates a SequenceDetector.
func NewSequenceDetector() *SequenceDetector {
	return &SequenceDetector{}
}

// Name returns the detector name.
func (d *SequenceDetector) Name() string {
	return "sequence"
}

// Detect reports at most one numeric-sequence finding and at most one
// alphabetic-sequence finding.
func (d *SequenceDetector) Detect(password string, _ model.CharsetProfile) []model.Finding {
	var findings []model.Finding

	if match := longestDigitRun(password); match != "" {
		findings = append(findings, model.Finding{
			Type:        "numeric_sequence",
			Title:       "Sequential digits",
			Description: "An ascending or descending digit run shrinks the search space to almost nothing.",
			Severity:    model.GetSeverity("numeric_sequence"),
			Match:       match,
		})
	}

	lower := strings.ToLower(password)
	for _, seq := range alphaSequences {
		if strings.Contains(lower, seq) {
			findings = append(findings, model.Finding{
				Type:        "alpha_sequence",
				Title:       "Sequential letters",
				Description: "A run of consecutive alphabet letters is trivial to guess.",
				Severity:    model.GetSeverity("alpha_sequence"),
				Match:       seq,
			})
			break
		}
	}

	return findings
}

// longestDigitRun returns the first ascending or descending run of
// minDigitSequence or more consecutive digits, or "" if none exists.
// Only ASCII digits participate; other runes break the run.
func longestDigitRun(password string) string {
	runes := []rune(password)

	for start := 0; start < len(runes); start++ {
		if !isASCIIDigit(runes[start]) {
			continue
		}
		for _, step := range []rune{1, -1} {
			end := start + 1
			for end < len(runes) && isASCIIDigit(runes[end]) && runes[end]-runes[end-1] == step {
				end++
			}
			if end-start >= minDigitSequence {
				return string(runes[start:end])
			}
		}
	}
	return ""
}

// isASCIIDigit reports whether r is in '0'..'9'. Unicode digits from
// other scripts are intentionally excluded: consecutiveness is only
// meaningful within one digit block, and ASCII is the practical case.
func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
