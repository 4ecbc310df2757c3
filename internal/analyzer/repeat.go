package analyzer

import (
	"github.com/passaudit/passaudit/internal/model"
)

// minRepeatRun is the shortest run of identical runes that counts as a
// repeat pattern. Runs of two are common in natural words ("ll", "oo")
// and carry little signal; three or more is almost always filler.
const minRepeatRun = 3

// RepeatDetector finds runs of the same rune, such as "aaa" or "111".
// Repetition collapses the effective search space far below what the
// length-based entropy estimate suggests.
type RepeatDetector struct{}

// NewRepeatDetector creates a RepeatDetector.
func NewRepeatDetector() *RepeatDetector {
	return &RepeatDetector{}
}

// Name returns the detector name.
func (d *RepeatDetector) Name() string {
	return "repeat"
}

// Detect reports the first run of minRepeatRun or more identical runes.
// At most one finding is returned; additional runs add no information
// and would inflate the penalty beyond one point per category.
func (d *RepeatDetector) Detect(password string, _ model.CharsetProfile) []model.Finding {
	runes := []rune(password)

	runStart := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && runes[i] == runes[runStart] {
			continue
		}
		if i-runStart >= minRepeatRun {
			return []model.Finding{{
				Type:        "repeated_run",
				Title:       "Repeated character run",
				Description: "The same character repeats three or more times in a row, which cracking tools try early.",
				Severity:    model.GetSeverity("repeated_run"),
				Match:       string(runes[runStart:i]),
			}}
		}
		runStart = i
	}
	return nil
}
