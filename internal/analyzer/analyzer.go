package analyzer

import (
	"fmt"
	"unicode/utf8"

	"github.com/passaudit/passaudit/internal/model"
)

// DefaultMinLength is the length below which the short-length advisory
// fires. It matches the lowest length tier, so a password shorter than
// this earns no length points either.
const DefaultMinLength = 8

// encouragementThreshold is the minimum score at which a clean result
// (no findings) earns an encouraging note instead of advice.
const encouragementThreshold = 7

// Detector inspects a password for one category of weak pattern.
// Detectors are pure: they read the password and its charset profile
// and return zero or more findings without side effects.
type Detector interface {
	// Detect returns findings for the password, or nil if the
	// pattern is absent. Detectors return at most one finding per
	// finding type so penalties stay at one point per category.
	Detect(password string, profile model.CharsetProfile) []model.Finding

	// Name returns the detector's name for logging purposes.
	Name() string
}

// Analyzer computes a strength score, an entropy estimate, and pattern
// warnings for a password. The zero-configuration Analyzer from New()
// runs the full default detector set. Analyze is a total function: it
// never fails, and the empty string yields a zero-valued result rather
// than an error.
type Analyzer struct {
	// detectors run in order; their findings accumulate in the result.
	detectors []Detector

	// minLength is the advisory length threshold.
	minLength int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithDetectors replaces the default detector set.
func WithDetectors(detectors ...Detector) Option {
	return func(a *Analyzer) {
		a.detectors = detectors
	}
}

// WithMinLength overrides the advisory length threshold. Values below
// one are ignored.
func WithMinLength(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.minLength = n
		}
	}
}

// WithPolicyBannedWords adds policy-supplied banned words to the
// default common-password detector. It has no effect when combined
// with WithDetectors, which replaces the detector set wholesale.
func WithPolicyBannedWords(words []string) Option {
	return func(a *Analyzer) {
		for i, d := range a.detectors {
			if _, ok := d.(*CommonDetector); ok {
				a.detectors[i] = NewCommonDetector(WithBannedWords(words))
				return
			}
		}
	}
}

// New creates an Analyzer with the default detector set: repeats,
// sequences, keyboard walks, and common passwords.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		detectors: []Detector{
			NewCommonDetector(),
			NewRepeatDetector(),
			NewSequenceDetector(),
			NewKeyboardDetector(),
		},
		minLength: DefaultMinLength,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Analyze inspects the password and returns its metrics. It is
// deterministic, side-effect free, and completes in time proportional
// to the password length.
func (a *Analyzer) Analyze(password string) *model.AnalysisResult {
	length := utf8.RuneCountInString(password)
	profile := scanCharset(password)
	bits := entropyBits(length, profile)
	guessScore, crackTime := guessEstimate(password)

	result := &model.AnalysisResult{
		EntropyBits:      bits,
		Length:           length,
		Charset:          profile,
		CharsetSize:      profile.Size(),
		GuessScore:       guessScore,
		CrackTimeDisplay: crackTime,
	}

	if length == 0 {
		result.Score = minScore
		result.Strength = model.StrengthEmpty
		result.StrengthLabel = result.Strength.String()
		result.Notes = []string{"No password provided."}
		return result
	}

	// Pattern detection pass.
	var findings []model.Finding
	for _, d := range a.detectors {
		findings = append(findings, d.Detect(password, profile)...)
	}

	// Score tiers, with structural advisories appended as findings.
	score := lengthTierPoints(length)
	if length < a.minLength {
		findings = append(findings, model.Finding{
			Type:        "short_length",
			Title:       "Short password",
			Description: fmt.Sprintf("Passwords shorter than %d characters fall to brute force quickly.", a.minLength),
			Severity:    model.GetSeverity("short_length"),
		})
	}

	categories := profile.Categories()
	score += varietyPoints(categories)
	if categories <= 1 {
		findings = append(findings, model.Finding{
			Type:        "low_variety",
			Title:       "Single character class",
			Description: "Only one character category is used, which shrinks the search space.",
			Severity:    model.GetSeverity("low_variety"),
		})
	}

	score += entropyTierPoints(bits)
	if bits < entropyTier1 {
		findings = append(findings, model.Finding{
			Type:        "low_entropy",
			Title:       "Low entropy estimate",
			Description: fmt.Sprintf("Estimated entropy is %.1f bits, below the %d-bit comfort threshold.", bits, entropyTier1),
			Severity:    model.GetSeverity("low_entropy"),
		})
	}

	// One penalty point per penalized pattern category.
	common := false
	for _, f := range findings {
		if model.GetFindingInfo(f.Type).Penalty {
			score--
		}
		if f.Type == "common_password" {
			common = true
		}
	}

	score = clampScore(score)
	if common {
		// Membership on the common list overrides every other metric.
		score = commonPasswordScore
	}

	result.Score = score
	result.Strength = model.StrengthFromScore(score)
	result.StrengthLabel = result.Strength.String()
	result.Findings = findings
	result.Notes = a.buildNotes(findings, score)
	return result
}

// buildNotes assembles the ordered note list: one note per finding,
// then either a generic improvement tip or an encouraging note.
func (a *Analyzer) buildNotes(findings []model.Finding, score int) []string {
	var notes []string
	for _, f := range findings {
		notes = append(notes, a.noteFor(f))
	}

	if len(findings) > 0 {
		notes = append(notes, "Tip: use a long random phrase of unrelated words.")
	} else if score >= encouragementThreshold {
		notes = append(notes, "No weak patterns detected. Nice work.")
	}
	return notes
}

// noteFor maps a finding to its report note. Notes never quote the
// matched substring; the substring stays in Finding.Match for verbose
// output only.
func (a *Analyzer) noteFor(f model.Finding) string {
	switch f.Type {
	case "common_password":
		return "Common password (easily guessed)."
	case "banned_word":
		return "Contains a word from the configured banned-word list."
	case "keyboard_sequence":
		return "Avoid keyboard sequences (e.g., qwer, asdf)."
	case "numeric_sequence":
		return "Avoid sequential digits (e.g., 1234, 4321)."
	case "alpha_sequence":
		return "Avoid sequential letters (e.g., abcd)."
	case "repeated_run":
		return "Avoid repeats of the same character (e.g., aaa)."
	case "short_length":
		return fmt.Sprintf("Too short (fewer than %d characters).", a.minLength)
	case "low_variety":
		return "Use a mix of lowercase, uppercase, digits, and symbols."
	case "low_entropy":
		return "Low entropy; use a longer password with more variety."
	default:
		return f.Title
	}
}
