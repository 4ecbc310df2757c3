package model

// Alphabet size contributions per character category.
// These values follow the additive convention: each category judged
// present contributes its full alphabet size to the charset estimate.
// The symbol alphabet is a rough count of printable ASCII symbols.
const (
	LowerAlphabetSize  = 26
	UpperAlphabetSize  = 26
	DigitAlphabetSize  = 10
	SymbolAlphabetSize = 33
)

// CharsetProfile records which character categories appear in a password.
// It is derived by a single scan and drives the charset-size estimate
// used for entropy calculation.
type CharsetProfile struct {
	// HasLower is true if the password contains a lowercase letter.
	HasLower bool `json:"hasLower"`

	// HasUpper is true if the password contains an uppercase letter.
	HasUpper bool `json:"hasUpper"`

	// HasDigit is true if the password contains a decimal digit.
	HasDigit bool `json:"hasDigit"`

	// HasSymbol is true if the password contains any rune that is
	// neither a letter nor a digit.
	HasSymbol bool `json:"hasSymbol"`
}

// Categories returns the number of character categories present (0-4).
func (p CharsetProfile) Categories() int {
	n := 0
	if p.HasLower {
		n++
	}
	if p.HasUpper {
		n++
	}
	if p.HasDigit {
		n++
	}
	if p.HasSymbol {
		n++
	}
	return n
}

// Size returns the estimated alphabet size for the profile.
// Each present category contributes its full alphabet size.
// The result is floored at 1 so log2 of it is always defined.
func (p CharsetProfile) Size() int {
	size := 0
	if p.HasLower {
		size += LowerAlphabetSize
	}
	if p.HasUpper {
		size += UpperAlphabetSize
	}
	if p.HasDigit {
		size += DigitAlphabetSize
	}
	if p.HasSymbol {
		size += SymbolAlphabetSize
	}
	if size == 0 {
		return 1
	}
	return size
}

// Finding describes one detected weakness in a password.
type Finding struct {
	// Type is the machine-readable finding type, e.g. "repeated_run".
	// It keys into the severity and penalty mapping.
	Type string `json:"type"`

	// Title is a short human-readable summary of the weakness.
	Title string `json:"title"`

	// Description explains why the pattern weakens the password.
	Description string `json:"description"`

	// Severity is the impact level of the finding.
	Severity Severity `json:"severity"`

	// Match is the offending substring, if pinpointing it is meaningful.
	// It may be empty for structural findings such as short length.
	//
	// Note: Match is part of the password itself, so report writers
	// must treat it with the same care as the password.
	Match string `json:"match,omitempty"`
}

// AnalysisResult is the immutable output of a single password analysis.
// All fields are populated for every input, including the empty string.
type AnalysisResult struct {
	// Score is the heuristic strength score, clamped to [0, 10].
	Score int `json:"score"`

	// Strength is the band derived from Score.
	Strength Strength `json:"strength"`

	// StrengthLabel is the human-readable form of Strength.
	StrengthLabel string `json:"strengthLabel"`

	// EntropyBits is the entropy estimate: length * log2(charset size).
	EntropyBits float64 `json:"entropyBits"`

	// Length is the password length in runes, not bytes.
	Length int `json:"length"`

	// Charset records which character categories were observed.
	Charset CharsetProfile `json:"charset"`

	// CharsetSize is the additive alphabet-size estimate (floored at 1).
	CharsetSize int `json:"charsetSize"`

	// Findings lists detected weaknesses, ordered by detection pass.
	Findings []Finding `json:"findings,omitempty"`

	// Notes is the ordered list of human-readable warnings and tips.
	Notes []string `json:"notes,omitempty"`

	// GuessScore is the corroborating zxcvbn score (0-4), informative only.
	GuessScore int `json:"guessScore"`

	// CrackTimeDisplay is zxcvbn's human-readable offline crack-time
	// estimate, e.g. "centuries". Empty for the empty password.
	CrackTimeDisplay string `json:"crackTimeDisplay,omitempty"`
}

// HasFindings reports whether any weakness was detected.
func (r *AnalysisResult) HasFindings() bool {
	return len(r.Findings) > 0
}

// FindingsBySeverity returns findings of the given severity,
// preserving detection order.
func (r *AnalysisResult) FindingsBySeverity(severity Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == severity {
			out = append(out, f)
		}
	}
	return out
}

// MaxSeverity returns the highest severity among the findings.
// It returns SeverityInfo and false if there are no findings.
func (r *AnalysisResult) MaxSeverity() (Severity, bool) {
	if len(r.Findings) == 0 {
		return SeverityInfo, false
	}
	max := r.Findings[0].Severity
	for _, f := range r.Findings[1:] {
		if f.Severity > max {
			max = f.Severity
		}
	}
	return max, true
}
