package model

// Strength represents the overall strength band of a password.
// Bands are derived from the final 0-10 score via fixed thresholds.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Strength int

const (
	// StrengthEmpty indicates no password was provided.
	// This band is only assigned to the empty string, never by score.
	StrengthEmpty Strength = iota

	// StrengthVeryWeak indicates a score of 0-2, or any password found
	// on the common-password list regardless of its other metrics.
	StrengthVeryWeak

	// StrengthWeak indicates a score of 3-4.
	StrengthWeak

	// StrengthModerate indicates a score of 5-6.
	StrengthModerate

	// StrengthStrong indicates a score of 7-8.
	StrengthStrong

	// StrengthExcellent indicates a score of 9-10.
	StrengthExcellent
)

// String returns a human-readable representation of the strength band.
func (s Strength) String() string {
	switch s {
	case StrengthEmpty:
		return "Empty"
	case StrengthVeryWeak:
		return "Very Weak"
	case StrengthWeak:
		return "Weak"
	case StrengthModerate:
		return "Moderate"
	case StrengthStrong:
		return "Strong"
	case StrengthExcellent:
		return "Excellent"
	default:
		return "Unknown"
	}
}

// StrengthFromScore maps a clamped 0-10 score onto a strength band.
// The thresholds are part of the analyzer contract: >=9 Excellent,
// >=7 Strong, >=5 Moderate, >=3 Weak, otherwise Very Weak.
func StrengthFromScore(score int) Strength {
	switch {
	case score >= 9:
		return StrengthExcellent
	case score >= 7:
		return StrengthStrong
	case score >= 5:
		return StrengthModerate
	case score >= 3:
		return StrengthWeak
	default:
		return StrengthVeryWeak
	}
}
