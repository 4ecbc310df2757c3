package model

// Severity represents the impact level of a weakness finding.
// It allows sorting findings so the most damaging patterns are
// reported first.
type Severity int

const (
	// SeverityInfo indicates advisory findings with no score penalty.
	// Examples: entropy below the comfortable threshold.
	SeverityInfo Severity = iota

	// SeverityLow indicates minor issues that weaken a password slightly.
	// Examples: short length, a single character class.
	SeverityLow

	// SeverityMedium indicates patterns that meaningfully reduce the
	// effective search space. Examples: repeated runs, numeric sequences.
	SeverityMedium

	// SeverityHigh indicates patterns that attackers try early.
	// Examples: keyboard walks such as "qwer" or "asdf".
	SeverityHigh

	// SeverityCritical indicates the password is effectively public.
	// Example: membership in the common-password list.
	SeverityCritical
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// FindingInfo contains metadata about a finding type: its severity,
// whether it costs a score penalty point, and a remediation tip.
type FindingInfo struct {
	Severity       Severity
	Penalty        bool
	Recommendation string
}

// findingInfoMapping maps finding types to their metadata.
// This centralized mapping keeps severity and penalty assignment
// consistent between the analyzer and the report writers.
var findingInfoMapping = map[string]FindingInfo{
	// CRITICAL - the password is effectively public knowledge.
	// No penalty flag: common passwords cap the score directly instead.
	"common_password": {
		Severity:       SeverityCritical,
		Penalty:        false,
		Recommendation: "Pick a password that does not appear on well-known password lists.",
	},

	// HIGH - patterns cracking tools try within the first few guesses.
	"keyboard_sequence": {
		Severity:       SeverityHigh,
		Penalty:        true,
		Recommendation: "Avoid keyboard walks like qwer or asdf; they are in every cracking wordlist.",
	},

	// MEDIUM - patterns that shrink the effective search space.
	"numeric_sequence": {
		Severity:       SeverityMedium,
		Penalty:        true,
		Recommendation: "Avoid ascending or descending digit runs like 1234 or 4321.",
	},
	"alpha_sequence": {
		Severity:       SeverityMedium,
		Penalty:        true,
		Recommendation: "Avoid alphabetic sequences like abcd.",
	},
	"repeated_run": {
		Severity:       SeverityMedium,
		Penalty:        true,
		Recommendation: "Avoid repeating the same character three or more times.",
	},

	// LOW - structural weaknesses that reduce the score indirectly
	// (through the length and variety tiers) rather than via a penalty.
	"short_length": {
		Severity:       SeverityLow,
		Penalty:        false,
		Recommendation: "Use at least 12 characters; longer passphrases are easier to remember and harder to crack.",
	},
	"low_variety": {
		Severity:       SeverityLow,
		Penalty:        false,
		Recommendation: "Mix lowercase, uppercase, digits, and symbols.",
	},

	// INFO - advisory only.
	"low_entropy": {
		Severity:       SeverityInfo,
		Penalty:        false,
		Recommendation: "Increase length and character variety to raise the entropy estimate.",
	},
	"banned_word": {
		Severity:       SeverityHigh,
		Penalty:        true,
		Recommendation: "Avoid words from your organization's banned-word list (names, products, sites).",
	},
}

// GetFindingInfo returns the metadata for a finding type.
// Unknown finding types default to SeverityInfo with no penalty.
func GetFindingInfo(findingType string) FindingInfo {
	if info, ok := findingInfoMapping[findingType]; ok {
		return info
	}
	return FindingInfo{Severity: SeverityInfo}
}

// GetSeverity returns the severity for a finding type.
func GetSeverity(findingType string) Severity {
	return GetFindingInfo(findingType).Severity
}
