package model

import "testing"

// TestStrengthString tests the human-readable band labels.
func TestStrengthString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		strength Strength
		want     string
	}{
		{"empty", StrengthEmpty, "Empty"},
		{"very weak", StrengthVeryWeak, "Very Weak"},
		{"weak", StrengthWeak, "Weak"},
		{"moderate", StrengthModerate, "Moderate"},
		{"strong", StrengthStrong, "Strong"},
		{"excellent", StrengthExcellent, "Excellent"},
		{"unknown", Strength(99), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.strength.String(); got != tc.want {
				t.Errorf("Strength(%d).String() = %q, want %q", tc.strength, got, tc.want)
			}
		})
	}
}

// TestStrengthFromScore tests the score band thresholds.
func TestStrengthFromScore(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		score int
		want  Strength
	}{
		{0, StrengthVeryWeak},
		{1, StrengthVeryWeak},
		{2, StrengthVeryWeak},
		{3, StrengthWeak},
		{4, StrengthWeak},
		{5, StrengthModerate},
		{6, StrengthModerate},
		{7, StrengthStrong},
		{8, StrengthStrong},
		{9, StrengthExcellent},
		{10, StrengthExcellent},
	}

	for _, tc := range testCases {
		if got := StrengthFromScore(tc.score); got != tc.want {
			t.Errorf("StrengthFromScore(%d) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

// TestStrengthOrdering tests that bands order from empty to excellent,
// which report writers rely on for sorting.
func TestStrengthOrdering(t *testing.T) {
	t.Parallel()

	if !(StrengthEmpty < StrengthVeryWeak &&
		StrengthVeryWeak < StrengthWeak &&
		StrengthWeak < StrengthModerate &&
		StrengthModerate < StrengthStrong &&
		StrengthStrong < StrengthExcellent) {
		t.Error("strength bands are not strictly ordered")
	}
}
