package model

import "testing"

// TestSeverityString tests the human-readable severity labels.
func TestSeverityString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		severity Severity
		want     string
	}{
		{"info", SeverityInfo, "INFO"},
		{"low", SeverityLow, "LOW"},
		{"medium", SeverityMedium, "MEDIUM"},
		{"high", SeverityHigh, "HIGH"},
		{"critical", SeverityCritical, "CRITICAL"},
		{"unknown", Severity(42), "UNKNOWN"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.severity.String(); got != tc.want {
				t.Errorf("Severity(%d).String() = %q, want %q", tc.severity, got, tc.want)
			}
		})
	}
}

// TestSeverityOrdering tests that severities escalate from info to
// critical.
func TestSeverityOrdering(t *testing.T) {
	t.Parallel()

	if !(SeverityInfo < SeverityLow &&
		SeverityLow < SeverityMedium &&
		SeverityMedium < SeverityHigh &&
		SeverityHigh < SeverityCritical) {
		t.Error("severity levels are not strictly ordered")
	}
}

// TestGetSeverity tests the finding-type severity mapping.
func TestGetSeverity(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		findingType string
		want        Severity
	}{
		{"common_password", SeverityCritical},
		{"keyboard_sequence", SeverityHigh},
		{"banned_word", SeverityHigh},
		{"numeric_sequence", SeverityMedium},
		{"alpha_sequence", SeverityMedium},
		{"repeated_run", SeverityMedium},
		{"short_length", SeverityLow},
		{"low_variety", SeverityLow},
		{"low_entropy", SeverityInfo},
		{"no_such_type", SeverityInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.findingType, func(t *testing.T) {
			t.Parallel()

			if got := GetSeverity(tc.findingType); got != tc.want {
				t.Errorf("GetSeverity(%q) = %v, want %v", tc.findingType, got, tc.want)
			}
		})
	}
}

// TestGetFindingInfo tests penalty flags and recommendations.
func TestGetFindingInfo(t *testing.T) {
	t.Parallel()

	t.Run("penalized types", func(t *testing.T) {
		t.Parallel()

		for _, ft := range []string{"keyboard_sequence", "numeric_sequence", "alpha_sequence", "repeated_run", "banned_word"} {
			if !GetFindingInfo(ft).Penalty {
				t.Errorf("expected %q to carry a penalty", ft)
			}
		}
	})

	t.Run("non-penalized types", func(t *testing.T) {
		t.Parallel()

		// common_password caps the score directly instead of a penalty.
		for _, ft := range []string{"common_password", "short_length", "low_variety", "low_entropy"} {
			if GetFindingInfo(ft).Penalty {
				t.Errorf("expected %q to carry no penalty", ft)
			}
		}
	})

	t.Run("every known type has a recommendation", func(t *testing.T) {
		t.Parallel()

		for ft := range findingInfoMapping {
			if GetFindingInfo(ft).Recommendation == "" {
				t.Errorf("finding type %q has no recommendation", ft)
			}
		}
	})

	t.Run("unknown type defaults", func(t *testing.T) {
		t.Parallel()

		info := GetFindingInfo("mystery")
		if info.Severity != SeverityInfo || info.Penalty {
			t.Errorf("unexpected default info: %+v", info)
		}
	})
}
