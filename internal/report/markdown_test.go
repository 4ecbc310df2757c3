package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/passaudit/passaudit/internal/model"
)

// TestMarkdownWriter tests the Markdown report structure.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewMarkdownWriter(&buf)

	if _, err := w.Write(testReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"# Password Audit Report",
		"| Password |",
		"`q***`",
		"## Metrics",
		"0/10 (Very Weak)",
		"~18.8 bits",
		"## Findings",
		"### 🟠 High",
		"Keyboard sequence",
		"## Notes",
		"- Avoid keyboard sequences",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

// TestMarkdownWriterNeverLeaksMatch tests that matched substrings stay
// out of shareable Markdown output.
func TestMarkdownWriterNeverLeaksMatch(t *testing.T) {
	t.Parallel()

	report := testReport()
	report.Result.Findings[0].Match = "sup3rs3cret"

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(buf.String(), "sup3rs3cret") {
		t.Errorf("matched substring leaked into Markdown output:\n%s", buf.String())
	}
}

// TestMarkdownWriterAlerts tests the alert level selection.
func TestMarkdownWriterAlerts(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		findings []model.Finding
		want     string
	}{
		{
			name:     "no findings",
			findings: nil,
			want:     "[!TIP]",
		},
		{
			name:     "critical",
			findings: []model.Finding{{Type: "common_password", Severity: model.SeverityCritical}},
			want:     "[!CAUTION]",
		},
		{
			name:     "high",
			findings: []model.Finding{{Type: "keyboard_sequence", Severity: model.SeverityHigh}},
			want:     "[!WARNING]",
		},
		{
			name:     "medium",
			findings: []model.Finding{{Type: "repeated_run", Severity: model.SeverityMedium}},
			want:     "[!IMPORTANT]",
		},
		{
			name:     "low only",
			findings: []model.Finding{{Type: "short_length", Severity: model.SeverityLow}},
			want:     "[!NOTE]",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			report := &model.AuditReport{
				PasswordMask: "x***",
				Source:       model.SourceArgument,
				AuditedAt:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
				Result: &model.AnalysisResult{
					Score:       2,
					Strength:    model.StrengthVeryWeak,
					CharsetSize: 26,
					Findings:    tc.findings,
				},
			}

			var buf bytes.Buffer
			if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(buf.String(), tc.want) {
				t.Errorf("expected alert %q in output:\n%s", tc.want, buf.String())
			}
		})
	}
}

// TestMarkdownWriterNoFindings tests the clean-result rendering.
func TestMarkdownWriterNoFindings(t *testing.T) {
	t.Parallel()

	report := testReport()
	report.Result.Findings = nil
	report.Result.Notes = []string{"No weak patterns detected. Nice work."}

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	if !strings.Contains(output, "No findings.") {
		t.Errorf("expected no-findings placeholder:\n%s", output)
	}
	if !strings.Contains(output, "- No weak patterns detected. Nice work.") {
		t.Errorf("expected notes bullet:\n%s", output)
	}
}
