package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/passaudit/passaudit/internal/model"
)

// TestSimpleWriter tests the human-readable report sections.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewSimpleWriter(&buf)

	n, err := w.Write(testReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != buf.Len() {
		t.Errorf("reported %d bytes, buffer holds %d", n, buf.Len())
	}

	output := buf.String()
	for _, want := range []string{
		"PASSWORD AUDIT REPORT",
		"Password:   q***",
		"Source:     argument",
		"METRICS",
		"Score:      0/10 (Very Weak)",
		"~18.8 bits",
		"4 chars",
		"lower (size 26)",
		"Crack time: instant",
		"FINDINGS",
		"[!!] HIGH",
		"Keyboard sequence",
		"NOTES",
		"Avoid keyboard sequences",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

// TestSimpleWriterHidesMatchByDefault tests that matched substrings
// only appear in verbose mode.
func TestSimpleWriterHidesMatchByDefault(t *testing.T) {
	t.Parallel()

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(testReport()); err != nil {
			t.Fatal(err)
		}
		if strings.Contains(buf.String(), "qwer") {
			t.Errorf("matched substring leaked in non-verbose output:\n%s", buf.String())
		}
	})

	t.Run("verbose", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithVerbose(true)).Write(testReport()); err != nil {
			t.Fatal(err)
		}
		output := buf.String()
		if !strings.Contains(output, `Match: "qwer"`) {
			t.Errorf("expected match in verbose output:\n%s", output)
		}
		if !strings.Contains(output, "Recommendation:") {
			t.Errorf("expected recommendation in verbose output:\n%s", output)
		}
	})
}

// TestSimpleWriterCleanResult tests that findings and notes sections
// are omitted when empty.
func TestSimpleWriterCleanResult(t *testing.T) {
	t.Parallel()

	report := &model.AuditReport{
		PasswordMask: "K***********",
		Source:       model.SourcePrompt,
		AuditedAt:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Result: &model.AnalysisResult{
			Score:            8,
			Strength:         model.StrengthStrong,
			StrengthLabel:    "Strong",
			EntropyBits:      78.84,
			Length:           12,
			Charset:          model.CharsetProfile{HasLower: true, HasUpper: true, HasDigit: true, HasSymbol: true},
			CharsetSize:      95,
			GuessScore:       3,
			CrackTimeDisplay: "centuries",
		},
	}

	var buf bytes.Buffer
	if _, err := NewSimpleWriter(&buf).Write(report); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	if strings.Contains(output, "FINDINGS") {
		t.Errorf("unexpected findings section:\n%s", output)
	}
	if strings.Contains(output, "NOTES") {
		t.Errorf("unexpected notes section:\n%s", output)
	}
	if !strings.Contains(output, "Score:      8/10 (Strong)") {
		t.Errorf("expected score line:\n%s", output)
	}
}

// TestSimpleWriterEmptyPassword tests the empty-password report.
func TestSimpleWriterEmptyPassword(t *testing.T) {
	t.Parallel()

	report := &model.AuditReport{
		PasswordMask: "(empty)",
		Source:       model.SourceStdin,
		AuditedAt:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Result: &model.AnalysisResult{
			Score:         0,
			Strength:      model.StrengthEmpty,
			StrengthLabel: "Empty",
			CharsetSize:   1,
			Notes:         []string{"No password provided."},
		},
	}

	var buf bytes.Buffer
	if _, err := NewSimpleWriter(&buf).Write(report); err != nil {
		t.Fatal(err)
	}

	output := buf.String()
	if !strings.Contains(output, "Password:   (empty)") {
		t.Errorf("expected empty mask:\n%s", output)
	}
	if !strings.Contains(output, "0/10 (Empty)") {
		t.Errorf("expected empty band:\n%s", output)
	}
	if strings.Contains(output, "Crack time:") {
		t.Errorf("unexpected crack-time line for empty password:\n%s", output)
	}
}
