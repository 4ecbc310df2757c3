package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/passaudit/passaudit/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
type SimpleWriter struct {
	baseWriter

	// verbose enables finding descriptions and matched substrings
	// in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with finding details.
// Verbose output includes matched substrings, which are fragments of
// the audited password.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full report in human-readable format.
func (w *SimpleWriter) Write(report *model.AuditReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeMetrics(&sb, report.Result)
	w.writeFindings(&sb, report.Result)
	w.writeNotes(&sb, report.Result)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with audit information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.AuditReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         PASSWORD AUDIT REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Password:   %s\n", report.PasswordMask))
	sb.WriteString(fmt.Sprintf("Source:     %s\n", report.Source))
	sb.WriteString(fmt.Sprintf("Audit Date: %s\n", report.AuditedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString("\n")
}

// writeMetrics writes the metrics section.
func (w *SimpleWriter) writeMetrics(sb *strings.Builder, result *model.AnalysisResult) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("METRICS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Score:      %d/10 (%s)\n", result.Score, result.Strength))
	sb.WriteString(fmt.Sprintf("  Entropy:    ~%.1f bits\n", result.EntropyBits))
	sb.WriteString(fmt.Sprintf("  Length:     %d chars\n", result.Length))
	sb.WriteString(fmt.Sprintf("  Charset:    %s (size %d)\n", charsetSummary(result.Charset), result.CharsetSize))

	if result.CrackTimeDisplay != "" {
		sb.WriteString(fmt.Sprintf("  Crack time: %s (zxcvbn score %d/4)\n", result.CrackTimeDisplay, result.GuessScore))
	}
	sb.WriteString("\n")
}

// writeFindings writes all findings grouped by severity.
func (w *SimpleWriter) writeFindings(sb *strings.Builder, result *model.AnalysisResult) {
	if !result.HasFindings() {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("FINDINGS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, severity := range severityOrder {
		findings := result.FindingsBySeverity(severity)
		if len(findings) == 0 {
			continue
		}
		w.writeFindingsForSeverity(sb, severity, findings)
	}
}

// writeFindingsForSeverity writes findings of a specific severity level.
func (w *SimpleWriter) writeFindingsForSeverity(sb *strings.Builder, severity model.Severity, findings []model.Finding) {
	indicator := w.getSeverityIndicator(severity)
	sb.WriteString(fmt.Sprintf("[%s] %s\n", indicator, severity.String()))

	for _, finding := range findings {
		sb.WriteString(fmt.Sprintf("  * %s\n", finding.Title))
		if w.verbose {
			if finding.Match != "" {
				sb.WriteString(fmt.Sprintf("    Match: %q\n", finding.Match))
			}
			if finding.Description != "" {
				sb.WriteString(fmt.Sprintf("    Description: %s\n", finding.Description))
			}
			if rec := model.GetFindingInfo(finding.Type).Recommendation; rec != "" {
				sb.WriteString(fmt.Sprintf("    Recommendation: %s\n", rec))
			}
		}
	}
	sb.WriteString("\n")
}

// getSeverityIndicator returns a visual indicator for the severity level.
func (w *SimpleWriter) getSeverityIndicator(severity model.Severity) string {
	switch severity {
	case model.SeverityCritical:
		return "!!!"
	case model.SeverityHigh:
		return "!!"
	case model.SeverityMedium:
		return "!"
	case model.SeverityLow:
		return "-"
	case model.SeverityInfo:
		return "i"
	default:
		return "?"
	}
}

// writeNotes writes the notes section and the footer rule.
func (w *SimpleWriter) writeNotes(sb *strings.Builder, result *model.AnalysisResult) {
	if len(result.Notes) > 0 {
		sb.WriteString(strings.Repeat("-", 70))
		sb.WriteString("\n")
		sb.WriteString("NOTES\n")
		sb.WriteString(strings.Repeat("-", 70))
		sb.WriteString("\n\n")

		for _, note := range result.Notes {
			sb.WriteString(fmt.Sprintf("  - %s\n", note))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
