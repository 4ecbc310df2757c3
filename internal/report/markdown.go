package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/passaudit/passaudit/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, e.g. pasting
// an audit summary into a ticket.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.AuditReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeMetrics(md, report.Result)
	w.writeAlert(md, report.Result)
	w.writeFindings(md, report.Result)
	w.writeNotes(md, report.Result)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with audit information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.AuditReport) {
	md.H1("Password Audit Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Password", "`" + report.PasswordMask + "`"},
			{"Source", report.Source},
			{"Audit Date", report.AuditedAt.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")
}

// writeMetrics writes the metrics section.
func (w *MarkdownWriter) writeMetrics(md *markdown.Markdown, result *model.AnalysisResult) {
	md.H2("Metrics")
	md.PlainText("")

	crackTime := result.CrackTimeDisplay
	if crackTime == "" {
		crackTime = "-"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Score", fmt.Sprintf("%d/10 (%s)", result.Score, result.Strength)},
			{"Entropy", fmt.Sprintf("~%.1f bits", result.EntropyBits)},
			{"Length", strconv.Itoa(result.Length) + " chars"},
			{"Charset", fmt.Sprintf("%s (size %d)", charsetSummary(result.Charset), result.CharsetSize)},
			{"Crack time (zxcvbn)", crackTime},
		},
	})
	md.PlainText("")
}

// writeAlert writes an alert matching the most severe finding.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, result *model.AnalysisResult) {
	maxSeverity, ok := result.MaxSeverity()
	if !ok {
		md.Tip("No weak patterns detected.")
		md.PlainText("")
		return
	}

	switch maxSeverity {
	case model.SeverityCritical:
		md.Caution("This password is effectively public. Replace it immediately.")
	case model.SeverityHigh:
		md.Warning("High severity patterns detected. This password should be replaced.")
	case model.SeverityMedium:
		md.Important("Weak patterns found that reduce the effective strength.")
	default:
		md.Note("Only low severity and advisory findings detected.")
	}
	md.PlainText("")
}

// writeFindings writes all findings grouped by severity.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, result *model.AnalysisResult) {
	md.H2("Findings")
	md.PlainText("")

	if !result.HasFindings() {
		md.PlainText("No findings.")
		md.PlainText("")
		return
	}

	severities := []struct {
		level  model.Severity
		header string
	}{
		{model.SeverityCritical, "### 🔴 Critical"},
		{model.SeverityHigh, "### 🟠 High"},
		{model.SeverityMedium, "### 🟡 Medium"},
		{model.SeverityLow, "### 🔵 Low"},
		{model.SeverityInfo, "### ⚪ Info"},
	}

	for _, sev := range severities {
		findings := result.FindingsBySeverity(sev.level)
		if len(findings) == 0 {
			continue
		}

		md.PlainText(sev.header)
		md.PlainText("")
		w.writeFindingsTable(md, findings)
	}
}

// writeFindingsTable writes a table of findings with recommendations.
// The matched substring is deliberately omitted: Markdown reports are
// meant for sharing and must not leak password fragments.
func (w *MarkdownWriter) writeFindingsTable(md *markdown.Markdown, findings []model.Finding) {
	headers := []string{"Title", "Description", "Recommendation"}

	rows := make([][]string, len(findings))
	for i, f := range findings {
		rec := model.GetFindingInfo(f.Type).Recommendation
		if rec == "" {
			rec = "-"
		}

		rows[i] = []string{
			f.Title,
			truncateString(f.Description, 80),
			truncateString(rec, 80),
		}
	}

	md.Table(markdown.TableSet{
		Header: headers,
		Rows:   rows,
	})
	md.PlainText("")
}

// writeNotes writes the notes section.
func (w *MarkdownWriter) writeNotes(md *markdown.Markdown, result *model.AnalysisResult) {
	if len(result.Notes) == 0 {
		return
	}

	md.H2("Notes")
	md.PlainText("")
	md.BulletList(result.Notes...)
	md.PlainText("")
}
