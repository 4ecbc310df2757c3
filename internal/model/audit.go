package model

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Input sources for audited passwords.
const (
	// SourceArgument means the password was passed as a CLI argument.
	SourceArgument = "argument"

	// SourcePrompt means the password was read from a hidden prompt.
	SourcePrompt = "prompt"

	// SourceStdin means the password was piped via standard input.
	SourceStdin = "stdin"

	// SourceList means the password came from a --list batch file.
	SourceList = "list"

	// SourceGenerated means the password was produced by the generator.
	SourceGenerated = "generated"
)

// AuditReport wraps a single analysis result with the context the CLI
// needs to render and persist it. The plaintext password is never stored
// here; only a display mask travels with the report.
type AuditReport struct {
	// PasswordMask is the masked form of the audited password,
	// safe to print in reports and logs.
	PasswordMask string `json:"password"`

	// Source records where the password came from.
	Source string `json:"source"`

	// AuditedAt is the time the analysis ran.
	AuditedAt time.Time `json:"auditedAt"`

	// Result is the analyzer output.
	Result *AnalysisResult `json:"result"`
}

// NewAuditReport creates an AuditReport for the given analysis result.
func NewAuditReport(mask, source string, result *AnalysisResult) *AuditReport {
	return &AuditReport{
		PasswordMask: mask,
		Source:       source,
		AuditedAt:    time.Now(),
		Result:       result,
	}
}

// MaskPassword returns a display-safe mask of a password: the first rune
// followed by one asterisk per remaining rune. The empty string maps to
// "(empty)" so reports stay readable.
func MaskPassword(password string) string {
	if password == "" {
		return "(empty)"
	}
	first, _ := utf8.DecodeRuneInString(password)
	rest := utf8.RuneCountInString(password) - 1
	return string(first) + strings.Repeat("*", rest)
}

// AuditRecord is the persisted form of an audit. Only a fingerprint of
// the password is stored, never the plaintext or its mask.
type AuditRecord struct {
	// ID is the database row ID, zero before the record is saved.
	ID int64 `json:"id"`

	// Fingerprint is the hex-encoded BLAKE2b-256 digest of the password.
	// It links repeated audits of the same password without revealing it.
	Fingerprint string `json:"fingerprint"`

	// Score is the heuristic strength score.
	Score int `json:"score"`

	// EntropyBits is the entropy estimate at audit time.
	EntropyBits float64 `json:"entropyBits"`

	// Length is the password length in runes.
	Length int `json:"length"`

	// Strength is the strength band label.
	Strength string `json:"strength"`

	// FindingCount is the number of weaknesses detected.
	FindingCount int `json:"findingCount"`

	// Source records where the password came from.
	Source string `json:"source"`

	// AuditedAt is the time the analysis ran.
	AuditedAt time.Time `json:"auditedAt"`
}

// NewAuditRecord builds the persistable record for a report.
// The fingerprint must be computed by the caller from the plaintext,
// which this package never sees.
func NewAuditRecord(fingerprint string, report *AuditReport) *AuditRecord {
	return &AuditRecord{
		Fingerprint:  fingerprint,
		Score:        report.Result.Score,
		EntropyBits:  report.Result.EntropyBits,
		Length:       report.Result.Length,
		Strength:     report.Result.Strength.String(),
		FindingCount: len(report.Result.Findings),
		Source:       report.Source,
		AuditedAt:    report.AuditedAt,
	}
}
