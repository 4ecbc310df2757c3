package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultBatchSize is the number of concurrent analyses when
	// auditing a list file. Analysis is CPU-bound, so a small pool
	// saturates most machines without unbounded allocation.
	DefaultBatchSize = 8

	// DefaultMinLength is the advisory length threshold. Passwords
	// below it earn no length points and trigger a short-length note.
	// Policy files may raise it; lowering below 8 is not allowed
	// because the score tiers start at 8.
	DefaultMinLength = 8

	// DefaultHistoryLimit is how many audit records the history
	// command lists when no limit flag is given.
	DefaultHistoryLimit = 20

	// AppName is the application name used for XDG directory paths.
	AppName = "passaudit"
)

// Config holds all configuration options for passaudit.
// This struct is populated from CLI flags and passed through the
// application via dependency injection rather than global state.
type Config struct {
	// Passwords are the positional password arguments to audit.
	Passwords []string

	// ListFile is a path to a file with one password per line.
	// When set, passwords are audited as a concurrent batch.
	ListFile string

	// BatchSize is the number of concurrent analyses for list files.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the policy file. If empty, the
	// tool searches for .passaudit in the current directory and then
	// in the user's home directory.
	ConfigFilePath string

	// Policy holds the loaded policy file contents.
	Policy *File

	// JSONReport enables JSON report output instead of the
	// human-readable format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// ShowPassword prints the audited password verbatim in reports
	// instead of the masked form. Off by default.
	ShowPassword bool

	// SaveToDB indicates whether to record audits in the history
	// database. Only fingerprints and metrics are stored.
	SaveToDB bool

	// DBDir is the directory path for the SQLite history database.
	// Defaults to the XDG data directory.
	DBDir string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero. This also serves
// as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		BatchSize: DefaultBatchSize,
		SaveToDB:  true,
	}
}

// XDGDataDir returns the XDG data directory for passaudit.
// On Linux: ~/.local/share/passaudit
// On macOS: ~/Library/Application Support/passaudit
// On Windows: %LOCALAPPDATA%\passaudit
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for passaudit.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first error found; fixing one error often makes
// others irrelevant.
func (c *Config) Validate() error {
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.ListFile != "" && len(c.Passwords) > 0 {
		return ErrConflictingInputs
	}

	if c.Policy != nil {
		if err := c.Policy.Validate(); err != nil {
			return err
		}
	}

	return nil
}
