package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to
// use errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrConflictingInputs is returned when both a list file and
	// positional password arguments are given.
	ErrConflictingInputs = errors.New("conflicting inputs: --list cannot be combined with password arguments")

	// ErrInvalidMinLength is returned when the policy minimum length is
	// below the lowest scoring tier. The score tiers start at 8, so a
	// smaller advisory threshold would promise strength the scoring
	// cannot deliver.
	ErrInvalidMinLength = errors.New("invalid minLength: must be at least 8")

	// ErrConfigNotFound is returned when the policy file does not exist.
	ErrConfigNotFound = errors.New("policy file not found")
)
