// Package analyzer implements the password strength analysis core.
//
// The analyzer is a pure, total function over strings: it scans the
// password once for character categories, estimates entropy from the
// additive charset-size convention, runs a fixed set of pattern
// detectors, and derives a clamped 0-10 score with human-readable notes.
// It performs no I/O and holds no shared state, so a single Analyzer is
// safe for concurrent use.
package analyzer
