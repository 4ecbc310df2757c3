// Package log provides secure logging functionality with automatic
// sanitization of password material, built on top of the standard slog
// package.
//
// passaudit handles plaintext passwords on every invocation, so the
// primary defense this package provides is making it impossible for an
// attribute carrying a password (or anything that looks like one) to
// reach the log stream. The SecureHandler masks values whose keys name
// secrets and string values matching secret-like patterns, even in
// verbose mode.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("audit complete",
//	    "password", "hunter2", // masked to ***REDACTED***
//	    "score", 3,
//	)
package log
