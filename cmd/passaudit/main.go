// Package main provides the entry point for the passaudit CLI.
//
// passaudit is a password strength auditing tool. It computes a
// heuristic strength score, an entropy estimate, and pattern warnings
// for a password, then prints a short report.
//
// Usage:
//
//	passaudit check [password]
//	passaudit check --list <file>
//	passaudit generate
//
// See --help for all available options.
package main

// main is the entry point for passaudit.
func main() {
	Execute()
}
