// Package config provides configuration structures and utilities for
// passaudit. It defines the CLI configuration, the YAML policy file
// with its lookup rules, and the XDG directory helpers used for the
// audit history database.
package config
