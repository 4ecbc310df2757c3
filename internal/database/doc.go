// Package database provides SQLite-based storage for audit history.
// Audits are stored as fingerprints plus metrics only; the plaintext
// password never reaches this package. History lets users see how the
// quality of their password choices trends over time and whether the
// same password keeps being re-audited.
package database
