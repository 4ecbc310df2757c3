// Package generator produces random passwords from selectable
// character classes using crypto/rand. Generated passwords are meant
// to be audited immediately, so the generator and analyzer share the
// same notion of character categories.
package generator
