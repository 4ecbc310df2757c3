package config

// File represents the structure of the .passaudit policy file.
// The policy is advisory: it adds local context (banned words, a
// stricter length threshold) to the analysis but never turns a weak
// score into a non-zero exit code.
type File struct {
	// MinLength overrides the advisory length threshold.
	// Zero means use the default. Values below 8 are rejected by
	// Validate because the scoring tiers start at 8.
	MinLength int `yaml:"minLength,omitempty"`

	// BannedWords are words flagged when they appear anywhere in a
	// password, case-insensitively. Typical entries are organization
	// names, product names, and the site's own domain.
	BannedWords []string `yaml:"bannedWords,omitempty"`
}

// Validate checks the policy for impossible values.
func (f *File) Validate() error {
	if f.MinLength != 0 && f.MinLength < DefaultMinLength {
		return ErrInvalidMinLength
	}
	return nil
}

// EffectiveMinLength returns the advisory threshold the analyzer
// should use: the policy override if set, otherwise the default.
func (f *File) EffectiveMinLength() int {
	if f == nil || f.MinLength == 0 {
		return DefaultMinLength
	}
	return f.MinLength
}
