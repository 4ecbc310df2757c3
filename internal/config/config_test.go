package config

import (
	"errors"
	"strings"
	"testing"
)

// TestNewConfig tests the default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.BatchSize != DefaultBatchSize {
		t.Errorf("expected batch size %d, got %d", DefaultBatchSize, cfg.BatchSize)
	}
	if !cfg.SaveToDB {
		t.Error("expected SaveToDB to default to true")
	}
	if cfg.Verbose {
		t.Error("expected Verbose to default to false")
	}
	if cfg.JSONReport || cfg.MarkdownReport {
		t.Error("expected report format flags to default to false")
	}
}

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: nil,
		},
		{
			name:    "zero batch size",
			mutate:  func(c *Config) { c.BatchSize = 0 },
			wantErr: ErrInvalidBatchSize,
		},
		{
			name:    "negative batch size",
			mutate:  func(c *Config) { c.BatchSize = -3 },
			wantErr: ErrInvalidBatchSize,
		},
		{
			name: "json and markdown together",
			mutate: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
		{
			name: "list file with positional passwords",
			mutate: func(c *Config) {
				c.ListFile = "candidates.txt"
				c.Passwords = []string{"hunter2"}
			},
			wantErr: ErrConflictingInputs,
		},
		{
			name: "policy with low min length",
			mutate: func(c *Config) {
				c.Policy = &File{MinLength: 4}
			},
			wantErr: ErrInvalidMinLength,
		},
		{
			name: "valid policy",
			mutate: func(c *Config) {
				c.Policy = &File{MinLength: 12, BannedWords: []string{"acme"}}
			},
			wantErr: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

// TestXDGDirs tests that the XDG paths end with the application name.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	if !strings.HasSuffix(XDGDataDir(), AppName) {
		t.Errorf("data dir %q does not end with %q", XDGDataDir(), AppName)
	}
	if !strings.HasSuffix(XDGConfigDir(), AppName) {
		t.Errorf("config dir %q does not end with %q", XDGConfigDir(), AppName)
	}
}
