package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/passaudit/passaudit/internal/config"
)

// TestNewInitCmd tests the init command flag configuration.
func TestNewInitCmd(t *testing.T) {
	t.Parallel()

	cmd := NewInitCmd()

	if cmd.Use != "init" {
		t.Errorf("expected Use 'init', got %q", cmd.Use)
	}

	output := cmd.Flags().Lookup("output")
	if output == nil {
		t.Fatal("expected output flag")
	}
	if output.Shorthand != "o" {
		t.Errorf("output shorthand = %q, want 'o'", output.Shorthand)
	}
	if output.DefValue != configFileName {
		t.Errorf("output default = %q, want %q", output.DefValue, configFileName)
	}

	force := cmd.Flags().Lookup("force")
	if force == nil {
		t.Fatal("expected force flag")
	}
	if force.Shorthand != "f" {
		t.Errorf("force shorthand = %q, want 'f'", force.Shorthand)
	}
}

// TestRunInitCmd tests policy file creation.
func TestRunInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("creates file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".passaudit")
		cmd := NewInitCmd()

		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"-o", path})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("policy file not created: %v", err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("file mode = %v, want 0600", info.Mode().Perm())
		}
		if !strings.Contains(out.String(), "Created policy file") {
			t.Errorf("expected confirmation message, got: %s", out.String())
		}

		// The template is valid YAML and yields a valid policy.
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		var policy config.File
		if err := yaml.Unmarshal(data, &policy); err != nil {
			t.Fatalf("template is not valid YAML: %v", err)
		}
		if err := policy.Validate(); err != nil {
			t.Fatalf("template policy is invalid: %v", err)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".passaudit")
		if err := os.WriteFile(path, []byte("minLength: 12\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		cmd := NewInitCmd()
		cmd.SetArgs([]string{"-o", path})

		if err := cmd.Execute(); err == nil {
			t.Error("expected an error when the file exists")
		}

		// The existing file is untouched.
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "minLength: 12\n" {
			t.Errorf("existing file was modified: %q", string(data))
		}
	})

	t.Run("force overwrites", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".passaudit")
		if err := os.WriteFile(path, []byte("old content"), 0o600); err != nil {
			t.Fatal(err)
		}

		cmd := NewInitCmd()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetArgs([]string{"-o", path, "-f"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) == "old content" {
			t.Error("file was not overwritten with -f")
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "policy.yaml")
		cmd := NewInitCmd()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetArgs([]string{"-o", path})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("policy file not created in nested directory: %v", err)
		}
	})
}
