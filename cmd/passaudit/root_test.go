package main

import "testing"

// TestNewRootCmd tests the root command configuration.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("basic properties", func(t *testing.T) {
		t.Parallel()

		if cmd.Use != "passaudit" {
			t.Errorf("expected Use 'passaudit', got %q", cmd.Use)
		}
		if cmd.Short == "" {
			t.Error("expected non-empty Short description")
		}
		if cmd.Long == "" {
			t.Error("expected non-empty Long description")
		}
		if cmd.Version == "" {
			t.Error("expected non-empty Version")
		}
	})

	t.Run("verbose flag", func(t *testing.T) {
		t.Parallel()

		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected persistent verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("subcommands registered", func(t *testing.T) {
		t.Parallel()

		want := map[string]bool{
			"check":    false,
			"generate": false,
			"history":  false,
			"init":     false,
			"version":  false,
		}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Name()]; ok {
				want[sub.Name()] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("expected subcommand %q", name)
			}
		}
	})

	t.Run("error handling configuration", func(t *testing.T) {
		t.Parallel()

		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}

// TestGetVerboseFlag tests verbose flag resolution from a subcommand.
func TestGetVerboseFlag(t *testing.T) {
	t.Parallel()

	t.Run("default is false", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if getVerboseFlag(cmd) {
			t.Error("expected verbose to default to false")
		}
	})

	t.Run("set via persistent flag", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		if err := cmd.PersistentFlags().Set("verbose", "true"); err != nil {
			t.Fatal(err)
		}
		if !getVerboseFlag(cmd) {
			t.Error("expected verbose to be true after setting the flag")
		}
	})
}
