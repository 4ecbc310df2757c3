package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestSecureHandlerMasksSensitiveKeys tests that password-ish attribute
// keys are redacted.
func TestSecureHandlerMasksSensitiveKeys(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"password key", "password", "hunter2"},
		{"passwd key", "passwd", "hunter2"},
		{"pw key", "pw", "hunter2"},
		{"passphrase key", "passphrase", "correct horse"},
		{"pin key", "pin", "1234"},
		{"match key", "match", "qwer"},
		{"input key", "input", "hunter2"},
		{"banned key", "banned", "acmecorp"},
		{"compound key", "user_password_hash", "abc"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))

			logger.Info("test message", tc.key, tc.value)

			output := buf.String()
			if strings.Contains(output, tc.value) {
				t.Errorf("sensitive value %q leaked into output: %s", tc.value, output)
			}
			if !strings.Contains(output, MaskValue) {
				t.Errorf("expected mask %q in output: %s", MaskValue, output)
			}
		})
	}
}

// TestSecureHandlerPreservesSafeAttrs tests that ordinary attributes
// pass through unchanged.
func TestSecureHandlerPreservesSafeAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))

	logger.Info("analysis complete", "score", 8, "strength", "Strong", "keyboard", "qwerty-layout")

	output := buf.String()
	for _, want := range []string{"score=8", "strength=Strong", "keyboard=qwerty-layout"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output: %s", want, output)
		}
	}
	if strings.Contains(output, MaskValue) {
		t.Errorf("unexpected masking in output: %s", output)
	}
}

// TestSecureHandlerMasksSensitiveValues tests value-pattern masking
// regardless of key name.
func TestSecureHandlerMasksSensitiveValues(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		value string
	}{
		{"jwt", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.abc123"},
		{"bearer token", "Bearer abcdef123456"},
		{"basic auth", "Basic dXNlcjpwYXNz"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))

			logger.Info("test", "header", tc.value)

			if !strings.Contains(buf.String(), MaskValue) {
				t.Errorf("expected value %q to be masked: %s", tc.value, buf.String())
			}
		})
	}
}

// TestSecureHandlerSanitizesGroups tests recursive group sanitization.
func TestSecureHandlerSanitizesGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))

	logger.Info("test",
		slog.Group("audit",
			slog.String("password", "hunter2"),
			slog.Int("score", 3),
		),
	)

	output := buf.String()
	if strings.Contains(output, "hunter2") {
		t.Errorf("group attribute leaked: %s", output)
	}
	if !strings.Contains(output, "score=3") {
		t.Errorf("safe group attribute lost: %s", output)
	}
}

// TestSecureHandlerWithAttrs tests sanitization of pre-bound attributes.
func TestSecureHandlerWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))

	bound := logger.With("token", "abcd1234", "source", "list")
	bound.Info("test")

	output := buf.String()
	if strings.Contains(output, "abcd1234") {
		t.Errorf("bound sensitive attribute leaked: %s", output)
	}
	if !strings.Contains(output, "source=list") {
		t.Errorf("bound safe attribute lost: %s", output)
	}
}

// TestNewSecureLogger tests the level selection.
func TestNewSecureLogger(t *testing.T) {
	t.Parallel()

	t.Run("quiet by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, false)

		logger.Debug("debug line")
		logger.Info("info line")
		if buf.Len() != 0 {
			t.Errorf("expected no output below warn level, got: %s", buf.String())
		}

		logger.Warn("warn line")
		if !strings.Contains(buf.String(), "warn line") {
			t.Errorf("expected warn output, got: %s", buf.String())
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, true)

		logger.Debug("debug line", "password", "hunter2")

		output := buf.String()
		if !strings.Contains(output, "debug line") {
			t.Errorf("expected debug output, got: %s", output)
		}
		if strings.Contains(output, "hunter2") {
			t.Errorf("sensitive attribute leaked in verbose mode: %s", output)
		}
	})
}
