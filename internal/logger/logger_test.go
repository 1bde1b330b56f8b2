package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/sqve/gx/internal/config"
)

// forceColors enables ANSI output for the test. The lipgloss profile is
// process-wide, so it is restored afterwards.
func forceColors(t *testing.T) {
	t.Helper()
	profile := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(profile) })
	t.Setenv("GX_TEST_COLORS", "true")
}

// capture runs fn with log output redirected and the given mode.
func capture(t *testing.T, plainMode, debugMode bool, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	t.Cleanup(restore)

	origPlain := config.Global.Plain
	config.Global.Plain = plainMode
	t.Cleanup(func() { config.Global.Plain = origPlain })

	Init(plainMode, debugMode)
	t.Cleanup(func() { Init(false, false) })

	fn()
	return buf.String()
}

func TestDebugLogging(t *testing.T) {
	t.Run("does not output when debug disabled", func(t *testing.T) {
		output := capture(t, true, false, func() { Debug("This should not appear") })

		if strings.Contains(output, "This should not appear") {
			t.Error("Debug message appeared when debug mode was disabled")
		}
	})

	t.Run("outputs with prefix when debug enabled", func(t *testing.T) {
		output := capture(t, true, true, func() { Debug("This should appear") })

		if !strings.Contains(output, "This should appear") {
			t.Error("Debug message did not appear when debug mode was enabled")
		}
		if !strings.Contains(output, "[DEBUG]") {
			t.Error("Debug prefix not found in output")
		}
	})

	t.Run("git commands are logged at debug level", func(t *testing.T) {
		output := capture(t, true, true, func() { GitCommand([]string{"push", "origin", "main"}) })

		if !strings.Contains(output, "Executing: git push origin main") {
			t.Errorf("unexpected output: %q", output)
		}
	})
}

func TestPlainOutput(t *testing.T) {
	tests := []struct {
		name   string
		log    func()
		want   string
		symbol string
	}{
		{"info", func() { Info("Detected remote: %s", "origin") }, "Detected remote: origin\n", "→"},
		{"success", func() { Success("Pushed %s", "main") }, "Pushed main\n", "✓"},
		{"warning", func() { Warning("stash kept") }, "Warning: stash kept\n", "⚠"},
		{"error", func() { Error("push failed") }, "Error: push failed\n", "✗"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := capture(t, true, false, tt.log)

			if output != tt.want {
				t.Errorf("got %q, want %q", output, tt.want)
			}
			if strings.Contains(output, tt.symbol) {
				t.Error("Plain mode output should not contain symbols")
			}
			if strings.Contains(output, "\033[") {
				t.Error("Plain mode output should not contain ANSI escape codes")
			}
		})
	}
}

func TestColoredOutput(t *testing.T) {
	forceColors(t)

	tests := []struct {
		name   string
		log    func()
		symbol string
	}{
		{"info", func() { Info("info message") }, "→"},
		{"success", func() { Success("test message") }, "✓"},
		{"warning", func() { Warning("careful") }, "⚠"},
		{"error", func() { Error("broken") }, "✗"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := capture(t, false, false, tt.log)

			if !strings.Contains(output, tt.symbol) {
				t.Errorf("Colored mode output should contain %s, got %q", tt.symbol, output)
			}
			if !strings.Contains(output, "\033[") {
				t.Error("Colored mode output should contain ANSI escape codes")
			}
		})
	}
}

func TestBlock(t *testing.T) {
	output := capture(t, true, false, func() { Block("line one\nline two\n\n") })

	if output != "line one\nline two\n" {
		t.Errorf("got %q", output)
	}
}
