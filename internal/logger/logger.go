package logger

import (
	"fmt"
	"strings"

	"github.com/sqve/gx/internal/styles"
)

// Debug prints debug information when debug mode is enabled
func Debug(format string, args ...any) {
	if isDebug() {
		fmt.Fprintf(out(), "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints progress and detection messages
func Info(format string, args ...any) {
	if isPlain() {
		fmt.Fprintf(out(), format+"\n", args...)
		return
	}
	fmt.Fprintf(out(), "%s %s\n", styles.Render(&styles.Info, "→"), fmt.Sprintf(format, args...))
}

// Success prints success messages
func Success(format string, args ...any) {
	if isPlain() {
		fmt.Fprintf(out(), format+"\n", args...)
		return
	}
	fmt.Fprintf(out(), "%s %s\n", styles.Render(&styles.Success, "✓"), fmt.Sprintf(format, args...))
}

// Warning prints non-fatal problems
func Warning(format string, args ...any) {
	if isPlain() {
		fmt.Fprintf(out(), "Warning: "+format+"\n", args...)
		return
	}
	fmt.Fprintf(out(), "%s %s\n", styles.Render(&styles.Warning, "⚠"), fmt.Sprintf(format, args...))
}

// Error prints error messages
func Error(format string, args ...any) {
	if isPlain() {
		fmt.Fprintf(out(), "Error: "+format+"\n", args...)
		return
	}
	fmt.Fprintf(out(), "%s %s\n", styles.Render(&styles.Error, "✗"), fmt.Sprintf(format, args...))
}

// Block prints a multi-line message verbatim, dimming it in color mode.
func Block(text string) {
	text = strings.TrimRight(text, "\n")
	if isPlain() {
		fmt.Fprintln(out(), text)
		return
	}
	fmt.Fprintln(out(), styles.Render(&styles.Dimmed, text))
}

// GitCommand logs a git invocation at debug level
func GitCommand(args []string) {
	Debug("Executing: git %s", strings.Join(args, " "))
}

// Step logs the progress of a multi-step workflow at debug level
func Step(step, total int, message string) {
	Debug("%s", StepFormat(step, total, message))
}
