// Package ui renders the timestamped, prefixed progress messages shared by
// all commands.
package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Marker prefixes every line so tool output stands out from raw git output.
const Marker = "==>"

const timestampFormat = "2006-01-02 15:04:05"

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("202"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// now is swapped out in tests to pin the timestamp.
var now = time.Now

func line(w io.Writer, style lipgloss.Style, format string, a ...any) {
	stamp := now().Format(timestampFormat)
	msg := fmt.Sprintf(format, a...)
	// Ignore write errors; there is nothing useful to do with them here.
	_, _ = fmt.Fprintf(w, "%s %s\n", style.Render(Marker+" "+stamp), msg)
}

// Infof prints a neutral progress message.
func Infof(w io.Writer, format string, a ...any) {
	line(w, infoStyle, format, a...)
}

// Successf prints a completion message.
func Successf(w io.Writer, format string, a ...any) {
	line(w, successStyle, format, a...)
}

// Warnf prints a non-fatal warning.
func Warnf(w io.Writer, format string, a ...any) {
	line(w, warningStyle, "Warning: "+format, a...)
}

// Errorf prints a fatal diagnostic.
func Errorf(w io.Writer, format string, a ...any) {
	line(w, errorStyle, "Error: "+format, a...)
}
