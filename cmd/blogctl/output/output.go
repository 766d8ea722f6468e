package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle  = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// Success prints a success message
func Success(w io.Writer, format string, args ...interface{}) {
	fmt.Fprint(w, successStyle.Render("✓ "))
	fmt.Fprintf(w, format+"\n", args...)
}

// Warning prints a warning message
func Warning(w io.Writer, format string, args ...interface{}) {
	fmt.Fprint(w, warningStyle.Render("⚠ "))
	fmt.Fprintf(w, format+"\n", args...)
}

// Error prints an error message
func Error(w io.Writer, format string, args ...interface{}) {
	fmt.Fprint(w, errorStyle.Render("✗ "))
	fmt.Fprintf(w, format+"\n", args...)
}

// Muted prints a muted message
func Muted(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Table renders rows under headers with a rounded border.
func Table(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
