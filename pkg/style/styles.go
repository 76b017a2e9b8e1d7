// Package style provides the console styling and rendering for vargen's
// human-facing output.
package style

import (
	"strings"

	"github.com/pterm/pterm"
)

// Base styles
var (
	TitleStyle   = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	SuccessStyle = pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	ErrorStyle   = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	MutedStyle   = pterm.NewStyle(pterm.FgGray)
	PathStyle    = pterm.NewStyle(pterm.FgCyan, pterm.Italic)
	ChoiceStyle  = pterm.NewStyle(pterm.FgYellow)
)

// Indent indents every line of s by level levels of two spaces
func Indent(s string, level int) string {
	prefix := strings.Repeat("  ", level)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// Bold wraps s in a bold style
func Bold(s string) string {
	return pterm.NewStyle(pterm.Bold).Sprint(s)
}
