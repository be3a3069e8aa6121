package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/SamuraiJack/typedoc/internal/diagnostic"
)

// severityStyle maps each severity to its label style.
func severityStyle(s diagnostic.Severity) lipgloss.Style {
	switch s {
	case diagnostic.SeverityError:
		return StyleError
	case diagnostic.SeverityWarning:
		return StyleWarning
	default:
		return StyleInfo
	}
}

// PrintDiagnostics renders diagnostics to w, one per line, with a styled
// severity label and position. Returns the number of error-severity entries.
func PrintDiagnostics(w io.Writer, diags []diagnostic.Diagnostic) int {
	errors := 0
	for _, d := range diags {
		if d.Severity == diagnostic.SeverityError {
			errors++
		}

		line := severityStyle(d.Severity).Render(d.Severity.String())
		if d.Pos != "" {
			line += " " + StylePos.Render(d.Pos)
		}
		line += " " + d.Message
		if d.Code != "" {
			line += " " + StyleDim.Render("["+d.Code+"]")
		}

		fmt.Fprintln(w, line)
	}

	if len(diags) > 0 {
		fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("%d problem(s), %d error(s)", len(diags), errors)))
	}

	return errors
}
