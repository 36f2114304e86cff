package main

import (
	"fmt"
	"os"

	"github.com/adze-cad/adze/pkg/csg"
	"github.com/charmbracelet/lipgloss"
)

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// printDiagnostics renders conversion diagnostics to stderr.
func printDiagnostics(diags []csg.Error) {
	for _, d := range diags {
		var label string
		switch d.Severity {
		case csg.SeverityError:
			label = errStyle.Render("error")
		case csg.SeverityWarning:
			label = warnStyle.Render("warning")
		default:
			label = infoStyle.Render("info")
		}
		loc := ""
		if d.Source != nil && d.Source.Line > 0 {
			loc = dimStyle.Render(fmt.Sprintf(" @%d:%d", d.Source.Line, d.Source.Column))
		}
		fmt.Fprintf(os.Stderr, "%s %s: %s%s\n", label, d.Code, d.Message, loc)
	}
}
