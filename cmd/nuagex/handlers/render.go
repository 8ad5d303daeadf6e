package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/xlab-si/nuagex/internal/reconcile"
)

// OutputJSON selects machine-readable output.
const OutputJSON = "json"

// stdout is the destination for rendered output (replaced in tests).
var stdout io.Writer = os.Stdout

// isInteractiveTTY reports whether stdout is an interactive terminal.
// Styled output is only used interactively; pipes get plain text.
var isInteractiveTTY = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var (
	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#22c55e"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))
)

// printReport renders a reconciliation outcome in the requested format.
func printReport(report reconcile.Report, output string, dryRun bool) error {
	if output == OutputJSON {
		return encodeJSON(report)
	}

	verdict := "no changes"
	if report.Changed {
		verdict = "changed"
	}
	if dryRun {
		verdict += " (dry-run)"
	}
	if isInteractiveTTY() {
		verdict = okStyle.Render(verdict)
	}

	var b strings.Builder
	writeLine(&b, "result:", verdict)
	writeLabLines(&b, report)
	return emit(b.String())
}

// printStatus renders a read-only status lookup.
func printStatus(name string, report reconcile.Report, output string) error {
	if output == OutputJSON {
		return encodeJSON(report)
	}

	var b strings.Builder
	if report.LabID == "" {
		writeLine(&b, "lab:", fmt.Sprintf("%s (absent)", name))
		return emit(b.String())
	}
	writeLabLines(&b, report)
	return emit(b.String())
}

func writeLabLines(b *strings.Builder, report reconcile.Report) {
	if report.LabID == "" {
		return
	}
	writeLine(b, "lab:", report.LabName)
	writeLine(b, "id:", report.LabID)
	if report.LabAddress != "" {
		writeLine(b, "address:", report.LabAddress)
	}
	if report.LabWeb != nil && report.LabWeb.Address != "" {
		writeLine(b, "web:", fmt.Sprintf("%s (%s / %s, org %s)",
			report.LabWeb.Address, report.LabWeb.User, report.LabWeb.Password, report.LabWeb.Organization))
	}
	if report.LabAMQP != nil && report.LabAMQP.Address != "" {
		writeLine(b, "amqp:", fmt.Sprintf("%s (%s / %s)",
			report.LabAMQP.Address, report.LabAMQP.User, report.LabAMQP.Password))
	}
}

func writeLine(b *strings.Builder, label, value string) {
	if isInteractiveTTY() {
		label = labelStyle.Render(label)
	}
	fmt.Fprintf(b, "%s %s\n", label, value)
}

func emit(s string) error {
	_, err := fmt.Fprint(stdout, s)
	return err
}

func encodeJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
