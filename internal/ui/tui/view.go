package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/xlab-si/nuagex/internal/nuagex"
)

// renderView renders the watch dashboard.
func renderView(m Model) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  nuagex status: %s", m.LabName)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 40)))
	b.WriteString("\n\n")

	switch {
	case !m.Checked:
		b.WriteString(fmt.Sprintf("  %s looking up lab...\n", spinner(m)))

	case m.Lab == nil:
		b.WriteString(dimStyle.Render("  no lab with this name exists"))
		b.WriteString("\n")

	default:
		renderLab(&b, m, m.Lab)
	}

	elapsed := time.Since(m.StartTime).Round(time.Second)
	b.WriteString(footerStyle.Render(fmt.Sprintf("  polls: %d | elapsed: %s | q to quit", m.Polls, elapsed)))
	b.WriteString("\n")

	return b.String()
}

func renderLab(b *strings.Builder, m Model, lab *nuagex.Lab) {
	fmt.Fprintf(b, "  %s %s\n", statusMark(m, lab), statusLine(lab))
	fmt.Fprintf(b, "  %s %s\n", dimStyle.Render("id:"), lab.ID)

	if lab.Address == "" {
		return
	}
	fmt.Fprintf(b, "  %s %s\n", dimStyle.Render("address:"), lab.Address)

	if !lab.Running() {
		return
	}

	web := lab.Web()
	amqp := lab.AMQP()
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s (%s / %s, org %s)\n",
		dimStyle.Render("web:"), web.Address, web.User, web.Password, web.Organization)
	fmt.Fprintf(b, "  %s %s (%s / %s)\n",
		dimStyle.Render("amqp:"), amqp.Address, amqp.User, amqp.Password)
}

func statusLine(lab *nuagex.Lab) string {
	switch lab.Status {
	case nuagex.StatusStarted:
		return readyStyle.Render("running")
	case nuagex.StatusError:
		return failedStyle.Render("error")
	default:
		return waitingStyle.Render(string(lab.Status))
	}
}

func statusMark(m Model, lab *nuagex.Lab) string {
	switch lab.Status {
	case nuagex.StatusStarted:
		return readyStyle.Render("[OK]")
	case nuagex.StatusError:
		return failedStyle.Render("[!!]")
	default:
		return spinner(m)
	}
}

func spinner(m Model) string {
	return waitingStyle.Render("[" + spinnerFrames[m.SpinnerFrame%len(spinnerFrames)] + "]")
}
