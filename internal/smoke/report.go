package smoke

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	reportStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	passedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	skippedStyle = lipgloss.NewStyle().Faint(true)
	detailStyle  = lipgloss.NewStyle().Faint(true)
)

// Report renders results as a bordered table, one step per line, followed
// by a summary.
func Report(results Results) string {
	nameWidth := lipgloss.Width("step")
	for _, s := range results.Steps {
		if w := lipgloss.Width(s.Name); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Notes API smoke: " + results.Target))
	b.WriteString("\n\n")

	for _, s := range results.Steps {
		b.WriteString(statusStyle(s.Status).Render(string(s.Status)))
		b.WriteString(fmt.Sprintf("  %-*s", nameWidth, s.Name))
		if s.Status != StepSkipped {
			b.WriteString(detailStyle.Render(fmt.Sprintf("  %s", s.Duration.Round(time.Millisecond))))
		}
		if s.Err != nil {
			b.WriteString("\n      ")
			b.WriteString(failedStyle.Render(s.Err.Error()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	summary := fmt.Sprintf("%d/%d passed in %s", results.Passed(), len(results.Steps), results.Duration.Round(time.Millisecond))
	if results.OK() {
		b.WriteString(passedStyle.Render("OK") + " " + summary)
	} else {
		b.WriteString(failedStyle.Render("FAILED") + " " + summary)
	}

	return reportStyle.Render(b.String())
}

// Print writes [Report] of results to w.
func Print(w io.Writer, results Results) error {
	_, err := fmt.Fprintln(w, Report(results))
	return err
}

func statusStyle(status StepStatus) lipgloss.Style {
	switch status {
	case StepPassed:
		return passedStyle
	case StepFailed:
		return failedStyle
	default:
		return skippedStyle
	}
}
