package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"ttrack/internal/report"
	"ttrack/internal/tracker"
	"ttrack/internal/util"
)

// renderLog lists completed entries newest first
func renderLog(st tracker.State, now time.Time, width int) string {
	entries := st.CompletedEntries()

	heading := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		Render(fmt.Sprintf("Time Log (%d entries, %s total)", len(entries), util.FormatDuration(st.TotalHours())))

	if len(entries) == 0 {
		return heading + "\n\nNo completed time entries yet"
	}

	notesWidth := width - 60
	if notesWidth < 20 {
		notesWidth = 20
	}

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n\n")
	for _, e := range entries {
		name := tracker.UnknownProjectLabel
		if p, ok := st.Project(e.ProjectID); ok {
			name = p.Name
		}

		duration := tracker.ElapsedTime(e, now)
		if e.Skewed() {
			duration = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render(duration + " !")
		}

		fmt.Fprintf(&b, "  %s  %s  %s - %s  %s\n",
			lipgloss.NewStyle().Width(20).Foreground(lipgloss.Color("10")).Render(util.Truncate(name, 20)),
			e.StartDatetime.Format(report.DateLayout),
			e.StartDatetime.Format(report.ShortTimeLayout),
			e.EndDatetime.Format(report.ShortTimeLayout),
			duration,
		)
		if e.Notes != "" {
			fmt.Fprintf(&b, "    %s\n", lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(util.Truncate(e.Notes, notesWidth)))
		}
	}
	return b.String()
}
