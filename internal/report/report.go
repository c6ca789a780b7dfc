// Package report renders completed time entries as CSV, printable HTML and PDF.
package report

import (
	"fmt"
	"time"

	"ttrack/internal/models"
	"ttrack/internal/tracker"
	"ttrack/internal/util"
)

// Layouts used for dates and times in exports
const (
	DateLayout      = "1/2/2006"
	TimeLayout      = "3:04:05 PM"
	ShortTimeLayout = "03:04 PM"
	StampLayout     = "1/2/2006, 3:04:05 PM"
)

// DefaultTitle is the report heading when none is configured
const DefaultTitle = "Time Tracker Report"

// Row is one completed entry, formatted for display
type Row struct {
	EntryID   string
	Project   string
	Date      string
	StartTime string
	EndTime   string
	Duration  string
	Notes     string
	Skewed    bool
}

// Section is a titled run of rows with its subtotal
type Section struct {
	Title    string
	Subtotal string
	Rows     []Row
}

// Report is the content shared by the HTML and PDF renditions
type Report struct {
	Title      string
	Generated  string
	TotalHours string
	EntryCount int
	Sections   []Section
}

// Build collects completed entries newest first, grouped as requested
func Build(st tracker.State, title string, now time.Time, by GroupBy) Report {
	if title == "" {
		title = DefaultTitle
	}

	entries := st.CompletedEntries()
	r := Report{
		Title:      title,
		Generated:  now.Format(StampLayout),
		TotalHours: util.FormatDuration(st.TotalHours()),
		EntryCount: len(entries),
	}

	for _, g := range GroupEntries(entries, by) {
		sec := Section{
			Title:    g.Title,
			Subtotal: util.FormatDuration(g.Hours),
		}
		for _, e := range g.Entries {
			sec.Rows = append(sec.Rows, reportRow(st, e))
		}
		r.Sections = append(r.Sections, sec)
	}
	return r
}

func reportRow(st tracker.State, e models.TimeEntry) Row {
	notes := e.Notes
	if notes == "" {
		notes = "-"
	}
	return Row{
		EntryID:   e.ID,
		Project:   st.ProjectName(e.ProjectID),
		Date:      e.StartDatetime.Format(DateLayout),
		StartTime: e.StartDatetime.Format(ShortTimeLayout),
		EndTime:   e.EndDatetime.Format(ShortTimeLayout),
		Duration:  util.FormatDuration(e.Hours()),
		Notes:     notes,
		Skewed:    e.Skewed(),
	}
}

// Filename returns "<prefix>-YYYY-MM-DD.<ext>" using the UTC date of now
func Filename(prefix string, now time.Time, ext string) string {
	return fmt.Sprintf("%s-%s.%s", prefix, now.UTC().Format("2006-01-02"), ext)
}
