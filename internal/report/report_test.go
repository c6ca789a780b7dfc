package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"ttrack/internal/models"
	"ttrack/internal/tracker"
)

func seedState() tracker.State {
	return tracker.State{
		Projects: models.SeedProjects(),
		Entries:  models.SeedTimeEntries(),
	}
}

func TestWriteCSV(t *testing.T) {
	st := seedState()
	st, _, _ = tracker.StartTimer(st, "entry_run", "proj_003", time.Now())

	var buf bytes.Buffer
	if err := WriteCSV(&buf, st); err != nil {
		t.Fatalf("WriteCSV() unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Project,Start Date,Start Time,End Date,End Time,Duration,Notes" {
		t.Errorf("unexpected header: %q", lines[0])
	}

	want := `"Research Analysis","10/19/2025","9:00:00 AM","10/19/2025","11:30:00 AM","2h 30m","Reviewed 15 papers on cognitive load"`
	if lines[1] != want {
		t.Errorf("row 1:\n got %s\nwant %s", lines[1], want)
	}
	if !strings.HasPrefix(lines[2], `"Lab Setup",`) {
		t.Errorf("row 2 out of stored order: %s", lines[2])
	}
}

func TestWriteCSV_QuotesAndOrphans(t *testing.T) {
	st := seedState()
	st, _ = tracker.SetNotes(st, "entry_002", `said "done", left`)
	st, _ = tracker.DeleteProject(st, "proj_002")

	var buf bytes.Buffer
	if err := WriteCSV(&buf, st); err != nil {
		t.Fatalf("WriteCSV() unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), `"Unknown","10/19/2025","1:00:00 PM"`) {
		t.Errorf("orphaned entry should show Unknown project:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), `"said ""done"", left"`) {
		t.Errorf("embedded quotes not doubled:\n%s", buf.String())
	}
}

func TestFilenames(t *testing.T) {
	now := time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

	if got := CSVFilename(now); got != "time-tracker-2026-10-19.csv" {
		t.Errorf("CSVFilename() = %q", got)
	}
	if got := HTMLFilename(now); got != "time-tracker-report-2026-10-19.html" {
		t.Errorf("HTMLFilename() = %q", got)
	}
	if got := PDFFilename(now); got != "time-tracker-report-2026-10-19.pdf" {
		t.Errorf("PDFFilename() = %q", got)
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 10, 19, 15, 4, 5, 0, time.Local)
	r := Build(seedState(), "", now, GroupByNone)

	if r.Title != DefaultTitle {
		t.Errorf("Title = %q", r.Title)
	}
	if r.TotalHours != "6h 45m" {
		t.Errorf("TotalHours = %q, want 6h 45m", r.TotalHours)
	}
	if r.EntryCount != 3 {
		t.Errorf("EntryCount = %d", r.EntryCount)
	}
	if r.Generated != "10/19/2026, 3:04:05 PM" {
		t.Errorf("Generated = %q", r.Generated)
	}
	if len(r.Sections) != 1 || len(r.Sections[0].Rows) != 3 {
		t.Fatalf("unexpected sections: %+v", r.Sections)
	}

	first := r.Sections[0].Rows[0]
	if first.EntryID != "entry_003" || first.StartTime != "10:00 AM" || first.EndTime != "12:00 PM" || first.Duration != "2h 0m" {
		t.Errorf("unexpected first row: %+v", first)
	}
}

func TestBuild_GroupedByDay(t *testing.T) {
	r := Build(seedState(), "Lab Hours", time.Now(), GroupByDay)

	if len(r.Sections) != 2 {
		t.Fatalf("expected 2 day sections, got %d", len(r.Sections))
	}
	if r.Sections[0].Title != "Monday, 20 Oct 2025" || r.Sections[0].Subtotal != "2h 0m" {
		t.Errorf("unexpected first section: %+v", r.Sections[0])
	}
	if r.Sections[1].Title != "Sunday, 19 Oct 2025" || r.Sections[1].Subtotal != "4h 45m" {
		t.Errorf("unexpected second section: %+v", r.Sections[1])
	}
}

func TestWriteHTML(t *testing.T) {
	st := seedState()
	st, _ = tracker.SetNotes(st, "entry_001", "<script>alert(1)</script>")

	var buf bytes.Buffer
	if err := WriteHTML(&buf, Build(st, "Lab & Field", time.Now(), GroupByNone)); err != nil {
		t.Fatalf("WriteHTML() unexpected error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "<h1>Lab &amp; Field</h1>") {
		t.Error("title missing or unescaped")
	}
	if !strings.Contains(out, "<title>"+DocumentTitle+"</title>") {
		t.Error("document title should stay fixed when the heading is configured")
	}
	if strings.Contains(out, "<script>alert(1)</script>") {
		t.Error("notes were not escaped")
	}
	if !strings.Contains(out, "window.print()") || !strings.Contains(out, "250") {
		t.Error("print script missing")
	}
	if !strings.Contains(out, "<strong>Total Entries:</strong> 3") {
		t.Error("summary missing entry count")
	}

	// Newest entry first
	i3 := strings.Index(out, "Drafted introduction section")
	i2 := strings.Index(out, "Calibrated microscopes")
	if i3 == -1 || i2 == -1 || i3 > i2 {
		t.Error("rows are not sorted by start time descending")
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, Build(seedState(), "", time.Now(), GroupByWeek)); err != nil {
		t.Fatalf("WritePDF() unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output is not a PDF: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}
