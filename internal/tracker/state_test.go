package tracker

import (
	"errors"
	"testing"
	"time"

	"ttrack/internal/models"
	"ttrack/internal/util"
)

func seedState() State {
	return State{
		Projects: models.SeedProjects(),
		Entries:  models.SeedTimeEntries(),
	}
}

func TestSeedTotals(t *testing.T) {
	st := seedState()

	if got := util.FormatDuration(st.TotalHours()); got != "6h 45m" {
		t.Errorf("TotalHours() = %q, want %q", got, "6h 45m")
	}
	if got := util.FormatDuration(st.ProjectTotalHours("proj_001")); got != "4h 30m" {
		t.Errorf("ProjectTotalHours(proj_001) = %q, want %q", got, "4h 30m")
	}
	if got := util.FormatDuration(st.ProjectTotalHours("proj_002")); got != "2h 15m" {
		t.Errorf("ProjectTotalHours(proj_002) = %q, want %q", got, "2h 15m")
	}
	if got := st.ProjectTotalHours("proj_003"); got != 0 {
		t.Errorf("ProjectTotalHours(proj_003) = %v, want 0", got)
	}
}

func TestAddProject(t *testing.T) {
	st := seedState()

	next, p, err := AddProject(st, "proj_new", "  Thesis  ", " Chapter 3 ")
	if err != nil {
		t.Fatalf("AddProject() unexpected error: %v", err)
	}
	if len(next.Projects) != len(st.Projects)+1 {
		t.Fatalf("expected %d projects, got %d", len(st.Projects)+1, len(next.Projects))
	}
	if p.Name != "Thesis" || p.Description != "Chapter 3" || !p.IsActive {
		t.Errorf("unexpected project: %+v", p)
	}

	got, ok := next.Project("proj_new")
	if !ok || got.Name != "Thesis" {
		t.Errorf("new project not retrievable by id: %+v", got)
	}

	// The input snapshot is untouched
	if len(st.Projects) != 3 {
		t.Errorf("input state was modified: %d projects", len(st.Projects))
	}
}

func TestAddProject_EmptyName(t *testing.T) {
	st := seedState()

	for _, name := range []string{"", "   "} {
		next, p, err := AddProject(st, "proj_x", name, "x")
		if !errors.Is(err, models.ErrEmptyName) {
			t.Errorf("AddProject(%q) error = %v, want ErrEmptyName", name, err)
		}
		if p != nil {
			t.Errorf("AddProject(%q) returned a project", name)
		}
		if len(next.Projects) != len(st.Projects) {
			t.Errorf("AddProject(%q) changed the project count", name)
		}
	}
}

func TestUpdateProject(t *testing.T) {
	st := seedState()

	next, p, err := UpdateProject(st, "proj_002", " Lab Prep ", "Spring")
	if err != nil {
		t.Fatalf("UpdateProject() unexpected error: %v", err)
	}
	if p.ID != "proj_002" || p.Name != "Lab Prep" || p.Description != "Spring" || !p.IsActive {
		t.Errorf("unexpected project: %+v", p)
	}
	if orig, _ := st.Project("proj_002"); orig.Name != "Lab Setup" {
		t.Errorf("input state was modified: %+v", orig)
	}

	if _, _, err := UpdateProject(next, "proj_002", "  ", "x"); !errors.Is(err, models.ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
	if _, _, err := UpdateProject(next, "proj_missing", "Name", ""); !errors.Is(err, models.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestDeleteProject_KeepsEntries(t *testing.T) {
	st := seedState()

	next, err := DeleteProject(st, "proj_001")
	if err != nil {
		t.Fatalf("DeleteProject() unexpected error: %v", err)
	}
	if len(next.Projects) != 2 {
		t.Errorf("expected 2 projects, got %d", len(next.Projects))
	}
	if len(next.Entries) != 3 {
		t.Fatalf("expected entries to survive, got %d", len(next.Entries))
	}

	orphans := 0
	for _, e := range next.Entries {
		if e.ProjectID == "proj_001" {
			orphans++
			if name := next.ProjectName(e.ProjectID); name != UnknownProject {
				t.Errorf("ProjectName(%s) = %q, want %q", e.ProjectID, name, UnknownProject)
			}
		}
	}
	if orphans != 2 {
		t.Errorf("expected 2 orphaned entries, got %d", orphans)
	}
}

func TestStartStopTimer(t *testing.T) {
	st := State{Projects: models.SeedProjects()}
	start := time.Date(2025, 10, 21, 9, 0, 0, 0, time.UTC)

	next, e, err := StartTimer(st, "entry_a", "proj_003", start)
	if err != nil {
		t.Fatalf("StartTimer() unexpected error: %v", err)
	}
	if !e.IsRunning || e.EndDatetime != nil || e.Notes != "" {
		t.Errorf("unexpected running entry: %+v", e)
	}
	if got := next.RunningEntry("proj_003"); got == nil || got.ID != "entry_a" {
		t.Errorf("RunningEntry() = %+v", got)
	}

	// Running entries contribute nothing to totals
	if got := next.TotalHours(); got != 0 {
		t.Errorf("TotalHours() with running entry = %v, want 0", got)
	}

	if _, _, err := StartTimer(next, "entry_b", "proj_003", start); !errors.Is(err, models.ErrTimerRunning) {
		t.Errorf("second StartTimer() error = %v, want ErrTimerRunning", err)
	}

	stopped, e := StopTimer(next, "proj_003", start.Add(90*time.Minute))
	if e == nil {
		t.Fatal("StopTimer() returned nil entry")
	}
	if e.IsRunning || e.EndDatetime == nil || e.EndDatetime.Before(e.StartDatetime) {
		t.Errorf("unexpected stopped entry: %+v", e)
	}
	if len(stopped.Entries) != 1 {
		t.Errorf("expected exactly one entry, got %d", len(stopped.Entries))
	}
	if got := util.FormatDuration(stopped.ProjectTotalHours("proj_003")); got != "1h 30m" {
		t.Errorf("ProjectTotalHours() = %q, want 1h 30m", got)
	}
	if !next.Entries[0].IsRunning {
		t.Error("input state was modified by StopTimer")
	}
}

func TestStopTimer_NoRunning(t *testing.T) {
	st := seedState()

	next, e := StopTimer(st, "proj_001", time.Now())
	if e != nil {
		t.Errorf("expected nil entry, got %+v", e)
	}
	if len(next.Entries) != len(st.Entries) {
		t.Error("state changed on no-op stop")
	}
}

func TestSetNotesAndDeleteEntry(t *testing.T) {
	st := seedState()

	next, err := SetNotes(st, "entry_002", " Recalibrated ")
	if err != nil {
		t.Fatalf("SetNotes() unexpected error: %v", err)
	}
	if e, _ := next.Entry("entry_002"); e.Notes != "Recalibrated" {
		t.Errorf("Notes = %q", e.Notes)
	}

	next, err = DeleteEntry(next, "entry_002")
	if err != nil {
		t.Fatalf("DeleteEntry() unexpected error: %v", err)
	}
	if _, ok := next.Entry("entry_002"); ok {
		t.Error("entry still present after delete")
	}
	if _, err := DeleteEntry(next, "entry_002"); !errors.Is(err, models.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestFindProject(t *testing.T) {
	st := seedState()

	if p, err := st.FindProject("proj_002"); err != nil || p.Name != "Lab Setup" {
		t.Errorf("FindProject(id) = %+v, %v", p, err)
	}
	if p, err := st.FindProject("research analysis"); err != nil || p.ID != "proj_001" {
		t.Errorf("FindProject(name) = %+v, %v", p, err)
	}
	if _, err := st.FindProject("nope"); !errors.Is(err, models.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}

	dup, _, _ := AddProject(st, "proj_dup", "Lab setup", "")
	if _, err := dup.FindProject("LAB SETUP"); !errors.Is(err, models.ErrAmbiguousProject) {
		t.Errorf("expected ErrAmbiguousProject, got %v", err)
	}
}

func TestCompletedEntries_SortedDesc(t *testing.T) {
	st := seedState()
	st, _, _ = StartTimer(st, "entry_run", "proj_002", time.Date(2025, 10, 21, 8, 0, 0, 0, time.Local))

	entries := st.CompletedEntries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 completed entries, got %d", len(entries))
	}
	want := []string{"entry_003", "entry_002", "entry_001"}
	for i, id := range want {
		if entries[i].ID != id {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].ID, id)
		}
	}

	projEntries := st.ProjectEntries("proj_002")
	if len(projEntries) != 2 || projEntries[0].ID != "entry_run" {
		t.Errorf("ProjectEntries() = %+v", projEntries)
	}
}

func TestElapsedTime(t *testing.T) {
	start := time.Date(2025, 10, 21, 9, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)
	now := start.Add(2*time.Hour + 5*time.Minute)

	tests := []struct {
		name  string
		entry models.TimeEntry
		want  string
	}{
		{"stopped", models.TimeEntry{StartDatetime: start, EndDatetime: &end}, "0h 45m"},
		{"running", models.TimeEntry{StartDatetime: start, IsRunning: true}, "2h 5m"},
		{"no end", models.TimeEntry{StartDatetime: start}, "0h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElapsedTime(tt.entry, now); got != tt.want {
				t.Errorf("ElapsedTime() = %q, want %q", got, tt.want)
			}
		})
	}
}
