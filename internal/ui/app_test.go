package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ttrack/internal/config"
	"ttrack/internal/models"
	"ttrack/internal/tracker"
	"ttrack/internal/ui/components"
)

func newTestModel(t *testing.T) (Model, *tracker.Store, *time.Time) {
	t.Helper()

	now := time.Date(2025, 10, 21, 12, 0, 0, 0, time.Local)
	n := 0
	store := tracker.NewStore(
		tracker.State{Projects: models.SeedProjects(), Entries: models.SeedTimeEntries()},
		tracker.WithClock(func() time.Time { return now }),
		tracker.WithIDGenerator(func(prefix string) string {
			n++
			return fmt.Sprintf("%s_ui%d", prefix, n)
		}),
	)
	m := NewModel(store, config.Default(t.TempDir()))
	m.ExportDir = t.TempDir()
	return m, store, &now
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText feeds text to the focused input, dropping cursor blink commands
func typeText(m Model, s string) Model {
	next, _ := m.Update(runes(s))
	return next.(Model)
}

// press sends a key and feeds the resulting message back, as the program loop would
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()

	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case stateChangedMsg, errorMsg:
		next, _ = m.Update(out)
		m = next.(Model)
	}
	return m
}

func TestToggleTimer(t *testing.T) {
	m, store, now := newTestModel(t)

	m = press(t, m, runes("s"))
	if m.ErrorMessage != "" {
		t.Fatalf("unexpected error: %s", m.ErrorMessage)
	}
	if store.Snapshot().RunningEntry("proj_001") == nil {
		t.Fatal("expected a running timer for proj_001")
	}
	if m.StatusMessage != "Timer started" {
		t.Errorf("status = %q", m.StatusMessage)
	}

	*now = now.Add(90 * time.Minute)
	next, cmd := m.Update(tickMsg(*now))
	m = next.(Model)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	item := m.Projects.List.Items()[0].(components.ProjectItem)
	if item.Elapsed != "1h 30m" {
		t.Errorf("elapsed = %q, want 1h 30m", item.Elapsed)
	}

	m = press(t, m, runes("s"))
	if store.Snapshot().RunningEntry("proj_001") != nil {
		t.Error("timer still running after second toggle")
	}
	if got := store.Snapshot().ProjectTotalHours("proj_001"); got != 6 {
		t.Errorf("total = %v, want 6", got)
	}
}

func TestDeleteProject_NeedsConfirmation(t *testing.T) {
	m, store, _ := newTestModel(t)

	m = press(t, m, runes("d"))
	if m.pending == nil || m.pending.prompt != tracker.DeleteProjectPrompt {
		t.Fatalf("expected pending delete prompt, got %+v", m.pending)
	}
	if !strings.Contains(m.View(), tracker.DeleteProjectPrompt) {
		t.Error("view does not show the confirmation prompt")
	}

	m = press(t, m, runes("n"))
	if m.pending != nil || m.StatusMessage != "Cancelled" {
		t.Errorf("expected cancellation, status %q", m.StatusMessage)
	}
	if len(store.Snapshot().Projects) != 3 {
		t.Fatal("declined delete removed a project")
	}

	m = press(t, m, runes("d"))
	m = press(t, m, runes("y"))
	st := store.Snapshot()
	if _, ok := st.Project("proj_001"); ok {
		t.Error("proj_001 not deleted")
	}
	if len(st.Entries) != 3 {
		t.Errorf("entries = %d, want 3 kept", len(st.Entries))
	}
}

func TestProjectForm(t *testing.T) {
	m, store, _ := newTestModel(t)

	m = press(t, m, runes("n"))
	if m.screen != formScreen {
		t.Fatalf("screen = %v, want form", m.screen)
	}

	// enter does nothing until a name is typed
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != formScreen {
		t.Fatal("empty form was submitted")
	}

	m = typeText(m, "Thesis")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "Chapter drafts")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.screen != homeScreen {
		t.Errorf("screen = %v, want home", m.screen)
	}
	p, err := store.Snapshot().FindProject("Thesis")
	if err != nil {
		t.Fatalf("project not created: %v", err)
	}
	if p.ID != "proj_ui1" || p.Description != "Chapter drafts" {
		t.Errorf("unexpected project %+v", p)
	}
}

func TestDetailClearsDeletedSelection(t *testing.T) {
	m, store, _ := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != detailScreen || m.SelectedID != "proj_001" {
		t.Fatalf("expected detail of proj_001, got screen %v id %q", m.screen, m.SelectedID)
	}
	if got := len(m.Entries.List.Items()); got != 2 {
		t.Errorf("detail entries = %d, want 2", got)
	}

	if _, err := store.UpdateProject("proj_001", "Research", "renamed"); err != nil {
		t.Fatal(err)
	}
	next, _ := m.Update(stateChangedMsg{"Updated"})
	m = next.(Model)
	if !strings.Contains(m.View(), "renamed") {
		t.Error("detail view does not show the edited project")
	}

	if _, err := store.DeleteProject("proj_001", nil); err != nil {
		t.Fatal(err)
	}
	next, _ = m.Update(stateChangedMsg{"Project deleted"})
	m = next.(Model)
	if m.screen != homeScreen || m.SelectedID != "" {
		t.Errorf("expected home with no selection, got screen %v id %q", m.screen, m.SelectedID)
	}
}

func TestDetail_RunningEntryNotDeletable(t *testing.T) {
	m, store, _ := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, runes("s"))
	if store.Snapshot().RunningEntry("proj_001") == nil {
		t.Fatal("timer not started from detail screen")
	}

	// newest entry, the running one, is selected first
	m = press(t, m, runes("d"))
	if m.pending != nil {
		t.Error("running entry offered for deletion")
	}
	if len(store.Snapshot().Entries) != 4 {
		t.Error("entry removed")
	}
}

func TestLogExports(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, runes("l"))
	if m.screen != logScreen {
		t.Fatalf("screen = %v, want log", m.screen)
	}

	m = press(t, m, runes("x"))
	m = press(t, m, runes("p"))
	if m.ErrorMessage != "" {
		t.Fatalf("export failed: %s", m.ErrorMessage)
	}

	for _, name := range []string{"time-tracker-2025-10-21.csv", "time-tracker-report-2025-10-21.html"} {
		if _, err := os.Stat(filepath.Join(m.ExportDir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestRenderLog_Orphans(t *testing.T) {
	m, store, _ := newTestModel(t)
	if _, err := store.DeleteProject("proj_002", nil); err != nil {
		t.Fatal(err)
	}

	out := renderLog(store.Snapshot(), m.Now, 100)
	if !strings.Contains(out, tracker.UnknownProjectLabel) {
		t.Errorf("orphaned entry not labelled:\n%s", out)
	}
	if !strings.Contains(out, "6h 45m total") {
		t.Errorf("missing overall total:\n%s", out)
	}
}
