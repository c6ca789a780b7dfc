package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ttrack/internal/report"
	"ttrack/internal/tracker"
)

// Messages
type tickMsg time.Time

type stateChangedMsg struct {
	status string
}

type errorMsg struct {
	err error
}

// Commands
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func toggleTimer(store *tracker.Store, projectID string) tea.Cmd {
	return func() tea.Msg {
		if store.Snapshot().RunningEntry(projectID) != nil {
			if _, err := store.StopTimer(projectID); err != nil {
				return errorMsg{err}
			}
			return stateChangedMsg{"Timer stopped"}
		}

		if _, err := store.StartTimer(projectID); err != nil {
			return errorMsg{err}
		}
		return stateChangedMsg{"Timer started"}
	}
}

func saveProject(store *tracker.Store, id, name, description string) tea.Cmd {
	return func() tea.Msg {
		if id == "" {
			p, err := store.AddProject(name, description)
			if err != nil {
				return errorMsg{err}
			}
			return stateChangedMsg{fmt.Sprintf("Created project %s", p.Name)}
		}

		p, err := store.UpdateProject(id, name, description)
		if err != nil {
			return errorMsg{err}
		}
		return stateChangedMsg{fmt.Sprintf("Updated project %s", p.Name)}
	}
}

// The dashboard asks for confirmation itself, so deletes run unconfirmed
func deleteProject(store *tracker.Store, id string) tea.Cmd {
	return func() tea.Msg {
		if _, err := store.DeleteProject(id, nil); err != nil {
			return errorMsg{err}
		}
		return stateChangedMsg{"Project deleted"}
	}
}

func deleteEntry(store *tracker.Store, id string) tea.Cmd {
	return func() tea.Msg {
		if _, err := store.DeleteEntry(id, nil); err != nil {
			return errorMsg{err}
		}
		return stateChangedMsg{"Time entry deleted"}
	}
}

func exportCSV(store *tracker.Store, dir string) tea.Cmd {
	return func() tea.Msg {
		st := store.Snapshot()
		path, err := writeFile(dir, report.CSVFilename(store.Now()), func(w io.Writer) error {
			return report.WriteCSV(w, st)
		})
		if err != nil {
			return errorMsg{err}
		}
		return stateChangedMsg{"Exported " + path}
	}
}

func exportHTML(store *tracker.Store, dir, title string) tea.Cmd {
	return func() tea.Msg {
		now := store.Now()
		r := report.Build(store.Snapshot(), title, now, report.GroupByNone)
		path, err := writeFile(dir, report.HTMLFilename(now), func(w io.Writer) error {
			return report.WriteHTML(w, r)
		})
		if err != nil {
			return errorMsg{err}
		}
		return stateChangedMsg{"Exported " + path}
	}
}

func writeFile(dir, name string, render func(io.Writer) error) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return "", fmt.Errorf("error writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("error writing %s: %w", path, err)
	}
	return path, nil
}
