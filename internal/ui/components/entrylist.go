package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ttrack/internal/models"
	"ttrack/internal/report"
	"ttrack/internal/tracker"
)

// EntryItem represents a time entry in the list
type EntryItem struct {
	Entry   models.TimeEntry
	Elapsed string
}

// FilterValue returns the filter value for the entry item
func (i EntryItem) FilterValue() string {
	return i.Entry.Notes
}

// Title returns the date and time span of the entry
func (i EntryItem) Title() string {
	e := i.Entry
	title := fmt.Sprintf("%s • %s", e.StartDatetime.Format(report.DateLayout), e.StartDatetime.Format(report.ShortTimeLayout))
	if e.EndDatetime != nil {
		title += " - " + e.EndDatetime.Format(report.ShortTimeLayout)
	}
	return title
}

// Description returns the duration and notes of the entry
func (i EntryItem) Description() string {
	desc := i.Elapsed
	if i.Entry.IsRunning {
		desc += " (running)"
	}
	if i.Entry.Notes != "" {
		desc += " - " + i.Entry.Notes
	}
	return desc
}

// EntryListModel lists the entries of one project
type EntryListModel struct {
	List     list.Model
	Selected *models.TimeEntry
}

// NewEntryListModel creates a new entry list model
func NewEntryListModel(width, height int) EntryListModel {
	listModel := list.New([]list.Item{}, list.NewDefaultDelegate(), width, height)
	listModel.Title = "Time Entries"
	listModel.SetShowStatusBar(false)
	listModel.SetShowHelp(false)
	listModel.SetFilteringEnabled(false)
	listModel.Styles.Title = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	return EntryListModel{List: listModel}
}

// SetEntries replaces the listed entries; they are shown in the given order
func (m *EntryListModel) SetEntries(entries []models.TimeEntry, now time.Time) tea.Cmd {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = EntryItem{Entry: e, Elapsed: tracker.ElapsedTime(e, now)}
	}

	cmd := m.List.SetItems(items)
	m.syncSelected()
	return cmd
}

func (m *EntryListModel) syncSelected() {
	if item, ok := m.List.SelectedItem().(EntryItem); ok {
		e := item.Entry
		m.Selected = &e
	} else {
		m.Selected = nil
	}
}

// Update handles entry list updates
func (m EntryListModel) Update(msg tea.Msg) (EntryListModel, tea.Cmd) {
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	m.syncSelected()
	return m, cmd
}

// View renders the entry list
func (m EntryListModel) View() string {
	return m.List.View()
}
