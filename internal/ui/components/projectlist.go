package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ttrack/internal/models"
	"ttrack/internal/tracker"
	"ttrack/internal/util"
)

// Accent is the highlight color shared by the dashboard
var Accent = lipgloss.Color("125")

// ProjectItem represents a project in the list
type ProjectItem struct {
	Project models.Project
	Total   string
	Elapsed string // empty unless a timer is running
}

// FilterValue returns the filter value for the project item
func (i ProjectItem) FilterValue() string {
	return i.Project.Name
}

// Title returns the title for the project item
func (i ProjectItem) Title() string {
	if i.Elapsed != "" {
		return "● " + i.Project.Name
	}
	return i.Project.Name
}

// Description returns the description for the project item
func (i ProjectItem) Description() string {
	if i.Elapsed != "" {
		return fmt.Sprintf("Running %s", i.Elapsed)
	}
	if i.Project.Description != "" {
		return fmt.Sprintf("Total: %s - %s", i.Total, i.Project.Description)
	}
	return fmt.Sprintf("Total: %s", i.Total)
}

// ProjectListModel represents the project list model
type ProjectListModel struct {
	List     list.Model
	Selected *models.Project
}

// NewProjectListModel creates a new project list model
func NewProjectListModel(width, height int) ProjectListModel {
	listModel := list.New([]list.Item{}, list.NewDefaultDelegate(), width, height)
	listModel.Title = "Projects"
	listModel.SetShowStatusBar(false)
	listModel.SetShowHelp(false)
	listModel.SetFilteringEnabled(true)
	listModel.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(Accent).
		Bold(true).
		Padding(0, 1)

	return ProjectListModel{List: listModel}
}

// SetProjects fills the list with the active projects of st, in insertion order
func (m *ProjectListModel) SetProjects(st tracker.State, now time.Time) tea.Cmd {
	projects := st.ActiveProjects()

	items := make([]list.Item, len(projects))
	for i, p := range projects {
		item := ProjectItem{
			Project: p,
			Total:   util.FormatDuration(st.ProjectTotalHours(p.ID)),
		}
		if running := st.RunningEntry(p.ID); running != nil {
			item.Elapsed = tracker.ElapsedTime(*running, now)
		}
		items[i] = item
	}

	cmd := m.List.SetItems(items)
	m.syncSelected()
	return cmd
}

// Filtering reports whether the user is typing a filter
func (m ProjectListModel) Filtering() bool {
	return m.List.FilterState() == list.Filtering
}

func (m *ProjectListModel) syncSelected() {
	if item, ok := m.List.SelectedItem().(ProjectItem); ok {
		p := item.Project
		m.Selected = &p
	} else {
		m.Selected = nil
	}
}

// Update handles project list updates
func (m ProjectListModel) Update(msg tea.Msg) (ProjectListModel, tea.Cmd) {
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	m.syncSelected()
	return m, cmd
}

// View renders the project list
func (m ProjectListModel) View() string {
	return m.List.View()
}
