package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ttrack/internal/models"
)

// projectForm edits the name and description of a new or existing project
type projectForm struct {
	ProjectID   string // empty when creating
	Name        textinput.Model
	Description textinput.Model
	focus       int
}

func newProjectForm(p *models.Project) projectForm {
	name := textinput.New()
	name.Placeholder = "e.g., Research Analysis"
	name.CharLimit = 120
	name.Prompt = "Project Name: "

	desc := textinput.New()
	desc.Placeholder = "Optional"
	desc.CharLimit = 500
	desc.Prompt = "Description:  "

	f := projectForm{Name: name, Description: desc}
	if p != nil {
		f.ProjectID = p.ID
		f.Name.SetValue(p.Name)
		f.Description.SetValue(p.Description)
	}
	f.Name.Focus()
	return f
}

// CanSubmit mirrors a disabled submit button: a name is required
func (f projectForm) CanSubmit() bool {
	return strings.TrimSpace(f.Name.Value()) != ""
}

func (f *projectForm) NextField() {
	f.focus = (f.focus + 1) % 2
	if f.focus == 0 {
		f.Name.Focus()
		f.Description.Blur()
	} else {
		f.Description.Focus()
		f.Name.Blur()
	}
}

func (f projectForm) Update(msg tea.Msg) (projectForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.Name, cmd = f.Name.Update(msg)
	} else {
		f.Description, cmd = f.Description.Update(msg)
	}
	return f, cmd
}

func (f projectForm) View() string {
	title := "Add New Project"
	if f.ProjectID != "" {
		title = "Edit Project"
	}

	hint := ""
	if !f.CanSubmit() {
		hint = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("A project name is required to save")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(title),
		"",
		f.Name.View(),
		f.Description.View(),
		"",
		hint,
	)
}
