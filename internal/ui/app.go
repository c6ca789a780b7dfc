package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ttrack/internal/config"
	"ttrack/internal/tracker"
	"ttrack/internal/ui/components"
	"ttrack/internal/util"
)

type screen int

const (
	homeScreen screen = iota
	detailScreen
	logScreen
	formScreen
)

// pendingDelete is a destructive action waiting for y/Y
type pendingDelete struct {
	prompt string
	run    tea.Cmd
}

// Model represents the UI model
type Model struct {
	Store     *tracker.Store
	Title     string
	ExportDir string

	Projects components.ProjectListModel
	Entries  components.EntryListModel
	Log      viewport.Model
	Form     projectForm
	Spinner  spinner.Model
	Help     help.Model

	// SelectedID is the project shown on the detail screen
	SelectedID string

	StatusMessage string
	ErrorMessage  string
	Now           time.Time
	Width         int
	Height        int
	Ready         bool

	screen   screen
	previous screen
	pending  *pendingDelete
}

// NewModel creates a new UI model
func NewModel(store *tracker.Store, cfg *config.Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(components.Accent)

	m := Model{
		Store:         store,
		Title:         cfg.ReportTitle,
		ExportDir:     ".",
		Projects:      components.NewProjectListModel(80, 20),
		Entries:       components.NewEntryListModel(80, 14),
		Log:           viewport.New(80, 20),
		Spinner:       s,
		Help:          help.New(),
		StatusMessage: "Ready",
		Now:           store.Now(),
	}
	m.refresh()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, tick())
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Projects.List.SetSize(msg.Width, msg.Height-6)
		m.Entries.List.SetSize(msg.Width, msg.Height-11)
		m.Log.Width = msg.Width
		m.Log.Height = msg.Height - 6
		m.Help.Width = msg.Width
		m.Ready = true
		return m, nil

	case tickMsg:
		m.Now = m.Store.Now()
		return m, tea.Batch(m.refresh(), tick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case stateChangedMsg:
		m.ErrorMessage = ""
		m.StatusMessage = msg.status
		m.Now = m.Store.Now()
		return m, m.refresh()

	case errorMsg:
		m.ErrorMessage = msg.err.Error()
		m.StatusMessage = "Error"
		return m, m.refresh()
	}

	switch m.screen {
	case homeScreen:
		var cmd tea.Cmd
		m.Projects, cmd = m.Projects.Update(msg)
		cmds = append(cmds, cmd)
	case detailScreen:
		var cmd tea.Cmd
		m.Entries, cmd = m.Entries.Update(msg)
		cmds = append(cmds, cmd)
	case logScreen:
		var cmd tea.Cmd
		m.Log, cmd = m.Log.Update(msg)
		cmds = append(cmds, cmd)
	case formScreen:
		var cmd tea.Cmd
		m.Form, cmd = m.Form.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.pending != nil {
		p := m.pending
		m.pending = nil
		if key.Matches(msg, keys.Confirm) {
			return m, p.run
		}
		m.StatusMessage = "Cancelled"
		return m, nil
	}

	switch m.screen {
	case homeScreen:
		return m.homeKey(msg)
	case detailScreen:
		return m.detailKey(msg)
	case logScreen:
		return m.logKey(msg)
	case formScreen:
		return m.formKey(msg)
	}
	return m, nil
}

func (m Model) homeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.Projects.Filtering() {
		m.Projects, cmd = m.Projects.Update(msg)
		return m, cmd
	}

	selected := m.Projects.Selected
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Open):
		if selected != nil {
			m.SelectedID = selected.ID
			m.screen = detailScreen
			m.Entries.List.Select(0)
			return m, m.refresh()
		}
		return m, nil
	case key.Matches(msg, keys.Toggle):
		if selected != nil {
			return m, toggleTimer(m.Store, selected.ID)
		}
		return m, nil
	case key.Matches(msg, keys.New):
		return m.openForm("")
	case key.Matches(msg, keys.Edit):
		if selected != nil {
			return m.openForm(selected.ID)
		}
		return m, nil
	case key.Matches(msg, keys.Delete):
		if selected != nil {
			m.pending = &pendingDelete{
				prompt: tracker.DeleteProjectPrompt,
				run:    deleteProject(m.Store, selected.ID),
			}
		}
		return m, nil
	case key.Matches(msg, keys.Log):
		m.screen = logScreen
		m.Log.GotoTop()
		return m, nil
	}

	m.Projects, cmd = m.Projects.Update(msg)
	return m, cmd
}

func (m Model) detailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Back):
		m.screen = homeScreen
		m.SelectedID = ""
		return m, nil
	case key.Matches(msg, keys.Toggle):
		return m, toggleTimer(m.Store, m.SelectedID)
	case key.Matches(msg, keys.Edit):
		return m.openForm(m.SelectedID)
	case key.Matches(msg, keys.Delete):
		e := m.Entries.Selected
		if e == nil {
			return m, nil
		}
		if e.IsRunning {
			m.StatusMessage = "Stop the timer before deleting this entry"
			return m, nil
		}
		m.pending = &pendingDelete{
			prompt: tracker.DeleteEntryPrompt,
			run:    deleteEntry(m.Store, e.ID),
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Entries, cmd = m.Entries.Update(msg)
	return m, cmd
}

func (m Model) logKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Back):
		m.screen = homeScreen
		return m, nil
	case key.Matches(msg, keys.Export):
		return m, exportCSV(m.Store, m.ExportDir)
	case key.Matches(msg, keys.Report):
		return m, exportHTML(m.Store, m.ExportDir, m.Title)
	}

	var cmd tea.Cmd
	m.Log, cmd = m.Log.Update(msg)
	return m, cmd
}

func (m Model) formKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		m.screen = m.previous
		return m, nil
	case key.Matches(msg, keys.Next):
		m.Form.NextField()
		return m, nil
	case msg.Type == tea.KeyEnter:
		if !m.Form.CanSubmit() {
			return m, nil
		}
		m.screen = m.previous
		return m, saveProject(m.Store, m.Form.ProjectID, m.Form.Name.Value(), m.Form.Description.Value())
	}

	var cmd tea.Cmd
	m.Form, cmd = m.Form.Update(msg)
	return m, cmd
}

// openForm shows the project form, empty when projectID is ""
func (m Model) openForm(projectID string) (tea.Model, tea.Cmd) {
	form := newProjectForm(nil)
	if projectID != "" {
		p, found := m.Store.Snapshot().Project(projectID)
		if !found {
			return m, nil
		}
		form = newProjectForm(p)
	}

	m.Form = form
	m.previous = m.screen
	m.screen = formScreen
	return m, textinput.Blink
}

// refresh rebuilds every view from the current snapshot
func (m *Model) refresh() tea.Cmd {
	st := m.Store.Snapshot()
	cmds := []tea.Cmd{m.Projects.SetProjects(st, m.Now)}

	if m.SelectedID != "" {
		if _, ok := st.Project(m.SelectedID); ok {
			cmds = append(cmds, m.Entries.SetEntries(st.ProjectEntries(m.SelectedID), m.Now))
		} else {
			m.SelectedID = ""
			if m.screen == detailScreen {
				m.screen = homeScreen
			}
			if m.screen == formScreen && m.previous == detailScreen {
				m.previous = homeScreen
			}
		}
	}

	m.Log.SetContent(renderLog(st, m.Now, m.Width))
	return tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	st := m.Store.Snapshot()

	running := len(st.RunningEntries())
	heading := m.Title
	if running > 0 {
		heading = fmt.Sprintf("%s  %s %d running", heading, m.Spinner.View(), running)
	}
	titleBar := lipgloss.NewStyle().
		Bold(true).
		Foreground(components.Accent).
		Padding(0, 1).
		Render(heading)

	var body string
	var bindings []key.Binding
	switch m.screen {
	case homeScreen:
		body = m.Projects.View()
		bindings = keys.homeHelp()
	case detailScreen:
		body = m.detailView(st)
		bindings = keys.detailHelp()
	case logScreen:
		body = m.Log.View()
		bindings = keys.logHelp()
	case formScreen:
		body = lipgloss.NewStyle().Padding(1, 2).Render(m.Form.View())
		bindings = keys.formHelp()
	}

	status := m.StatusMessage
	if m.pending != nil {
		status = m.pending.prompt + " (y/N)"
	}
	statusBar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1).
		Render(status)

	errorView := ""
	if m.ErrorMessage != "" {
		errorView = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Padding(0, 1).
			Render(m.ErrorMessage)
	}

	helpView := lipgloss.NewStyle().Padding(0, 1).Render(m.Help.ShortHelpView(bindings))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		body,
		statusBar,
		errorView,
		helpView,
	)
}

func (m Model) detailView(st tracker.State) string {
	p, ok := st.Project(m.SelectedID)
	if !ok {
		return ""
	}

	name := lipgloss.NewStyle().Bold(true).Render(p.Name)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(p.Description)
	total := fmt.Sprintf("Total time: %s", util.FormatDuration(st.ProjectTotalHours(p.ID)))

	timer := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("Timer stopped")
	if e := st.RunningEntry(p.ID); e != nil {
		timer = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).
			Render(fmt.Sprintf("%s Running %s", m.Spinner.View(), tracker.ElapsedTime(*e, m.Now)))
	}

	header := lipgloss.NewStyle().Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, name, desc, total, timer),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.Entries.View())
}

// Run starts the dashboard and blocks until it exits
func Run(store *tracker.Store, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(store, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
