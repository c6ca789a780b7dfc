package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Open    key.Binding
	Toggle  key.Binding
	New     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Log     key.Binding
	Export  key.Binding
	Report  key.Binding
	Back    key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Next    key.Binding
}

var keys = keyMap{
	Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Toggle:  key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "start/stop")),
	New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new project")),
	Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Log:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "time log")),
	Export:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export csv")),
	Report:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "html report")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
	Next:    key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
}

func (k keyMap) homeHelp() []key.Binding {
	return []key.Binding{k.Open, k.Toggle, k.New, k.Edit, k.Delete, k.Log, k.Quit}
}

func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Edit, k.Delete, k.Back, k.Quit}
}

func (k keyMap) logHelp() []key.Binding {
	return []key.Binding{k.Export, k.Report, k.Back, k.Quit}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Next, key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")), k.Back}
}
