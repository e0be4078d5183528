package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PrevStep   key.Binding
	NextStep   key.Binding
	First      key.Binding
	Answer     key.Binding
	Submit     key.Binding
	Cancel     key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		ScrollUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		ScrollDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		PrevStep:   key.NewBinding(key.WithKeys("pgup", "shift+tab"), key.WithHelp("pgup", "prev")),
		NextStep:   key.NewBinding(key.WithKeys("pgdown", "tab"), key.WithHelp("pgdn", "next")),
		First:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Answer:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "answer")),
		Submit:     key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "submit")),
		Cancel:     key.NewBinding(key.WithKeys("c", "esc"), key.WithHelp("c", "cancel")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) stepHelp() []key.Binding {
	return []key.Binding{k.Answer, k.ScrollUp, k.ScrollDown, k.PrevStep, k.NextStep, k.Quit}
}

func (k keyMap) summaryHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel, k.ScrollUp, k.ScrollDown, k.Quit}
}
