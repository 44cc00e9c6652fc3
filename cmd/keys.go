package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Deselect   key.Binding
	Connect    key.Binding
	Disconnect key.Binding
	Refresh    key.Binding
	Info       key.Binding
	Copy       key.Binding
	CopyLog    key.Binding
	Filter     key.Binding
	FocusNext  key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding

	currentState viewState
}

func (k keyMap) ShortHelp() []key.Binding {
	bindings := []key.Binding{k.Help}
	switch k.currentState {
	case viewNetworks:
		bindings = append(bindings, k.Select, k.Connect, k.Disconnect, k.Refresh, k.FocusNext)
	case viewInterfaceInfo:
		bindings = append(bindings, k.Back)
	}
	return append(bindings, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	if k.currentState == viewInterfaceInfo {
		return [][]key.Binding{{k.Back, k.Quit}}
	}
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Deselect},
		{k.Connect, k.Disconnect, k.Refresh, k.Info},
		{k.Copy, k.CopyLog, k.Filter, k.FocusNext},
		{k.Help, k.Quit},
	}
}

var defaultKeyBindings = keyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Deselect:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
	Connect:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "connect")),
	Disconnect: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "disconnect")),
	Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Info:       key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "interface info")),
	Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy SSID")),
	CopyLog:    key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy log")),
	Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	FocusNext:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "list/log")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}
