package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings of the reader
type keyMap struct {
	PrevPage    key.Binding
	NextPage    key.Binding
	PrevSubPage key.Binding
	NextSubPage key.Binding
	Back        key.Binding
	Forward     key.Binding
	Home        key.Binding
	Reload      key.Binding
	Return      key.Binding
	Source      key.Binding
	Reader      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevPage: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next page"),
		),
		PrevSubPage: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous sub-page"),
		),
		NextSubPage: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next sub-page"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "b"),
			key.WithHelp("⌫/b", "history back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "history forward"),
		),
		Home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "page 100"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Return: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "back from error"),
		),
		Source: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view source"),
		),
		Reader: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "switch reader"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Home, k.Reload, k.Help, k.Quit}
}

// FullHelp returns all bindings, grouped in columns.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevPage, k.NextPage, k.PrevSubPage, k.NextSubPage},
		{k.Back, k.Forward, k.Home, k.Reload},
		{k.Return, k.Source, k.Reader, k.Quit},
	}
}
