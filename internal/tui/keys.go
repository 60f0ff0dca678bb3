package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the main window's bindings.
type keyMap struct {
	Scan     key.Binding
	Survey   key.Binding
	Spectrum key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Default  key.Binding
	Clear    key.Binding
	Refresh  key.Binding
	Legacy   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Scan:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new scan")),
		Survey:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "new survey")),
		Spectrum: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "new spectrum")),
		Faster:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "faster")),
		Slower:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "slower")),
		Default:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "default speed")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear chart")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh chart")),
		Legacy:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "legacy mode")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scan, k.Survey, k.Spectrum, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scan, k.Survey, k.Spectrum},
		{k.Faster, k.Slower, k.Default},
		{k.Clear, k.Refresh, k.Legacy},
		{k.Help, k.Quit},
	}
}
