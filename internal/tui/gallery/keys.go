package gallery

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextStory key.Binding
	PrevStory key.Binding
	Focus     key.Binding
	Unfocus   key.Binding
	Press     key.Binding
	Toast     key.Binding
	Progress  key.Binding
	Origin    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextStory: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next story")),
		PrevStory: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev story")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus next")),
		Unfocus:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "focus prev")),
		Press:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
		Toast:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toast")),
		Progress:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "progress toast")),
		Origin:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "toggle origin")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextStory, k.Focus, k.Toast, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextStory, k.PrevStory},
		{k.Focus, k.Unfocus, k.Press},
		{k.Toast, k.Progress, k.Origin},
		{k.Help, k.Quit},
	}
}
