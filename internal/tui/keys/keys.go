package keys

import "github.com/charmbracelet/bubbles/key"

// RunKeys are the key bindings available while a run is in progress
type RunKeys struct {
	Stop key.Binding
	Help key.Binding
}

func NewRunKeys() RunKeys {
	return RunKeys{
		Stop: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "stop and report"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func (k RunKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Stop}
}

func (k RunKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Stop, k.Help},
	}
}
