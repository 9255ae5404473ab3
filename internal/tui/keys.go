package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the screen's key bindings. It implements help.KeyMap.
type KeyMap struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	Submit    key.Binding
	Up        key.Binding
	Down      key.Binding
	Edit      key.Binding
	Remove    key.Binding
	Cycle     key.Binding
	Recolor   key.Binding
	Spin      key.Binding
	SpinAny   key.Binding
	Cancel    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add / save")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Remove:    key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d/x", "remove")),
		Cycle:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "next color")),
		Recolor:   key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "set color")),
		Spin:      key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space/s", "spin")),
		SpinAny:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "spin")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp is shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Submit, k.SpinAny, k.Help, k.Quit}
}

// FullHelp is shown in the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.Submit, k.Cancel},
		{k.Up, k.Down, k.Edit, k.Remove},
		{k.Cycle, k.Recolor, k.Spin, k.SpinAny},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// setSpinning enables or disables the bindings that can't run mid-spin.
func (k *KeyMap) setSpinning(spinning bool) {
	k.Edit.SetEnabled(!spinning)
	k.Remove.SetEnabled(!spinning)
	k.Spin.SetEnabled(!spinning)
	k.SpinAny.SetEnabled(!spinning)
}
