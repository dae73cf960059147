package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/soopatree/balloon/internal/filter"
)

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Outcome columns
	PrevColumn key.Binding
	NextColumn key.Binding
	MoveLeft   key.Binding
	MoveRight  key.Binding

	// Date presets
	PresetAll     key.Binding
	Preset1Day    key.Binding
	Preset7Days   key.Binding
	Preset30Days  key.Binding
	Preset90Days  key.Binding
	Preset365Days key.Binding

	// Application
	ToggleView key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		PrevColumn: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "prev column"),
		),
		NextColumn: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next column"),
		),
		MoveLeft: key.NewBinding(
			key.WithKeys("<", "shift+left"),
			key.WithHelp("<", "move column left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys(">", "shift+right"),
			key.WithHelp(">", "move column right"),
		),
		PresetAll: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "all time"),
		),
		Preset1Day: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "1 day"),
		),
		Preset7Days: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "7 days"),
		),
		Preset30Days: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "30 days"),
		),
		Preset90Days: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "90 days"),
		),
		Preset365Days: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "365 days"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "ranking/outcomes"),
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

// ShortHelp returns keybindings for the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleView, k.PresetAll, k.Preset7Days, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ToggleView},
		{k.PrevColumn, k.NextColumn, k.MoveLeft, k.MoveRight},
		{k.PresetAll, k.Preset1Day, k.Preset7Days, k.Preset30Days, k.Preset90Days, k.Preset365Days},
		{k.Help, k.Quit},
	}
}

// presetFor maps a pressed key to its date preset.
func (k KeyMap) presetFor(msg tea.KeyMsg) (filter.Preset, bool) {
	bindings := []struct {
		binding key.Binding
		preset  filter.Preset
	}{
		{k.PresetAll, filter.PresetAll},
		{k.Preset1Day, filter.Preset1Day},
		{k.Preset7Days, filter.Preset7Days},
		{k.Preset30Days, filter.Preset30Days},
		{k.Preset90Days, filter.Preset90Days},
		{k.Preset365Days, filter.Preset365Days},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.preset, true
		}
	}
	return "", false
}
