package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	prevPage   key.Binding
	nextPage   key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	logout     key.Binding
	newItem    key.Binding
	search     key.Binding
	delete     key.Binding
	restore    key.Binding
	share      key.Binding
	revoke     key.Binding
	profile    key.Binding
	copy       key.Binding
	save       key.Binding
	upload     key.Binding
	register   key.Binding
	google     key.Binding
	github     key.Binding
	permission key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	prevPage:   key.NewBinding(key.WithKeys("left", "pgup")),
	nextPage:   key.NewBinding(key.WithKeys("right", "pgdown")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q")),
	logout:     key.NewBinding(key.WithKeys("L")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	search:     key.NewBinding(key.WithKeys("/")),
	delete:     key.NewBinding(key.WithKeys("d")),
	restore:    key.NewBinding(key.WithKeys("r")),
	share:      key.NewBinding(key.WithKeys("s")),
	revoke:     key.NewBinding(key.WithKeys("ctrl+r")),
	profile:    key.NewBinding(key.WithKeys("p")),
	copy:       key.NewBinding(key.WithKeys("c")),
	save:       key.NewBinding(key.WithKeys("ctrl+s")),
	upload:     key.NewBinding(key.WithKeys("ctrl+u")),
	register:   key.NewBinding(key.WithKeys("ctrl+r")),
	google:     key.NewBinding(key.WithKeys("ctrl+g")),
	github:     key.NewBinding(key.WithKeys("ctrl+b")),
	permission: key.NewBinding(key.WithKeys("ctrl+p")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n", "esc")),
}
