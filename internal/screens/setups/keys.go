package setups

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Open    key.Binding
	Close   key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Spot    key.Binding
	Entry   key.Binding
	Exit    key.Binding
	NextSet key.Binding
	PrevSet key.Binding
	Filter  key.Binding
	Clear   key.Binding
	Accept  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Open:    key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("Enter", "Details")),
		Close:   key.NewBinding(key.WithKeys("esc", "q", "backspace"), key.WithHelp("Esc", "Close")),
		NextTab: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("Tab", "Section")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
		Spot:    key.NewBinding(key.WithKeys("1")),
		Entry:   key.NewBinding(key.WithKeys("2")),
		Exit:    key.NewBinding(key.WithKeys("3")),
		NextSet: key.NewBinding(key.WithKeys("down", "j", "n"), key.WithHelp("↑↓", "Switch setup")),
		PrevSet: key.NewBinding(key.WithKeys("up", "k", "p")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "Filter")),
		Clear:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Clear")),
		Accept:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Done")),
	}
}
