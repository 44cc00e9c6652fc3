package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const hiddenNetworkLabel = "<Hidden Network>"

// networkItem is one scan result. index keeps duplicates distinct.
type networkItem struct {
	name  string
	index int
}

func (n networkItem) DisplayName() string {
	if n.name == "" {
		return hiddenNetworkLabel
	}
	return n.name
}

func (n networkItem) FilterValue() string { return n.DisplayName() }

// networkDelegate renders one line per network and marks the controller's
// current selection, which can differ from the cursor.
type networkDelegate struct {
	selection func() string
}

func (d networkDelegate) Height() int                             { return 1 }
func (d networkDelegate) Spacing() int                            { return 0 }
func (d networkDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d networkDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	n, ok := listItem.(networkItem)
	if !ok {
		return
	}

	mark := "  "
	if n.name != "" && d.selection != nil && d.selection() == n.name {
		mark = selectedMarkStyle.Render("● ")
	}

	name := n.DisplayName()
	if n.name == "" {
		name = hiddenNameStyle.Render(name)
	}

	if index == m.Index() {
		fmt.Fprint(w, listCursorItemStyle.Render("▸ "+mark+name))
		return
	}
	fmt.Fprint(w, listItemStyle.Render(mark+name))
}
