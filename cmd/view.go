package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"wlanctl/netsh"
)

// =============================================================================
// View
// =============================================================================

func (m model) View() string {
	availableWidth := m.width - appStyle.GetHorizontalFrameSize()

	header := m.headerView(availableWidth)
	m.keys.currentState = m.state
	footer := m.footerView(availableWidth)

	var content string
	switch m.state {
	case viewNetworks:
		content = lipgloss.JoinVertical(lipgloss.Left,
			m.networkList.View(),
			m.statusView(availableWidth),
			m.logPaneView(),
		)
	case viewInterfaceInfo:
		content = infoBoxStyle.Render(m.infoView.View())
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, content, footer))
}

func (m model) headerView(width int) string {
	title := titleStyle.Render(appName)

	var right string
	if m.busy {
		right = busyStyle.Render(m.spinner.View() + " " + m.busyLabel)
	} else if sel := m.ctl.Selection(); sel != "" {
		right = selectionHeaderStyle.Render("Selected: " + sel)
	} else {
		right = helpGlobalStyle.Render("Nothing selected")
	}

	spacing := width - lipgloss.Width(title) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, title, strings.Repeat(" ", spacing), right)
}

func (m model) footerView(width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, helpGlobalStyle.Render(m.help.View(m.keys)))
}

func (m model) statusView(width int) string {
	if m.statusMsg == "" {
		return " "
	}
	return ansi.Truncate(m.statusMsg, width, "…")
}

func (m model) logPaneView() string {
	style := logPaneStyle
	if m.focus == focusLog {
		style = logPaneFocusedStyle
	}
	title := logTitleStyle.Render("Log")
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, m.logView.View()))
}

var interfaceFieldOrder = []string{
	netsh.FieldName,
	netsh.FieldDescription,
	netsh.FieldState,
	netsh.FieldSSID,
	netsh.FieldBSSID,
	netsh.FieldRadioType,
	netsh.FieldSignal,
	netsh.FieldProfile,
}

func formatInterfaces(ifaces []netsh.Interface) string {
	if len(ifaces) == 0 {
		return infoStyle.Render("No wireless interfaces found.")
	}

	var blocks []string
	for _, iface := range ifaces {
		var lines []string
		for _, field := range interfaceFieldOrder {
			if v, ok := iface[field]; ok && v != "" {
				lines = append(lines, fmt.Sprintf("%-12s %s", field+":", v))
			}
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}
