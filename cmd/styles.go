package main

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Margin(1, 1)

	// ANSI colors for broad terminal support (conhost included)
	colorPrimary   = lipgloss.Color("5")
	colorSecondary = lipgloss.Color("4")
	colorAccent    = lipgloss.Color("6")
	colorSuccess   = lipgloss.Color("2")
	colorError     = lipgloss.Color("1")
	colorWarning   = lipgloss.Color("3")
	colorFaint     = lipgloss.Color("8")
	colorText      = lipgloss.Color("7")

	titleStyle           = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1)
	listTitleStyle       = lipgloss.NewStyle().Foreground(colorSecondary).Padding(0, 1).Bold(true)
	listItemStyle        = lipgloss.NewStyle().PaddingLeft(2).Foreground(colorText)
	listCursorItemStyle  = lipgloss.NewStyle().PaddingLeft(1).Foreground(colorPrimary).Bold(true)
	listNoItemsStyle     = lipgloss.NewStyle().Faint(true).Margin(1, 0).Foreground(colorFaint)
	selectedMarkStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	hiddenNameStyle      = lipgloss.NewStyle().Foreground(colorFaint).Italic(true)
	selectionHeaderStyle = lipgloss.NewStyle().Foreground(colorAccent)
	logPaneStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).BorderForeground(colorFaint).Padding(0, 1)
	logPaneFocusedStyle  = logPaneStyle.BorderForeground(colorAccent)
	logTitleStyle        = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
	infoBoxStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).BorderForeground(colorAccent).Padding(1, 2).MarginTop(1)
	helpGlobalStyle      = lipgloss.NewStyle().Foreground(colorFaint)
	busyStyle            = lipgloss.NewStyle().Foreground(colorAccent)

	statusMessageBaseStyle = lipgloss.NewStyle()
	errorStyle             = statusMessageBaseStyle.Foreground(colorError).Bold(true)
	successStyle           = statusMessageBaseStyle.Foreground(colorSuccess).Bold(true)
	warningStyle           = statusMessageBaseStyle.Foreground(colorWarning)
	infoStyle              = statusMessageBaseStyle.Foreground(colorFaint)
)
