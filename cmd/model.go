package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wlanctl/wlan"
)

const minListHeight = 3

// =============================================================================
// View States
// =============================================================================

type viewState int

const (
	viewNetworks viewState = iota
	viewInterfaceInfo
)

func (v viewState) String() string {
	switch v {
	case viewNetworks:
		return "Networks"
	case viewInterfaceInfo:
		return "InterfaceInfo"
	}
	return fmt.Sprintf("Unknown(%d)", v)
}

type focusArea int

const (
	focusList focusArea = iota
	focusLog
)

// =============================================================================
// Main Model
// =============================================================================

type modelOptions struct {
	RefreshOnStart bool
	LogHeight      int
}

type model struct {
	ctx context.Context
	ctl *wlan.Controller

	state viewState
	focus focusArea

	networkList list.Model
	logView     viewport.Model
	infoView    viewport.Model
	spinner     spinner.Model
	keys        keyMap
	help        help.Model

	refreshOnStart bool
	logHeight      int

	// One external operation at a time; keys that would start another are
	// ignored until it reports back.
	busy      bool
	busyLabel string

	statusMsg string
	statusSeq int

	width  int
	height int
}

func newModel(ctx context.Context, ctl *wlan.Controller, opts modelOptions) model {
	networks := list.New([]list.Item{}, networkDelegate{selection: ctl.Selection}, 0, 0)
	networks.Title = "Available Wi-Fi Networks"
	networks.Styles.Title = listTitleStyle
	networks.SetShowStatusBar(true)
	networks.SetStatusBarItemName("network", "networks")
	networks.SetShowHelp(false)
	networks.DisableQuitKeybindings()
	networks.Styles.NoItems = listNoItemsStyle.SetString("No networks. Press r to scan.")
	networks.FilterInput.Prompt = "/ "

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = busyStyle

	h := help.New()
	subtle := lipgloss.NewStyle().Foreground(colorFaint)
	h.Styles = help.Styles{
		ShortKey:  subtle,
		ShortDesc: subtle,
		FullKey:   subtle,
		FullDesc:  subtle,
		Ellipsis:  subtle,
	}

	logHeight := opts.LogHeight
	if logHeight <= 0 {
		logHeight = 8
	}

	m := model{
		ctx:            ctx,
		ctl:            ctl,
		state:          viewNetworks,
		networkList:    networks,
		logView:        viewport.New(0, logHeight),
		infoView:       viewport.New(0, 0),
		spinner:        s,
		keys:           defaultKeyBindings,
		help:           h,
		refreshOnStart: opts.RefreshOnStart,
		logHeight:      logHeight,
	}
	m.keys.currentState = m.state
	if m.refreshOnStart {
		m.busy = true
		m.busyLabel = "Scanning..."
	}
	return m
}

func (m model) Init() tea.Cmd {
	if !m.refreshOnStart {
		return nil
	}
	return tea.Batch(refreshCmd(m.ctx, m.ctl), m.spinner.Tick)
}

// =============================================================================
// Helpers
// =============================================================================

func (m *model) setStatus(msg string, style lipgloss.Style) tea.Cmd {
	m.statusSeq++
	m.statusMsg = style.Render(msg)
	return clearStatusAfterDelay(m.statusSeq)
}

func (m *model) startBusy(label string) tea.Cmd {
	m.busy = true
	m.busyLabel = label
	m.statusMsg = ""
	return m.spinner.Tick
}

func (m *model) setNetworkItems() tea.Cmd {
	names := m.ctl.Networks()
	items := make([]list.Item, len(names))
	for i, name := range names {
		items[i] = networkItem{name: name, index: i}
	}
	m.networkList.Title = fmt.Sprintf("Available Wi-Fi Networks (%d)", len(names))
	return m.networkList.SetItems(items)
}

func (m *model) syncLog() {
	content := strings.ReplaceAll(strings.Join(m.ctl.Log(), "\n"), "\r", "")
	m.logView.SetContent(content)
	m.logView.GotoBottom()
}

// lastLogEntry is the newest log entry, first line only.
func (m *model) lastLogEntry() string {
	entries := m.ctl.Log()
	if len(entries) == 0 {
		return ""
	}
	last := entries[len(entries)-1]
	if i := strings.IndexByte(last, '\n'); i >= 0 {
		last = last[:i]
	}
	return last
}

// selectCursor reports the item under the cursor as the user's selection. An
// empty list or a hidden network counts as no selection.
func (m *model) selectCursor() {
	item, ok := m.networkList.SelectedItem().(networkItem)
	if !ok {
		m.ctl.Select("")
		return
	}
	m.ctl.Select(item.name)
}

func (m *model) resizeComponents() {
	availableWidth := m.width - appStyle.GetHorizontalFrameSize()
	availableHeight := m.height - appStyle.GetVerticalFrameSize()
	if availableWidth < 0 {
		availableWidth = 0
	}
	m.help.Width = availableWidth

	headerHeight := lipgloss.Height(m.headerView(availableWidth))
	m.keys.currentState = m.state
	footerHeight := lipgloss.Height(m.footerView(availableWidth))
	statusHeight := 1
	logBoxHeight := m.logHeight + 1 + logPaneStyle.GetVerticalFrameSize()

	listHeight := availableHeight - headerHeight - footerHeight - statusHeight - logBoxHeight
	if listHeight < minListHeight {
		listHeight = minListHeight
	}
	m.networkList.SetSize(availableWidth, listHeight)

	m.logView.Width = availableWidth - logPaneStyle.GetHorizontalFrameSize()
	m.logView.Height = m.logHeight

	m.infoView.Width = availableWidth - infoBoxStyle.GetHorizontalFrameSize()
	m.infoView.Height = availableHeight - headerHeight - footerHeight - infoBoxStyle.GetVerticalFrameSize()
	if m.infoView.Height < 0 {
		m.infoView.Height = 0
	}
}

// =============================================================================
// Update
// =============================================================================

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.keys.currentState = m.state

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeComponents()
		return m, nil

	case spinner.TickMsg:
		if m.busy {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
		}

	case refreshDoneMsg:
		m.busy = false
		m.syncLog()
		var parseErr *wlan.ParseFormatError
		switch {
		case errors.As(msg.err, &parseErr):
			// The list on screen stays as it was.
			cmds = append(cmds, m.setStatus(fmt.Sprintf("Could not read scan output: %v", msg.err), errorStyle))
		case msg.err != nil:
			cmds = append(cmds, m.setNetworkItems())
			cmds = append(cmds, m.setStatus(fmt.Sprintf("Error scanning: %v", msg.err), errorStyle))
		default:
			cmds = append(cmds, m.setNetworkItems())
			cmds = append(cmds, m.setStatus(fmt.Sprintf("Found %d networks", len(m.networkList.Items())), successStyle))
		}

	case actionDoneMsg:
		m.busy = false
		m.syncLog()
		style := successStyle
		switch {
		case msg.err != nil:
			style = errorStyle
		case msg.kind == actionDisconnect:
			style = infoStyle
		}
		cmds = append(cmds, m.setStatus(m.lastLogEntry(), style))

	case interfacesMsg:
		m.busy = false
		m.syncLog()
		if msg.err != nil {
			m.infoView.SetContent(errorStyle.Render(fmt.Sprintf("Error: %v", msg.err)))
		} else {
			m.infoView.SetContent(formatInterfaces(msg.ifaces))
		}

	case copyDoneMsg:
		if msg.err != nil {
			cmds = append(cmds, m.setStatus(fmt.Sprintf("Error copying %s: %v", msg.what, msg.err), errorStyle))
		} else {
			cmds = append(cmds, m.setStatus(fmt.Sprintf("Copied %s to clipboard", msg.what), infoStyle))
		}

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyPress(msg)...)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) handleKeyPress(msg tea.KeyMsg) []tea.Cmd {
	// Typing into the filter owns every key.
	if m.state == viewNetworks && m.networkList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.networkList, cmd = m.networkList.Update(msg)
		return []tea.Cmd{cmd}
	}

	if key.Matches(msg, m.keys.Quit) {
		return []tea.Cmd{tea.Quit}
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.resizeComponents()
		return nil
	}

	switch m.state {
	case viewNetworks:
		if m.focus == focusLog {
			return m.handleLogKeys(msg)
		}
		return m.handleNetworksListKeys(msg)

	case viewInterfaceInfo:
		if key.Matches(msg, m.keys.Back) {
			m.state = viewNetworks
			m.resizeComponents()
			return nil
		}
		var cmd tea.Cmd
		m.infoView, cmd = m.infoView.Update(msg)
		return []tea.Cmd{cmd}
	}
	return nil
}

func (m *model) handleLogKeys(msg tea.KeyMsg) []tea.Cmd {
	if key.Matches(msg, m.keys.FocusNext) || key.Matches(msg, m.keys.Back) {
		m.focus = focusList
		return nil
	}
	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return []tea.Cmd{cmd}
}

func (m *model) handleNetworksListKeys(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.FocusNext):
		m.focus = focusLog

	case key.Matches(msg, m.keys.Refresh):
		if m.busy {
			return nil
		}
		cmds = append(cmds, m.startBusy("Scanning..."), refreshCmd(m.ctx, m.ctl))

	case key.Matches(msg, m.keys.Connect):
		if m.busy {
			return nil
		}
		ssid := m.ctl.Selection()
		if ssid == "" {
			return []tea.Cmd{m.setStatus("Select a network first", warningStyle)}
		}
		cmds = append(cmds, m.startBusy(fmt.Sprintf("Connecting to %s...", ssid)), connectCmd(m.ctx, m.ctl))

	case key.Matches(msg, m.keys.Disconnect):
		if m.busy {
			return nil
		}
		ssid := m.ctl.Selection()
		if ssid == "" {
			return []tea.Cmd{m.setStatus("Select a network first", warningStyle)}
		}
		cmds = append(cmds, m.startBusy(fmt.Sprintf("Disconnecting from %s...", ssid)), disconnectCmd(m.ctx, m.ctl))

	case key.Matches(msg, m.keys.Info):
		if m.busy {
			return nil
		}
		m.state = viewInterfaceInfo
		m.infoView.SetContent("Loading interface details...")
		m.infoView.GotoTop()
		m.resizeComponents()
		cmds = append(cmds, m.startBusy("Reading interfaces..."), fetchInterfacesCmd(m.ctx, m.ctl))

	case key.Matches(msg, m.keys.Copy):
		ssid := m.ctl.Selection()
		if ssid == "" {
			return []tea.Cmd{m.setStatus("Select a network first", warningStyle)}
		}
		cmds = append(cmds, copyCmd(ssid, "SSID"))

	case key.Matches(msg, m.keys.CopyLog):
		cmds = append(cmds, copyCmd(strings.Join(m.ctl.Log(), "\n"), "log"))

	// The selection stays fixed while an operation that reads it is in flight.
	case key.Matches(msg, m.keys.Select):
		if !m.busy {
			m.selectCursor()
		}

	case key.Matches(msg, m.keys.Deselect) && m.networkList.FilterState() == list.Unfiltered:
		if m.busy {
			return nil
		}
		m.ctl.Select("")
		cmds = append(cmds, m.setStatus("Selection cleared", infoStyle))

	default:
		before := m.networkList.Index()
		m.networkList, cmd = m.networkList.Update(msg)
		cmds = append(cmds, cmd)
		if m.networkList.Index() != before && !m.busy {
			m.selectCursor()
		}
	}

	return cmds
}
