package main

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wlanctl/clipboard"
	"wlanctl/netsh"
	"wlanctl/wlan"
)

const statusMsgTimeout = 3 * time.Second

// =============================================================================
// Messages
// =============================================================================

type refreshDoneMsg struct {
	err error
}

type actionKind int

const (
	actionConnect actionKind = iota
	actionDisconnect
)

type actionDoneMsg struct {
	kind actionKind
	err  error
}

type interfacesMsg struct {
	ifaces []netsh.Interface
	err    error
}

type copyDoneMsg struct {
	what string
	err  error
}

type clearStatusMsg struct {
	seq int
}

// =============================================================================
// Commands
// =============================================================================

func refreshCmd(ctx context.Context, ctl *wlan.Controller) tea.Cmd {
	return func() tea.Msg {
		log.Println("Refreshing Wi-Fi networks...")
		return refreshDoneMsg{err: ctl.Refresh(ctx)}
	}
}

func connectCmd(ctx context.Context, ctl *wlan.Controller) tea.Cmd {
	return func() tea.Msg {
		log.Printf("Connecting to '%s'", ctl.Selection())
		return actionDoneMsg{kind: actionConnect, err: ctl.Connect(ctx)}
	}
}

func disconnectCmd(ctx context.Context, ctl *wlan.Controller) tea.Cmd {
	return func() tea.Msg {
		log.Printf("Disconnecting (selected: '%s')", ctl.Selection())
		return actionDoneMsg{kind: actionDisconnect, err: ctl.Disconnect(ctx)}
	}
}

func fetchInterfacesCmd(ctx context.Context, ctl *wlan.Controller) tea.Cmd {
	return func() tea.Msg {
		ifaces, err := ctl.Interfaces(ctx)
		return interfacesMsg{ifaces: ifaces, err: err}
	}
}

func copyCmd(text, what string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.Write(text)
		if err != nil {
			log.Printf("Error copying %s: %v", what, err)
		}
		return copyDoneMsg{what: what, err: err}
	}
}

func clearStatusAfterDelay(seq int) tea.Cmd {
	return tea.Tick(statusMsgTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
