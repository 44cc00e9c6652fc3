package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"wlanctl/netsh"
	"wlanctl/wlan"
)

const (
	scanKey       = "wlan show network"
	disconnectKey = "wlan disconnect"
	interfacesKey = "wlan show interfaces"
)

// scriptedRunner answers tool invocations from canned output. Safe for use from
// the program's command goroutines.
type scriptedRunner struct {
	mu      sync.Mutex
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func newScriptedRunner(scan string) *scriptedRunner {
	return &scriptedRunner{
		outputs: map[string]string{scanKey: scan},
		errs:    map[string]error{},
	}
}

func (r *scriptedRunner) Run(_ context.Context, args ...string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := strings.Join(args, " ")
	r.calls = append(r.calls, k)
	if err := r.errs[k]; err != nil {
		return "", err
	}
	return r.outputs[k], nil
}

func (r *scriptedRunner) set(k, output string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outputs[k] = output
}

func (r *scriptedRunner) fail(k string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs[k] = &netsh.CommandError{Tool: "netsh", Args: strings.Fields(k), Err: errors.New("exit status 1")}
}

func (r *scriptedRunner) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// runCmd executes cmd and any batch it expands to, collecting the messages.
// Only use it on commands that return immediately (no tea.Tick).
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", next)
	}
	return nm, cmd
}

func press(t *testing.T, m model, keys string) (model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
}

const waitDuration = 3 * time.Second

func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	teatest.WaitFor(
		tb,
		tm.Output(),
		func(bts []byte) bool { return bytes.Contains(bts, []byte(substr)) },
		teatest.WithDuration(waitDuration),
	)
}

func newTestController(r netsh.Runner) *wlan.Controller {
	return wlan.New(r)
}
