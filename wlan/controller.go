// Package wlan holds the network list, the current selection and the action log
// behind the UI, and drives the external tool for scans and connect/disconnect.
//
// Every outcome of an external call becomes one log entry. Methods also return
// the error they logged so a presentation layer can style it; callers never
// need to log it again.
package wlan

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"wlanctl/netsh"
)

const scanErrorPrefix = "Error retrieving network information: "

// Controller is safe for concurrent use. Refresh, Connect, Disconnect and
// Interfaces run one at a time for their whole duration, external call
// included; Select and the accessors never wait on the tool.
type Controller struct {
	runner    netsh.Runner
	commands  netsh.Commands
	marker    string
	parse     LineParser
	timeout   time.Duration
	onRefresh func(names []string)

	opMu sync.Mutex

	mu        sync.Mutex
	networks  []string
	selection string
	entries   []string
}

// Option configures a Controller.
type Option func(*Controller)

// WithCommands overrides the argument vectors passed to the tool.
func WithCommands(c netsh.Commands) Option {
	return func(ctl *Controller) { ctl.commands = c }
}

// WithMarker sets the substring that selects network lines in scan output.
func WithMarker(marker string) Option {
	return func(ctl *Controller) { ctl.marker = marker }
}

// WithLineParser swaps the per-line name extraction.
func WithLineParser(p LineParser) Option {
	return func(ctl *Controller) { ctl.parse = p }
}

// WithTimeout bounds each external call. Zero waits indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(ctl *Controller) { ctl.timeout = d }
}

// OnRefresh registers fn to receive the new list whenever a refresh replaces it.
// fn may read the controller but must not start another operation.
func OnRefresh(fn func(names []string)) Option {
	return func(ctl *Controller) { ctl.onRefresh = fn }
}

// New returns a Controller driving runner.
func New(runner netsh.Runner, opts ...Option) *Controller {
	ctl := &Controller{
		runner:   runner,
		commands: netsh.DefaultCommands(),
		marker:   DefaultMarker,
		parse:    ParseSSIDField,
	}
	for _, opt := range opts {
		opt(ctl)
	}
	return ctl
}

func (c *Controller) logf(format string, args ...any) {
	entry := fmt.Sprintf(format, args...)
	c.mu.Lock()
	c.entries = append(c.entries, entry)
	c.mu.Unlock()
	log.Printf("wlan: %s", entry)
}

func (c *Controller) setNetworks(names []string) {
	c.mu.Lock()
	c.networks = names
	c.mu.Unlock()
}

func (c *Controller) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}

func (c *Controller) render() {
	if c.onRefresh != nil {
		c.onRefresh(c.Networks())
	}
}

// Refresh rescans and rebuilds the network list.
//
// A failed scan empties the list. A malformed marked line stops parsing: the
// names read before it are kept, the rest of the output is ignored and the
// refresh listener is not called.
func (c *Controller) Refresh(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	callCtx, cancel := c.callContext(ctx)
	output, err := netsh.ShowNetworks(callCtx, c.runner, c.commands)
	cancel()

	if err != nil {
		c.setNetworks(nil)
		c.logf("%s%v", scanErrorPrefix, err)
		c.render()
		return err
	}
	c.logf("Raw Output:\n%s", output)

	var names []string
	for _, line := range markedLines(output, c.marker) {
		name, err := c.parse(line)
		if err != nil {
			c.setNetworks(names)
			c.logf("%s%v", scanErrorPrefix, err)
			return err
		}
		names = append(names, name)
	}

	c.setNetworks(names)
	c.render()
	return nil
}

// Select records name as the current selection; "" clears it.
func (c *Controller) Select(name string) {
	c.mu.Lock()
	c.selection = name
	c.mu.Unlock()
}

// Connect joins the selected network. Without a selection it does nothing.
func (c *Controller) Connect(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	ssid := c.Selection()
	if ssid == "" {
		return nil
	}
	callCtx, cancel := c.callContext(ctx)
	defer cancel()
	if _, err := netsh.Connect(callCtx, c.runner, c.commands, ssid); err != nil {
		c.logf("Error connecting to %s: %v", ssid, err)
		return err
	}
	c.logf("Connected to: %s", ssid)
	return nil
}

// Disconnect drops the current connection. The tool is not told which network;
// the selection only names it in the log. Without a selection it does nothing.
func (c *Controller) Disconnect(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	ssid := c.Selection()
	if ssid == "" {
		return nil
	}
	callCtx, cancel := c.callContext(ctx)
	defer cancel()
	if _, err := netsh.Disconnect(callCtx, c.runner, c.commands); err != nil {
		c.logf("Error disconnecting from %s: %v", ssid, err)
		return err
	}
	c.logf("Disconnected from: %s", ssid)
	return nil
}

// Networks returns the current list in scan order.
func (c *Controller) Networks() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.networks...)
}

// Selection returns the selected name, or "" when none.
func (c *Controller) Selection() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// Log returns every entry recorded so far, oldest first.
func (c *Controller) Log() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.entries...)
}

// Interfaces reports the wireless interfaces. Failures are logged like the
// other operations.
func (c *Controller) Interfaces(ctx context.Context) ([]netsh.Interface, error) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	callCtx, cancel := c.callContext(ctx)
	defer cancel()
	ifaces, err := netsh.ShowInterfaces(callCtx, c.runner, c.commands)
	if err != nil {
		c.logf("Error retrieving interface information: %v", err)
		return nil, err
	}
	return ifaces, nil
}
