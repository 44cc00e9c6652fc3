// Package main implements a terminal UI for listing nearby Wi-Fi networks and
// connecting to or disconnecting from them through the Windows WLAN tool
// (netsh by default). Every call to the tool and its outcome is shown in a log
// pane under the network list.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"wlanctl/config"
	"wlanctl/netsh"
	"wlanctl/wlan"
)

const appName = "Wi-Fi Manager"

func newController(cfg *config.Config, runner netsh.Runner, opts ...wlan.Option) *wlan.Controller {
	base := []wlan.Option{
		wlan.WithCommands(cfg.Commands.NetshCommands()),
		wlan.WithMarker(cfg.Marker),
		wlan.WithTimeout(cfg.Timeout),
	}
	return wlan.New(runner, append(base, opts...)...)
}

// runList scans once and prints one network name per line.
func runList(ctx context.Context, cfg *config.Config, runner netsh.Runner, stdout, stderr io.Writer) int {
	ctl := newController(cfg, runner, wlan.OnRefresh(func(names []string) {
		for _, name := range names {
			fmt.Fprintln(stdout, name)
		}
	}))
	if err := ctl.Refresh(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Application crashed: %v\n", r)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "", "config file (default ./wlanctl.yaml, then ~/.config/wlanctl/config.yaml)")
	listOnly := flag.Bool("list", false, "scan once, print network names and exit")
	debug := flag.Bool("debug", false, "with -list, write debug logging to stderr")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := netsh.CheckAvailable(cfg.Tool); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "This application requires the WLAN configuration tool to function.")
		os.Exit(1)
	}
	runner := netsh.ExecRunner{Tool: cfg.Tool}

	if *listOnly {
		if *debug {
			log.SetOutput(os.Stderr)
		} else {
			log.SetOutput(io.Discard)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		code := runList(ctx, cfg, runner, os.Stdout, os.Stderr)
		stop()
		os.Exit(code)
	}

	logFile, err := tea.LogToFile(cfg.UI.LogFile, "debug")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not create log file: %v\n", err)
		log.SetOutput(io.Discard)
	} else {
		defer logFile.Close()
	}

	ctl := newController(cfg, runner)
	m := newModel(context.Background(), ctl, modelOptions{
		RefreshOnStart: cfg.UI.RefreshOnStart == nil || *cfg.UI.RefreshOnStart,
		LogHeight:      cfg.UI.LogHeight,
	})

	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}
