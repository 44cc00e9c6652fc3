package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"wlanctl/config"
)

func TestRunListPrintsNames(t *testing.T) {
	r := newScriptedRunner(twoNetworks)
	cfg := config.DefaultConfig()
	var stdout, stderr bytes.Buffer

	code := runList(context.Background(), &cfg, r, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.String())
	}
	if got := stdout.String(); got != "HomeNet\nCoffee Shop\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunListScanFailure(t *testing.T) {
	r := newScriptedRunner("")
	r.fail(scanKey)
	cfg := config.DefaultConfig()
	var stdout, stderr bytes.Buffer

	if code := runList(context.Background(), &cfg, r, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("unexpected stdout %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "command 'netsh wlan show network' failed") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunListParseFailurePrintsNothing(t *testing.T) {
	r := newScriptedRunner("SSID 1 : HomeNet\nSSID broken\n")
	cfg := config.DefaultConfig()
	var stdout, stderr bytes.Buffer

	if code := runList(context.Background(), &cfg, r, &stdout, &stderr); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("unexpected stdout %q", stdout.String())
	}
}

func TestRunListUsesConfiguredMarker(t *testing.T) {
	r := newScriptedRunner("Network 1 : Alpha\nSSID 1 : ignored\n")
	cfg := config.DefaultConfig()
	cfg.Marker = "Network"
	var stdout, stderr bytes.Buffer

	if code := runList(context.Background(), &cfg, r, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr.String())
	}
	if got := stdout.String(); got != "Alpha\n" {
		t.Errorf("stdout = %q", got)
	}
}
