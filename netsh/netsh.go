// wlanctl/netsh/netsh.go
package netsh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// DefaultTool is the Windows WLAN configuration utility.
const DefaultTool = "netsh"

// SSIDPlaceholder is substituted with the target network in connect arguments.
const SSIDPlaceholder = "{ssid}"

// --- Field names in `wlan show interfaces` output ---
const (
	FieldName        = "Name"
	FieldDescription = "Description"
	FieldState       = "State"
	FieldSSID        = "SSID"
	FieldBSSID       = "BSSID"
	FieldRadioType   = "Radio type"
	FieldSignal      = "Signal"
	FieldProfile     = "Profile"
)

// Runner executes the network-configuration tool and returns its stdout.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// CommandError reports a failed invocation: the process could not start or
// exited non-zero.
type CommandError struct {
	Tool   string
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	cmdline := strings.TrimSpace(e.Tool + " " + strings.Join(e.Args, " "))
	if e.Stderr != "" {
		return fmt.Sprintf("command '%s' failed: %s (underlying error: %v)", cmdline, e.Stderr, e.Err)
	}
	return fmt.Sprintf("command '%s' failed: %v", cmdline, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExecRunner runs Tool as a child process.
type ExecRunner struct {
	Tool string
}

func (r ExecRunner) tool() string {
	if r.Tool == "" {
		return DefaultTool
	}
	return r.Tool
}

func (r ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.tool(), args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	log.Printf("Executing command: %v", cmd.Args)
	err := cmd.Run()
	stderrStr := strings.TrimSpace(stderr.String())
	if err != nil {
		if stderrStr != "" {
			log.Printf("command '%s' stderr: %s", strings.Join(args, " "), stderrStr)
		}
		return stdout.String(), &CommandError{Tool: r.tool(), Args: args, Stderr: stderrStr, Err: err}
	}
	if stderrStr != "" {
		log.Printf("command '%s' succeeded but produced stderr (warning): %s", strings.Join(args, " "), stderrStr)
	}
	return stdout.String(), nil
}

// CheckAvailable reports whether tool can be found on PATH.
func CheckAvailable(tool string) error {
	if tool == "" {
		tool = DefaultTool
	}
	if _, err := exec.LookPath(tool); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("'%s' is not installed or not found in PATH", tool)
		}
		return fmt.Errorf("looking up '%s': %w", tool, err)
	}
	return nil
}

// Commands holds the argument vectors passed to the tool for each operation.
type Commands struct {
	Scan       []string
	Connect    []string
	Disconnect []string
	Interfaces []string
}

// DefaultCommands returns the netsh argument vectors.
func DefaultCommands() Commands {
	return Commands{
		Scan:       []string{"wlan", "show", "network"},
		Connect:    []string{"wlan", "connect", "name=" + SSIDPlaceholder},
		Disconnect: []string{"wlan", "disconnect"},
		Interfaces: []string{"wlan", "show", "interfaces"},
	}
}

// ConnectArgs expands the SSID placeholder in the connect vector.
func (c Commands) ConnectArgs(ssid string) []string {
	args := make([]string, len(c.Connect))
	for i, a := range c.Connect {
		args[i] = strings.ReplaceAll(a, SSIDPlaceholder, ssid)
	}
	return args
}

// --- Operations ---

// ShowNetworks returns the raw scan output.
func ShowNetworks(ctx context.Context, r Runner, c Commands) (string, error) {
	return r.Run(ctx, c.Scan...)
}

// Connect asks the tool to join ssid.
func Connect(ctx context.Context, r Runner, c Commands, ssid string) (string, error) {
	return r.Run(ctx, c.ConnectArgs(ssid)...)
}

// Disconnect drops the current wireless connection. The tool takes no target.
func Disconnect(ctx context.Context, r Runner, c Commands) (string, error) {
	return r.Run(ctx, c.Disconnect...)
}
