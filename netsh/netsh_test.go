package netsh

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"reflect"
	"strings"
	"testing"
)

const helperEnv = "WLANCTL_WANT_HELPER_PROCESS"

// TestHelperProcess is not a real test; ExecRunner tests re-exec the test binary
// into it to get a child process with controlled output and exit status.
func TestHelperProcess(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}
	args := os.Args
	for len(args) > 0 {
		if args[0] == "--" {
			args = args[1:]
			break
		}
		args = args[1:]
	}
	if len(args) == 0 {
		os.Exit(2)
	}
	switch args[0] {
	case "echo":
		fmt.Fprint(os.Stdout, strings.Join(args[1:], " "))
		os.Exit(0)
	case "warn":
		fmt.Fprint(os.Stdout, "ok")
		fmt.Fprint(os.Stderr, "careful")
		os.Exit(0)
	case "fail":
		fmt.Fprint(os.Stderr, "The wireless local area network interface is powered down")
		os.Exit(1)
	}
	os.Exit(2)
}

func helperRunner(t *testing.T) (ExecRunner, []string) {
	t.Helper()
	t.Setenv(helperEnv, "1")
	return ExecRunner{Tool: os.Args[0]}, []string{"-test.run=TestHelperProcess", "--"}
}

func TestExecRunnerSuccess(t *testing.T) {
	r, prefix := helperRunner(t)

	out, err := r.Run(context.Background(), append(prefix, "echo", "SSID", "1")...)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if out != "SSID 1" {
		t.Errorf("expected stdout %q, got %q", "SSID 1", out)
	}
}

func TestExecRunnerStderrOnSuccessIsNotAnError(t *testing.T) {
	r, prefix := helperRunner(t)

	out, err := r.Run(context.Background(), append(prefix, "warn")...)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if out != "ok" {
		t.Errorf("expected stdout %q, got %q", "ok", out)
	}
}

func TestExecRunnerFailure(t *testing.T) {
	r, prefix := helperRunner(t)

	_, err := r.Run(context.Background(), append(prefix, "fail")...)
	if err == nil {
		t.Fatal("expected error from non-zero exit")
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T", err)
	}
	if !strings.Contains(cmdErr.Stderr, "powered down") {
		t.Errorf("expected stderr to be captured, got %q", cmdErr.Stderr)
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Errorf("expected error to unwrap to *exec.ExitError, got %v", cmdErr.Err)
	}
	if !strings.Contains(err.Error(), "powered down") {
		t.Errorf("expected message to include stderr, got %q", err.Error())
	}
}

func TestExecRunnerMissingTool(t *testing.T) {
	t.Parallel()
	r := ExecRunner{Tool: "wlanctl-definitely-not-a-real-tool"}

	_, err := r.Run(context.Background(), "wlan", "show", "network")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T (%v)", err, err)
	}
	if cmdErr.Tool != "wlanctl-definitely-not-a-real-tool" {
		t.Errorf("expected tool name on error, got %q", cmdErr.Tool)
	}
}

func TestCheckAvailable(t *testing.T) {
	t.Parallel()
	if err := CheckAvailable("wlanctl-definitely-not-a-real-tool"); err == nil {
		t.Error("expected error for missing tool")
	}
}

func TestCommandErrorMessage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  *CommandError
		want string
	}{
		{
			name: "with stderr",
			err:  &CommandError{Tool: "netsh", Args: []string{"wlan", "disconnect"}, Stderr: "denied", Err: errors.New("exit status 1")},
			want: "command 'netsh wlan disconnect' failed: denied (underlying error: exit status 1)",
		},
		{
			name: "without stderr",
			err:  &CommandError{Tool: "netsh", Args: []string{"wlan", "disconnect"}, Err: errors.New("exit status 1")},
			want: "command 'netsh wlan disconnect' failed: exit status 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConnectArgsExpandsPlaceholder(t *testing.T) {
	t.Parallel()
	got := DefaultCommands().ConnectArgs("Coffee Shop")
	want := []string{"wlan", "connect", "name=Coffee Shop"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ConnectArgs() = %v, want %v", got, want)
	}
}

type recordingRunner struct {
	calls [][]string
	out   string
	err   error
}

func (r *recordingRunner) Run(_ context.Context, args ...string) (string, error) {
	r.calls = append(r.calls, args)
	return r.out, r.err
}

func TestOperationsPassConfiguredArgs(t *testing.T) {
	t.Parallel()
	r := &recordingRunner{}
	c := DefaultCommands()
	ctx := context.Background()

	ShowNetworks(ctx, r, c)
	Connect(ctx, r, c, "HomeNet")
	Disconnect(ctx, r, c)

	want := [][]string{
		{"wlan", "show", "network"},
		{"wlan", "connect", "name=HomeNet"},
		{"wlan", "disconnect"},
	}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}
}
