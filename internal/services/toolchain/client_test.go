package toolchain_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"stratship/internal/services"
	"stratship/internal/services/toolchain"
)

type fakeExecutor struct {
	stdout []byte
	err    error
	calls  [][]string
}

func (f *fakeExecutor) Run(_ context.Context, _ string, argv []string) ([]byte, error) {
	f.calls = append(f.calls, argv)
	return f.stdout, f.err
}

func newClient(t *testing.T, exec *fakeExecutor) *toolchain.Client {
	t.Helper()
	client, err := toolchain.New(
		[]string{"uv", "version", "--short"},
		[]string{"uv", "run", "python", "build_exe.py"},
		t.TempDir(),
		toolchain.WithExecutor(exec),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestVersionTrimsOutput(t *testing.T) {
	exec := &fakeExecutor{stdout: []byte("  1.2.3\n")}
	client := newClient(t, exec)

	version, err := client.Version(context.Background())
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if version != "1.2.3" {
		t.Fatalf("unexpected version: %q", version)
	}
	if len(exec.calls) != 1 || exec.calls[0][0] != "uv" {
		t.Fatalf("unexpected invocation: %v", exec.calls)
	}
}

func TestVersionEmptyIsConfigurationError(t *testing.T) {
	for _, output := range []string{"", "   \n\t"} {
		exec := &fakeExecutor{stdout: []byte(output)}
		client := newClient(t, exec)

		_, err := client.Version(context.Background())
		if !errors.Is(err, services.ErrConfiguration) {
			t.Fatalf("output %q: expected configuration error, got %v", output, err)
		}
	}
}

func TestVersionCommandFailureIsExternalToolError(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("exec: not found")}
	client := newClient(t, exec)

	_, err := client.Version(context.Background())
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
}

func TestBuildDistinguishesExitFromStartFailure(t *testing.T) {
	exitExec := &fakeExecutor{err: &exec.ExitError{}}
	client := newClient(t, exitExec)
	if err := client.Build(context.Background()); !errors.Is(err, toolchain.ErrToolExit) {
		t.Fatalf("expected tool exit marker, got %v", err)
	}

	startExec := &fakeExecutor{err: errors.New("exec: \"uv\": executable file not found")}
	client = newClient(t, startExec)
	err := client.Build(context.Background())
	if errors.Is(err, toolchain.ErrToolExit) {
		t.Fatalf("start failure must not carry exit marker: %v", err)
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
}

func TestNewRequiresCommands(t *testing.T) {
	if _, err := toolchain.New(nil, []string{"make"}, ""); err == nil {
		t.Fatal("expected error for missing version command")
	}
	if _, err := toolchain.New([]string{"uv"}, nil, ""); err == nil {
		t.Fatal("expected error for missing build command")
	}
}
