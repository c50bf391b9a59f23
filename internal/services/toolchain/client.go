// Package toolchain wraps the project's version-reporting and build commands.
//
// Both commands are operator-configured argv vectors treated as black boxes;
// exit status and stdout are the only signals consumed.
package toolchain

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"stratship/internal/services"
)

// Executor abstracts command execution for testability.
type Executor interface {
	// Run executes argv in dir and returns captured stdout.
	Run(ctx context.Context, dir string, argv []string) ([]byte, error)
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client invokes the configured project tooling.
type Client struct {
	versionArgv []string
	buildArgv   []string
	projectDir  string
	exec        Executor
}

// New constructs a toolchain client.
func New(versionArgv, buildArgv []string, projectDir string, opts ...Option) (*Client, error) {
	if len(versionArgv) == 0 {
		return nil, errors.New("version command required")
	}
	if len(buildArgv) == 0 {
		return nil, errors.New("build command required")
	}
	client := &Client{
		versionArgv: append([]string(nil), versionArgv...),
		buildArgv:   append([]string(nil), buildArgv...),
		projectDir:  strings.TrimSpace(projectDir),
		exec:        commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Version runs the version command and returns its trimmed stdout. An empty
// result is a configuration error: the project metadata is unusable and no
// further release step may run.
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.exec.Run(ctx, c.projectDir, c.versionArgv)
	if err != nil {
		return "", services.Wrap(services.ErrExternalTool, "version", "run", "version command failed", err)
	}
	version := strings.TrimSpace(string(out))
	if version == "" {
		return "", services.Wrap(services.ErrConfiguration, "version", "read", "version command reported an empty version", nil)
	}
	return version, nil
}

// Build runs the build command. A command that starts but exits non-zero is
// reported as ErrToolExit; the artifact existence check after the build is
// the authoritative gate, so callers may choose to defer to it.
func (c *Client) Build(ctx context.Context) error {
	_, err := c.exec.Run(ctx, c.projectDir, c.buildArgv)
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return services.Wrap(ErrToolExit, "build", "run", "build command exited non-zero", err)
	}
	return services.Wrap(services.ErrExternalTool, "build", "run", "build command failed to start", err)
}

// ErrToolExit marks a build command that ran to completion with a non-zero
// exit status, as opposed to one that could not be started at all.
var ErrToolExit = errors.New("tool exited non-zero")

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, dir string, argv []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), err
	}
	return stdout.Bytes(), nil
}
