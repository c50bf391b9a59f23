// Package gh wraps remote release creation through the GitHub CLI.
package gh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"stratship/internal/services"
)

// Executor abstracts command execution for testability.
type Executor interface {
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

// Release describes a remote release to create.
type Release struct {
	Tag        string
	NotesPath  string
	Draft      bool
	Prerelease bool
	Assets     []string
}

// Client wraps gh CLI interactions scoped to the project repository.
type Client struct {
	binary     string
	projectDir string
	exec       Executor
}

// New constructs a gh client.
func New(binary, projectDir string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("gh binary required")
	}
	client := &Client{
		binary:     binary,
		projectDir: strings.TrimSpace(projectDir),
		exec:       commandExecutor{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// CreateRelease creates the remote release object with the release notes file
// as body and the provided assets attached.
func (c *Client) CreateRelease(ctx context.Context, release Release) error {
	tag := strings.TrimSpace(release.Tag)
	if tag == "" {
		return errors.New("tag required")
	}
	notes := strings.TrimSpace(release.NotesPath)
	if notes == "" {
		return errors.New("release notes path required")
	}

	argv := []string{c.binary, "release", "create", tag, "--title", tag, "--notes-file", notes}
	if release.Draft {
		argv = append(argv, "--draft")
	}
	if release.Prerelease {
		argv = append(argv, "--prerelease")
	}
	argv = append(argv, release.Assets...)

	if _, err := c.exec.Run(ctx, c.projectDir, argv); err != nil {
		return services.Wrap(services.ErrExternalTool, "publish", "release", fmt.Sprintf("create release %s", tag), err)
	}
	return nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, dir string, argv []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec
	cmd.Dir = dir
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(output.String())
		if detail != "" {
			return output.Bytes(), fmt.Errorf("%w: %s", err, detail)
		}
		return output.Bytes(), err
	}
	return output.Bytes(), nil
}
