// Package git wraps the version-control tagging and push operations of the
// release pipeline.
package git

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

// Client wraps git CLI interactions scoped to the project repository.
type Client struct {
	binary     string
	projectDir string
	exec       Executor
}

// New constructs a git client.
func New(binary, projectDir string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("git binary required")
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

// Tag creates a lightweight tag at HEAD.
func (c *Client) Tag(ctx context.Context, tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return errors.New("tag required")
	}
	if _, err := c.exec.Run(ctx, c.projectDir, []string{c.binary, "tag", tag}); err != nil {
		return services.Wrap(services.ErrExternalTool, "publish", "tag", fmt.Sprintf("create tag %s", tag), err)
	}
	return nil
}

// Push pushes the tag to the configured remote.
func (c *Client) Push(ctx context.Context, remote, tag string) error {
	remote = strings.TrimSpace(remote)
	tag = strings.TrimSpace(tag)
	if remote == "" || tag == "" {
		return errors.New("remote and tag required")
	}
	if _, err := c.exec.Run(ctx, c.projectDir, []string{c.binary, "push", remote, tag}); err != nil {
		return services.Wrap(services.ErrExternalTool, "publish", "push", fmt.Sprintf("push tag %s to %s", tag, remote), err)
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
