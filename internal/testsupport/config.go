// Package testsupport provides shared helpers for exercising the release
// pipeline in tests: temp-dir scoped configs and stubbed external binaries.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"stratship/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ProjectDir = filepath.Join(base, "project")
	cfgVal.Paths.DistDir = filepath.Join(base, "project", "dist")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.ReleaseNotes = filepath.Join(base, "project", "RELEASE.md")
	cfgVal.Checks.StratagemFile = filepath.Join(base, "project", "stratagems.json")
	cfgVal.Checks.IconDir = filepath.Join(base, "project", "StratagemIcons")

	if err := os.MkdirAll(cfgVal.Paths.ProjectDir, 0o755); err != nil {
		t.Fatalf("mkdir project dir: %v", err)
	}

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithArtifact overrides the expected artifact name and extension.
func WithArtifact(name, extension string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Artifact.Name = name
		b.cfg.Artifact.Extension = extension
	}
}

// WithPublishDisabled turns off remote release creation.
func WithPublishDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Publish.Enabled = false
	}
}

// WithReleaseNotes writes release notes content into the test project.
func WithReleaseNotes(content string) ConfigOption {
	return func(b *configBuilder) {
		if err := os.WriteFile(b.cfg.Paths.ReleaseNotes, []byte(content), 0o644); err != nil {
			b.t.Fatalf("write release notes: %v", err)
		}
	}
}

// WithStratagemFile writes a stratagem manifest into the test project.
func WithStratagemFile(content string) ConfigOption {
	return func(b *configBuilder) {
		if err := os.WriteFile(b.cfg.Checks.StratagemFile, []byte(content), 0o644); err != nil {
			b.t.Fatalf("write stratagem file: %v", err)
		}
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends them to PATH. If names is empty, the default stratship external
// binaries are stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"uv", "git", "gh"}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		script := []byte("#!/bin/sh\nexit 0\n")
		for _, name := range names {
			target := filepath.Join(binDir, name)
			if err := os.WriteFile(target, script, 0o755); err != nil {
				b.t.Fatalf("write stub %s: %v", name, err)
			}
		}

		oldPath := os.Getenv("PATH")
		if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
			b.t.Fatalf("set PATH: %v", err)
		}
		b.t.Cleanup(func() {
			_ = os.Setenv("PATH", oldPath)
		})
	}
}
