package config

import (
	"path/filepath"
	"strings"
)

// normalize expands home-relative paths and resolves project-relative paths
// against the project directory.
func (c *Config) normalize() error {
	projectDir, err := expandPath(strings.TrimSpace(c.Paths.ProjectDir))
	if err != nil {
		return err
	}
	c.Paths.ProjectDir = projectDir

	logDir, err := expandPath(strings.TrimSpace(c.Paths.LogDir))
	if err != nil {
		return err
	}
	c.Paths.LogDir = logDir

	c.Paths.DistDir = c.resolveProjectPath(c.Paths.DistDir)
	c.Paths.ReleaseNotes = c.resolveProjectPath(c.Paths.ReleaseNotes)
	c.Checks.StratagemFile = c.resolveProjectPath(c.Checks.StratagemFile)
	c.Checks.IconDir = c.resolveProjectPath(c.Checks.IconDir)

	c.Artifact.Name = strings.TrimSpace(c.Artifact.Name)
	c.Artifact.Extension = strings.TrimSpace(c.Artifact.Extension)
	if c.Artifact.Extension != "" && !strings.HasPrefix(c.Artifact.Extension, ".") {
		c.Artifact.Extension = "." + c.Artifact.Extension
	}

	c.Git.Binary = strings.TrimSpace(c.Git.Binary)
	c.Git.Remote = strings.TrimSpace(c.Git.Remote)
	c.Publish.Binary = strings.TrimSpace(c.Publish.Binary)
	c.Commands.Version = trimArgv(c.Commands.Version)
	c.Commands.Build = trimArgv(c.Commands.Build)

	return nil
}

func (c *Config) resolveProjectPath(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Join(c.Paths.ProjectDir, trimmed)
}

func trimArgv(argv []string) []string {
	cleaned := make([]string, 0, len(argv))
	for _, arg := range argv {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		cleaned = append(cleaned, arg)
	}
	return cleaned
}
