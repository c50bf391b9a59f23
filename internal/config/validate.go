package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateArtifact(); err != nil {
		return err
	}
	if err := c.validateCommands(); err != nil {
		return err
	}
	if err := c.validateGit(); err != nil {
		return err
	}
	if err := c.validatePublish(); err != nil {
		return err
	}
	if err := c.validateChecks(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.ProjectDir) == "" {
		return errors.New("paths.project_dir must be set")
	}
	if strings.TrimSpace(c.Paths.DistDir) == "" {
		return errors.New("paths.dist_dir must be set")
	}
	if strings.TrimSpace(c.Paths.ReleaseNotes) == "" {
		return errors.New("paths.release_notes must be set")
	}
	return nil
}

func (c *Config) validateArtifact() error {
	if c.Artifact.Name == "" {
		return errors.New("artifact.name must be set")
	}
	if strings.ContainsAny(c.Artifact.Name, `/\`) {
		return fmt.Errorf("artifact.name %q must not contain path separators", c.Artifact.Name)
	}
	return nil
}

func (c *Config) validateCommands() error {
	if len(c.Commands.Version) == 0 {
		return errors.New("commands.version must not be empty")
	}
	if len(c.Commands.Build) == 0 {
		return errors.New("commands.build must not be empty")
	}
	return nil
}

func (c *Config) validateGit() error {
	if c.Git.Binary == "" {
		return errors.New("git.binary must be set")
	}
	if c.Git.Remote == "" {
		return errors.New("git.remote must be set")
	}
	return nil
}

func (c *Config) validatePublish() error {
	if c.Publish.Enabled && c.Publish.Binary == "" {
		return errors.New("publish.binary must be set when publishing is enabled")
	}
	return nil
}

func (c *Config) validateChecks() error {
	if !c.Checks.VerifyAssets {
		return nil
	}
	if strings.TrimSpace(c.Checks.StratagemFile) == "" {
		return errors.New("checks.stratagem_file must be set when checks.verify_assets is enabled")
	}
	if c.Checks.RequireIcons && strings.TrimSpace(c.Checks.IconDir) == "" {
		return errors.New("checks.icon_dir must be set when checks.require_icons is enabled")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
