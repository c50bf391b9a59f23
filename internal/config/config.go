package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and file locations used by the release pipeline.
type Paths struct {
	ProjectDir   string `toml:"project_dir"`
	DistDir      string `toml:"dist_dir"`
	LogDir       string `toml:"log_dir"`
	ReleaseNotes string `toml:"release_notes"`
}

// Artifact describes the build output the pipeline verifies and packages.
type Artifact struct {
	Name      string `toml:"name"`
	Extension string `toml:"extension"`
}

// Commands contains the external tool invocations the orchestrator runs.
// Each entry is an argv vector; exit status is the only signal consumed.
type Commands struct {
	Version []string `toml:"version"`
	Build   []string `toml:"build"`
}

// Git contains version-control tagging and push settings.
type Git struct {
	Binary string `toml:"binary"`
	Remote string `toml:"remote"`
}

// Publish contains remote release creation settings.
type Publish struct {
	Enabled    bool   `toml:"enabled"`
	Binary     string `toml:"binary"`
	Draft      bool   `toml:"draft"`
	Prerelease bool   `toml:"prerelease"`
}

// Checks contains packaging preflight settings for the bundled app assets.
type Checks struct {
	VerifyAssets  bool   `toml:"verify_assets"`
	StratagemFile string `toml:"stratagem_file"`
	IconDir       string `toml:"icon_dir"`
	RequireIcons  bool   `toml:"require_icons"`
}

// Logging contains log output configuration.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for stratship.
//
// Sections by subsystem:
//   - Paths: project layout and log directory
//   - Artifact: expected build output name
//   - Commands: version discovery and build invocations
//   - Git: tagging and push target
//   - Publish: remote release creation
//   - Checks: bundled asset verification
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Artifact Artifact `toml:"artifact"`
	Commands Commands `toml:"commands"`
	Git      Git      `toml:"git"`
	Publish  Publish  `toml:"publish"`
	Checks   Checks   `toml:"checks"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/stratship/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and project-relative paths resolved.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("stratship.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories the pipeline writes to.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LogDir, c.Paths.DistDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// ArtifactFileName returns the expected build output file name.
func (c *Config) ArtifactFileName() string {
	return c.Artifact.Name + c.Artifact.Extension
}

// ArtifactPath returns the expected build output location under the dist dir.
func (c *Config) ArtifactPath() string {
	return filepath.Join(c.Paths.DistDir, c.ArtifactFileName())
}

// VersionBinary returns the head of the configured version command.
func (c *Config) VersionBinary() string {
	if len(c.Commands.Version) == 0 {
		return ""
	}
	return c.Commands.Version[0]
}

// BuildBinary returns the head of the configured build command.
func (c *Config) BuildBinary() string {
	if len(c.Commands.Build) == 0 {
		return ""
	}
	return c.Commands.Build[0]
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
