package release

import (
	"fmt"
	"path/filepath"
	"strings"

	"stratship/internal/config"
	"stratship/internal/services"
)

// TagPrefix is the literal prefix prepended to the version to form the
// release tag.
const TagPrefix = "v"

// Plan holds the deterministic paths and names derived from a version.
type Plan struct {
	Version      string
	Tag          string
	ArtifactPath string
	ArchivePath  string
	NotesPath    string
}

// NewPlan derives the release plan for a version. The version must already be
// trimmed and non-empty; the tag is exactly TagPrefix + version.
func NewPlan(cfg *config.Config, version string) (Plan, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		return Plan{}, services.Wrap(services.ErrConfiguration, "plan", "derive", "version is empty", nil)
	}
	return Plan{
		Version:      version,
		Tag:          TagPrefix + version,
		ArtifactPath: cfg.ArtifactPath(),
		ArchivePath:  filepath.Join(cfg.Paths.DistDir, fmt.Sprintf("%s-%s.zip", cfg.Artifact.Name, version)),
		NotesPath:    cfg.Paths.ReleaseNotes,
	}, nil
}
