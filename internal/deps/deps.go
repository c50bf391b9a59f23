// Package deps reports the availability of the external binaries the release
// pipeline invokes.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"stratship/internal/config"
)

// Requirement defines an external dependency stratship relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements derives the binary requirements from configuration.
func Requirements(cfg *config.Config) []Requirement {
	if cfg == nil {
		return nil
	}
	reqs := []Requirement{
		{Name: "Version tool", Command: cfg.VersionBinary(), Description: "reports the project version"},
		{Name: "Build tool", Command: cfg.BuildBinary(), Description: "builds the executable"},
		{Name: "Git", Command: cfg.Git.Binary, Description: "tags the release and pushes to the remote"},
	}
	reqs = append(reqs, Requirement{
		Name:        "GitHub CLI",
		Command:     cfg.Publish.Binary,
		Description: "creates the remote release",
		Optional:    !cfg.Publish.Enabled,
	})
	return reqs
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Available = false
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
