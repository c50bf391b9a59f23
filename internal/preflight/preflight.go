package preflight

import (
	"fmt"
	"strings"

	"stratship/internal/config"
	"stratship/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Failed returns the names of checks that did not pass.
func Failed(results []Result) []string {
	var failed []string
	for _, result := range results {
		if !result.Passed {
			failed = append(failed, result.Name)
		}
	}
	return failed
}

// RunAll executes all applicable preflight checks for the given config.
// Checks are only run when the corresponding feature is enabled.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := checkRequiredBinaries(cfg)

	results = append(results, CheckDirectoryAccess("Project directory", cfg.Paths.ProjectDir))
	results = append(results, CheckReleaseNotes(cfg.Paths.ReleaseNotes))

	if cfg.Checks.VerifyAssets {
		results = append(results, CheckAssetManifest(cfg))
	}

	return results
}

func checkRequiredBinaries(cfg *config.Config) []Result {
	statuses := deps.CheckBinaries(deps.Requirements(cfg))
	results := make([]Result, 0, len(statuses))
	for _, status := range statuses {
		result := Result{Name: status.Name, Passed: status.Available, Detail: status.Command}
		if !status.Available {
			if status.Optional {
				result.Passed = true
				result.Detail = strings.TrimSpace(status.Detail + " (optional)")
			} else {
				result.Detail = status.Detail
			}
		}
		results = append(results, result)
	}
	return results
}

// Summarize formats the failed check names for an error message.
func Summarize(results []Result) string {
	failed := Failed(results)
	if len(failed) == 0 {
		return ""
	}
	return fmt.Sprintf("preflight failed: %s", strings.Join(failed, ", "))
}
