package preflight

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"stratship/internal/assets"
	"stratship/internal/config"
)

// CheckDirectoryAccess verifies the path exists, is a directory, and the
// process can read, write, and traverse it.
func CheckDirectoryAccess(name, path string) Result {
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{Name: name, Detail: "not configured"}
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("stat failed (%v)", err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: "not a directory"}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("access denied (%v)", err)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckReleaseNotes verifies the release notes file exists and is non-empty,
// since its contents become the published release body.
func CheckReleaseNotes(path string) Result {
	const name = "Release notes"

	info, err := os.Stat(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("missing (%s)", path)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: "path is a directory"}
	}
	if info.Size() == 0 {
		return Result{Name: name, Detail: "file is empty"}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckAssetManifest validates the bundled stratagem manifest and reports
// icon coverage.
func CheckAssetManifest(cfg *config.Config) Result {
	const name = "Asset manifest"

	report, err := assets.Verify(cfg.Checks.StratagemFile, cfg.Checks.IconDir)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	if !report.OK() {
		return Result{Name: name, Detail: strings.Join(report.Problems, "; ")}
	}
	if len(report.MissingIcons) > 0 {
		detail := fmt.Sprintf("%d stratagems, %d without icons", report.Count, len(report.MissingIcons))
		if cfg.Checks.RequireIcons {
			return Result{Name: name, Detail: detail}
		}
		return Result{Name: name, Passed: true, Detail: detail}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d stratagems", report.Count)}
}
