package preflight_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stratship/internal/preflight"
	"stratship/internal/testsupport"
)

const validManifest = `[{"name": "Reinforce", "sequence": ["W", "S", "D", "A", "W"]}]`

func TestRunAllPassesOnHealthyProject(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithStubbedBinaries("uv", "git", "gh", "python"),
		testsupport.WithReleaseNotes("## 1.2.3\n- fixes\n"),
		testsupport.WithStratagemFile(validManifest),
	)

	results := preflight.RunAll(cfg)
	if failed := preflight.Failed(results); len(failed) != 0 {
		t.Fatalf("unexpected failures: %v (results %+v)", failed, results)
	}
	if preflight.Summarize(results) != "" {
		t.Fatal("expected empty summary for passing checks")
	}
}

func TestRunAllFlagsMissingBinariesAndNotes(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStratagemFile(validManifest))
	cfg.Commands.Version = []string{"definitely-not-installed"}
	cfg.Git.Binary = "also-not-installed"

	results := preflight.RunAll(cfg)
	failed := preflight.Failed(results)
	joined := strings.Join(failed, ", ")
	for _, want := range []string{"Version tool", "Git", "Release notes"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in failed checks: %v", want, failed)
		}
	}
	if got := preflight.Summarize(results); !strings.HasPrefix(got, "preflight failed: ") {
		t.Fatalf("unexpected summary: %q", got)
	}
}

func TestMissingGhIsOptionalWhenPublishDisabled(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithPublishDisabled(),
		testsupport.WithStubbedBinaries("uv", "git"),
		testsupport.WithReleaseNotes("notes"),
		testsupport.WithStratagemFile(validManifest),
	)
	cfg.Publish.Binary = "definitely-not-installed"

	results := preflight.RunAll(cfg)
	if failed := preflight.Failed(results); len(failed) != 0 {
		t.Fatalf("unexpected failures: %v", failed)
	}
}

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	if result := preflight.CheckDirectoryAccess("Project directory", dir); !result.Passed {
		t.Fatalf("expected pass for temp dir: %+v", result)
	}
	if result := preflight.CheckDirectoryAccess("Project directory", filepath.Join(dir, "missing")); result.Passed {
		t.Fatalf("expected failure for missing dir: %+v", result)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := preflight.CheckDirectoryAccess("Project directory", file); result.Passed {
		t.Fatalf("expected failure for non-directory: %+v", result)
	}
}

func TestCheckAssetManifestHonorsRequireIcons(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStratagemFile(validManifest))
	if err := os.MkdirAll(cfg.Checks.IconDir, 0o755); err != nil {
		t.Fatal(err)
	}

	result := preflight.CheckAssetManifest(cfg)
	if !result.Passed {
		t.Fatalf("missing icons must not fail by default: %+v", result)
	}

	cfg.Checks.RequireIcons = true
	result = preflight.CheckAssetManifest(cfg)
	if result.Passed {
		t.Fatalf("missing icons must fail with require_icons: %+v", result)
	}
}
