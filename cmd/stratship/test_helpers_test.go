package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"stratship/internal/config"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

// setupCLITestEnv wires a temp project with stubbed external tools: uv
// reports version 1.2.3 and "builds" the artifact, git and gh succeed.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", base)

	projectDir := filepath.Join(base, "project")
	distDir := filepath.Join(projectDir, "dist")
	for _, dir := range []string{projectDir, distDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	cfgVal := config.Default()
	cfgVal.Paths.ProjectDir = projectDir
	cfgVal.Paths.DistDir = distDir
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.ReleaseNotes = filepath.Join(projectDir, "RELEASE.md")
	cfgVal.Checks.StratagemFile = filepath.Join(projectDir, "stratagems.json")
	cfgVal.Checks.IconDir = filepath.Join(projectDir, "StratagemIcons")
	cfg := &cfgVal

	if err := os.WriteFile(cfg.Paths.ReleaseNotes, []byte("## 1.2.3\n- changes\n"), 0o644); err != nil {
		t.Fatalf("write release notes: %v", err)
	}
	manifest := `[{"name": "Reinforce", "sequence": ["W", "S", "D", "A", "W"]}]`
	if err := os.WriteFile(cfg.Checks.StratagemFile, []byte(manifest), 0o644); err != nil {
		t.Fatalf("write stratagem manifest: %v", err)
	}

	writeCLIStubBinaries(t, base, cfg.ArtifactPath())

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath, baseDir: base}
}

func writeCLIStubBinaries(t *testing.T, base, artifactPath string) {
	t.Helper()

	binDir := filepath.Join(base, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir stub bin dir: %v", err)
	}

	uvScript := fmt.Sprintf(`#!/bin/sh
if [ "$1" = "version" ]; then
    echo "1.2.3"
    exit 0
fi
: > %q
exit 0
`, artifactPath)

	stubs := map[string]string{
		"uv":  uvScript,
		"git": "#!/bin/sh\nexit 0\n",
		"gh":  "#!/bin/sh\nexit 0\n",
	}
	for name, script := range stubs {
		if err := os.WriteFile(filepath.Join(binDir, name), []byte(script), 0o755); err != nil {
			t.Fatalf("write stub %s: %v", name, err)
		}
	}

	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func removeReleaseNotes(t *testing.T, env *cliTestEnv) {
	t.Helper()
	if err := os.Remove(env.cfg.Paths.ReleaseNotes); err != nil {
		t.Fatalf("remove release notes: %v", err)
	}
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, output)
	}
}
