package archive_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"stratship/internal/archive"
)

func writeArtifact(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func readSingleEntry(t *testing.T, archivePath string) (string, string) {
	t.Helper()
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer reader.Close()

	if len(reader.File) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(reader.File))
	}
	entry := reader.File[0]
	rc, err := entry.Open()
	if err != nil {
		t.Fatalf("open entry: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}
	return entry.Name, string(data)
}

func TestCreateStoresArtifactUnderBaseName(t *testing.T) {
	dir := t.TempDir()
	src := writeArtifact(t, dir, "StratagemHotkeys.exe", "binary-bytes")
	dst := filepath.Join(dir, "StratagemHotkeys-1.2.3.zip")

	if err := archive.Create(src, dst); err != nil {
		t.Fatalf("Create: %v", err)
	}

	name, content := readSingleEntry(t, dst)
	if name != "StratagemHotkeys.exe" {
		t.Fatalf("unexpected entry name: %q", name)
	}
	if content != "binary-bytes" {
		t.Fatalf("unexpected entry content: %q", content)
	}
}

func TestCreateReplacesExistingArchive(t *testing.T) {
	dir := t.TempDir()
	src := writeArtifact(t, dir, "App.exe", "fresh")
	dst := filepath.Join(dir, "App-1.0.0.zip")

	if err := os.WriteFile(dst, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := archive.Create(src, dst); err != nil {
		t.Fatalf("Create over existing archive: %v", err)
	}

	name, content := readSingleEntry(t, dst)
	if name != "App.exe" || content != "fresh" {
		t.Fatalf("stale archive not replaced: %q %q", name, content)
	}
}

func TestCreateFailsForMissingArtifact(t *testing.T) {
	dir := t.TempDir()
	err := archive.Create(filepath.Join(dir, "absent.exe"), filepath.Join(dir, "out.zip"))
	if err == nil {
		t.Fatal("expected error for missing artifact")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out.zip")); !os.IsNotExist(statErr) {
		t.Fatal("archive must not be created when artifact is missing")
	}
}

func TestCreateRejectsDirectoryArtifact(t *testing.T) {
	dir := t.TempDir()
	if err := archive.Create(dir, filepath.Join(dir, "out.zip")); err == nil {
		t.Fatal("expected error for directory artifact")
	}
}
