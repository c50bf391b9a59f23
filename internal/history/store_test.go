package history_test

import (
	"context"
	"errors"
	"testing"

	"stratship/internal/history"
	"stratship/internal/services"
	"stratship/internal/testsupport"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(testsupport.NewConfig(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewRunStartsPending(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	run, err := store.NewRun(ctx, "run-abc")
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	if run.Status != history.StatusPending {
		t.Fatalf("unexpected status: %q", run.Status)
	}
	if run.RunID != "run-abc" {
		t.Fatalf("unexpected run ID: %q", run.RunID)
	}
	if run.CreatedAt.IsZero() || run.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
}

func TestUpdatePersistsLifecycle(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	run, err := store.NewRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}

	run.Version = "1.2.3"
	run.Tag = "v1.2.3"
	run.Status = history.StatusPublishing
	run.ArtifactPath = "/dist/App.exe"
	run.ArchivePath = "/dist/App-1.2.3.zip"
	if err := store.Update(ctx, run); err != nil {
		t.Fatalf("Update: %v", err)
	}

	loaded, err := store.GetByRunID(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetByRunID: %v", err)
	}
	if loaded.Status != history.StatusPublishing {
		t.Fatalf("unexpected status: %q", loaded.Status)
	}
	if loaded.Tag != "v1.2.3" || loaded.Version != "1.2.3" {
		t.Fatalf("unexpected tag/version: %q %q", loaded.Tag, loaded.Version)
	}
	if loaded.ArchivePath != "/dist/App-1.2.3.zip" {
		t.Fatalf("unexpected archive path: %q", loaded.ArchivePath)
	}
}

func TestUpdateRejectsInvalidStatus(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	run, err := store.NewRun(ctx, "run-2")
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}
	run.Status = history.Status("exploded")
	if err := store.Update(ctx, run); err == nil {
		t.Fatal("expected error for invalid status")
	}
}

func TestListNewestFirst(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if _, err := store.NewRun(ctx, id); err != nil {
			t.Fatalf("NewRun %s: %v", id, err)
		}
	}

	runs, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].RunID != "c" || runs[1].RunID != "b" {
		t.Fatalf("unexpected order: %q %q", runs[0].RunID, runs[1].RunID)
	}
}

func TestGetMissingRunReturnsNotFound(t *testing.T) {
	store := openStore(t)
	_, err := store.GetByRunID(context.Background(), "nope")
	if !errors.Is(err, history.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("lookup miss must carry the shared not-found marker, got %v", err)
	}
}

func TestStatusForError(t *testing.T) {
	if got := history.StatusForError(nil); got != history.StatusCompleted {
		t.Fatalf("nil error: got %q", got)
	}
	err := services.Wrap(services.ErrConfiguration, "version", "read", "empty version", nil)
	if got := history.StatusForError(err); got != history.StatusFailed {
		t.Fatalf("configuration error: got %q", got)
	}
}
