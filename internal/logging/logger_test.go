package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stratship/internal/config"
	"stratship/internal/logging"
	"stratship/internal/services"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")
	cfg.Logging.Format = "json"

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("release started", logging.String("tag", "v1.2.3"))

	data, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "stratship.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"tag":"v1.2.3"`) {
		t.Fatalf("log file missing entry: %s", data)
	}
}

func TestWithContextAddsRunFields(t *testing.T) {
	ctx := services.WithRunID(context.Background(), "run-1")
	ctx = services.WithStep(ctx, "building")

	fields := logging.ContextFields(ctx)
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Key != logging.FieldRunID || fields[1].Key != logging.FieldStep {
		t.Fatalf("unexpected field keys: %v", fields)
	}

	// A nil logger must still be safe to use.
	logger := logging.WithContext(ctx, nil)
	logger.Info("noop")
}
