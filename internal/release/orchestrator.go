package release

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"stratship/internal/archive"
	"stratship/internal/config"
	"stratship/internal/history"
	"stratship/internal/logging"
	"stratship/internal/preflight"
	"stratship/internal/services"
	"stratship/internal/services/gh"
	"stratship/internal/services/git"
	"stratship/internal/services/toolchain"
)

// Toolchain is the version discovery and build contract.
type Toolchain interface {
	Version(ctx context.Context) (string, error)
	Build(ctx context.Context) error
}

// Tagger is the version-control contract for publishing.
type Tagger interface {
	Tag(ctx context.Context, tag string) error
	Push(ctx context.Context, remote, tag string) error
}

// Publisher creates the remote release object.
type Publisher interface {
	CreateRelease(ctx context.Context, release gh.Release) error
}

// Option configures the orchestrator.
type Option func(*Orchestrator)

// WithToolchain injects a custom toolchain (primarily for tests).
func WithToolchain(tc Toolchain) Option {
	return func(o *Orchestrator) {
		if tc != nil {
			o.toolchain = tc
		}
	}
}

// WithTagger injects a custom git client (primarily for tests).
func WithTagger(tagger Tagger) Option {
	return func(o *Orchestrator) {
		if tagger != nil {
			o.git = tagger
		}
	}
}

// WithPublisher injects a custom publisher (primarily for tests).
func WithPublisher(publisher Publisher) Option {
	return func(o *Orchestrator) {
		if publisher != nil {
			o.publisher = publisher
		}
	}
}

// WithArchiver injects a custom archive function (primarily for tests).
func WithArchiver(fn func(src, dst string) error) Option {
	return func(o *Orchestrator) {
		if fn != nil {
			o.archive = fn
		}
	}
}

// RunOptions controls a single release run.
type RunOptions struct {
	// SkipPreflight bypasses the diagnostic checks before step 1.
	SkipPreflight bool
	// SkipPublish stops the pipeline after the archive step.
	SkipPublish bool
}

// Orchestrator executes the release procedure in strict sequence.
type Orchestrator struct {
	cfg       *config.Config
	store     *history.Store
	logger    *slog.Logger
	toolchain Toolchain
	git       Tagger
	publisher Publisher
	archive   func(src, dst string) error
	lock      *flock.Flock
}

// New constructs an orchestrator with clients built from configuration.
func New(cfg *config.Config, store *history.Store, logger *slog.Logger, opts ...Option) (*Orchestrator, error) {
	if cfg == nil || store == nil {
		return nil, errors.New("orchestrator requires config and history store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	tc, err := toolchain.New(cfg.Commands.Version, cfg.Commands.Build, cfg.Paths.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("toolchain client: %w", err)
	}
	gitClient, err := git.New(cfg.Git.Binary, cfg.Paths.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("git client: %w", err)
	}

	orch := &Orchestrator{
		cfg:       cfg,
		store:     store,
		logger:    logging.NewComponentLogger(logger, "release"),
		toolchain: tc,
		git:       gitClient,
		archive:   archive.Create,
		lock:      flock.New(filepath.Join(cfg.Paths.LogDir, "stratship.lock")),
	}

	if cfg.Publish.Enabled {
		publisher, err := gh.New(cfg.Publish.Binary, cfg.Paths.ProjectDir)
		if err != nil {
			return nil, fmt.Errorf("gh client: %w", err)
		}
		orch.publisher = publisher
	}

	for _, opt := range opts {
		opt(orch)
	}
	return orch, nil
}

// Plan resolves the version and derives the release plan without any side
// effect beyond invoking the version command. Used by dry runs.
func (o *Orchestrator) Plan(ctx context.Context) (Plan, error) {
	version, err := o.toolchain.Version(ctx)
	if err != nil {
		return Plan{}, err
	}
	return NewPlan(o.cfg, version)
}

// Run executes the full release procedure and returns the persisted run
// record. The returned run carries the terminal status even when err is
// non-nil.
func (o *Orchestrator) Run(ctx context.Context, opts RunOptions) (*history.Run, error) {
	if !opts.SkipPreflight {
		results := preflight.RunAll(o.cfg)
		if summary := preflight.Summarize(results); summary != "" {
			return nil, services.Wrap(services.ErrValidation, "preflight", "check", summary, nil)
		}
	}

	locked, err := o.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire release lock: %w", err)
	}
	if !locked {
		return nil, errors.New("another release run is already in progress")
	}
	defer func() { _ = o.lock.Unlock() }()

	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, o.logger)

	run, err := o.store.NewRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("record release run: %w", err)
	}

	logger.Info("release started",
		logging.String(logging.FieldEventType, "release_start"),
		logging.String("artifact", o.cfg.ArtifactFileName()),
	)

	var plan Plan
	err = o.step(ctx, run, history.StatusResolvingVersion, func(stepCtx context.Context) error {
		version, err := o.toolchain.Version(stepCtx)
		if err != nil {
			return err
		}
		plan, err = NewPlan(o.cfg, version)
		if err != nil {
			return err
		}
		run.Version = plan.Version
		run.Tag = plan.Tag
		run.ArtifactPath = plan.ArtifactPath
		run.ArchivePath = plan.ArchivePath
		return nil
	})
	if err != nil {
		return run, err
	}

	err = o.step(ctx, run, history.StatusBuilding, func(stepCtx context.Context) error {
		buildErr := o.toolchain.Build(stepCtx)
		if buildErr == nil {
			return nil
		}
		// A build that ran but exited non-zero is not validated here; the
		// artifact check is the authoritative gate.
		if errors.Is(buildErr, toolchain.ErrToolExit) {
			logging.WithContext(stepCtx, o.logger).Warn("build command exited non-zero; deferring to artifact verification",
				logging.String(logging.FieldEventType, "build_exit_nonzero"),
				logging.Error(buildErr),
			)
			return nil
		}
		return buildErr
	})
	if err != nil {
		return run, err
	}

	err = o.step(ctx, run, history.StatusVerifying, func(context.Context) error {
		return verifyArtifact(plan.ArtifactPath)
	})
	if err != nil {
		return run, err
	}

	err = o.step(ctx, run, history.StatusArchiving, func(context.Context) error {
		if err := o.archive(plan.ArtifactPath, plan.ArchivePath); err != nil {
			return services.Wrap(services.ErrExternalTool, "archive", "zip", "package artifact", err)
		}
		return nil
	})
	if err != nil {
		return run, err
	}

	if o.cfg.Publish.Enabled && !opts.SkipPublish {
		err = o.step(ctx, run, history.StatusPublishing, func(stepCtx context.Context) error {
			return o.publish(stepCtx, plan)
		})
		if err != nil {
			return run, err
		}
	} else {
		logger.Info("publish skipped",
			logging.String(logging.FieldEventType, "publish_skipped"),
			logging.Bool("publish_enabled", o.cfg.Publish.Enabled),
		)
	}

	run.Status = history.StatusCompleted
	if err := o.store.Update(ctx, run); err != nil {
		return run, fmt.Errorf("persist release result: %w", err)
	}

	logger.Info("release completed",
		logging.String(logging.FieldEventType, "release_complete"),
		logging.String("tag", plan.Tag),
		logging.String("archive", plan.ArchivePath),
	)
	return run, nil
}

// step executes one pipeline step with history persistence and fail-fast
// semantics.
func (o *Orchestrator) step(ctx context.Context, run *history.Run, processing history.Status, fn func(context.Context) error) error {
	stepName := stepLabel(processing)
	stepCtx := services.WithStep(ctx, stepName)
	logger := logging.WithContext(stepCtx, o.logger)

	run.Status = processing
	if err := o.store.Update(stepCtx, run); err != nil {
		return fmt.Errorf("persist %s transition: %w", stepName, err)
	}

	logger.Info("step started", logging.String(logging.FieldEventType, "step_start"))

	if err := fn(stepCtx); err != nil {
		message := strings.TrimSpace(err.Error())
		run.SetFailed(message)
		logger.Error("step failed",
			logging.String(logging.FieldEventType, "step_failure"),
			logging.Error(err),
		)
		if updateErr := o.store.Update(stepCtx, run); updateErr != nil {
			logger.Error("failed to persist step failure", logging.Error(updateErr))
		}
		return err
	}

	logger.Info("step completed", logging.String(logging.FieldEventType, "step_complete"))
	return nil
}

func (o *Orchestrator) publish(ctx context.Context, plan Plan) error {
	if o.publisher == nil {
		return services.Wrap(services.ErrConfiguration, "publish", "release", "publisher not configured", nil)
	}
	if err := o.git.Tag(ctx, plan.Tag); err != nil {
		return err
	}
	if err := o.git.Push(ctx, o.cfg.Git.Remote, plan.Tag); err != nil {
		return err
	}
	return o.publisher.CreateRelease(ctx, gh.Release{
		Tag:        plan.Tag,
		NotesPath:  plan.NotesPath,
		Draft:      o.cfg.Publish.Draft,
		Prerelease: o.cfg.Publish.Prerelease,
		Assets:     []string{plan.ArtifactPath, plan.ArchivePath},
	})
}

func verifyArtifact(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return services.Wrap(services.ErrValidation, "verify", "artifact", fmt.Sprintf("build output missing at %s", path), nil)
		}
		return services.Wrap(services.ErrValidation, "verify", "artifact", "stat build output", err)
	}
	if info.IsDir() {
		return services.Wrap(services.ErrValidation, "verify", "artifact", fmt.Sprintf("build output at %s is a directory", path), nil)
	}
	return nil
}

func stepLabel(status history.Status) string {
	return strings.ReplaceAll(string(status), "_", " ")
}
