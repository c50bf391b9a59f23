package history

import (
	"fmt"
	"time"

	"stratship/internal/services"
)

// Status represents the lifecycle of a release run.
type Status string

const (
	StatusPending          Status = "pending"
	StatusResolvingVersion Status = "resolving_version"
	StatusBuilding         Status = "building"
	StatusVerifying        Status = "verifying"
	StatusArchiving        Status = "archiving"
	StatusPublishing       Status = "publishing"
	StatusCompleted        Status = "completed"
	StatusFailed           Status = "failed"
)

var allStatuses = []Status{
	StatusPending,
	StatusResolvingVersion,
	StatusBuilding,
	StatusVerifying,
	StatusArchiving,
	StatusPublishing,
	StatusCompleted,
	StatusFailed,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// IsValid reports whether the status is one of the known lifecycle values.
func (s Status) IsValid() bool {
	_, ok := statusSet[s]
	return ok
}

// IsTerminal reports whether the run can no longer transition.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Run is a single release attempt.
type Run struct {
	ID           int64
	RunID        string
	Version      string
	Tag          string
	ArtifactPath string
	ArchivePath  string
	Status       Status
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SetFailed marks the run failed with an operator-visible message.
func (r *Run) SetFailed(message string) {
	r.Status = StatusFailed
	r.ErrorMessage = message
}

// StatusForError maps a pipeline error to the terminal status persisted for
// the run. All release failures are terminal; the distinction preserved here
// is the error message, not the status.
func StatusForError(err error) Status {
	if err == nil {
		return StatusCompleted
	}
	return StatusFailed
}

// ErrNotFound is returned when a run lookup matches nothing. It satisfies
// errors.Is against the shared services marker.
var ErrNotFound = fmt.Errorf("release run: %w", services.ErrNotFound)
