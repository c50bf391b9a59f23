// Package release implements the ordered, fail-fast release procedure:
// version discovery, tag derivation, build, artifact verification, archive
// preparation, and publish.
//
// Each step persists a status transition to the history store before and
// after it executes, so an interrupted run is visible to the operator. Any
// failed step aborts the remainder; there is no rollback and no automatic
// retry. Re-running after a fix is safe: the archive step regenerates its
// output instead of failing on leftovers.
package release
