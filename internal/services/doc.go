// Package services defines the shared error taxonomy and context plumbing for
// the release pipeline's external collaborators (version tool, build tool,
// git, gh).
//
// Errors are tagged with sentinel markers so the orchestrator can classify a
// failure (configuration vs external tool vs validation) without string
// matching, and so the history store records the right terminal status.
package services
