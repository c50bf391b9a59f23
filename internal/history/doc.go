// Package history persists release runs in a SQLite database under the log
// directory.
//
// Every run records its version, derived tag, artifact and archive paths, and
// a status lifecycle the orchestrator transitions through before and after
// each pipeline step. Failed runs keep the operator-visible error message so
// `stratship history` can explain what happened after the fact.
package history
