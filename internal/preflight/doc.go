// Package preflight runs the operator diagnostics executed before a release:
// binary availability, directory access, release notes presence, and asset
// manifest validity.
package preflight
