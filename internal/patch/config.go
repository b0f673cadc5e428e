// Package patch carries the one-shot migrations that rewrite the
// energy-storage fields of the simulator's configuration artifacts.
package patch

// Config holds the locations of the files the patchers rewrite.
// Callers resolve these against the repository root; nothing here is
// hard-coded so the patchers stay portable and testable.
type Config struct {
	PartPropertiesPath string
	SharedWGSLPath     string
}
