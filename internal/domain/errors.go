package domain

import "errors"

// Setup errors abort a run before any step executes.
var (
	ErrProjectNotFound     = errors.New("project directory not found")
	ErrManifestNotFound    = errors.New("package.json not found")
	ErrVersionUndetectable = errors.New("cannot detect the current framework version")
	ErrInvalidVersion      = errors.New("invalid version")
)

// ErrMigrationIncomplete is returned after the report is written when at
// least one step recorded an error.
var ErrMigrationIncomplete = errors.New("one or more migration steps failed")
