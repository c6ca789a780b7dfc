package models

import (
	"errors"
)

// Project-related errors
var (
	// ErrProjectNotFound is returned when no project matches an id or name
	ErrProjectNotFound = errors.New("project not found")

	// ErrAmbiguousProject is returned when a name matches more than one project
	ErrAmbiguousProject = errors.New("project name is ambiguous")

	// ErrEmptyName is returned when a project name is empty after trimming
	ErrEmptyName = errors.New("project name is required")
)

// Timer and entry errors
var (
	// ErrEntryNotFound is returned when a time entry is not found
	ErrEntryNotFound = errors.New("time entry not found")

	// ErrTimerRunning is returned when starting a timer for a project that already has one running
	ErrTimerRunning = errors.New("timer already running for project")
)
