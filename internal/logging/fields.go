// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldDuration   = "duration"
	FieldCommand    = "command"

	// Configuration fields.
	FieldConfig   = "config"
	FieldEngine   = "engine"
	FieldJobs     = "jobs"
	FieldBasePath = "base_path"
	FieldListMode = "list_mode"

	// Build fields.
	FieldTitle     = "title"
	FieldPages     = "pages"
	FieldWritten   = "written"
	FieldUnchanged = "unchanged"
	FieldErrored   = "errored"
	FieldBytes     = "bytes"
	FieldStatic    = "static_files"
	FieldURL       = "url"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
