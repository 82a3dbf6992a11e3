package cli

import (
	"errors"

	"github.com/yaklabco/mdsite/internal/configloader"
	"github.com/yaklabco/mdsite/pkg/fsutil"
	"github.com/yaklabco/mdsite/pkg/markdown"
	"github.com/yaklabco/mdsite/pkg/render"
	"github.com/yaklabco/mdsite/pkg/site"
)

// Exit codes for mdsite.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitBuildFailed indicates the build ran but some pages failed.
	ExitBuildFailed = 1

	// ExitBrokenLinks indicates broken links were found in strict mode.
	ExitBrokenLinks = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates an input document could not be converted.
	ExitDataError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74

	// ExitConfigError indicates configuration errors.
	ExitConfigError = 78
)

var (
	// ErrBuildFailed is returned when one or more pages could not be generated.
	ErrBuildFailed = errors.New("build failed")

	// ErrBrokenLinks is returned by build --strict when links do not resolve.
	ErrBrokenLinks = errors.New("broken links found")

	// ErrConfig marks configuration loading and validation failures.
	ErrConfig = errors.New("invalid configuration")

	// ErrUsage marks invalid flag values.
	ErrUsage = errors.New("invalid usage")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrBuildFailed):
		return ExitBuildFailed
	case errors.Is(err, ErrBrokenLinks):
		return ExitBrokenLinks
	case errors.Is(err, ErrUsage), errors.Is(err, render.ErrUnknownEngine):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, markdown.ErrMissingTitle):
		return ExitDataError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, site.ErrStaticNotFound),
		errors.Is(err, site.ErrUnsafeOutputDir):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// IsReported reports whether err has already been shown to the user in
// command output, so it only needs an exit code.
func IsReported(err error) bool {
	return errors.Is(err, ErrBuildFailed) || errors.Is(err, ErrBrokenLinks)
}
