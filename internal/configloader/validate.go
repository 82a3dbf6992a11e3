package configloader

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdsite/pkg/config"
	"github.com/yaklabco/mdsite/pkg/markdown"
	"github.com/yaklabco/mdsite/pkg/render"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "markdown.list_mode").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) addError(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) addWarning(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	required := []struct {
		field string
		value string
	}{
		{"content_dir", cfg.ContentDir},
		{"output_dir", cfg.OutputDir},
		{"template", cfg.Template},
	}
	for _, req := range required {
		if strings.TrimSpace(req.value) == "" {
			result.addError(req.field, req.value, "must not be empty")
		}
	}

	if cfg.ContentDir != "" && filepath.Clean(cfg.ContentDir) == filepath.Clean(cfg.OutputDir) {
		result.addError("output_dir", cfg.OutputDir, "must differ from content_dir")
	}

	if cfg.StaticDir != "" && cfg.OutputDir != "" && isWithin(cfg.OutputDir, cfg.StaticDir) {
		result.addError("output_dir", cfg.OutputDir, "must not be inside static_dir %q", cfg.StaticDir)
	}

	if !render.IsValid(cfg.Engine) {
		result.addError("engine", cfg.Engine,
			"invalid engine %q; must be one of: %s", cfg.Engine, strings.Join(render.Names(), ", "))
	}

	if mode := markdown.ListMode(cfg.Markdown.ListMode); mode != "" && !mode.IsValid() {
		result.addError("markdown.list_mode", cfg.Markdown.ListMode,
			"invalid list mode %q; must be one of: %s, %s", mode, markdown.ListJoined, markdown.ListPerItem)
	}

	if cfg.Jobs < 0 {
		result.addError("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if cfg.BasePath != "" && !strings.HasPrefix(cfg.BasePath, "/") {
		result.addWarning("base_path", cfg.BasePath, "base path %q does not start with /; one will be added", cfg.BasePath)
	}

	if cfg.Markdown.GFM && cfg.Engine != render.EngineGoldmark {
		result.addWarning("markdown.gfm", true, "gfm only applies to the %s engine", render.EngineGoldmark)
	}

	validateIgnorePatterns(cfg, result)

	return result
}

// validateIgnorePatterns checks that every segment of every pattern is a valid glob.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		for _, segment := range strings.Split(pattern, "/") {
			if _, err := path.Match(segment, ""); err != nil {
				result.addError(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
				break
			}
		}
	}
}

// isWithin reports whether path is dir or lies below it.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
