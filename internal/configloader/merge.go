package configloader

import (
	"github.com/yaklabco/mdsite/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
//   - Strings and numbers: override wins when non-zero
//   - Booleans: override wins when true
//   - Slices: override replaces base entirely when non-nil
//
// It is used for CLI flag values, where only set flags are non-zero.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	mergeString(&result.ContentDir, override.ContentDir)
	mergeString(&result.StaticDir, override.StaticDir)
	mergeString(&result.OutputDir, override.OutputDir)
	mergeString(&result.Template, override.Template)
	mergeString(&result.BasePath, override.BasePath)
	mergeString(&result.Engine, override.Engine)
	mergeString(&result.Markdown.ListMode, override.Markdown.ListMode)

	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	if override.Clean {
		result.Clean = true
	}
	if override.FollowSymlinks {
		result.FollowSymlinks = true
	}
	if override.Markdown.InfoStringClass {
		result.Markdown.InfoStringClass = true
	}
	if override.Markdown.DetectLanguage {
		result.Markdown.DetectLanguage = true
	}
	if override.Markdown.NormalizeUnicode {
		result.Markdown.NormalizeUnicode = true
	}
	if override.Markdown.GFM {
		result.Markdown.GFM = true
	}

	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}

	return result
}

func mergeString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
