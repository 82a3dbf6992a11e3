package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/mdsite/pkg/config"
)

// envVarPrefix is the prefix for all mdsite environment variables.
const envVarPrefix = "MDSITE_"

// envVar describes one supported environment variable.
type envVar struct {
	description string
	apply       func(cfg *config.Config, value string) error
}

func stringVar(description string, field func(*config.Config) *string) envVar {
	return envVar{
		description: description,
		apply: func(cfg *config.Config, value string) error {
			*field(cfg) = value
			return nil
		},
	}
}

func boolVar(description string, field func(*config.Config) *bool) envVar {
	return envVar{
		description: description,
		apply: func(cfg *config.Config, value string) error {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
			}
			*field(cfg) = b
			return nil
		},
	}
}

// envVars maps variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = map[string]envVar{
	"CONTENT_DIR": stringVar("Directory holding markdown sources",
		func(c *config.Config) *string { return &c.ContentDir }),
	"STATIC_DIR": stringVar("Directory mirrored into the output",
		func(c *config.Config) *string { return &c.StaticDir }),
	"OUTPUT_DIR": stringVar("Directory receiving the generated site",
		func(c *config.Config) *string { return &c.OutputDir }),
	"TEMPLATE": stringVar("Page template path",
		func(c *config.Config) *string { return &c.Template }),
	"BASE_PATH": stringVar("Prefix for root-relative URLs",
		func(c *config.Config) *string { return &c.BasePath }),
	"ENGINE": stringVar("Markdown renderer: builtin or goldmark",
		func(c *config.Config) *string { return &c.Engine }),
	"LIST_MODE": stringVar("List tokenization: joined or per_item",
		func(c *config.Config) *string { return &c.Markdown.ListMode }),
	"CLEAN": boolVar("Remove the output directory before building",
		func(c *config.Config) *bool { return &c.Clean }),
	"FOLLOW_SYMLINKS": boolVar("Descend into symlinked content directories",
		func(c *config.Config) *bool { return &c.FollowSymlinks }),
	"INFO_STRING_CLASS": boolVar("Turn code fence info strings into language classes",
		func(c *config.Config) *bool { return &c.Markdown.InfoStringClass }),
	"DETECT_LANGUAGE": boolVar("Detect languages of unlabeled code blocks",
		func(c *config.Config) *bool { return &c.Markdown.DetectLanguage }),
	"NORMALIZE_UNICODE": boolVar("Apply NFC normalization to documents",
		func(c *config.Config) *bool { return &c.Markdown.NormalizeUnicode }),
	"GFM": boolVar("GitHub Flavored Markdown in the goldmark engine",
		func(c *config.Config) *bool { return &c.Markdown.GFM }),
	"JOBS": {
		description: "Number of parallel workers (0 = auto)",
		apply: func(cfg *config.Config, value string) error {
			jobs, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid integer %q", value)
			}
			cfg.Jobs = jobs
			return nil
		},
	},
	"IGNORE": {
		description: "Comma-separated list of ignore patterns",
		apply: func(cfg *config.Config, value string) error {
			cfg.Ignore = parseSliceValue(value)
			return nil
		},
	},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with MDSITE_ (e.g., MDSITE_OUTPUT_DIR). Empty
// variables are ignored.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, suffix := range sortedEnvSuffixes() {
		name := envVarPrefix + suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}

		if err := envVars[suffix].apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envVars))
	for suffix, v := range envVars {
		out[envVarPrefix+suffix] = v.description
	}
	return out
}

func sortedEnvSuffixes() []string {
	suffixes := make([]string, 0, len(envVars))
	for suffix := range envVars {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)
	return suffixes
}
