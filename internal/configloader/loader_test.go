package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/mdsite/pkg/config"
	"github.com/yaklabco/mdsite/pkg/markdown"
	"github.com/yaklabco/mdsite/pkg/render"
)

func isolatedOptions(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("LoadedFrom = %v, want none", result.LoadedFrom)
	}

	want := filepath.Join(tmpDir, config.DefaultContentDir)
	if result.Config.ContentDir != want {
		t.Errorf("ContentDir = %q, want %q", result.Config.ContentDir, want)
	}
	if result.Config.OutputDir != filepath.Join(tmpDir, config.DefaultOutputDir) {
		t.Errorf("OutputDir = %q", result.Config.OutputDir)
	}
	if !result.Config.Clean {
		t.Error("Clean should default to true")
	}
	if result.Config.Markdown.ListMode != string(markdown.ListJoined) {
		t.Errorf("ListMode = %q, want %q", result.Config.Markdown.ListMode, string(markdown.ListJoined))
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".mdsite.yml"), `
content_dir: docs
engine: goldmark
clean: false
follow_symlinks: true
markdown:
  list_mode: per_item
  info_string_class: true
  gfm: true
`)

	// Search starts in a subdirectory and walks upward.
	subDir := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(subDir, 0o755); err != nil {
		t.Fatal(err)
	}

	result, err := Load(context.Background(), isolatedOptions(subDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.ContentDir != filepath.Join(tmpDir, "docs") {
		t.Errorf("ContentDir = %q, want relative to config file", cfg.ContentDir)
	}
	if cfg.Engine != render.EngineGoldmark {
		t.Errorf("Engine = %q", cfg.Engine)
	}
	if cfg.Clean {
		t.Error("clean: false should override the default")
	}
	if cfg.Markdown.ListMode != string(markdown.ListPerItem) || !cfg.Markdown.GFM || !cfg.Markdown.InfoStringClass {
		t.Errorf("Markdown = %+v", cfg.Markdown)
	}
	if !cfg.FollowSymlinks {
		t.Error("follow_symlinks: true should be loaded")
	}
	if cfg.OutputDir != filepath.Join(tmpDir, config.DefaultOutputDir) {
		t.Errorf("OutputDir = %q, want default kept", cfg.OutputDir)
	}
	if result.BaseDir != tmpDir {
		t.Errorf("BaseDir = %q, want %q", result.BaseDir, tmpDir)
	}
	if len(result.LoadedFrom) != 1 {
		t.Errorf("LoadedFrom = %v", result.LoadedFrom)
	}
}

func TestLoad_JSONProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "mdsite.json"),
		`{"output_dir": "dist", "markdown": {"list_mode": "per_item"}}`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.OutputDir != filepath.Join(tmpDir, "dist") {
		t.Errorf("OutputDir = %q", result.Config.OutputDir)
	}
	if result.Config.Markdown.ListMode != string(markdown.ListPerItem) {
		t.Errorf("ListMode = %q", result.Config.Markdown.ListMode)
	}
}

func TestLoad_ExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".mdsite.yml"), "output_dir: project-out\nbase_path: /docs/\n")
	explicit := filepath.Join(tmpDir, "conf", "site.yaml")
	writeFile(t, explicit, "output_dir: explicit-out\n")

	opts := isolatedOptions(tmpDir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got, want := result.Config.OutputDir, filepath.Join(tmpDir, "conf", "explicit-out"); got != want {
		t.Errorf("OutputDir = %q, want %q", got, want)
	}
	if result.Config.BasePath != "/docs/" {
		t.Errorf("BasePath = %q, want project value kept", result.Config.BasePath)
	}
	if len(result.LoadedFrom) != 2 || result.LoadedFrom[1] != explicit {
		t.Errorf("LoadedFrom = %v", result.LoadedFrom)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".mdsite.yml"), "engine: goldmark\njobs: 99\n")

	opts := isolatedOptions(tmpDir)
	opts.CLIConfig = &config.Config{
		Engine:    render.EngineBuiltin,
		OutputDir: "/abs/out",
		Jobs:      3,
	}
	opts.NoClean = true

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.Engine != render.EngineBuiltin {
		t.Errorf("Engine = %q, want CLI value", cfg.Engine)
	}
	if cfg.OutputDir != "/abs/out" {
		t.Errorf("OutputDir = %q, absolute paths stay untouched", cfg.OutputDir)
	}
	if cfg.Jobs != 3 {
		t.Errorf("Jobs = %d, want 3", cfg.Jobs)
	}
	if cfg.Clean {
		t.Error("NoClean should disable Clean")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".mdsite.yml"), "content_dir: [unterminated\n")

	if _, err := Load(context.Background(), isolatedOptions(tmpDir)); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_ValidationError(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".mdsite.yml"), "engine: pandoc\n")

	_, err := Load(context.Background(), isolatedOptions(tmpDir))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if verr.Field != "engine" {
		t.Errorf("Field = %q, want engine", verr.Field)
	}
	if verr.FilePath != filepath.Join(tmpDir, ".mdsite.yml") {
		t.Errorf("FilePath = %q, want the project config", verr.FilePath)
	}
}

func TestLoad_Warnings(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".mdsite.yml"), "base_path: docs\nmarkdown:\n  gfm: true\n")

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("Warnings = %v, want 2", result.Warnings)
	}
	for _, w := range result.Warnings {
		if !strings.HasPrefix(w, filepath.Join(tmpDir, ".mdsite.yml")+": ") {
			t.Errorf("warning %q does not name the config file", w)
		}
	}
}

func TestLoad_Env(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("MDSITE_OUTPUT_DIR", "env-out")
	t.Setenv("MDSITE_CLEAN", "false")
	t.Setenv("MDSITE_IGNORE", "drafts/**, *.tmp.md")
	t.Setenv("MDSITE_JOBS", "")
	t.Setenv("MDSITE_FOLLOW_SYMLINKS", "true")
	t.Setenv("MDSITE_INFO_STRING_CLASS", "1")

	opts := isolatedOptions(tmpDir)
	opts.IgnoreEnv = false
	opts.CLIConfig = &config.Config{BasePath: "/cli/"}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.OutputDir != filepath.Join(tmpDir, "env-out") {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.Clean {
		t.Error("MDSITE_CLEAN=false should disable Clean")
	}
	if len(cfg.Ignore) != 2 || cfg.Ignore[1] != "*.tmp.md" {
		t.Errorf("Ignore = %v", cfg.Ignore)
	}
	if cfg.BasePath != "/cli/" {
		t.Errorf("BasePath = %q, want CLI value", cfg.BasePath)
	}
	if !cfg.FollowSymlinks || !cfg.Markdown.InfoStringClass {
		t.Errorf("FollowSymlinks = %v, InfoStringClass = %v, want both from env",
			cfg.FollowSymlinks, cfg.Markdown.InfoStringClass)
	}
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Setenv("MDSITE_JOBS", "many")

	err := LoadFromEnv(config.NewConfig())
	if err == nil {
		t.Fatal("expected error for invalid MDSITE_JOBS")
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	for _, name := range []string{"MDSITE_CONTENT_DIR", "MDSITE_ENGINE", "MDSITE_LIST_MODE", "MDSITE_GFM", "MDSITE_FOLLOW_SYMLINKS", "MDSITE_INFO_STRING_CLASS"} {
		if vars[name] == "" {
			t.Errorf("missing description for %s", name)
		}
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".mdsite.yml"), "engine: builtin\n")
	repo := filepath.Join(tmpDir, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectConfig(context.Background(), repo)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}
	if got != "" {
		t.Errorf("FindProjectConfig() = %q, want search to stop at repo root", got)
	}
}

func TestFindProjectConfig_Preference(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "mdsite.yaml"), "")
	writeFile(t, filepath.Join(tmpDir, ".mdsite.yml"), "")

	got, err := FindProjectConfig(context.Background(), tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(got) != ".mdsite.yml" {
		t.Errorf("FindProjectConfig() = %q, want .mdsite.yml", got)
	}
}

func TestDiscoverPaths_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := DiscoverPaths(ctx, t.TempDir()); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*config.Config)
		errors   int
		warnings int
	}{
		{"defaults", func(*config.Config) {}, 0, 0},
		{"unknown engine", func(c *config.Config) { c.Engine = "pandoc" }, 1, 0},
		{"unknown list mode", func(c *config.Config) { c.Markdown.ListMode = "nested" }, 1, 0},
		{"negative jobs", func(c *config.Config) { c.Jobs = -1 }, 1, 0},
		{"empty content dir", func(c *config.Config) { c.ContentDir = " " }, 1, 0},
		{"output equals content", func(c *config.Config) { c.OutputDir = c.ContentDir + "/" }, 1, 0},
		{"output inside static", func(c *config.Config) { c.OutputDir = c.StaticDir + "/public" }, 1, 0},
		{"output equals static", func(c *config.Config) { c.OutputDir = c.StaticDir }, 1, 0},
		{"static disabled", func(c *config.Config) {
			c.StaticDir = ""
			c.OutputDir = "static/public"
		}, 0, 0},
		{"bad glob", func(c *config.Config) { c.Ignore = []string{"drafts/[a"} }, 1, 0},
		{"double star glob", func(c *config.Config) { c.Ignore = []string{"**/draft-*.md"} }, 0, 0},
		{"relative base path", func(c *config.Config) { c.BasePath = "docs" }, 0, 1},
		{"gfm without goldmark", func(c *config.Config) { c.Markdown.GFM = true }, 0, 1},
		{"gfm with goldmark", func(c *config.Config) {
			c.Markdown.GFM = true
			c.Engine = render.EngineGoldmark
		}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tt.mutate(cfg)

			result := Validate(cfg)
			if len(result.Errors) != tt.errors {
				t.Errorf("errors = %v, want %d", result.Errors, tt.errors)
			}
			if len(result.Warnings) != tt.warnings {
				t.Errorf("warnings = %v, want %d", result.Warnings, tt.warnings)
			}
		})
	}
}

func TestValidateWithFile(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Engine = "pandoc"

	result := ValidateWithFile(cfg, ".mdsite.yml")
	if result.Valid() {
		t.Fatal("expected invalid result")
	}
	if got := result.Errors[0].Error(); got != `.mdsite.yml: engine: invalid engine "pandoc"; must be one of: builtin, goldmark` {
		t.Errorf("Error() = %q", got)
	}
}
