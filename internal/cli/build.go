package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdsite/internal/configloader"
	"github.com/yaklabco/mdsite/internal/logging"
	"github.com/yaklabco/mdsite/internal/ui/pretty"
	"github.com/yaklabco/mdsite/pkg/config"
	"github.com/yaklabco/mdsite/pkg/site"
)

// Report styles accepted by build --report.
const (
	reportSummary = "summary"
	reportTable   = "table"
	reportQuiet   = "quiet"
)

type buildFlags struct {
	content    string
	static     string
	output     string
	template   string
	basePath   string
	engine     string
	listMode   string
	ignore     []string
	jobs       int
	detectLang bool
	infoClass  bool
	normalize  bool
	gfm        bool
	noClean    bool
	follow     bool
	strict     bool
	report     string
}

func newBuildCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site",
		Long:  buildLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, flags)
		},
	}

	addBuildFlags(cmd, flags)

	return cmd
}

const buildLongDescription = `Build the site described by the configuration.

Settings come from .mdsite.yml (searched upward from the current directory),
MDSITE_* environment variables and the flags below, in increasing order of
precedence. Path flags are relative to the current directory.

The output directory is removed first unless --no-clean is given, then the
static directory is mirrored into it and every Markdown document under the
content directory becomes an .html page at the same relative path.

Examples:
  mdsite build                             # Build with project settings
  mdsite build --output dist               # Write the site to dist/
  mdsite build --engine goldmark --gfm     # Render with goldmark and GFM
  mdsite build --base-path /docs/          # Serve the site under /docs/
  mdsite build --report table --strict     # Per-page table, fail on broken links`

func addBuildFlags(cmd *cobra.Command, flags *buildFlags) {
	cmd.Flags().StringVar(&flags.content, "content", "", "directory holding markdown sources")
	cmd.Flags().StringVar(&flags.static, "static", "", "directory mirrored into the output")
	cmd.Flags().StringVar(&flags.output, "output", "", "directory receiving the generated site")
	cmd.Flags().StringVar(&flags.template, "template", "", "page template path")
	cmd.Flags().StringVar(&flags.basePath, "base-path", "", "prefix for root-relative URLs")
	cmd.Flags().StringVar(&flags.engine, "engine", "", "markdown renderer: builtin, goldmark")
	cmd.Flags().StringVar(&flags.listMode, "list-mode", "", "list item tokenization: joined, per_item")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip, relative to the content directory")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.detectLang, "detect-lang", false, "detect the language of unlabeled code blocks")
	cmd.Flags().BoolVar(&flags.infoClass, "info-class", false, "move code fence info strings into a language class")
	cmd.Flags().BoolVar(&flags.normalize, "normalize", false, "apply NFC normalization to documents")
	cmd.Flags().BoolVar(&flags.gfm, "gfm", false, "enable GitHub Flavored Markdown in the goldmark engine")
	cmd.Flags().BoolVar(&flags.noClean, "no-clean", false, "keep existing files in the output directory")
	cmd.Flags().BoolVar(&flags.follow, "follow-symlinks", false, "descend into symlinked directories under the content directory")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat broken links as a build failure")
	cmd.Flags().StringVar(&flags.report, "report", reportSummary, "report style: summary, table, quiet")
}

// cliConfig maps explicitly set flags onto a config overlay. Path flags are
// made absolute so they are not re-based onto the config file directory.
func (f *buildFlags) cliConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{
		BasePath:       f.basePath,
		Engine:         f.engine,
		Jobs:           f.jobs,
		Clean:          false,
		FollowSymlinks: f.follow,
		Markdown: config.MarkdownConfig{
			ListMode:         f.listMode,
			InfoStringClass:  f.infoClass,
			DetectLanguage:   f.detectLang,
			NormalizeUnicode: f.normalize,
			GFM:              f.gfm,
		},
	}

	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = f.ignore
	}

	paths := []struct {
		value string
		dst   *string
	}{
		{f.content, &cfg.ContentDir},
		{f.static, &cfg.StaticDir},
		{f.output, &cfg.OutputDir},
		{f.template, &cfg.Template},
	}
	for _, p := range paths {
		if p.value == "" {
			continue
		}
		abs, err := filepath.Abs(p.value)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p.value, err)
		}
		*p.dst = abs
	}

	return cfg, nil
}

func runBuild(cmd *cobra.Command, flags *buildFlags) error {
	switch flags.report {
	case reportSummary, reportTable, reportQuiet:
	default:
		return fmt.Errorf("%w: unknown report style %q", ErrUsage, flags.report)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	cliCfg, err := flags.cliConfig(cmd)
	if err != nil {
		return err
	}

	loadResult, err := loadConfig(ctx, cmd, cliCfg, flags.noClean)
	if err != nil {
		return err
	}
	cfg := loadResult.Config

	logger.Debug("configuration loaded",
		logging.FieldConfig, loadResult.LoadedFrom,
		logging.FieldEngine, cfg.Engine,
		logging.FieldListMode, cfg.Markdown.ListMode,
		logging.FieldBasePath, cfg.BasePath,
		logging.FieldJobs, cfg.Jobs,
	)

	builder, err := site.NewBuilder(cfg)
	if err != nil {
		return fmt.Errorf("create builder: %w", err)
	}

	logger.Debug("starting build",
		logging.FieldInput, cfg.ContentDir,
		logging.FieldOutput, cfg.OutputDir,
	)

	report, err := builder.Build(ctx)
	if err != nil {
		return fmt.Errorf("build site: %w", err)
	}

	if report.StaticMissing {
		logger.Warn("static directory not found; skipped", logging.FieldPath, cfg.StaticDir)
	}

	stats := report.Result.Stats
	logger.Debug("build finished",
		logging.FieldPages, stats.Processed,
		logging.FieldWritten, stats.Written,
		logging.FieldUnchanged, stats.Unchanged,
		logging.FieldErrored, stats.Errored,
		logging.FieldBytes, stats.Bytes,
		logging.FieldStatic, report.Static.Files,
		logging.FieldDuration, report.Duration,
	)

	if err := writeBuildReport(cmd.OutOrStdout(), colorMode(cmd), flags.report, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if report.Result.HasFailures() {
		return errors.Join(ErrBuildFailed, report.Err())
	}
	if flags.strict && len(report.BrokenLinks) > 0 {
		return fmt.Errorf("%w: %d", ErrBrokenLinks, len(report.BrokenLinks))
	}

	return nil
}

// loadConfig resolves the configuration for cmd, logging load warnings.
func loadConfig(ctx context.Context, cmd *cobra.Command, cliCfg *config.Config, noClean bool) (*configloader.LoadResult, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
		NoClean:      noClean,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	logger := logging.FromContext(ctx)
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	return loadResult, nil
}

// writeBuildReport prints the report in the requested style.
func writeBuildReport(w io.Writer, mode, style string, report *site.Report) error {
	colorEnabled := pretty.IsColorEnabled(mode, w)
	styles := pretty.NewStyles(colorEnabled)

	var out string
	switch style {
	case reportQuiet:
		out = styles.FormatIssues(report)
	case reportTable:
		formatter := pretty.NewTableFormatter(styles, terminalWidth(w))
		out = formatter.FormatTable(report) + styles.FormatIssues(report) + styles.FormatSummary(report)
	default:
		out = styles.FormatIssues(report) + styles.FormatSummaryOneLine(report)
	}

	_, err := io.WriteString(w, out)
	return err
}

// terminalWidth returns the width of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
