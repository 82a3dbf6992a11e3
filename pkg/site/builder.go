package site

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yaklabco/mdsite/pkg/config"
	"github.com/yaklabco/mdsite/pkg/fsutil"
	"github.com/yaklabco/mdsite/pkg/markdown"
	"github.com/yaklabco/mdsite/pkg/render"
	"github.com/yaklabco/mdsite/pkg/runner"
)

// OutputExt is the extension of generated pages.
const OutputExt = ".html"

// PageReport describes one generated page.
type PageReport struct {
	// Source is the document path relative to the content directory.
	Source string

	// Output is the page path relative to the output directory.
	Output string

	// Title is the page title.
	Title string

	// Written is false when the page on disk was already up to date.
	Written bool

	// Bytes is the page size.
	Bytes int64
}

// BrokenLink is a root-relative URL with no matching file in the output.
type BrokenLink struct {
	// Page is the source document containing the URL.
	Page string

	// URL is the link or image target as written in the document.
	URL string

	// Image is true for image sources.
	Image bool
}

// Report summarizes a build.
type Report struct {
	// Pages lists generated pages ordered by source path.
	Pages []PageReport

	// Static summarizes the static directory copy.
	Static fsutil.CopyStats

	// StaticMissing is true when the configured static directory does not exist.
	StaticMissing bool

	// Result holds per-file outcomes and aggregate statistics.
	Result *runner.Result

	// BrokenLinks lists root-relative URLs that resolve to nothing.
	BrokenLinks []BrokenLink

	// Duration is the wall time of the build.
	Duration time.Duration
}

// Err returns the joined per-page errors, or nil.
func (r *Report) Err() error {
	if r == nil || r.Result == nil {
		return nil
	}
	return r.Result.Err()
}

// Builder builds a site from a configuration.
type Builder struct {
	cfg    *config.Config
	engine render.Engine
}

// NewBuilder creates a Builder for cfg.
func NewBuilder(cfg *config.Config) (*Builder, error) {
	engine, err := render.New(cfg.Engine, RenderOptions(cfg))
	if err != nil {
		return nil, err
	}
	return &Builder{cfg: cfg, engine: engine}, nil
}

// RenderOptions derives engine options from cfg.
func RenderOptions(cfg *config.Config) render.Options {
	return render.Options{
		Markdown: markdown.Options{
			ListMode:           markdown.ListMode(cfg.Markdown.ListMode),
			InfoStringClass:    cfg.Markdown.InfoStringClass,
			DetectCodeLanguage: cfg.Markdown.DetectLanguage,
		},
		GFM: cfg.Markdown.GFM,
	}
}

// Engine returns the engine pages are rendered with.
//
//nolint:ireturn // The engine is chosen by configuration.
func (b *Builder) Engine() render.Engine {
	return b.engine
}

// Build prepares the output directory, mirrors static files and generates
// one page per markdown source. Page failures are collected in the report;
// the returned error covers failures that stop the build.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := &Report{}

	tmpl, err := fsutil.ReadString(ctx, b.cfg.Template)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}

	if err := b.prepareOutput(ctx, report); err != nil {
		return nil, err
	}

	pages := &pageSet{byRel: make(map[string]pageEntry)}
	run := runner.New(b.processFunc(tmpl, pages))

	result, err := run.Run(ctx, runner.Options{
		Root:           b.cfg.ContentDir,
		ExcludeGlobs:   b.cfg.Ignore,
		FollowSymlinks: b.cfg.FollowSymlinks,
		Jobs:           b.cfg.Jobs,
	})
	if err != nil {
		return nil, fmt.Errorf("generate pages: %w", err)
	}

	report.Result = result
	report.Pages = pages.reports()
	report.BrokenLinks = pages.brokenLinks(b.cfg.OutputDir)
	report.Duration = time.Since(start)

	return report, nil
}

func (b *Builder) prepareOutput(ctx context.Context, report *Report) error {
	out := b.cfg.OutputDir
	static := b.cfg.StaticDir

	hasStatic := false
	if static != "" {
		info, err := os.Stat(static)
		hasStatic = err == nil && info.IsDir()
		report.StaticMissing = !hasStatic
	}

	if hasStatic {
		if err := checkOutsideStatic(out, static); err != nil {
			return err
		}
	}

	if b.cfg.Clean {
		if err := CheckCleanable(out, b.cfg.ContentDir, static, b.cfg.Template); err != nil {
			return err
		}
	}

	var err error
	switch {
	case b.cfg.Clean && hasStatic:
		report.Static, err = CopyStatic(ctx, static, out)
	case b.cfg.Clean:
		err = CleanDir(out)
	case hasStatic:
		report.Static, err = fsutil.CopyTree(ctx, static, out)
	default:
		err = fsutil.EnsureDir(out)
	}
	if err != nil {
		return fmt.Errorf("prepare output: %w", err)
	}

	return nil
}

func (b *Builder) processFunc(tmpl string, pages *pageSet) runner.ProcessFunc {
	opts := PageOptions{
		Engine:           b.engine,
		BasePath:         b.cfg.BasePath,
		NormalizeUnicode: b.cfg.Markdown.NormalizeUnicode,
	}

	return func(ctx context.Context, src runner.Source) (*runner.Output, error) {
		doc, err := fsutil.ReadString(ctx, src.Path)
		if err != nil {
			return nil, err
		}

		page, err := GeneratePage(ctx, doc, tmpl, opts)
		if err != nil {
			return nil, err
		}

		outRel := OutputPath(src.Rel)
		outPath := filepath.Join(b.cfg.OutputDir, filepath.FromSlash(outRel))
		content := []byte(page.HTML)

		written, err := fsutil.WriteAtomicIfChanged(ctx, outPath, content, 0)
		if err != nil {
			return nil, err
		}

		pages.add(src.Rel, pageEntry{
			report: PageReport{
				Source:  src.Rel,
				Output:  outRel,
				Title:   page.Title,
				Written: written,
				Bytes:   int64(len(content)),
			},
			links:  page.Links,
			images: page.Images,
		})

		return &runner.Output{Path: outPath, Written: written, Bytes: int64(len(content))}, nil
	}
}

// OutputPath maps a slash-separated source path to its page path.
func OutputPath(rel string) string {
	return strings.TrimSuffix(rel, path.Ext(rel)) + OutputExt
}

type pageEntry struct {
	report PageReport
	links  []string
	images []string
}

// pageSet collects pages from concurrent workers.
type pageSet struct {
	mu    sync.Mutex
	byRel map[string]pageEntry
}

func (s *pageSet) add(rel string, entry pageEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byRel[rel] = entry
}

func (s *pageSet) sortedRels() []string {
	rels := make([]string, 0, len(s.byRel))
	for rel := range s.byRel {
		rels = append(rels, rel)
	}
	sort.Strings(rels)
	return rels
}

func (s *pageSet) reports() []PageReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]PageReport, 0, len(s.byRel))
	for _, rel := range s.sortedRels() {
		out = append(out, s.byRel[rel].report)
	}
	return out
}

func (s *pageSet) brokenLinks(outDir string) []BrokenLink {
	s.mu.Lock()
	defer s.mu.Unlock()

	var broken []BrokenLink
	for _, rel := range s.sortedRels() {
		entry := s.byRel[rel]
		for _, url := range entry.links {
			if !resolves(outDir, url) {
				broken = append(broken, BrokenLink{Page: rel, URL: url})
			}
		}
		for _, url := range entry.images {
			if !resolves(outDir, url) {
				broken = append(broken, BrokenLink{Page: rel, URL: url, Image: true})
			}
		}
	}
	return broken
}

// resolves reports whether a root-relative URL names a file under outDir.
// Other URLs are not checked and always resolve.
func resolves(outDir, url string) bool {
	if !strings.HasPrefix(url, "/") || strings.HasPrefix(url, "//") {
		return true
	}

	target := url
	if idx := strings.IndexAny(target, "?#"); idx >= 0 {
		target = target[:idx]
	}
	target = strings.TrimPrefix(target, "/")

	var candidates []string
	switch {
	case target == "" || strings.HasSuffix(target, "/"):
		candidates = []string{target + "index.html"}
	default:
		candidates = []string{target, target + OutputExt, target + "/index.html"}
	}

	for _, candidate := range candidates {
		info, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(candidate)))
		if err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
