package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/yaklabco/mdsite/internal/ui/pretty"
	"github.com/yaklabco/mdsite/pkg/config"
	"github.com/yaklabco/mdsite/pkg/fsutil"
	"github.com/yaklabco/mdsite/pkg/htmlnode"
	"github.com/yaklabco/mdsite/pkg/markdown"
	"github.com/yaklabco/mdsite/pkg/render"
	"github.com/yaklabco/mdsite/pkg/site"
)

type renderFlags struct {
	engine     string
	listMode   string
	detectLang bool
	infoClass  bool
	gfm        bool
	normalize  bool
	page       bool
	template   string
	basePath   string
	dump       bool
	stats      bool
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Convert one document to HTML",
		Long: `Convert a single Markdown document to HTML and print it.

The document is read from the named file, or from standard input when no
file or "-" is given. Configuration files are not consulted.

Examples:
  mdsite render README.md                  # Print the HTML fragment
  mdsite render --page README.md           # Wrap it in the starter template
  mdsite render --page --template t.html   # Wrap it in a custom template
  mdsite render --dump README.md           # Show the node tree
  echo "# Hi" | mdsite render --stats      # Count nodes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.engine, "engine", render.EngineBuiltin, "markdown renderer: builtin, goldmark")
	cmd.Flags().StringVar(&flags.listMode, "list-mode", string(markdown.ListJoined), "list item tokenization: joined, per_item")
	cmd.Flags().BoolVar(&flags.detectLang, "detect-lang", false, "detect the language of unlabeled code blocks")
	cmd.Flags().BoolVar(&flags.infoClass, "info-class", false, "move code fence info strings into a language class")
	cmd.Flags().BoolVar(&flags.gfm, "gfm", false, "enable GitHub Flavored Markdown in the goldmark engine")
	cmd.Flags().BoolVar(&flags.normalize, "normalize", false, "apply NFC normalization to the document")
	cmd.Flags().BoolVar(&flags.page, "page", false, "wrap the content in a page template")
	cmd.Flags().StringVar(&flags.template, "template", "", "page template path (default: built-in starter template)")
	cmd.Flags().StringVar(&flags.basePath, "base-path", "", "prefix for root-relative URLs in --page output")
	cmd.Flags().BoolVar(&flags.dump, "dump", false, "print the node tree instead of HTML (builtin engine)")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "print node counts instead of HTML (builtin engine)")

	return cmd
}

func (f *renderFlags) validate() error {
	if !markdown.ListMode(f.listMode).IsValid() {
		return fmt.Errorf("%w: unknown list mode %q", ErrUsage, f.listMode)
	}
	if (f.dump || f.stats) && f.engine != render.EngineBuiltin {
		return fmt.Errorf("%w: --dump and --stats need the %s engine", ErrUsage, render.EngineBuiltin)
	}
	if f.page && (f.dump || f.stats) {
		return fmt.Errorf("%w: --page cannot be combined with --dump or --stats", ErrUsage)
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	if err := flags.validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := readDocument(ctx, cmd, args)
	if err != nil {
		return err
	}

	opts := render.Options{
		Markdown: markdown.Options{
			ListMode:           markdown.ListMode(flags.listMode),
			InfoStringClass:    flags.infoClass,
			DetectCodeLanguage: flags.detectLang,
		},
		GFM: flags.gfm,
	}

	engine, err := render.New(flags.engine, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if flags.page {
		return renderPage(ctx, out, doc, engine, flags)
	}

	if flags.normalize {
		doc = norm.NFC.String(doc)
	}

	if flags.dump || flags.stats {
		tree, err := render.NewBuiltin(opts.Markdown).Tree(ctx, doc)
		if err != nil {
			return err
		}
		if flags.dump {
			return dumpTree(out, tree, pretty.IsColorEnabled(colorMode(cmd), out))
		}
		return writeStats(out, tree)
	}

	html, err := engine.Render(ctx, doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, html)
	return err
}

func renderPage(ctx context.Context, w io.Writer, doc string, engine render.Engine, flags *renderFlags) error {
	tmpl := config.DefaultPageTemplate
	if flags.template != "" {
		var err error
		tmpl, err = fsutil.ReadString(ctx, flags.template)
		if err != nil {
			return fmt.Errorf("read template: %w", err)
		}
	}

	page, err := site.GeneratePage(ctx, doc, tmpl, site.PageOptions{
		Engine:           engine,
		BasePath:         flags.basePath,
		NormalizeUnicode: flags.normalize,
	})
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, page.HTML)
	return err
}

// dumpTree pretty-prints the node tree.
func dumpTree(w io.Writer, tree *htmlnode.Parent, colorEnabled bool) error {
	out := pp.Sprint(tree)
	if !colorEnabled {
		out = ansi.Strip(out)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

// writeStats prints node counts for the tree.
func writeStats(w io.Writer, tree *htmlnode.Parent) error {
	leaves, parents := htmlnode.Count(tree)
	_, err := fmt.Fprintf(w, "parents: %d\nleaves:  %d\nblocks:  %d\n", parents, leaves, len(tree.Children))
	return err
}
