package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdsite/internal/logging"
	"github.com/yaklabco/mdsite/pkg/config"
	"github.com/yaklabco/mdsite/pkg/fsutil"
)

// Files written by init.
const (
	initConfigYAML = ".mdsite.yml"
	initConfigJSON = "mdsite.json"
	initIndexPage  = "index.md"
)

// starterIndex is the first content page written by init.
const starterIndex = `# Welcome

This site was generated by **mdsite**. Edit ` + "`content/index.md`" + ` to change
this page, or add more documents next to it.
`

// errSkipped marks a file the user chose not to overwrite.
var errSkipped = errors.New("skipped")

// initFlags holds the flags for the init command.
type initFlags struct {
	dir     string
	force   bool
	minimal bool
	format  string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new mdsite project",
		Long: `Create a .mdsite.yml configuration file, a starter page template and a
first content page in the target directory.

Existing files are kept unless --force is given. In an interactive terminal
you are asked before each file is overwritten.

Examples:
  mdsite init                   Create the project in the current directory
  mdsite init --dir site        Create the project in ./site
  mdsite init --minimal         Leave out the commented optional settings
  mdsite init --format json     Write mdsite.json instead of .mdsite.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.dir, "dir", ".", "Directory to initialize")
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing files without asking")
	cmd.Flags().BoolVar(&flags.minimal, "minimal", false, "Leave out commented optional settings")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Configuration format: yaml or json")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()
	logger.SetOutput(cmd.ErrOrStderr())

	if flags.format != "yaml" && flags.format != "json" {
		return fmt.Errorf("%w: invalid format %q: must be yaml or json", ErrUsage, flags.format)
	}

	root, err := filepath.Abs(flags.dir)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	configContent, err := config.GenerateTemplate(config.TemplateOptions{
		Format:  flags.format,
		Minimal: flags.minimal,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	configName := initConfigYAML
	if flags.format == "json" {
		configName = initConfigJSON
	}

	files := []struct {
		rel     string
		content []byte
	}{
		{configName, configContent},
		{config.DefaultTemplate, []byte(config.DefaultPageTemplate)},
		{filepath.Join(config.DefaultContentDir, initIndexPage), []byte(starterIndex)},
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	prompter := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())

	for _, file := range files {
		path := filepath.Join(root, file.rel)

		err := writeInitFile(ctx, prompter, path, file.content, flags.force)
		switch {
		case errors.Is(err, errSkipped):
			logger.Info("kept existing file", logging.FieldPath, file.rel)
		case err != nil:
			return err
		default:
			logger.Info("created", logging.FieldPath, file.rel)
		}
	}

	if err := fsutil.EnsureDir(filepath.Join(root, config.DefaultStaticDir)); err != nil {
		return fmt.Errorf("create static directory: %w", err)
	}

	if flags.format == "json" {
		logger.Info("pass --config " + initConfigJSON + " to use the JSON configuration")
	}
	logger.Info("run 'mdsite build' to generate the site")

	return nil
}

// writeInitFile writes content to path, asking before replacing an existing
// file. It returns errSkipped when the file is kept.
func writeInitFile(ctx context.Context, prompter *prompter, path string, content []byte, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		if !prompter.interactive() {
			return fmt.Errorf("file %q already exists; use --force to overwrite", path)
		}

		ok, err := prompter.confirm(fmt.Sprintf("Overwrite %s? [y/N] ", path))
		if err != nil {
			return err
		}
		if !ok {
			return errSkipped
		}
	}

	if err := fsutil.WriteAtomic(ctx, path, content, 0); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// prompter asks yes/no questions on a terminal.
type prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: in, out: out, reader: bufio.NewReader(in)}
}

// interactive returns true if input is a terminal.
func (p *prompter) interactive() bool {
	f, ok := p.in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// confirm writes question and reads a yes/no answer. The default is no.
func (p *prompter) confirm(question string) (bool, error) {
	if _, err := io.WriteString(p.out, question); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	response, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
