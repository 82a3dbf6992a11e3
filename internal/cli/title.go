package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/yaklabco/mdsite/pkg/markdown"
)

func newTitleCommand() *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "title [file]",
		Short: "Print the title of a document",
		Long: `Print the text of a document's level-1 heading.

The document must begin with "# ". It is read from the named file, or from
standard input when no file or "-" is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			doc, err := readDocument(ctx, cmd, args)
			if err != nil {
				return err
			}
			if normalize {
				doc = norm.NFC.String(doc)
			}

			title, err := markdown.ExtractTitle(doc)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), title)
			return err
		},
	}

	cmd.Flags().BoolVar(&normalize, "normalize", false, "apply NFC normalization to the document")

	return cmd
}
