package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdsite/pkg/fsutil"
)

// stdinArg names standard input as a document argument.
const stdinArg = "-"

// readDocument reads the document named by args, or standard input when
// there is no argument or it is "-".
func readDocument(ctx context.Context, cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == stdinArg {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	doc, err := fsutil.ReadString(ctx, args[0])
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return doc, nil
}
