package bpecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bpeedit/bpe"
)

// newRemoveCmd creates the remove subcommand.
func newRemoveCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "remove <file> <token>...",
		Short: "Remove a token and everything that depends on it",
		Long: `Remove each named token along with every token built from it by a merge,
directly or transitively, cascading through the merge table. Tokens not
present in the vocabulary are skipped.`,
		Example: `  tokenizer bpe remove tokenizer.json --out out.json oldtoken`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRemove(args[0], args[1:], out)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output path (defaults to overwriting the input file)")
	return cmd
}

func runRemove(path string, tokens []string, out string) error {
	editor, err := bpe.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	for _, result := range editor.RemoveTokens(tokens) {
		fmt.Printf("%-30s removed %d token(s): %v\n", result.RootToken, len(result.RemovedTokens), result.RemovedTokens)
	}

	if out == "" {
		out = path
	}
	if err := editor.Save(out); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}
	fmt.Printf("\nsaved to %s\n", out)
	return nil
}
