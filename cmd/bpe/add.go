package bpecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bpeedit/bpe"
)

// newAddCmd creates the add subcommand.
func newAddCmd() *cobra.Command {
	var out string
	var atomic bool

	cmd := &cobra.Command{
		Use:   "add <file> <token>...",
		Short: "Add one or more tokens, synthesizing merges as needed",
		Long: `Add each token to the vocabulary. For every token not already present,
the shortest applicable strategy is used: single-character insertion,
extending the longest existing vocabulary prefix by one token, or a
full character-chain merge build-up.

With --atomic, tokens are inserted as opaque atoms and no merges are
ever synthesized. This is the right mode for special tokens.`,
		Example: `  tokenizer bpe add tokenizer.json --out out.json hello world
  tokenizer bpe add tokenizer.json --out out.json --atomic "<|extra|>"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAdd(args[0], args[1:], out, atomic)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output path (defaults to overwriting the input file)")
	cmd.Flags().BoolVar(&atomic, "atomic", false, "insert tokens as opaque atoms without synthesizing merges")
	return cmd
}

func runAdd(path string, tokens []string, out string, atomic bool) error {
	editor, err := bpe.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	if atomic {
		for _, tok := range tokens {
			added := editor.AddTokenAtomic(tok)
			fmt.Printf("%-30s atomic   added=%v\n", tok, added)
		}
	} else {
		for _, result := range editor.AddTokens(tokens) {
			fmt.Printf("%-30s %-15s added=%v merges=%d\n",
				result.Token, result.Method, result.Added, len(result.AddedMerges))
		}
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
