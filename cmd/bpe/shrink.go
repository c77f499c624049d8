package bpecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bpeedit/bpe"
)

// newShrinkCmd creates the shrink subcommand.
func newShrinkCmd() *cobra.Command {
	var count int
	var minID int
	var dryRun bool
	var out string

	cmd := &cobra.Command{
		Use:   "shrink <file>",
		Short: "Reduce the vocabulary toward a target size",
		Long: `Repeatedly remove the most-derived eligible token (longest byte length,
ties broken by highest id) and cascade its dependents, until the
vocabulary has shrunk by at least --count tokens or no eligible
candidate remains. Special tokens, single-character tokens and tokens
with an id below --min-id are never chosen for eviction; a chosen
token's cascade still removes every token built from it.`,
		Example: `  tokenizer bpe shrink tokenizer.json --count 100 --dry-run
  tokenizer bpe shrink tokenizer.json --out out.json --count 500 --min-id 256`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runShrink(args[0], count, minID, dryRun, out)
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "number of tokens to remove")
	cmd.Flags().IntVar(&minID, "min-id", 0, "never choose a token with id below this for eviction")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "preview candidates without modifying the file")
	cmd.Flags().StringVar(&out, "out", "", "output path (defaults to overwriting the input file)")
	return cmd
}

func runShrink(path string, count, minID int, dryRun bool, out string) error {
	editor, err := bpe.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	if dryRun {
		candidates := editor.FindTokensToShrink(count, minID)
		fmt.Printf("%d candidate(s):\n", len(candidates))
		for _, c := range candidates {
			fmt.Printf("  %-30s id=%d length=%d\n", c.Token, c.ID, c.Length)
		}
		return nil
	}

	result := editor.Shrink(count, minID)
	fmt.Printf("Initial vocab size: %d\n", result.InitialVocabSize)
	fmt.Printf("Final vocab size:   %d\n", result.FinalVocabSize)
	fmt.Printf("Tokens removed:     %d\n", result.RemovedCount)
	fmt.Printf("Roots evicted:      %v\n", result.Roots)

	if out == "" {
		out = path
	}
	if err := editor.Save(out); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}
	fmt.Printf("\nsaved to %s\n", out)
	return nil
}
