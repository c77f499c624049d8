package bpecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bpeedit/bpe"
)

// newValidateCmd creates the validate subcommand.
func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that every merge's endpoints are in vocab",
		Example: `  tokenizer bpe validate tokenizer.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
	return cmd
}

func runValidate(path string) error {
	editor, err := bpe.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	result := editor.ValidateMerges()
	fmt.Printf("Valid merges:   %d\n", result.ValidCount)
	fmt.Printf("Invalid merges: %d\n", result.InvalidCount)
	for _, inv := range result.InvalidMerges {
		fmt.Printf("  [%d] %q + %q -> %q\n", inv.Position, inv.Left, inv.Right, inv.Left+inv.Right)
	}
	return nil
}
