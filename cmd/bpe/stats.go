package bpecmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/agentstation/bpeedit/bpe"
)

// newStatsCmd creates the stats subcommand.
func newStatsCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show vocabulary and merge statistics",
		Long: `Display vocabulary size, merge count, single-character and special token
counts, the token id range, and the length distribution of a tokenizer
file.`,
		Example: `  tokenizer bpe stats tokenizer.json
  tokenizer bpe stats tokenizer.json --top 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runStats(args[0], top)
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "number of length-distribution rows to show")
	return cmd
}

func runStats(path string, top int) error {
	editor, err := bpe.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	stats := editor.Stats()

	fmt.Printf("Vocabulary size:    %d\n", stats.VocabSize)
	fmt.Printf("Merges:             %d\n", stats.MergesCount)
	fmt.Printf("Single-char tokens: %d\n", stats.SingleCharCount)
	fmt.Printf("Special tokens:     %d\n", stats.SpecialTokenCount)
	fmt.Printf("Token id range:     %d - %d\n", stats.MinTokenID, stats.MaxTokenID)
	fmt.Println()

	validation := editor.ValidateMerges()
	fmt.Printf("Valid merges:   %d\n", validation.ValidCount)
	fmt.Printf("Invalid merges: %d\n", validation.InvalidCount)
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Length", "Count"})
	rows := stats.LengthDistribution
	if top > 0 && len(rows) > top {
		rows = rows[:top]
	}
	for _, lc := range rows {
		table.Append([]string{fmt.Sprintf("%d", lc.Length), fmt.Sprintf("%d", lc.Count)})
	}
	table.Render()

	return nil
}
