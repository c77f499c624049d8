package bpecmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/agentstation/bpeedit/bpe"
)

// newVocabCmd creates the vocab subcommand.
func newVocabCmd() *cobra.Command {
	var singleChar bool

	cmd := &cobra.Command{
		Use:   "vocab <file>",
		Short: "List vocabulary entries",
		Example: `  tokenizer bpe vocab tokenizer.json
  tokenizer bpe vocab tokenizer.json --single-char`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runVocab(args[0], singleChar)
		},
	}

	cmd.Flags().BoolVar(&singleChar, "single-char", false, "list only single-character tokens")
	return cmd
}

func runVocab(path string, singleChar bool) error {
	editor, err := bpe.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	if singleChar {
		pairs := editor.SingleCharTokens()
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].ID < pairs[j].ID })
		for _, p := range pairs {
			fmt.Printf("%-6d %q\n", p.ID, p.Token)
		}
		return nil
	}

	vocab := editor.Vocab()
	tokens := make([]string, 0, len(vocab))
	for tok := range vocab {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool { return vocab[tokens[i]] < vocab[tokens[j]] })
	for _, tok := range tokens {
		fmt.Printf("%-6d %q\n", vocab[tok], tok)
	}
	return nil
}
