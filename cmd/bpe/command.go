// Package bpecmd provides the bpe command for the tokenizer CLI.
package bpecmd

import (
	"github.com/spf13/cobra"
)

// Command returns the bpe command tree for the tokenizer CLI.
// This command provides stats, validate, add, remove, shrink, and vocab
// subcommands for editing BPE tokenizer.json files.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bpe",
		Short: "Edit BPE tokenizer.json vocabulary and merge rules",
		Long: `Edit the vocabulary and merge rules of a BPE tokenizer.json file while
keeping them jointly consistent: every merge's three endpoints stay in
vocab, removing a token cascades to anything that depends on it, and
shrinking picks the most-derived tokens first.

Available commands:
  stats    - Show vocabulary and merge statistics
  validate - Check that every merge's endpoints are in vocab
  add      - Add one or more tokens, synthesizing merges as needed
  remove   - Remove a token and everything that depends on it
  shrink   - Reduce the vocabulary toward a target size
  vocab    - List vocabulary entries`,
		Example: `  # Show statistics for a tokenizer file
  tokenizer bpe stats tokenizer.json

  # Add tokens
  tokenizer bpe add tokenizer.json --out out.json hello world

  # Remove a token and its dependents
  tokenizer bpe remove tokenizer.json --out out.json oldtoken

  # Preview shrink candidates without modifying the file
  tokenizer bpe shrink tokenizer.json --count 100 --dry-run`,
	}

	cmd.AddCommand(
		newStatsCmd(),
		newValidateCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newShrinkCmd(),
		newVocabCmd(),
	)

	return cmd
}
