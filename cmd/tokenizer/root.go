package main

import (
	"fmt"

	"github.com/spf13/cobra"

	bpecmd "github.com/agentstation/bpeedit/cmd/bpe"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tokenizer",
	Short: "A tokenizer file editing CLI tool",
	Long: `Tokenizer is a CLI tool for editing tokenizer vocabulary and merge files.

This tool provides a unified interface for working with tokenizer document
formats. Each format is available as a subcommand with its own set of
operations.

Currently supported formats:
  - bpe: Hugging Face style tokenizer.json BPE documents

Common operations available for the bpe subcommand:
  - stats:    Show vocabulary and merge statistics
  - validate: Check that every merge's endpoints are in vocab
  - add:      Add one or more tokens, synthesizing merges as needed
  - remove:   Remove a token and everything that depends on it
  - shrink:   Reduce the vocabulary toward a target size
  - vocab:    List vocabulary entries`,
	Example: `  # Show statistics for a tokenizer file
  tokenizer bpe stats tokenizer.json

  # Add tokens, synthesizing merges as needed
  tokenizer bpe add tokenizer.json --out out.json hello world

  # Remove a token and its dependents
  tokenizer bpe remove tokenizer.json --out out.json oldtoken

  # Preview shrink candidates without modifying the file
  tokenizer bpe shrink tokenizer.json --count 100 --dry-run`,
	SilenceUsage: true,
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tokenizer version %s\n", version)
		if commit != "none" {
			fmt.Printf("  commit:     %s\n", commit)
		}
		if buildDate != "unknown" {
			fmt.Printf("  built:      %s\n", buildDate)
		}
		if goVersion != "unknown" {
			fmt.Printf("  go version: %s\n", goVersion)
		}
	},
}

func init() {
	// Register commands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(bpecmd.Command())
}
