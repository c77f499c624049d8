// Package bpe implements an editor for Byte-Pair Encoding tokenizer files.
//
// A tokenizer.json document carries a vocabulary — a bijection between
// token strings and integer ids — and an ordered list of merge rules, each
// a pair of tokens whose concatenation must also be a vocabulary entry.
// This package keeps those two structures consistent under mutation:
// adding a novel token (synthesizing whatever merges are needed to make it
// reachable), removing a token together with everything that depends on
// it, and shrinking the vocabulary toward a target size by evicting the
// most-derived tokens first.
//
// # Overview
//
// Loading a document builds two things in lockstep: a Vocabulary (token
// string <-> id), a MergeTable (the ordered merge rules plus adjacency
// indices keyed by left/right/result operand), and nothing else — the
// editor never tokenizes text, and never trains new merges from a corpus.
//
//	editor, err := bpe.Load("tokenizer.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := editor.AddToken("hello")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Method, result.AddedMerges)
//
//	if err := editor.Save("tokenizer.json"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
//	┌──────────────┐
//	│ tokenizer.json│
//	└──────┬───────┘
//	       │ Load / FromJSON
//	       ▼
//	┌──────────────────┐     ┌───────────────────┐
//	│ Document (raw,    │────▶│ Vocabulary index  │
//	│ non-model fields  │     │ (token <-> id)    │
//	│ kept opaque)      │     └─────────┬─────────┘
//	└──────────────────┘               │
//	       │                            ▼
//	       │                  ┌───────────────────┐
//	       │                  │ MergeTable +      │
//	       │                  │ adjacency indices │
//	       │                  └─────────┬─────────┘
//	       ▼                            ▼
//	┌──────────────────────────────────────────┐
//	│ Editor: AddToken / RemoveToken / Shrink   │
//	└──────────────────────────────────────────┘
//
// # Concurrency
//
// An Editor is single-owner and single-threaded: it is not safe for
// concurrent mutation from multiple goroutines. Every public mutation is
// atomic with respect to observation — it either fully applies or, on
// error, leaves the editor unchanged.
package bpe
