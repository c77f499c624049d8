package bpe

import "testing"

func TestAddTokenLongestPrefixInsertsSingleByteSuffix(t *testing.T) {
	vocab := NewVocabulary()
	for i, tok := range []string{"a", "b", "ab"} {
		if err := vocab.Insert(tok, i); err != nil {
			t.Fatalf("Insert(%q): %v", tok, err)
		}
	}
	merges := NewMergeTable()
	merges.Append("a", "b")

	result, err := addToken(vocab, merges, "abz")
	if err != nil {
		t.Fatalf("addToken: %v", err)
	}
	if result.Method != methodLongestPrefix {
		t.Errorf("method = %q, want longest_prefix (z is a single byte, insertable)", result.Method)
	}
	if !vocab.Has("z") {
		t.Error("suffix byte z was not inserted")
	}
	if !vocab.Has("abz") {
		t.Error("abz was not inserted")
	}
}

func TestAddTokenFallsBackToCharChainWhenSuffixNotResolvable(t *testing.T) {
	vocab := NewVocabulary()
	if err := vocab.Insert("a", 0); err != nil {
		t.Fatalf("Insert(a): %v", err)
	}
	merges := NewMergeTable()

	// "a" is the longest vocab prefix of "abc", but its suffix "bc" is two
	// bytes and not itself in vocab, so this must fall through to
	// char_chain rather than produce an unresolvable merge.
	result, err := addToken(vocab, merges, "abc")
	if err != nil {
		t.Fatalf("addToken: %v", err)
	}
	if result.Method != methodCharChain {
		t.Errorf("method = %q, want char_chain", result.Method)
	}
	for _, tok := range []string{"b", "c", "ab", "abc"} {
		if !vocab.Has(tok) {
			t.Errorf("expected %q to be present after char_chain add", tok)
		}
	}
}

func TestAddTokenFallsBackToCharChainWithMultiByteExistingPrefix(t *testing.T) {
	vocab := NewVocabulary()
	for i, tok := range []string{"a", "b", "ab"} {
		if err := vocab.Insert(tok, i); err != nil {
			t.Fatalf("Insert(%q): %v", tok, err)
		}
	}
	merges := NewMergeTable()
	merges.Append("a", "b") // -> ab, position 0

	// "ab" is the longest vocab prefix of "abxy", but its suffix "xy" is
	// two bytes and not itself in vocab, so this falls through to
	// char_chain. The chain rebuild must not re-insert "ab" (it already
	// has id 2) or re-append the (a,b) merge (already at position 0):
	// charChain's intermediate steps pass back through "ab" on the way
	// to "abxy".
	result, err := addToken(vocab, merges, "abxy")
	if err != nil {
		t.Fatalf("addToken: %v", err)
	}
	if result.Method != methodCharChain {
		t.Errorf("method = %q, want char_chain", result.Method)
	}

	id, ok := vocab.IDOf("ab")
	if !ok || id != 2 {
		t.Errorf("IDOf(ab) = (%d, %v), want (2, true): charChain must not assign ab a second id", id, ok)
	}

	seen := map[Merge]int{}
	for i := 0; i < merges.Len(); i++ {
		seen[merges.At(i)]++
	}
	if n := seen[Merge{Left: "a", Right: "b"}]; n != 1 {
		t.Errorf("merge (a,b) appears %d times, want 1: charChain must not duplicate an existing merge", n)
	}

	for _, tok := range []string{"x", "y", "abx", "abxy"} {
		if !vocab.Has(tok) {
			t.Errorf("expected %q to be present after char_chain add", tok)
		}
	}
}

func TestAddTokenNoPrefixAtAllUsesCharChain(t *testing.T) {
	vocab := NewVocabulary()
	merges := NewMergeTable()

	result, err := addToken(vocab, merges, "new")
	if err != nil {
		t.Fatalf("addToken: %v", err)
	}
	if result.Method != methodCharChain {
		t.Errorf("method = %q, want char_chain", result.Method)
	}
	if merges.Len() != 2 {
		t.Fatalf("merges.Len() = %d, want 2", merges.Len())
	}
}

func TestAddTokenAtomicNeverSynthesizesMerges(t *testing.T) {
	vocab := NewVocabulary()
	merges := NewMergeTable()

	if ok := addTokenAtomic(vocab, "<|multi|>"); !ok {
		t.Error("addTokenAtomic = false, want true")
	}
	if merges.Len() != 0 {
		t.Error("addTokenAtomic synthesized a merge")
	}
	if !vocab.Has("<|multi|>") {
		t.Error("token not inserted by addTokenAtomic")
	}
}
