package bpe

const (
	methodSingleChar    = "single_char"
	methodLongestPrefix = "longest_prefix"
	methodCharChain     = "char_chain"
	methodAlreadyExists = "already_exists"
)

// AdditionResult reports the outcome of adding a single token.
type AdditionResult struct {
	Token       string
	Added       bool
	Method      string
	AddedMerges []Merge
}

// addToken makes target present in vocab, synthesizing whatever merges are
// required, and returns which of the four strategies applied. The first
// applicable branch wins: already_exists, single_char, longest_prefix,
// char_chain.
func addToken(vocab *Vocabulary, merges *MergeTable, target string) (AdditionResult, error) {
	if target == "" {
		return AdditionResult{}, NewArgumentError("token", target)
	}

	if vocab.Has(target) {
		return AdditionResult{Token: target, Added: false, Method: methodAlreadyExists}, nil
	}

	if len(target) == 1 {
		vocab.InsertNew(target)
		return AdditionResult{Token: target, Added: true, Method: methodSingleChar}, nil
	}

	if prefix, ok := longestVocabPrefix(vocab, target); ok {
		suffix := target[len(prefix):]
		if !vocab.Has(suffix) && len(suffix) == 1 {
			vocab.InsertNew(suffix)
		}
		if vocab.Has(suffix) {
			vocab.InsertNew(target)
			pos := merges.Append(prefix, suffix)
			return AdditionResult{
				Token:       target,
				Added:       true,
				Method:      methodLongestPrefix,
				AddedMerges: []Merge{merges.At(pos)},
			}, nil
		}
	}

	return charChain(vocab, merges, target), nil
}

// longestVocabPrefix returns the longest proper prefix of target that is
// already present in vocab, if any.
func longestVocabPrefix(vocab *Vocabulary, target string) (string, bool) {
	for length := len(target) - 1; length >= 1; length-- {
		prefix := target[:length]
		if vocab.Has(prefix) {
			return prefix, true
		}
	}
	return "", false
}

// charChain materializes every byte of target as a single-char token
// (inserting any absent) and builds a left-associative merge chain whose
// final result is target itself.
func charChain(vocab *Vocabulary, merges *MergeTable, target string) AdditionResult {
	for i := 0; i < len(target); i++ {
		b := target[i : i+1]
		if !vocab.Has(b) {
			vocab.InsertNew(b)
		}
	}

	prefix := target[:1]
	var addedMerges []Merge
	for i := 1; i <= len(target)-1; i++ {
		next := target[:i+1]
		char := target[i : i+1]
		if !vocab.Has(next) {
			vocab.InsertNew(next)
		}
		if mergeExists(merges, prefix, char) {
			prefix = next
			continue
		}
		pos := merges.Append(prefix, char)
		addedMerges = append(addedMerges, merges.At(pos))
		prefix = next
	}

	return AdditionResult{
		Token:       target,
		Added:       true,
		Method:      methodCharChain,
		AddedMerges: addedMerges,
	}
}

// addTokenAtomic inserts target as an opaque atom — never synthesizing
// merges — returning true if it was absent and is now inserted, false if
// it was already present. This is the right primitive for special tokens,
// whose strings should never be decomposable by a merge chain.
func addTokenAtomic(vocab *Vocabulary, target string) bool {
	if vocab.Has(target) {
		return false
	}
	vocab.InsertNew(target)
	return true
}
