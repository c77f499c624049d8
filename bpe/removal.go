package bpe

// RemovalResult reports the outcome of a cascade removal: the root token
// named by the caller and the full set of tokens actually removed
// (including the root).
type RemovalResult struct {
	RootToken     string
	RemovedTokens []string
}

// ShrinkResult reports the outcome of a shrink operation.
type ShrinkResult struct {
	InitialVocabSize int
	FinalVocabSize   int
	Roots            []string
	RemovedCount     int
}

// cascadeRemove removes root and every token transitively reachable from
// it through the dependency DAG (every token produced by a merge that uses
// root, or a token already reached, as an operand — even when another
// merge could also produce it), along with every merge that references any
// removed token. It reports false if root is not in vocab, in which case
// nothing is mutated.
func cascadeRemove(vocab *Vocabulary, merges *MergeTable, root string) (RemovalResult, bool) {
	if !vocab.Has(root) {
		return RemovalResult{}, false
	}

	reach := reachableFrom(merges, root)

	set := make(map[string]struct{}, len(reach))
	for _, t := range reach {
		set[t] = struct{}{}
	}

	for _, t := range reach {
		vocab.Remove(t)
	}
	merges.RemoveReferencingAny(set)

	return RemovalResult{RootToken: root, RemovedTokens: reach}, true
}

// reachableFrom performs a breadth-first search over the merge table's
// result-for-left / result-for-right adjacency, starting at root, and
// returns every token reached (including root) in discovery order.
func reachableFrom(merges *MergeTable, root string) []string {
	visited := map[string]struct{}{root: {}}
	order := []string{root}
	frontier := []string{root}

	for len(frontier) > 0 {
		var next []string
		for _, t := range frontier {
			for _, result := range merges.ResultsOf(t) {
				if _, seen := visited[result]; seen {
					continue
				}
				visited[result] = struct{}{}
				order = append(order, result)
				next = append(next, result)
			}
		}
		frontier = next
	}

	return order
}

// shrink repeatedly removes the top shrink candidate (recomputed after each
// cascade, since a cascade can invalidate later candidates) until the
// vocabulary has shrunk by at least count tokens or no eligible candidate
// remains.
func shrink(vocab *Vocabulary, merges *MergeTable, pred SpecialTokenPredicate, count, minID int) ShrinkResult {
	initial := vocab.Size()
	result := ShrinkResult{InitialVocabSize: initial}

	if count <= 0 {
		result.FinalVocabSize = vocab.Size()
		return result
	}

	for initial-vocab.Size() < count {
		candidates := findTokensToShrink(vocab, pred, 1, minID)
		if len(candidates) == 0 {
			break
		}
		top := candidates[0]
		removal, _ := cascadeRemove(vocab, merges, top.Token)
		result.Roots = append(result.Roots, top.Token)
		result.RemovedCount += len(removal.RemovedTokens)
	}

	result.FinalVocabSize = vocab.Size()
	return result
}
