package bpe

// Merge is an ordered pair of tokens whose byte concatenation is the
// merge's result. Its position within a MergeTable is its priority: lower
// positions merge earlier.
type Merge struct {
	Left  string
	Right string
}

// Result returns the byte concatenation left++right.
func (m Merge) Result() string {
	return m.Left + m.Right
}

// MergeTable is the ordered sequence of merge rules, with secondary indices
// (by left operand, by right operand, by result) maintained in lockstep so
// dependency-DAG queries (the successor lookups that drive cascade
// reachability) avoid rescanning the whole table. Removing merges scans
// the whole table once and rebuilds the indices.
type MergeTable struct {
	merges   []Merge
	byLeft   map[string][]int
	byRight  map[string][]int
	byResult map[string][]int
}

// NewMergeTable creates an empty merge table.
func NewMergeTable() *MergeTable {
	return &MergeTable{
		byLeft:   make(map[string][]int),
		byRight:  make(map[string][]int),
		byResult: make(map[string][]int),
	}
}

// Len returns the number of merges.
func (t *MergeTable) Len() int { return len(t.merges) }

// At returns the merge at position i.
func (t *MergeTable) At(i int) Merge { return t.merges[i] }

// All returns a copy of the merge table in priority order.
func (t *MergeTable) All() []Merge {
	out := make([]Merge, len(t.merges))
	copy(out, t.merges)
	return out
}

// Append adds a new merge at the end of the table (lowest priority),
// returning its position. Callers are responsible for ensuring left,
// right, and left++right are all present in the vocabulary before
// appending — MergeTable itself does not validate against a Vocabulary.
func (t *MergeTable) Append(left, right string) int {
	pos := len(t.merges)
	t.merges = append(t.merges, Merge{Left: left, Right: right})
	result := left + right
	t.byLeft[left] = append(t.byLeft[left], pos)
	t.byRight[right] = append(t.byRight[right], pos)
	t.byResult[result] = append(t.byResult[result], pos)
	return pos
}

// PositionsWithLeft returns the positions of merges whose left operand is token.
func (t *MergeTable) PositionsWithLeft(token string) []int { return t.byLeft[token] }

// PositionsWithRight returns the positions of merges whose right operand is token.
func (t *MergeTable) PositionsWithRight(token string) []int { return t.byRight[token] }

// PositionsWithResult returns the positions of merges whose result is token.
func (t *MergeTable) PositionsWithResult(token string) []int { return t.byResult[token] }

// ResultsOf returns every result token reachable in one merge step from
// left or right equal to token — i.e. the direct successors of token in
// the dependency DAG.
func (t *MergeTable) ResultsOf(token string) []string {
	var out []string
	for _, pos := range t.byLeft[token] {
		out = append(out, t.merges[pos].Result())
	}
	for _, pos := range t.byRight[token] {
		out = append(out, t.merges[pos].Result())
	}
	return out
}

// RemoveReferencingAny drops every merge that mentions any token in the set
// (as left, right, or result) and rebuilds the adjacency indices. It
// returns the removed merges in their original priority order.
func (t *MergeTable) RemoveReferencingAny(tokens map[string]struct{}) []Merge {
	kept := make([]Merge, 0, len(t.merges))
	var removed []Merge
	for _, m := range t.merges {
		_, leftHit := tokens[m.Left]
		_, rightHit := tokens[m.Right]
		_, resultHit := tokens[m.Result()]
		if leftHit || rightHit || resultHit {
			removed = append(removed, m)
			continue
		}
		kept = append(kept, m)
	}
	t.rebuild(kept)
	return removed
}

// mergeExists reports whether (left, right) is already a merge in t,
// checked via the byLeft adjacency index rather than a full scan.
func mergeExists(t *MergeTable, left, right string) bool {
	for _, pos := range t.byLeft[left] {
		if t.merges[pos].Right == right {
			return true
		}
	}
	return false
}

// rebuild replaces the merge list with merges (preserving order) and
// recomputes every adjacency index from scratch.
func (t *MergeTable) rebuild(merges []Merge) {
	t.merges = merges
	t.byLeft = make(map[string][]int, len(merges))
	t.byRight = make(map[string][]int, len(merges))
	t.byResult = make(map[string][]int, len(merges))
	for pos, m := range merges {
		t.byLeft[m.Left] = append(t.byLeft[m.Left], pos)
		t.byRight[m.Right] = append(t.byRight[m.Right], pos)
		t.byResult[m.Result()] = append(t.byResult[m.Result()], pos)
	}
}
