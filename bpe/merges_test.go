package bpe

import "testing"

func TestMergeTableAppendAndAdjacency(t *testing.T) {
	table := NewMergeTable()
	table.Append("a", "b")
	table.Append("ab", "c")

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	if got := table.PositionsWithLeft("a"); len(got) != 1 || got[0] != 0 {
		t.Errorf("PositionsWithLeft(a) = %v, want [0]", got)
	}
	if got := table.PositionsWithResult("ab"); len(got) != 1 || got[0] != 0 {
		t.Errorf("PositionsWithResult(ab) = %v, want [0]", got)
	}
	if got := table.PositionsWithLeft("ab"); len(got) != 1 || got[0] != 1 {
		t.Errorf("PositionsWithLeft(ab) = %v, want [1]", got)
	}
}

func TestMergeTableResultsOf(t *testing.T) {
	table := NewMergeTable()
	table.Append("a", "b")
	table.Append("b", "c")

	results := table.ResultsOf("b")
	want := map[string]bool{"ab": true, "bc": true}
	if len(results) != 2 {
		t.Fatalf("ResultsOf(b) = %v, want 2 entries", results)
	}
	for _, r := range results {
		if !want[r] {
			t.Errorf("unexpected result %q in ResultsOf(b)", r)
		}
	}
}

func TestMergeTableRemoveReferencingAny(t *testing.T) {
	table := NewMergeTable()
	table.Append("a", "b")  // -> ab
	table.Append("ab", "c") // -> abc
	table.Append("x", "y")  // -> xy, unrelated

	removed := table.RemoveReferencingAny(map[string]struct{}{"ab": {}, "abc": {}})
	if len(removed) != 2 {
		t.Fatalf("len(removed) = %d, want 2", len(removed))
	}
	if table.Len() != 1 {
		t.Fatalf("Len() after removal = %d, want 1", table.Len())
	}
	if got := table.At(0); got != (Merge{Left: "x", Right: "y"}) {
		t.Errorf("surviving merge = %+v, want (x,y)", got)
	}
	if len(table.PositionsWithLeft("a")) != 0 {
		t.Error("stale adjacency entry for removed left operand")
	}
}
