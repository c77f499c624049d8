package bpe

import "testing"

func TestWithSpecialTokenPredicateRejectsNil(t *testing.T) {
	_, err := FromJSON([]byte(sampleTokenizer), WithSpecialTokenPredicate(nil))
	if err == nil {
		t.Fatal("WithSpecialTokenPredicate(nil) = nil error, want ArgumentError")
	}
}

func TestWithSpecialTokenPredicateOverridesDefault(t *testing.T) {
	// Treat nothing as special: every multi-character token becomes
	// shrink-eligible.
	neverSpecial := func(string) bool { return false }

	editor, err := FromJSON([]byte(sampleTokenizer), WithSpecialTokenPredicate(neverSpecial))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}

	stats := editor.Stats()
	if stats.SpecialTokenCount != 0 {
		t.Errorf("SpecialTokenCount = %d, want 0 with neverSpecial predicate", stats.SpecialTokenCount)
	}
}

func TestWithStrictValidationRejectsInvalidMerges(t *testing.T) {
	doc := `{"model": {"type": "BPE", "vocab": {"a": 0, "b": 1}, "merges": [["a", "b"]]}}`
	if _, err := FromJSON([]byte(doc)); err != nil {
		t.Fatalf("FromJSON without strict validation: %v", err)
	}

	_, err := FromJSON([]byte(doc), WithStrictValidation(true))
	if err == nil {
		t.Fatal("FromJSON with strict validation on an invalid merge = nil error, want error")
	}
}
