package bpe

// editorConfig holds the configurable behavior of an Editor, set via
// EditorOption values passed to Load or FromJSON.
type editorConfig struct {
	specialTokenPredicate SpecialTokenPredicate
	strictValidation      bool
}

func defaultEditorConfig() editorConfig {
	return editorConfig{
		specialTokenPredicate: isDefaultSpecialToken,
		strictValidation:      false,
	}
}

// EditorOption is a functional option for configuring an Editor at load
// time.
type EditorOption func(*editorConfig) error

// WithSpecialTokenPredicate overrides the default "<...>" special-token
// shape with a caller-supplied predicate. Use this to exclude a wider or
// narrower set of tokens from shrink selection than the default; the
// predicate also drives Stats' special-token count. Cascade removal does
// not consult it.
func WithSpecialTokenPredicate(pred SpecialTokenPredicate) EditorOption {
	return func(cfg *editorConfig) error {
		if pred == nil {
			return NewArgumentError("special_token_predicate", nil)
		}
		cfg.specialTokenPredicate = pred
		return nil
	}
}

// WithStrictValidation makes Load/FromJSON fail with a ParseError if the
// document contains any invalid merge (an endpoint missing from vocab) at
// load time, instead of leaving that to an explicit ValidateMerges call.
func WithStrictValidation(strict bool) EditorOption {
	return func(cfg *editorConfig) error {
		cfg.strictValidation = strict
		return nil
	}
}
