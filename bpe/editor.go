package bpe

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Editor is a single-owner, single-threaded mutable tokenizer document. It
// is not safe for concurrent mutation from multiple goroutines. Every
// public mutation either fully applies or, on error, leaves the editor
// unchanged.
type Editor struct {
	doc    *document
	config editorConfig
}

// Load reads and parses a tokenizer document from path.
func Load(path string, opts ...EditorOption) (*Editor, error) {
	return newEditor(FileSource{Path: path}, path, opts...)
}

// FromJSON parses a tokenizer document from an in-memory JSON blob.
func FromJSON(data []byte, opts ...EditorOption) (*Editor, error) {
	return newEditor(BytesSource{Data: data}, "", opts...)
}

func newEditor(src DocumentSource, path string, opts ...EditorOption) (*Editor, error) {
	cfg := defaultEditorConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	data, err := src.Load()
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(data, path)
	if err != nil {
		return nil, err
	}

	if cfg.strictValidation {
		result := ValidateMerges(doc.vocab, doc.merges)
		if result.InvalidCount > 0 {
			return nil, NewParseError(path, fmt.Errorf("%d invalid merge(s) at load time", result.InvalidCount))
		}
	}

	return &Editor{doc: doc, config: cfg}, nil
}

// Save serializes the editor and writes it to path, via a temp file in the
// same directory followed by an atomic rename, so a crash or concurrent
// reader never observes a partially written file.
func (e *Editor) Save(path string) error {
	data, err := e.doc.marshal()
	if err != nil {
		return NewIOError("marshal", path, err)
	}

	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return NewIOError("write", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return NewIOError("rename", path, err)
	}
	return nil
}

// ToJSON serializes the editor to an in-memory JSON blob.
func (e *Editor) ToJSON() ([]byte, error) {
	data, err := e.doc.marshal()
	if err != nil {
		return nil, NewIOError("marshal", "", err)
	}
	return data, nil
}

// HasToken reports whether token is present in the vocabulary.
func (e *Editor) HasToken(token string) bool {
	return e.doc.vocab.Has(token)
}

// TokenID returns the id assigned to token, if any.
func (e *Editor) TokenID(token string) (int, bool) {
	return e.doc.vocab.IDOf(token)
}

// TokenByID returns the token assigned to id, if any.
func (e *Editor) TokenByID(id int) (string, bool) {
	return e.doc.vocab.TokenOf(id)
}

// Vocab returns a copy of the vocabulary; mutating it does not affect the
// editor.
func (e *Editor) Vocab() map[string]int {
	return e.doc.vocab.Snapshot()
}

// Merges returns a copy of the merge table in priority order; mutating it
// does not affect the editor.
func (e *Editor) Merges() [][2]string {
	all := e.doc.merges.All()
	out := make([][2]string, len(all))
	for i, m := range all {
		out[i] = [2]string{m.Left, m.Right}
	}
	return out
}

// VocabSize returns the number of tokens in the vocabulary.
func (e *Editor) VocabSize() int {
	return e.doc.vocab.Size()
}

// MergesCount returns the number of merge rules.
func (e *Editor) MergesCount() int {
	return e.doc.merges.Len()
}

// SingleCharTokens returns every single-byte token and its id.
func (e *Editor) SingleCharTokens() []TokenIDPair {
	tokens := e.doc.vocab.SingleCharTokens()
	out := make([]TokenIDPair, 0, len(tokens))
	for _, t := range tokens {
		id, _ := e.doc.vocab.IDOf(t)
		out = append(out, TokenIDPair{Token: t, ID: id})
	}
	return out
}

// TokenIDPair pairs a token string with its assigned id.
type TokenIDPair struct {
	Token string
	ID    int
}

// Stats returns a read-only summary of the vocabulary and merge table.
func (e *Editor) Stats() Stats {
	return computeStats(e.doc.vocab, e.doc.merges, e.config.specialTokenPredicate)
}

// ValidateMerges checks every merge's endpoints against the vocabulary.
func (e *Editor) ValidateMerges() ValidationResult {
	return ValidateMerges(e.doc.vocab, e.doc.merges)
}

// AddToken extends vocab and merges so that token becomes present,
// synthesizing whatever merges are required. It fails only for an empty
// token string.
func (e *Editor) AddToken(token string) (AdditionResult, error) {
	return addToken(e.doc.vocab, e.doc.merges, token)
}

// AddTokens applies AddToken to each token in order; each result is
// independent and this is not atomic across the batch. Tokens that fail
// AddToken (only the empty string can) are omitted from the result.
func (e *Editor) AddTokens(tokens []string) []AdditionResult {
	results := make([]AdditionResult, 0, len(tokens))
	for _, t := range tokens {
		result, err := addToken(e.doc.vocab, e.doc.merges, t)
		if err != nil {
			continue
		}
		results = append(results, result)
	}
	return results
}

// AddTokenAtomic inserts token as an opaque atom, never synthesizing
// merges. It is the right primitive for special tokens. It returns true if
// the token was absent and is now inserted, false if it was already
// present.
func (e *Editor) AddTokenAtomic(token string) bool {
	return addTokenAtomic(e.doc.vocab, token)
}

// RemoveToken removes token and every token transitively dependent on it,
// cascading through the merge table. It returns false with a zero-value
// result if token is not in vocab.
func (e *Editor) RemoveToken(token string) (RemovalResult, bool) {
	return cascadeRemove(e.doc.vocab, e.doc.merges, token)
}

// RemoveTokens applies RemoveToken to each token in order, omitting
// entries for tokens not present in vocab.
func (e *Editor) RemoveTokens(tokens []string) []RemovalResult {
	results := make([]RemovalResult, 0, len(tokens))
	for _, t := range tokens {
		result, ok := cascadeRemove(e.doc.vocab, e.doc.merges, t)
		if !ok {
			continue
		}
		results = append(results, result)
	}
	return results
}

// FindTokensToShrink previews up to count removal candidates for Shrink
// without mutating the editor.
func (e *Editor) FindTokensToShrink(count, minID int) []ShrinkCandidate {
	return findTokensToShrink(e.doc.vocab, e.config.specialTokenPredicate, count, minID)
}

// Shrink reduces the vocabulary by at least count tokens (more, if cascade
// removal takes extra tokens with it), or by fewer when no eligible
// candidate remains, picking the most-derived eligible tokens first and
// respecting minID and the special-token protection.
func (e *Editor) Shrink(count, minID int) ShrinkResult {
	return shrink(e.doc.vocab, e.doc.merges, e.config.specialTokenPredicate, count, minID)
}

// String returns a short human-readable summary, e.g. for log output.
func (e *Editor) String() string {
	return fmt.Sprintf("Editor(vocab_size=%d, merges_count=%d)", e.VocabSize(), e.MergesCount())
}
