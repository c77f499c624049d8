package bpe

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
)

// DocumentSource supplies the raw bytes of a tokenizer document. FileSource
// and BytesSource are the two built-in sources (used by Load and FromJSON
// respectively); callers rarely need to implement this directly.
type DocumentSource interface {
	Load() ([]byte, error)
}

// FileSource reads a tokenizer document from a path on disk.
type FileSource struct {
	Path string
}

// Load reads the file at Path.
func (f FileSource) Load() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, NewIOError("read", f.Path, err)
	}
	return data, nil
}

// BytesSource wraps an already-in-memory JSON document.
type BytesSource struct {
	Data []byte
}

// Load returns Data as-is.
func (b BytesSource) Load() ([]byte, error) {
	return b.Data, nil
}

// document is the parsed, mutable core of a tokenizer document: the
// vocabulary and merge table, plus every other top-level and model-level
// field kept opaque so it round-trips verbatim on save.
type document struct {
	topLevel   map[string]json.RawMessage // every field except "model"
	modelExtra map[string]json.RawMessage // model fields except type/vocab/merges
	vocab      *Vocabulary
	merges     *MergeTable
}

func parseDocument(data []byte, path string) (*document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, NewParseError(path, err)
	}

	modelRaw, ok := top["model"]
	if !ok {
		return nil, NewParseError(path, errors.New("document has no \"model\" field"))
	}
	delete(top, "model")

	var modelMap map[string]json.RawMessage
	if err := json.Unmarshal(modelRaw, &modelMap); err != nil {
		return nil, NewParseError(path, err)
	}

	typeRaw, ok := modelMap["type"]
	if !ok {
		return nil, NewParseError(path, errors.New("model has no \"type\" field"))
	}
	var modelType string
	if err := json.Unmarshal(typeRaw, &modelType); err != nil {
		return nil, NewParseError(path, err)
	}
	if modelType != "BPE" {
		return nil, NewUnsupportedModelError(modelType)
	}
	delete(modelMap, "type")

	vocabRaw, ok := modelMap["vocab"]
	if !ok {
		return nil, NewParseError(path, errors.New("model has no \"vocab\" field"))
	}
	var vocabMap map[string]int
	if err := json.Unmarshal(vocabRaw, &vocabMap); err != nil {
		return nil, NewParseError(path, err)
	}
	delete(modelMap, "vocab")

	vocab := NewVocabulary()
	for token, id := range vocabMap {
		if err := vocab.Insert(token, id); err != nil {
			return nil, NewParseError(path, err)
		}
	}

	mergeList, err := parseMerges(modelMap["merges"])
	if err != nil {
		return nil, NewParseError(path, err)
	}
	delete(modelMap, "merges")

	mergeTable := NewMergeTable()
	for _, m := range mergeList {
		mergeTable.Append(m.Left, m.Right)
	}

	return &document{
		topLevel:   top,
		modelExtra: modelMap,
		vocab:      vocab,
		merges:     mergeTable,
	}, nil
}

// parseMerges accepts both documented shapes: an array of [left, right]
// two-element arrays, or an array of space-joined "left right" strings.
func parseMerges(raw json.RawMessage) ([]Merge, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, err
	}

	merges := make([]Merge, 0, len(elems))
	for _, e := range elems {
		var asString string
		if err := json.Unmarshal(e, &asString); err == nil {
			parts := strings.Fields(asString)
			if len(parts) != 2 {
				return nil, errors.New("merge string must have exactly two space-separated tokens: " + asString)
			}
			merges = append(merges, Merge{Left: parts[0], Right: parts[1]})
			continue
		}

		var asPair []string
		if err := json.Unmarshal(e, &asPair); err != nil {
			return nil, err
		}
		if len(asPair) != 2 {
			return nil, errors.New("merge array must have exactly two elements")
		}
		merges = append(merges, Merge{Left: asPair[0], Right: asPair[1]})
	}
	return merges, nil
}

// marshal serializes the document back to JSON, emitting merges as
// two-element arrays and preserving every opaque field verbatim.
func (d *document) marshal() ([]byte, error) {
	vocabOut := d.vocab.Snapshot()

	mergesOut := make([][2]string, 0, d.merges.Len())
	for _, m := range d.merges.All() {
		mergesOut = append(mergesOut, [2]string{m.Left, m.Right})
	}

	modelOut := make(map[string]json.RawMessage, len(d.modelExtra)+3)
	for k, v := range d.modelExtra {
		modelOut[k] = v
	}

	typeJSON, err := json.Marshal("BPE")
	if err != nil {
		return nil, err
	}
	modelOut["type"] = typeJSON

	vocabJSON, err := json.Marshal(vocabOut)
	if err != nil {
		return nil, err
	}
	modelOut["vocab"] = vocabJSON

	mergesJSON, err := json.Marshal(mergesOut)
	if err != nil {
		return nil, err
	}
	modelOut["merges"] = mergesJSON

	modelJSON, err := json.Marshal(modelOut)
	if err != nil {
		return nil, err
	}

	topOut := make(map[string]json.RawMessage, len(d.topLevel)+1)
	for k, v := range d.topLevel {
		topOut[k] = v
	}
	topOut["model"] = modelJSON

	return json.Marshal(topOut)
}
