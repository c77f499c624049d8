package bpe

import (
	"encoding/json"
	"testing"
)

// fullTokenizer mirrors the richer fixture from the original project's test
// suite: every non-model tokenizer.json field plus every model field this
// package treats as opaque, so a round trip exercises the
// "preserve fields unrelated to the BPE model verbatim" requirement.
const fullTokenizer = `{
	"version": "1.0",
	"truncation": {"max_length": 512},
	"padding": {"strategy": "BatchLongest"},
	"added_tokens": [{"id": 0, "content": "<pad>", "special": true}],
	"normalizer": {"type": "NFC"},
	"pre_tokenizer": {"type": "Whitespace"},
	"post_processor": {"type": "TemplateProcessing"},
	"decoder": {"type": "ByteLevel"},
	"model": {
		"type": "BPE",
		"dropout": null,
		"unk_token": "<unk>",
		"continuing_subword_prefix": "##",
		"end_of_word_suffix": "</w>",
		"fuse_unk": false,
		"byte_fallback": true,
		"ignore_merges": false,
		"vocab": {"<pad>": 0, "a": 1, "b": 2, "ab": 3},
		"merges": [["a", "b"]]
	}
}`

func TestDocumentRoundTripPreservesOpaqueFields(t *testing.T) {
	editor, err := FromJSON([]byte(fullTokenizer))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}

	out, err := editor.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	var original, saved map[string]any
	if err := json.Unmarshal([]byte(fullTokenizer), &original); err != nil {
		t.Fatalf("unmarshal original: %v", err)
	}
	if err := json.Unmarshal(out, &saved); err != nil {
		t.Fatalf("unmarshal saved: %v", err)
	}

	for _, field := range []string{
		"version", "truncation", "padding", "added_tokens",
		"normalizer", "pre_tokenizer", "post_processor", "decoder",
	} {
		origJSON, _ := json.Marshal(original[field])
		savedJSON, _ := json.Marshal(saved[field])
		if string(origJSON) != string(savedJSON) {
			t.Errorf("field %q changed across round trip: %s != %s", field, origJSON, savedJSON)
		}
	}

	origModel := original["model"].(map[string]any)
	savedModel := saved["model"].(map[string]any)
	for _, field := range []string{
		"dropout", "unk_token", "continuing_subword_prefix",
		"end_of_word_suffix", "fuse_unk", "byte_fallback", "ignore_merges",
	} {
		origJSON, _ := json.Marshal(origModel[field])
		savedJSON, _ := json.Marshal(savedModel[field])
		if string(origJSON) != string(savedJSON) {
			t.Errorf("model field %q changed across round trip: %s != %s", field, origJSON, savedJSON)
		}
	}
}

func TestDocumentMissingModelField(t *testing.T) {
	_, err := FromJSON([]byte(`{"version": "1.0"}`))
	if err == nil {
		t.Fatal("FromJSON with no model field = nil error, want ParseError")
	}
}

func TestDocumentMissingVocabField(t *testing.T) {
	_, err := FromJSON([]byte(`{"model": {"type": "BPE", "merges": []}}`))
	if err == nil {
		t.Fatal("FromJSON with no model.vocab field = nil error, want ParseError")
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/tokenizer.json")
	if err == nil {
		t.Fatal("Load(nonexistent path) = nil error, want IOError")
	}
}
