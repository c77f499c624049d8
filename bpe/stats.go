package bpe

import "sort"

// LengthCount pairs a token byte length with how many vocabulary tokens
// have that length.
type LengthCount struct {
	Length int
	Count  int
}

// Stats is a pure, read-only summary of a vocabulary and merge table.
type Stats struct {
	VocabSize         int
	MergesCount       int
	SingleCharCount   int
	SpecialTokenCount int
	MinTokenID        int
	MaxTokenID        int
	LengthDistribution []LengthCount
}

// computeStats builds Stats from the current vocabulary and merge table.
// It never mutates either.
func computeStats(vocab *Vocabulary, merges *MergeTable, pred SpecialTokenPredicate) Stats {
	s := Stats{
		VocabSize:   vocab.Size(),
		MergesCount: merges.Len(),
	}

	if vocab.Size() == 0 {
		return s
	}

	lengthCounts := make(map[int]int)
	first := true
	for token, id := range vocab.tokenToID {
		if len(token) == 1 {
			s.SingleCharCount++
		}
		if pred(token) {
			s.SpecialTokenCount++
		}
		lengthCounts[len(token)]++

		if first {
			s.MinTokenID, s.MaxTokenID = id, id
			first = false
			continue
		}
		if id < s.MinTokenID {
			s.MinTokenID = id
		}
		if id > s.MaxTokenID {
			s.MaxTokenID = id
		}
	}

	s.LengthDistribution = make([]LengthCount, 0, len(lengthCounts))
	for length, count := range lengthCounts {
		s.LengthDistribution = append(s.LengthDistribution, LengthCount{Length: length, Count: count})
	}
	sort.Slice(s.LengthDistribution, func(i, j int) bool {
		if s.LengthDistribution[i].Count != s.LengthDistribution[j].Count {
			return s.LengthDistribution[i].Count > s.LengthDistribution[j].Count
		}
		return s.LengthDistribution[i].Length < s.LengthDistribution[j].Length
	})

	return s
}
