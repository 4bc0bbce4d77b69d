package inspector

import "sort"

// FrequencyIndex maps a normalized token to its number of occurrences
type FrequencyIndex map[string]int

// Index counts tokens by their normalized key
func Index(tokens []string) FrequencyIndex {
	index := make(FrequencyIndex, len(tokens))
	for _, token := range tokens {
		index[NormalizedKey(token)]++
	}
	return index
}

// Mismatch is a normalized token whose count differs between source and target.
// A zero count means the token is absent on that side.
type Mismatch struct {
	Key         string `json:"key"`
	SourceCount int    `json:"source_count"`
	TargetCount int    `json:"target_count"`
}

// Compare returns the symmetric multiset difference of two token sequences.
// Each differing key is reported exactly once, sorted by key.
func Compare(source, target []string) []Mismatch {
	sourceIndex := Index(source)
	targetIndex := Index(target)

	var mismatches []Mismatch
	for key, sc := range sourceIndex {
		if tc := targetIndex[key]; tc != sc {
			mismatches = append(mismatches, Mismatch{Key: key, SourceCount: sc, TargetCount: tc})
		}
	}
	for key, tc := range targetIndex {
		if _, ok := sourceIndex[key]; !ok {
			mismatches = append(mismatches, Mismatch{Key: key, SourceCount: 0, TargetCount: tc})
		}
	}
	sort.Slice(mismatches, func(i, j int) bool {
		return mismatches[i].Key < mismatches[j].Key
	})
	return mismatches
}
