package query_matcher

import (
	"github.com/bits-and-blooms/bitset"
)

// Matching returns the set of documents with at least one word matching
// prefix\S*suffix. Bit j-1 stands for document j.
func (m *Matcher) Matching(prefix string, suffix string) *bitset.BitSet {
	set := bitset.New(uint(m.corpus.Len()))
	for _, dc := range m.Counts(prefix, suffix) {
		if dc.Count > 0 {
			set.Set(uint(dc.DocIndex - 1))
		}
	}
	return set
}

func And(s1 *bitset.BitSet, s2 *bitset.BitSet) *bitset.BitSet {
	return s1.Intersection(s2)
}

func Or(s1 *bitset.BitSet, s2 *bitset.BitSet) *bitset.BitSet {
	return s1.Union(s2)
}

// Not complements s within a corpus of documentsNumber documents.
func Not(s *bitset.BitSet, documentsNumber int) *bitset.BitSet {
	all := bitset.New(uint(documentsNumber))
	all.FlipRange(0, uint(documentsNumber))
	return all.Difference(s)
}

// Indices converts a set into ascending 1-based document indices.
func Indices(s *bitset.BitSet) []int {
	result := make([]int, 0, s.Count())
	for idx, e := s.NextSet(0); e; idx, e = s.NextSet(idx + 1) {
		result = append(result, int(idx)+1)
	}
	return result
}
