package query_matcher

import (
	"slices"
	"strconv"
	"strings"
)

// NoMatch is written in place of a document list when no document matches.
const NoMatch = "-1"

// Rank orders counts by count descending, then by document index ascending.
// The input is left untouched.
func Rank(counts []DocCount) []DocCount {
	ranked := slices.Clone(counts)
	slices.SortFunc(ranked, func(a, b DocCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return a.DocIndex - b.DocIndex
	})
	return ranked
}

// Result is the answer to one query: the indices of documents with at least
// one matching word, best first, or no match at all.
type Result struct {
	Documents []int
	NoMatch   bool
}

// NewResult builds a Result from ranked counts, dropping zero counts.
func NewResult(ranked []DocCount) Result {
	documents := make([]int, 0, len(ranked))
	for _, dc := range ranked {
		if dc.Count > 0 {
			documents = append(documents, dc.DocIndex)
		}
	}

	if len(documents) == 0 {
		return Result{NoMatch: true}
	}
	return Result{Documents: documents}
}

func (r Result) String() string {
	if r.NoMatch {
		return NoMatch
	}

	parts := make([]string, len(r.Documents))
	for i, d := range r.Documents {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, " ")
}
