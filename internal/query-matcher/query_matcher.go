package query_matcher

import (
	"golang.org/x/sync/errgroup"

	"wildcard-index/internal/corpus"
	document_index "wildcard-index/internal/document-index"
)

type DocCount struct {
	DocIndex int
	Count    int
}

// Matcher evaluates wildcard patterns against a corpus. With more than one
// worker the documents of a query are counted in parallel; the corpus is
// read-only so no locking is needed.
type Matcher struct {
	corpus  *corpus.Corpus
	workers int
}

func New(c *corpus.Corpus, workers int) *Matcher {
	return &Matcher{
		corpus:  c,
		workers: workers,
	}
}

// MatchQuery ranks the documents of c for prefix\S*suffix on the calling
// goroutine.
func MatchQuery(c *corpus.Corpus, prefix string, suffix string) Result {
	return New(c, 1).MatchQuery(prefix, suffix)
}

func (m *Matcher) MatchQuery(prefix string, suffix string) Result {
	return NewResult(m.Match(prefix, suffix))
}

// Match returns one DocCount per document in ranked order.
func (m *Matcher) Match(prefix string, suffix string) []DocCount {
	return Rank(m.Counts(prefix, suffix))
}

// Counts returns one DocCount per document in document order.
func (m *Matcher) Counts(prefix string, suffix string) []DocCount {
	counts := make([]DocCount, m.corpus.Len())

	if m.workers <= 1 {
		for i := range counts {
			counts[i] = DocCount{DocIndex: i + 1, Count: countMatches(m.corpus.Document(i+1), prefix, suffix)}
		}
		return counts
	}

	var g errgroup.Group
	g.SetLimit(m.workers)
	for i := range counts {
		g.Go(func() error {
			counts[i] = DocCount{DocIndex: i + 1, Count: countMatches(m.corpus.Document(i+1), prefix, suffix)}
			return nil
		})
	}
	// countMatches cannot fail, Wait only joins the workers
	g.Wait()

	return counts
}

// countMatches counts the words of d matching prefix\S*suffix.
//
// With both halves present a word matches when it is returned by both the
// prefix and the suffix lookup and is at least len(prefix)+len(suffix) long.
// Only the count from the prefix side is added.
func countMatches(d *document_index.DocumentIndex, prefix string, suffix string) int {
	switch {
	case len(prefix) == 0 && len(suffix) == 0:
		return d.WordCount()
	case len(prefix) == 0:
		return sumCounts(d.WordsWithSuffix(suffix))
	case len(suffix) == 0:
		return sumCounts(d.WordsWithPrefix(prefix))
	}

	prefixMatches := d.WordsWithPrefix(prefix)
	if len(prefixMatches) == 0 {
		return 0
	}
	suffixMatches := d.WordsWithSuffix(suffix)

	patternLen := len(prefix) + len(suffix)
	count := 0
	for word, prefixCount := range prefixMatches {
		if _, ok := suffixMatches[word]; ok && len(word) >= patternLen {
			count += prefixCount
		}
	}
	return count
}

func sumCounts(words map[string]int) int {
	total := 0
	for _, count := range words {
		total += count
	}
	return total
}
