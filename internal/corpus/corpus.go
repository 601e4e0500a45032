package corpus

import (
	document_index "wildcard-index/internal/document-index"
)

// Corpus is the fixed, ordered set of indexed documents. Documents are
// numbered from 1 and never change after construction, so a Corpus can be
// shared between goroutines without locking.
type Corpus struct {
	documents []*document_index.DocumentIndex
}

func New(documents ...*document_index.DocumentIndex) *Corpus {
	return &Corpus{
		documents: append([]*document_index.DocumentIndex(nil), documents...),
	}
}

func (c *Corpus) Len() int {
	return len(c.documents)
}

// Document returns the document with the given 1-based index, or nil when the
// index is out of range.
func (c *Corpus) Document(index int) *document_index.DocumentIndex {
	if index < 1 || index > len(c.documents) {
		return nil
	}
	return c.documents[index-1]
}

func (c *Corpus) Stats() map[string]int {
	words := 0
	for _, d := range c.documents {
		words += d.WordCount()
	}

	return map[string]int{
		"documents": len(c.documents),
		"words":     words,
	}
}
