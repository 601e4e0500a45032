package document_index

import (
	letter_trie "wildcard-index/internal/letter-trie"
)

// DocumentIndex holds one document's words twice: in a forward trie for
// prefix lookups and in a reversed trie for suffix lookups.
type DocumentIndex struct {
	forward *letter_trie.LetterTrie
	reverse *letter_trie.LetterTrie
}

func New(words []string) *DocumentIndex {
	d := &DocumentIndex{
		forward: letter_trie.New(false),
		reverse: letter_trie.New(true),
	}

	for _, word := range words {
		d.forward.Insert(word)
		d.reverse.Insert(word)
	}

	return d
}

// WordCount is the number of words the document was built from, empty
// tokens and duplicates included.
func (d *DocumentIndex) WordCount() int {
	return d.forward.Size()
}

func (d *DocumentIndex) WordsWithPrefix(prefix string) map[string]int {
	return d.forward.SearchByPrefix(prefix)
}

func (d *DocumentIndex) WordsWithSuffix(suffix string) map[string]int {
	return d.reverse.SearchByPrefix(suffix)
}
