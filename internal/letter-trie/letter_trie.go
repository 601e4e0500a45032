package letter_trie

import (
	"strings"

	"golang.org/x/example/hello/reverse"
)

const alphabetSize = 26

type node struct {
	children  [alphabetSize]*node
	endOfWord int
}

// LetterTrie indexes words by their case-folded ASCII letters. A reversed
// trie walks every word right-to-left, so a prefix search on it is a suffix
// search on the original words.
type LetterTrie struct {
	root     *node
	reversed bool
	size     int
}

func New(reversed bool) *LetterTrie {
	return &LetterTrie{
		root:     &node{},
		reversed: reversed,
	}
}

func (t *LetterTrie) Reversed() bool {
	return t.reversed
}

// Size is the number of insertions, duplicates included.
func (t *LetterTrie) Size() int {
	return t.size
}

// Insert never fails: characters other than a-z and A-Z are skipped, and an
// empty word is counted at the root.
func (t *LetterTrie) Insert(word string) {
	current := t.root
	ordered := t.walkOrder(word)

	for i := 0; i < len(ordered); i++ {
		index := letterToIndex(ordered[i])
		if index < 0 {
			continue
		}
		if current.children[index] == nil {
			current.children[index] = &node{}
		}
		current = current.children[index]
	}

	current.endOfWord++
	t.size++
}

// SearchByPrefix returns every indexed word starting with pattern (ending
// with it for a reversed trie) mapped to its insertion count. Keys always read
// left-to-right and begin (or end) with pattern as given.
func (t *LetterTrie) SearchByPrefix(pattern string) map[string]int {
	current := t.root
	ordered := t.walkOrder(pattern)

	for i := 0; i < len(ordered); i++ {
		index := letterToIndex(ordered[i])
		if index < 0 {
			continue
		}
		current = current.children[index]
		if current == nil {
			return map[string]int{}
		}
	}

	return t.traverseSubtree(current, pattern)
}

type traverseFrame struct {
	v      *node
	depth  int
	letter byte
}

// traverseSubtree walks iteratively; path holds the letters between
// subtreeRoot and the node being visited.
func (t *LetterTrie) traverseSubtree(subtreeRoot *node, rootValue string) map[string]int {
	words := make(map[string]int)
	stack := []traverseFrame{{v: subtreeRoot}}
	path := make([]byte, 0, 32)

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if frame.depth > 0 {
			path = append(path[:frame.depth-1], frame.letter)
		}

		if frame.v.endOfWord > 0 {
			words[t.buildWord(rootValue, path)] = frame.v.endOfWord
		}

		for i := alphabetSize - 1; i >= 0; i-- {
			if child := frame.v.children[i]; child != nil {
				stack = append(stack, traverseFrame{v: child, depth: frame.depth + 1, letter: indexToLetter(i)})
			}
		}
	}

	return words
}

// buildWord joins rootValue and path in reading order. A reversed trie
// visits letters from the end of the word backwards, so they are prepended.
func (t *LetterTrie) buildWord(rootValue string, path []byte) string {
	var sb strings.Builder
	sb.Grow(len(rootValue) + len(path))

	if !t.reversed {
		sb.WriteString(rootValue)
		sb.Write(path)
		return sb.String()
	}

	for i := len(path) - 1; i >= 0; i-- {
		sb.WriteByte(path[i])
	}
	sb.WriteString(rootValue)
	return sb.String()
}

func (t *LetterTrie) walkOrder(word string) string {
	if t.reversed {
		return reverse.String(word)
	}
	return word
}

// letterToIndex maps a-z and A-Z to 0..25 and everything else to -1.
func letterToIndex(c byte) int {
	switch {
	case 'A' <= c && c <= 'Z':
		return int(c - 'A')
	case 'a' <= c && c <= 'z':
		return int(c - 'a')
	default:
		return -1
	}
}

func indexToLetter(i int) byte {
	return byte('a' + i)
}
