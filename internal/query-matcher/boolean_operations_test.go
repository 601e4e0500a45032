package query_matcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatching(t *testing.T) {
	m := New(referenceCorpus(), 1)

	require.Equal(t, []int{1}, Indices(m.Matching("ca", "")))
	require.Equal(t, []int{1, 2}, Indices(m.Matching("", "r")))
	require.Empty(t, Indices(m.Matching("zebra", "")))
}

func TestOr(t *testing.T) {
	m := New(referenceCorpus(), 1)

	docIDs := Indices(Or(m.Matching("ca", ""), m.Matching("de", "")))
	require.Equal(t, []int{1, 2}, docIDs)
}

func TestAnd(t *testing.T) {
	m := New(referenceCorpus(), 1)

	docIDs := Indices(And(m.Matching("do", ""), m.Matching("de", "")))
	require.Equal(t, []int{2}, docIDs)

	require.Empty(t, Indices(And(m.Matching("ca", ""), m.Matching("de", ""))))
}

func TestNot(t *testing.T) {
	c := referenceCorpus()
	m := New(c, 1)

	docIDs := Indices(Not(m.Matching("do", ""), c.Len()))
	require.Equal(t, []int{3, 4, 5, 6, 7, 8, 9, 10}, docIDs)

	docIDs = Indices(Not(And(m.Matching("do", ""), m.Matching("ca", "")), c.Len()))
	require.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9, 10}, docIDs)
}
