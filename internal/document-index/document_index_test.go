package document_index

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocumentIndex_WordCount(t *testing.T) {
	d := New(strings.Split("cat dog  cat car", " "))

	// the double space yields an empty token, which is still counted
	require.Equal(t, 5, d.WordCount())
	require.Equal(t, 0, New(nil).WordCount())
	require.Equal(t, 1, New([]string{""}).WordCount())
}

func TestDocumentIndex_PrefixAndSuffix(t *testing.T) {
	d := New([]string{"cat", "dog", "car", "cat"})

	require.Equal(t, map[string]int{"cat": 2, "car": 1}, d.WordsWithPrefix("ca"))
	require.Equal(t, map[string]int{"car": 1}, d.WordsWithSuffix("r"))
	require.Equal(t, map[string]int{"cat": 2}, d.WordsWithSuffix("at"))
	require.Empty(t, d.WordsWithPrefix("x"))
	require.Empty(t, d.WordsWithSuffix("x"))
}

func TestDocumentIndex_BothTriesHoldSameWords(t *testing.T) {
	d := New([]string{"Alpha", "beta", "gamma", "beta", "x-ray", ""})

	require.False(t, d.forward.Reversed())
	require.True(t, d.reverse.Reversed())
	require.Equal(t, d.WordsWithPrefix(""), d.WordsWithSuffix(""))
	require.Equal(t, d.forward.Size(), d.reverse.Size())

	total := 0
	for _, count := range d.WordsWithPrefix("") {
		total += count
	}
	require.Equal(t, d.WordCount(), total)
}

func TestAnalyzer_DisabledIsPassthrough(t *testing.T) {
	a, err := NewAnalyzer(AnalyzerOptions{})
	require.NoError(t, err)
	require.Nil(t, a)

	words := []string{"The", "cats", ""}
	require.Equal(t, words, a.Process(words))
}

func TestAnalyzer_DropStopwords(t *testing.T) {
	a, err := NewAnalyzer(AnalyzerOptions{DropStopwords: true})
	require.NoError(t, err)

	processed := a.Process([]string{"the", "cats", "are", "sleeping", ""})
	require.Equal(t, []string{"cats", "sleeping"}, processed)
}

func TestAnalyzer_Lemmatize(t *testing.T) {
	a, err := NewAnalyzer(AnalyzerOptions{Lemmatize: true})
	require.NoError(t, err)

	processed := a.Process([]string{"cats", "Dogs"})
	require.Equal(t, []string{"cat", "dog"}, processed)
}

func TestAnalyzer_UnsupportedLanguage(t *testing.T) {
	_, err := NewAnalyzer(AnalyzerOptions{Lemmatize: true, Language: "fr"})
	require.ErrorIs(t, err, ErrUnsupportedLanguage)

	a, err := NewAnalyzer(AnalyzerOptions{DropStopwords: true, Language: "fr"})
	require.NoError(t, err)
	require.NotNil(t, a)
}
