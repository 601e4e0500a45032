package corpus

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	document_index "wildcard-index/internal/document-index"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func writeDocuments(t *testing.T, dir string, contents ...string) {
	t.Helper()
	for i, content := range contents {
		err := os.WriteFile(filepath.Join(dir, DocumentFileName(i+1)), []byte(content), 0644)
		require.NoError(t, err)
	}
}

func TestCorpus_Document(t *testing.T) {
	first := document_index.New([]string{"cat"})
	second := document_index.New([]string{"dog", "deer"})
	c := New(first, second)

	require.Equal(t, 2, c.Len())
	require.Same(t, first, c.Document(1))
	require.Same(t, second, c.Document(2))
	require.Nil(t, c.Document(0))
	require.Nil(t, c.Document(3))
	require.Equal(t, map[string]int{"documents": 2, "words": 3}, c.Stats())
}

func TestDocumentFileName(t *testing.T) {
	require.Equal(t, "doc01.txt", DocumentFileName(1))
	require.Equal(t, "doc10.txt", DocumentFileName(10))
	require.Equal(t, "doc123.txt", DocumentFileName(123))
}

func TestReadDocumentWords(t *testing.T) {
	words, err := ReadDocumentWords(strings.NewReader("cat dog  car\nignored second line\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "dog", "", "car"}, words)

	words, err = ReadDocumentWords(strings.NewReader("crlf line\r\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"crlf", "line"}, words)

	words, err = ReadDocumentWords(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, []string{""}, words)
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	writeDocuments(t, dir, "cat dog car", "dog deer", "")

	c, err := NewLoader(dir, 3, nil, quietLogger()).Load()
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	require.Equal(t, 3, c.Document(1).WordCount())
	require.Equal(t, 2, c.Document(2).WordCount())
	require.Equal(t, 1, c.Document(3).WordCount())
	require.Equal(t, map[string]int{"cat": 1, "car": 1}, c.Document(1).WordsWithPrefix("ca"))
}

func TestLoader_MissingDocument(t *testing.T) {
	dir := t.TempDir()
	writeDocuments(t, dir, "cat")

	_, err := NewLoader(dir, 2, nil, quietLogger()).Load()
	require.ErrorIs(t, err, ErrMissingDocument)
}

func TestLoader_InvalidDocumentCount(t *testing.T) {
	_, err := NewLoader(t.TempDir(), 0, nil, quietLogger()).Load()
	require.ErrorIs(t, err, ErrInvalidDocumentCount)
}

func TestLoader_WithAnalyzer(t *testing.T) {
	dir := t.TempDir()
	writeDocuments(t, dir, "the cats and the dogs")

	analyzer, err := document_index.NewAnalyzer(document_index.AnalyzerOptions{DropStopwords: true})
	require.NoError(t, err)

	c, err := NewLoader(dir, 1, analyzer, quietLogger()).Load()
	require.NoError(t, err)
	require.Equal(t, 2, c.Document(1).WordCount())
}
