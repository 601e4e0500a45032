package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	document_index "wildcard-index/internal/document-index"
)

var (
	ErrInvalidDocumentCount = errors.New("document count must be positive")
	ErrMissingDocument      = errors.New("missing document")
	ErrReadingDocument      = errors.New("error reading document")
)

// DocumentFileName returns the file name of the document with the given
// 1-based index: doc01.txt, doc02.txt, ...
func DocumentFileName(index int) string {
	return fmt.Sprintf("doc%02d.txt", index)
}

// ReadDocumentWords reads the first line of r and splits it on single spaces.
// Consecutive spaces produce empty words.
func ReadDocumentWords(r io.Reader) ([]string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}

	line = strings.TrimRight(line, "\r\n")
	return strings.Split(line, " "), nil
}

type Loader struct {
	dir       string
	documents int
	analyzer  *document_index.Analyzer
	logger    *log.Logger
}

// NewLoader creates a loader for documents 1..documents in dir. analyzer may
// be nil.
func NewLoader(dir string, documents int, analyzer *document_index.Analyzer, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		dir:       dir,
		documents: documents,
		analyzer:  analyzer,
		logger:    logger,
	}
}

func (l *Loader) Load() (*Corpus, error) {
	if l.documents < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDocumentCount, l.documents)
	}

	documents := make([]*document_index.DocumentIndex, 0, l.documents)
	for i := 1; i <= l.documents; i++ {
		d, err := l.loadDocument(i)
		if err != nil {
			return nil, err
		}
		documents = append(documents, d)
	}

	c := New(documents...)
	stats := c.Stats()
	l.logger.Info("corpus loaded", "dir", l.dir, "documents", stats["documents"], "words", stats["words"])
	return c, nil
}

func (l *Loader) loadDocument(index int) (*document_index.DocumentIndex, error) {
	path := filepath.Join(l.dir, DocumentFileName(index))

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingDocument, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}
	defer file.Close()

	words, err := ReadDocumentWords(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadingDocument, path, err)
	}

	words = l.analyzer.Process(words)
	l.logger.Debug("document indexed", "path", path, "words", len(words))

	return document_index.New(words), nil
}
