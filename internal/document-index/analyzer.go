package document_index

import (
	"errors"
	"fmt"
	"strings"

	lemmatization "github.com/aaaton/golem/v4"
	enDict "github.com/aaaton/golem/v4/dicts/en"
	"github.com/bbalet/stopwords"
)

const DefaultLanguage = "en"

var (
	ErrUnsupportedLanguage = errors.New("lemmatization is only available for english")
	ErrLemmatizer          = errors.New("creating lemmatizer")
)

type AnalyzerOptions struct {
	DropStopwords bool
	Lemmatize     bool
	Language      string
}

// Analyzer normalizes words before they are indexed. A nil *Analyzer keeps
// words untouched, which is the reference behaviour.
type Analyzer struct {
	lemmatizer    *lemmatization.Lemmatizer
	dropStopwords bool
	language      string
}

func NewAnalyzer(opts AnalyzerOptions) (*Analyzer, error) {
	if !opts.DropStopwords && !opts.Lemmatize {
		return nil, nil
	}

	language := opts.Language
	if language == "" {
		language = DefaultLanguage
	}

	a := &Analyzer{
		dropStopwords: opts.DropStopwords,
		language:      language,
	}

	if opts.Lemmatize {
		if language != DefaultLanguage {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
		}
		l, err := lemmatization.New(enDict.New())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLemmatizer, err)
		}
		a.lemmatizer = l
	}

	return a, nil
}

func (a *Analyzer) Process(words []string) []string {
	if a == nil {
		return words
	}

	processed := make([]string, 0, len(words))
	for _, word := range words {
		term, ok := a.processTerm(word)
		if ok {
			processed = append(processed, term)
		}
	}
	return processed
}

func (a *Analyzer) processTerm(term string) (string, bool) {
	if a.dropStopwords {
		term = strings.TrimSpace(stopwords.CleanString(term, a.language, false))
		if len(term) == 0 {
			return "", false
		}
	}

	if a.lemmatizer != nil {
		term = a.lemmatizer.LemmaLower(term)
	}

	return term, true
}
