package query_matcher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const (
	OperatorAnd = "AND"
	OperatorOr  = "OR"
	OperatorNot = "NOT"
)

var ErrInvalidExpression = errors.New("invalid expression")

type term struct {
	negate bool
	prefix string
	suffix string
}

// Expression combines wildcard patterns with AND, OR and a leading NOT per
// pattern, evaluated left to right:
//
//	ca\S* OR \S*r
//	d\S* AND NOT \S*g
type Expression struct {
	terms     []term
	operators []string
}

// IsExpression reports whether line holds more than a single pattern.
func IsExpression(line string) bool {
	return len(strings.Fields(line)) > 1
}

func ParseExpression(line string) (*Expression, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidExpression)
	}

	expr := &Expression{}
	expectTerm := true
	negate := false

	for _, field := range fields {
		if !expectTerm {
			if field != OperatorAnd && field != OperatorOr {
				return nil, fmt.Errorf("%w: expected %s or %s before %q", ErrInvalidExpression, OperatorAnd, OperatorOr, field)
			}
			expr.operators = append(expr.operators, field)
			expectTerm = true
			continue
		}

		if field == OperatorNot && !negate {
			negate = true
			continue
		}

		prefix, suffix, err := ParsePattern(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidExpression, err)
		}
		expr.terms = append(expr.terms, term{negate: negate, prefix: prefix, suffix: suffix})
		negate = false
		expectTerm = false
	}

	if expectTerm {
		return nil, fmt.Errorf("%w: %q ends without a pattern", ErrInvalidExpression, line)
	}
	return expr, nil
}

// Evaluate returns the set of documents satisfying expr.
func (m *Matcher) Evaluate(expr *Expression) *bitset.BitSet {
	result := m.termSet(expr.terms[0])
	for i, op := range expr.operators {
		next := m.termSet(expr.terms[i+1])
		if op == OperatorAnd {
			result = And(result, next)
		} else {
			result = Or(result, next)
		}
	}
	return result
}

func (m *Matcher) termSet(t term) *bitset.BitSet {
	set := m.Matching(t.prefix, t.suffix)
	if t.negate {
		return Not(set, m.corpus.Len())
	}
	return set
}

// SetResult lists the documents of s in ascending order.
func SetResult(s *bitset.BitSet) Result {
	documents := Indices(s)
	if len(documents) == 0 {
		return Result{NoMatch: true}
	}
	return Result{Documents: documents}
}
