/*
Package query_driver feeds wildcard patterns to the matcher and writes the
ranked answers.

The query file starts with the number of queries, followed by one pattern per
line:

	3
	ca\S*
	\S*r
	c\S*t

The result file gets one line per pattern: the matching document indices,
best first and separated by spaces, or -1 when nothing matches.

In interactive mode a line may also combine patterns, evaluated left to right:

	d\S* AND NOT \S*g
	ca\S* OR \S*r
*/
package query_driver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	query_matcher "wildcard-index/internal/query-matcher"
)

const maxLineSize = 1 << 20

var (
	ErrInvalidQueryCount = errors.New("invalid query count")
	ErrReadingQueries    = errors.New("error reading queries")
	ErrWritingResults    = errors.New("error writing results")
)

type Driver struct {
	matcher *query_matcher.Matcher
	logger  *log.Logger
}

func New(matcher *query_matcher.Matcher, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.Default()
	}
	return &Driver{
		matcher: matcher,
		logger:  logger,
	}
}

// ReadQueries parses the query count header and returns it together with
// every pattern line that follows.
func ReadQueries(r io.Reader) (int, []string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, nil, fmt.Errorf("%w: %w", ErrReadingQueries, err)
		}
		return 0, nil, fmt.Errorf("%w: empty query file", ErrInvalidQueryCount)
	}

	count, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || count < 0 {
		return 0, nil, fmt.Errorf("%w: %q", ErrInvalidQueryCount, scanner.Text())
	}

	queries := make([]string, 0, count)
	for scanner.Scan() {
		queries = append(queries, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrReadingQueries, err)
	}

	return count, queries, nil
}

// Run answers every query in order and writes one result line per query. It
// stops at the first malformed pattern or when ctx is cancelled; the answers
// written so far are flushed either way.
func (d *Driver) Run(ctx context.Context, queries []string, w io.Writer) error {
	writer := bufio.NewWriter(w)

	runErr := d.run(ctx, queries, writer)
	if err := writer.Flush(); err != nil && runErr == nil {
		runErr = fmt.Errorf("%w: %w", ErrWritingResults, err)
	}
	return runErr
}

func (d *Driver) run(ctx context.Context, queries []string, writer *bufio.Writer) error {
	for i, query := range queries {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := d.answer(query)
		if err != nil {
			return fmt.Errorf("query %d: %w", i+1, err)
		}
		if _, err := fmt.Fprintln(writer, result.String()); err != nil {
			return fmt.Errorf("%w: %w", ErrWritingResults, err)
		}
	}
	return nil
}

// RunFiles reads inputPath, writes the answers to resultPath and the time
// spent answering, in seconds, to timePath.
func (d *Driver) RunFiles(ctx context.Context, inputPath string, resultPath string, timePath string) (time.Duration, error) {
	input, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrReadingQueries, err)
	}
	count, queries, err := ReadQueries(input)
	input.Close()
	if err != nil {
		return 0, err
	}
	if count != len(queries) {
		d.logger.Warn("query count does not match the number of patterns", "declared", count, "patterns", len(queries))
	}

	result, err := os.Create(resultPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWritingResults, err)
	}
	defer result.Close()

	start := time.Now()
	if err := d.Run(ctx, queries, result); err != nil {
		return 0, err
	}
	elapsed := time.Since(start)

	if err := result.Close(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWritingResults, err)
	}

	seconds := strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64)
	if err := os.WriteFile(timePath, []byte(seconds), 0644); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWritingResults, err)
	}

	d.logger.Info("queries answered", "queries", len(queries), "elapsed", elapsed, "results", resultPath)
	return elapsed, nil
}

// Interactive answers lines read from r until r is exhausted or ctx is
// cancelled. A line is either a single pattern, answered with a ranked list,
// or patterns joined by AND / OR / NOT, answered with the matching documents
// in ascending order. Malformed lines are logged and skipped.
func (d *Driver) Interactive(ctx context.Context, r io.Reader, w io.Writer) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	// the reader may stay blocked on r after cancellation, it is left behind
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					if ctxErr := ctx.Err(); ctxErr != nil {
						return ctxErr
					}
					return fmt.Errorf("%w: %w", ErrReadingQueries, err)
				}
				return nil
			}
			if err := d.answerLine(strings.TrimSpace(line), w); err != nil {
				return err
			}
		}
	}
}

func (d *Driver) answerLine(line string, w io.Writer) error {
	if line == "" {
		return nil
	}

	start := time.Now()
	var result query_matcher.Result
	if query_matcher.IsExpression(line) {
		expr, err := query_matcher.ParseExpression(line)
		if err != nil {
			d.logger.Error("Skipping expression", "err", err)
			return nil
		}
		result = query_matcher.SetResult(d.matcher.Evaluate(expr))
	} else {
		var err error
		result, err = d.answer(line)
		if err != nil {
			d.logger.Error("Skipping query", "err", err)
			return nil
		}
	}
	d.logger.Debugf("Took [ %v ] for '%s'", time.Since(start), line)

	if _, err := fmt.Fprintln(w, result.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingResults, err)
	}
	return nil
}

func (d *Driver) answer(query string) (query_matcher.Result, error) {
	prefix, suffix, err := query_matcher.ParsePattern(query)
	if err != nil {
		return query_matcher.Result{}, err
	}
	return d.matcher.MatchQuery(prefix, suffix), nil
}
