/*
Package main answers single-wildcard queries over a small numbered corpus.

Every document doc01.txt .. docNN.txt is indexed by two letter tries, one
reading words left to right and one right to left. A pattern has exactly one
wildcard, written \S*, so "ca\S*" asks for words starting with "ca", "\S*r"
for words ending with "r" and "c\S*t" for both. Documents are ranked by how
many of their words match, ties going to the smaller document number.

# Usage

Answer the queries in input.txt against doc01.txt .. doc10.txt in the current
directory, writing result.txt and time.txt:

	wildcard-search

Use another corpus and more workers:

	wildcard-search -docs /path/to/docs -n 25 -workers 4

Type patterns on stdin instead of reading a query file. Interactive lines may
also combine patterns with AND, OR and NOT:

	wildcard-search -i

# Configuration

Defaults can be changed with a TOML file passed through -config. See the config
package for every key. Flags given on the command line win over the file.

# Command Line Flags

	-config string
	    TOML configuration file
	-docs string
	    Directory holding docNN.txt files
	-n int
	    Number of documents
	-input string
	    Query file
	-output string
	    Result file
	-time string
	    File receiving the query time in seconds
	-workers int
	    Documents matched in parallel per query
	-stopwords
	    Drop stop words before indexing
	-lemmatize
	    Index lemmas instead of surface forms
	-i  Read patterns from stdin
	-d  Toggle debug mode
	-version
	    Show current version
*/
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"wildcard-index/internal/config"
	"wildcard-index/internal/corpus"
	document_index "wildcard-index/internal/document-index"
	"wildcard-index/internal/logger"
	query_driver "wildcard-index/internal/query-driver"
	query_matcher "wildcard-index/internal/query-matcher"
)

const (
	Version = "1.0.0"
	AppName = "wildcard-search"
)

func main() {
	defaults := config.DefaultConfig()

	// values of the flags below are read back in applyFlags
	configPath := flag.String("config", "", "TOML configuration file")
	flag.String("docs", defaults.Documents.Dir, "Directory holding docNN.txt files")
	flag.Int("n", defaults.Documents.Count, "Number of documents")
	flag.String("input", defaults.Queries.InputFile, "Query file")
	flag.String("output", defaults.Queries.ResultFile, "Result file")
	flag.String("time", defaults.Queries.TimeFile, "File receiving the query time in seconds")
	flag.Int("workers", defaults.Queries.Workers, "Documents matched in parallel per query")
	flag.Bool("stopwords", false, "Drop stop words before indexing")
	flag.Bool("lemmatize", false, "Index lemmas instead of surface forms")
	interactive := flag.Bool("i", false, "Read patterns from stdin")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	showVersion := flag.Bool("version", false, "Show current version")

	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlags(cfg)

	level := cfg.LogLevel()
	if *debugMode {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	appLogger := logger.NewWithConfig(AppName, level, cfg.Log.Timestamp || *debugMode)

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("Invalid options", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// a second signal gets the default behaviour and kills the process
	context.AfterFunc(ctx, stop)

	analyzer, err := document_index.NewAnalyzer(document_index.AnalyzerOptions{
		DropStopwords: cfg.Documents.DropStopwords,
		Lemmatize:     cfg.Documents.Lemmatize,
		Language:      cfg.Documents.Language,
	})
	if err != nil {
		appLogger.Fatal("Failed to create analyzer", "err", err)
	}

	appLogger.Debug("Loading corpus", "dir", cfg.Documents.Dir, "documents", cfg.Documents.Count)
	c, err := corpus.NewLoader(cfg.Documents.Dir, cfg.Documents.Count, analyzer, appLogger).Load()
	if err != nil {
		appLogger.Fatal("Failed to load corpus", "err", err)
	}

	driver := query_driver.New(query_matcher.New(c, cfg.Queries.Workers), appLogger)

	if *interactive {
		appLogger.Info("Reading patterns from stdin, one per line")
		err := driver.Interactive(ctx, os.Stdin, os.Stdout)
		if errors.Is(err, context.Canceled) {
			appLogger.Info("Exiting...")
			return
		}
		if err != nil {
			appLogger.Fatal("Interactive mode failed", "err", err)
		}
		return
	}

	elapsed, err := driver.RunFiles(ctx, cfg.Queries.InputFile, cfg.Queries.ResultFile, cfg.Queries.TimeFile)
	if errors.Is(err, context.Canceled) {
		appLogger.Warn("Interrupted, result file holds the answers given so far", "results", cfg.Queries.ResultFile)
		return
	}
	if err != nil {
		appLogger.Fatal("Failed to answer queries", "err", err)
	}
	appLogger.Debugf("Took [ %v ] for all queries", elapsed)
}

// applyFlags copies every flag given on the command line into cfg, so that
// flags win over the config file while unset flags keep the file values.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		value := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "docs":
			cfg.Documents.Dir = value.(string)
		case "n":
			cfg.Documents.Count = value.(int)
		case "stopwords":
			cfg.Documents.DropStopwords = value.(bool)
		case "lemmatize":
			cfg.Documents.Lemmatize = value.(bool)
		case "input":
			cfg.Queries.InputFile = value.(string)
		case "output":
			cfg.Queries.ResultFile = value.(string)
		case "time":
			cfg.Queries.TimeFile = value.(string)
		case "workers":
			cfg.Queries.Workers = value.(int)
		}
	})
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("[ wildcard-search ] prefix and suffix queries over letter tries")
	l.Print("", "version", Version)
	l.Print("use -h or --help to see available options")
}
