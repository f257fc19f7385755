package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lysyi3m/feedbench/app/bench"
	"github.com/lysyi3m/feedbench/app/cfg"
	"github.com/lysyi3m/feedbench/app/conformance"
	"github.com/lysyi3m/feedbench/app/corpus"
	"github.com/lysyi3m/feedbench/app/database"
	"github.com/lysyi3m/feedbench/app/feed"
	"github.com/lysyi3m/feedbench/app/oracle"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Could not load .env file")
	}

	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	if appCfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Info().Str("version", appCfg.Version).Str("mode", appCfg.Mode).Str("corpus", appCfg.CorpusDir).Msg("Starting feedbench")

	if err := run(appCfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("Run failed")
		os.Exit(1)
	}
}

func run(appCfg *cfg.Cfg, stdout io.Writer) error {
	documents, err := corpus.New(appCfg.CorpusDir, appCfg.Patterns...).Documents()
	if err != nil {
		return err
	}
	if appCfg.Limit > 0 && len(documents) > appCfg.Limit {
		documents = documents[:appCfg.Limit]
	}

	sources := make([]bench.Source, 0, len(documents))
	for _, doc := range documents {
		sources = append(sources, doc)
	}
	log.Info().Int("documents", len(sources)).Msg("Loaded corpus")

	var store database.RunStore
	if appCfg.HistoryDB != "" {
		db, err := database.Open(appCfg.HistoryDB)
		if err != nil {
			return err
		}
		defer db.Close()
		store = database.NewRunRepository(db)
	}

	switch appCfg.Mode {
	case cfg.ModeCompare:
		return runCompare(appCfg, sources, store, stdout)
	default:
		return runBench(appCfg, sources, store, stdout)
	}
}

func newParser(name string) feed.Parser {
	if name == cfg.ParserReference {
		return feed.NewReferenceParser()
	}
	return feed.NewDirectParser()
}

func runBench(appCfg *cfg.Cfg, sources []bench.Source, store database.RunStore, stdout io.Writer) error {
	runner := bench.NewRunner(newParser(appCfg.Parser), appCfg.Limit)

	modes := []bool{true}
	if !appCfg.CleanOnly {
		modes = append(modes, false)
	}

	for _, cleanHTML := range modes {
		outcome, err := runner.Run(sources, cleanHTML)
		if err != nil {
			return fmt.Errorf("benchmark failed: %w", err)
		}

		fmt.Fprintln(stdout, bench.Summary(bench.Label(outcome), outcome))
		if outcome.Failures > 0 {
			log.Warn().Int("failures", outcome.Failures).Int("documents", outcome.Documents).Msg("Some documents could not be parsed")
		}

		if store != nil {
			id, err := store.SaveBenchRun(appCfg.CorpusDir, outcome)
			if err != nil {
				return err
			}
			log.Debug().Str("run", id).Msg("Recorded bench run")
		}
	}

	return nil
}

func runCompare(appCfg *cfg.Cfg, sources []bench.Source, store database.RunStore, stdout io.Writer) error {
	checker := conformance.NewChecker(feed.NewReferenceParser(), newParser(appCfg.Parser), oracle.New(nil))

	start := time.Now()
	report, err := checker.Check(sources)
	if err != nil {
		return fmt.Errorf("conformance check failed: %w", err)
	}
	elapsed := time.Since(start)

	out := stdout
	if appCfg.ReportPath != "" {
		file, err := os.Create(appCfg.ReportPath)
		if err != nil {
			return fmt.Errorf("failed to create report %s: %w", appCfg.ReportPath, err)
		}
		defer file.Close()
		out = file
	}

	if err := report.WriteYAML(out); err != nil {
		return err
	}

	log.Info().
		Int("documents", report.Documents).
		Int("skipped", report.Skipped).
		Int("failed_documents", report.FailedDocuments()).
		Int("failures", len(report.Failures)).
		Dur("elapsed", elapsed).
		Msg("Conformance check finished")

	if store != nil {
		id, err := store.SaveConformanceRun(appCfg.CorpusDir, report, elapsed)
		if err != nil {
			return err
		}
		log.Debug().Str("run", id).Msg("Recorded conformance run")
	}

	return nil
}
