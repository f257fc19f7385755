package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Corpus configuration
	CorpusDir string   `long:"corpus" env:"CORPUS_DIR" default:"./feeds" description:"Directory containing feed documents"`
	Patterns  []string `long:"pattern" env:"CORPUS_PATTERN" env-delim:"," default:"*.dat" description:"File name glob selecting corpus documents (repeatable)"`
	Limit     int      `long:"limit" env:"CORPUS_LIMIT" default:"0" description:"Maximum number of documents per run (0 for all)"`

	// Run configuration
	Mode      string `long:"mode" env:"MODE" default:"bench" choice:"bench" choice:"compare" description:"Benchmark throughput or compare parsers"`
	Parser    string `long:"parser" env:"PARSER" default:"direct" choice:"reference" choice:"direct" description:"Parser to benchmark"`
	CleanOnly bool   `long:"clean-only" env:"CLEAN_ONLY" description:"Skip the run without HTML cleaning"`

	// Output configuration
	ReportPath string `long:"report" env:"REPORT_PATH" description:"Write the conformance report to this file instead of stdout"`
	HistoryDB  string `long:"history-db" env:"HISTORY_DB" description:"SQLite file to record run history in (disabled when empty)"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	return LoadArgs(nil)
}

// LoadArgs parses args instead of os.Args; nil means os.Args.
func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	var err error
	if args == nil {
		_, err = parser.Parse()
	} else {
		_, err = parser.ParseArgs(args)
	}
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative, got %d", raw.Limit)
	}

	cfg := &Cfg{
		CorpusDir:  raw.CorpusDir,
		Patterns:   raw.Patterns,
		Limit:      raw.Limit,
		Mode:       raw.Mode,
		Parser:     raw.Parser,
		CleanOnly:  raw.CleanOnly,
		ReportPath: raw.ReportPath,
		HistoryDB:  raw.HistoryDB,
		Debug:      raw.Debug,
		Version:    GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
