package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestLoadArgs_Defaults(t *testing.T) {
	cfg, err := LoadArgs([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.CorpusDir != "./feeds" {
		t.Errorf("Expected corpus dir './feeds', got '%s'", cfg.CorpusDir)
	}
	if len(cfg.Patterns) != 1 || cfg.Patterns[0] != "*.dat" {
		t.Errorf("Expected pattern '*.dat', got %v", cfg.Patterns)
	}
	if cfg.Limit != 0 {
		t.Errorf("Expected no limit, got %d", cfg.Limit)
	}
	if cfg.Mode != ModeBench {
		t.Errorf("Expected mode '%s', got '%s'", ModeBench, cfg.Mode)
	}
	if cfg.Parser != ParserDirect {
		t.Errorf("Expected parser '%s', got '%s'", ParserDirect, cfg.Parser)
	}
	if cfg.CleanOnly || cfg.Debug {
		t.Error("Expected boolean options to default to false")
	}
	if cfg.HistoryDB != "" || cfg.ReportPath != "" {
		t.Error("Expected history and report to be disabled by default")
	}
	if Get() != cfg {
		t.Error("Expected Get to return the loaded configuration")
	}
}

func TestLoadArgs_Options(t *testing.T) {
	cfg, err := LoadArgs([]string{
		"--corpus", "/data/feeds",
		"--pattern", "*.xml",
		"--pattern", "*.atom",
		"--limit", "300",
		"--mode", "compare",
		"--parser", "reference",
		"--clean-only",
		"--report", "report.yaml",
		"--history-db", "history.db",
		"--debug",
	})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.CorpusDir != "/data/feeds" {
		t.Errorf("Expected corpus dir '/data/feeds', got '%s'", cfg.CorpusDir)
	}
	if len(cfg.Patterns) != 2 || cfg.Patterns[0] != "*.xml" || cfg.Patterns[1] != "*.atom" {
		t.Errorf("Expected two patterns, got %v", cfg.Patterns)
	}
	if cfg.Limit != 300 {
		t.Errorf("Expected limit 300, got %d", cfg.Limit)
	}
	if cfg.Mode != ModeCompare || cfg.Parser != ParserReference {
		t.Errorf("Unexpected mode/parser %s/%s", cfg.Mode, cfg.Parser)
	}
	if !cfg.CleanOnly || !cfg.Debug {
		t.Error("Expected boolean options to be set")
	}
	if cfg.ReportPath != "report.yaml" || cfg.HistoryDB != "history.db" {
		t.Errorf("Unexpected output options %s/%s", cfg.ReportPath, cfg.HistoryDB)
	}
}

func TestLoadArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown mode", []string{"--mode", "serve"}},
		{"unknown parser", []string{"--parser", "speedy"}},
		{"negative limit", []string{"--limit=-1"}},
		{"non-numeric limit", []string{"--limit", "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadArgs(tt.args); err == nil {
				t.Errorf("Expected error for %v", tt.args)
			}
		})
	}
}
