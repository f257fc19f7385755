package cfg

type Cfg struct {
	// Corpus
	CorpusDir string
	Patterns  []string
	Limit     int

	// Run
	Mode      string
	Parser    string
	CleanOnly bool

	// Output
	ReportPath string
	HistoryDB  string

	// Application metadata
	Debug   bool
	Version string
}

const (
	ModeBench   = "bench"
	ModeCompare = "compare"

	ParserReference = "reference"
	ParserDirect    = "direct"
)
