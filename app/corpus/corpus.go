package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Document is one stored feed document. Its bytes are read on demand.
type Document struct {
	name string
	path string
}

func NewDocument(path string) Document {
	return Document{name: filepath.Base(path), path: path}
}

func (d Document) Name() string {
	return d.name
}

func (d Document) Path() string {
	return d.path
}

func (d Document) Read() ([]byte, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", d.name, err)
	}
	return data, nil
}

// Corpus enumerates the documents of one directory.
type Corpus struct {
	dir      string
	patterns []string
}

// New returns a corpus over dir. Patterns are filepath.Match globs on the
// file name; none means every file.
func New(dir string, patterns ...string) *Corpus {
	return &Corpus{
		dir:      dir,
		patterns: patterns,
	}
}

// Documents lists regular, non-hidden files matching any pattern, each once,
// sorted by name so runs are reproducible.
func (c *Corpus) Documents() ([]Document, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory %s: %w", c.dir, err)
	}

	seen := make(map[string]bool, len(entries))
	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !entry.Type().IsRegular() || seen[name] {
			continue
		}

		ok, err := c.matches(name)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		seen[name] = true
		names = append(names, name)
	}

	sort.Strings(names)

	documents := make([]Document, 0, len(names))
	for _, name := range names {
		documents = append(documents, NewDocument(filepath.Join(c.dir, name)))
	}

	log.Debug().Str("dir", c.dir).Strs("patterns", c.patterns).Int("documents", len(documents)).Msg("Corpus enumerated")
	return documents, nil
}

func (c *Corpus) matches(name string) (bool, error) {
	if len(c.patterns) == 0 {
		return true, nil
	}

	for _, pattern := range c.patterns {
		ok, err := filepath.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("invalid corpus pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
