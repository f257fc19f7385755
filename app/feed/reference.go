package feed

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog/log"
)

var _ Parser = (*ReferenceParser)(nil)

// ReferenceParser goes through gofeed's universal parser and its
// translators, which fill in fallbacks (dc:creator, updated dates, ...).
type ReferenceParser struct {
	gofeedParser *gofeed.Parser
	cleaner      *HTMLCleaner
}

func NewReferenceParser() *ReferenceParser {
	return &ReferenceParser{
		gofeedParser: gofeed.NewParser(),
		cleaner:      NewHTMLCleaner(),
	}
}

func (p *ReferenceParser) Name() string {
	return "reference"
}

func (p *ReferenceParser) Parse(data []byte, cleanHTML bool) (*Result, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, classifyError(err)
	}

	result := &Result{
		Title:   parsed.Title,
		Link:    parsed.Link,
		Author:  firstAuthor(parsed.Authors),
		Entries: make([]Entry, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		result.Entries = append(result.Entries, p.normalizeItem(item))
	}

	if cleanHTML {
		p.cleaner.Apply(result)
	}

	log.Debug().Str("parser", p.Name()).Str("title", result.Title).Int("entries", len(result.Entries)).Msg("Parsed feed")
	return result, nil
}

func (p *ReferenceParser) normalizeItem(item *gofeed.Item) Entry {
	entry := Entry{
		Title:   item.Title,
		Link:    item.Link,
		Content: item.Content,
	}
	if entry.Content == "" {
		entry.Content = item.Description
	}

	if item.PublishedParsed != nil {
		entry.Published = item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		entry.Published = item.UpdatedParsed
	}

	authors := item.Authors
	if len(authors) == 0 && item.Author != nil {
		authors = []*gofeed.Person{item.Author}
	}
	entry.Author = firstAuthor(authors)

	return entry
}

func firstAuthor(people []*gofeed.Person) string {
	for _, person := range people {
		if person == nil {
			continue
		}
		if author := formatAuthor(person.Name, person.Email); author != "" {
			return author
		}
	}
	return ""
}

func formatAuthor(name, email string) string {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name != "" && email != "" {
		return fmt.Sprintf("%s (%s)", email, name)
	} else if name != "" {
		return name
	} else if email != "" {
		return email
	}

	return ""
}

func classifyError(err error) *ParseError {
	if errors.Is(err, gofeed.ErrFeedTypeNotDetected) {
		return &ParseError{Kind: KindUnsupported, Err: err}
	}
	return &ParseError{Kind: KindMalformed, Err: err}
}
