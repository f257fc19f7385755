package feed

import (
	"bytes"
	"fmt"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"
	"github.com/rs/zerolog/log"
)

var _ Parser = (*DirectParser)(nil)

// DirectParser reads RSS and Atom documents with the format-specific gofeed
// parsers and maps their fields without the universal translators. It
// keeps raw author strings and skips every fallback, which makes it the
// fast path the reference is compared against.
type DirectParser struct {
	cleaner *HTMLCleaner
}

func NewDirectParser() *DirectParser {
	return &DirectParser{
		cleaner: NewHTMLCleaner(),
	}
}

func (p *DirectParser) Name() string {
	return "direct"
}

func (p *DirectParser) Parse(data []byte, cleanHTML bool) (*Result, error) {
	var (
		result *Result
		err    error
	)

	switch feedType := gofeed.DetectFeedType(bytes.NewReader(data)); feedType {
	case gofeed.FeedTypeRSS:
		result, err = p.parseRSS(data)
	case gofeed.FeedTypeAtom:
		result, err = p.parseAtom(data)
	case gofeed.FeedTypeJSON:
		return nil, &ParseError{Kind: KindUnsupported, Err: fmt.Errorf("json feeds are not supported")}
	default:
		return nil, &ParseError{Kind: KindUnsupported, Err: gofeed.ErrFeedTypeNotDetected}
	}
	if err != nil {
		return nil, &ParseError{Kind: KindMalformed, Err: err}
	}

	if cleanHTML {
		p.cleaner.Apply(result)
	}

	log.Debug().Str("parser", p.Name()).Str("title", result.Title).Int("entries", len(result.Entries)).Msg("Parsed feed")
	return result, nil
}

func (p *DirectParser) parseRSS(data []byte) (*Result, error) {
	rssParser := rss.Parser{}
	parsed, err := rssParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rss: %w", err)
	}

	result := &Result{
		Title:   parsed.Title,
		Link:    parsed.Link,
		Author:  parsed.ManagingEditor,
		Entries: make([]Entry, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		entry := Entry{
			Title:     item.Title,
			Link:      item.Link,
			Author:    item.Author,
			Content:   item.Content,
			Published: item.PubDateParsed,
		}
		if entry.Content == "" {
			entry.Content = item.Description
		}
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

func (p *DirectParser) parseAtom(data []byte) (*Result, error) {
	atomParser := atom.Parser{}
	parsed, err := atomParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse atom: %w", err)
	}

	result := &Result{
		Title:   parsed.Title,
		Link:    alternateLink(parsed.Links),
		Author:  firstAtomAuthor(parsed.Authors),
		Entries: make([]Entry, 0, len(parsed.Entries)),
	}

	for _, item := range parsed.Entries {
		if item == nil {
			continue
		}
		entry := Entry{
			Title:     item.Title,
			Link:      alternateLink(item.Links),
			Author:    firstAtomAuthor(item.Authors),
			Content:   item.Summary,
			Published: item.PublishedParsed,
		}
		if item.Content != nil && item.Content.Value != "" {
			entry.Content = item.Content.Value
		}
		if entry.Published == nil {
			entry.Published = item.UpdatedParsed
		}
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

// alternateLink prefers rel="alternate" (or no rel) over any other link.
func alternateLink(links []*atom.Link) string {
	fallback := ""
	for _, link := range links {
		if link == nil || link.Href == "" {
			continue
		}
		if link.Rel == "" || link.Rel == "alternate" {
			return link.Href
		}
		if fallback == "" {
			fallback = link.Href
		}
	}
	return fallback
}

func firstAtomAuthor(people []*atom.Person) string {
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
