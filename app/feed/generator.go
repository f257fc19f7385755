package feed

import (
	"bytes"
	"encoding/xml"
	"time"
)

// Generator renders a Result as an RSS 2.0 document. It is used to build
// corpora whose parsed form is known in advance.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Run(result *Result) []byte {
	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", result.Title, 4)
	g.writeElement(&buf, "link", result.Link, 4)
	g.writeElement(&buf, "managingEditor", result.Author, 4)

	for _, entry := range result.Entries {
		g.writeEntry(&buf, entry)
	}

	buf.WriteString("  </channel>\n</rss>\n")

	return buf.Bytes()
}

func (g *Generator) writeEntry(buf *bytes.Buffer, entry Entry) {
	buf.WriteString("    <item>\n")

	g.writeElement(buf, "title", entry.Title, 6)
	g.writeElement(buf, "link", entry.Link, 6)
	g.writeElement(buf, "author", entry.Author, 6)

	if entry.Content != "" {
		buf.WriteString("      <content:encoded><![CDATA[")
		buf.WriteString(entry.Content)
		buf.WriteString("]]></content:encoded>\n")
	}

	if entry.Published != nil {
		g.writeElement(buf, "pubDate", entry.Published.Format(time.RFC1123Z), 6)
	}

	buf.WriteString("    </item>\n")
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}
