package feed

import (
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

// HTMLCleaner reduces HTML fragments from feed fields to plain text.
type HTMLCleaner struct {
	context *nethtml.Node
}

func NewHTMLCleaner() *HTMLCleaner {
	return &HTMLCleaner{
		context: &nethtml.Node{Type: nethtml.ElementNode, Data: "div", DataAtom: atom.Div},
	}
}

// Apply cleans the text fields of result in place. Links are left alone.
func (c *HTMLCleaner) Apply(result *Result) {
	result.Title = c.Run(result.Title)
	result.Author = c.Run(result.Author)

	for i := range result.Entries {
		entry := &result.Entries[i]
		entry.Title = c.Run(entry.Title)
		entry.Author = c.Run(entry.Author)
		entry.Content = c.Run(entry.Content)
	}
}

// Run strips markup, drops script-like elements, decodes entities,
// collapses whitespace and normalizes to NFC.
func (c *HTMLCleaner) Run(fragment string) string {
	if fragment == "" {
		return ""
	}

	if !strings.ContainsAny(fragment, "<&") {
		return norm.NFC.String(strings.Join(strings.Fields(fragment), " "))
	}

	nodes, err := nethtml.ParseFragment(strings.NewReader(fragment), c.context)
	if err != nil {
		return norm.NFC.String(strings.Join(strings.Fields(fragment), " "))
	}

	var buf strings.Builder
	for _, node := range nodes {
		c.collectText(&buf, node)
	}

	return norm.NFC.String(strings.Join(strings.Fields(buf.String()), " "))
}

func (c *HTMLCleaner) collectText(buf *strings.Builder, node *nethtml.Node) {
	switch node.Type {
	case nethtml.TextNode:
		buf.WriteString(node.Data)
		return
	case nethtml.ElementNode:
		if isDroppedElement(node.DataAtom) {
			return
		}
		if isBreakingElement(node.DataAtom) {
			buf.WriteByte(' ')
			defer buf.WriteByte(' ')
		}
	case nethtml.CommentNode, nethtml.DoctypeNode:
		return
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		c.collectText(buf, child)
	}
}

func isDroppedElement(a atom.Atom) bool {
	switch a {
	case atom.Script, atom.Style, atom.Iframe, atom.Object, atom.Embed, atom.Noscript, atom.Template:
		return true
	}
	return false
}

func isBreakingElement(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Br, atom.Div, atom.Li, atom.Ul, atom.Ol, atom.Blockquote, atom.Pre,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Tr, atom.Td, atom.Th, atom.Hr:
		return true
	}
	return false
}
