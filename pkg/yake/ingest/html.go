package ingest

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// elements whose text is never visible
var skipElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// elements that end a block of text
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"tr": true, "td": true, "th": true, "section": true, "article": true,
	"header": true, "footer": true, "blockquote": true, "pre": true, "title": true,
}

// BlockSeparator ends every block element in StripHTML output. It is the
// Unicode paragraph separator, a hard sentence boundary that the tokenizer
// does not fold into a space the way it folds line breaks.
const BlockSeparator = "\u2029"

// StripHTML parses an HTML document and returns its visible text. Block
// elements are terminated by BlockSeparator, so phrases never span two
// blocks.
func StripHTML(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode && skipElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
		if n.Type == html.ElementNode && blockElements[n.Data] {
			buf.WriteString(BlockSeparator)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String()), nil
}
