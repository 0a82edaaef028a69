// Package textsource turns documents into the plain text the date finder scans: HTML pages lose
// their markup, feeds are reduced to the text of their entries, plain text passes through.
package textsource

import (
	"datefinder/oops"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
)

type Kind string

const (
	KindText Kind = "text"
	KindHTML Kind = "html"
	KindFeed Kind = "feed"
	KindAuto Kind = "auto"
)

var ErrUnknownKind = errors.New("unknown input kind")
var ErrInvalidXPath = errors.New("invalid xpath")

func ParseKind(s string) (Kind, error) {
	switch kind := Kind(strings.ToLower(strings.TrimSpace(s))); kind {
	case "":
		return KindAuto, nil
	case KindText, KindHTML, KindFeed, KindAuto:
		return kind, nil
	default:
		return "", oops.Wrapf(ErrUnknownKind, "%q", s)
	}
}

// Read returns the text of the document in r. If xpathExpr is set, only the text of the matching
// nodes is returned, one node per line. It is ignored for plain text.
func Read(r io.Reader, kind Kind, xpathExpr string) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", oops.Wrap(err)
	}
	return FromString(string(content), kind, xpathExpr)
}

func FromString(content string, kind Kind, xpathExpr string) (string, error) {
	var expr *xpath.Expr
	if xpathExpr != "" {
		var err error
		expr, err = xpath.Compile(xpathExpr)
		if err != nil {
			return "", oops.Wrapf(ErrInvalidXPath, "%q: %v", xpathExpr, err)
		}
	}

	if kind == KindAuto {
		kind = Detect(content)
	}

	switch kind {
	case KindText:
		return content, nil
	case KindHTML:
		return htmlText(content, expr)
	case KindFeed:
		return feedText(content, expr)
	default:
		return "", oops.Wrapf(ErrUnknownKind, "%q", kind)
	}
}

// Detect guesses the kind by the first bytes of the content
func Detect(content string) Kind {
	trimmed := strings.TrimLeft(content, "\ufeff \t\r\n")
	if !strings.HasPrefix(trimmed, "<") {
		return KindText
	}

	head := strings.ToLower(trimmed[:min(len(trimmed), 512)])
	if strings.HasPrefix(head, "<!doctype html") || strings.Contains(head, "<html") {
		return KindHTML
	}
	if doc, err := parseXML(content); err == nil && isFeed(doc) {
		return KindFeed
	}
	if strings.HasPrefix(head, "<?xml") {
		return KindFeed
	}
	return KindHTML
}

var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true, "br": true, "dd": true,
	"div": true, "dl": true, "dt": true, "fieldset": true, "figcaption": true, "figure": true,
	"footer": true, "form": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "header": true, "hr": true, "li": true, "main": true, "nav": true, "ol": true,
	"p": true, "pre": true, "section": true, "table": true, "td": true, "th": true, "tr": true,
	"ul": true, "title": true, "time": true,
}

func htmlText(content string, expr *xpath.Expr) (string, error) {
	document, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", oops.Wrap(err)
	}

	var nodes []*html.Node
	if expr != nil {
		nodes = htmlquery.QuerySelectorAll(document, expr)
	} else {
		nodes = []*html.Node{document}
		if body := htmlquery.FindOne(document, "//body"); body != nil {
			nodes = []*html.Node{body}
		}
	}

	var lines []string
	for _, node := range nodes {
		lines = append(lines, blockLines(node)...)
	}
	return strings.Join(lines, "\n"), nil
}

// blockLines is the visible text of the node with one line per block element
func blockLines(node *html.Node) []string {
	var builder strings.Builder
	var traverse func(n *html.Node)
	traverse = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			builder.WriteString(n.Data)
			return
		case html.ElementNode:
			if skippedElements[n.Data] {
				return
			}
			if blockElements[n.Data] {
				builder.WriteByte('\n')
				defer builder.WriteByte('\n')
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			traverse(child)
		}
	}
	traverse(node)

	var lines []string
	for _, line := range strings.Split(builder.String(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func parseXML(content string) (*xmlquery.Node, error) {
	reader := strings.NewReader(content)
	doc, err := xmlquery.ParseWithOptions(reader, xmlquery.ParserOptions{
		Decoder: &xmlquery.DecoderOptions{ //nolint:exhaustruct
			Strict: false,
			CharsetReader: func(charset string, input io.Reader) (io.Reader, error) {
				switch strings.ToLower(charset) {
				case "iso-8859-1", "latin1":
					return charmap.ISO8859_1.NewDecoder().Reader(input), nil
				case "windows-1252":
					return charmap.Windows1252.NewDecoder().Reader(input), nil
				}
				return nil, fmt.Errorf("Unknown XML charset: %s", charset)
			},
		},
	})
	return doc, err
}

func isRSS(doc *xmlquery.Node) bool {
	return xmlquery.FindOne(doc, "/rss/channel") != nil
}

func isRDF(doc *xmlquery.Node) bool {
	return xmlquery.FindOne(doc, "/rdf:RDF") != nil
}

func isAtom(doc *xmlquery.Node) bool {
	feed := xmlquery.FindOne(doc, "/feed")
	return feed != nil && feed.NamespaceURI == "http://www.w3.org/2005/Atom"
}

func isFeed(doc *xmlquery.Node) bool {
	return isRSS(doc) || isRDF(doc) || isAtom(doc)
}

var rssItemFields = []string{"title", "description", "pubDate", "dc:date"}
var atomEntryFields = []string{"title", "summary", "content", "published", "updated"}

func feedText(content string, expr *xpath.Expr) (string, error) {
	doc, err := parseXML(content)
	if err != nil {
		return "", oops.Wrap(err)
	}

	var entries [][]string
	switch {
	case expr != nil:
		for _, node := range xmlquery.QuerySelectorAll(doc, expr) {
			entries = append(entries, []string{fieldText(node)})
		}
	case isRSS(doc):
		for _, item := range xmlquery.Find(doc, "/rss/channel/item") {
			entries = append(entries, entryFields(item, rssItemFields))
		}
	case isRDF(doc):
		for _, item := range xmlquery.Find(doc, "/rdf:RDF//item") {
			entries = append(entries, entryFields(item, rssItemFields))
		}
	case isAtom(doc):
		for _, entry := range xmlquery.Find(doc, "/feed/entry") {
			entries = append(entries, entryFields(entry, atomEntryFields))
		}
	default:
		entries = append(entries, []string{strings.TrimSpace(doc.InnerText())})
	}

	var blocks []string
	for _, fields := range entries {
		var lines []string
		for _, field := range fields {
			if field != "" {
				lines = append(lines, field)
			}
		}
		if len(lines) > 0 {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}
	return strings.Join(blocks, "\n\n"), nil
}

func entryFields(entry *xmlquery.Node, names []string) []string {
	var fields []string
	for _, name := range names {
		for _, node := range xmlquery.Find(entry, name) {
			fields = append(fields, fieldText(node))
		}
	}
	return fields
}

// Feed descriptions often carry escaped HTML
func fieldText(node *xmlquery.Node) string {
	text := strings.TrimSpace(node.InnerText())
	if strings.Contains(text, "<") {
		if htmlContent, err := htmlText(text, nil); err == nil {
			return htmlContent
		}
	}
	return text
}
