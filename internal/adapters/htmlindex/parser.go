// Package htmlindex extracts folder and file references from the HTML
// directory-index pages served by the media hosts.
package htmlindex

import (
	"bytes"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"go.trai.ch/webls/internal/core/domain"
	"go.trai.ch/webls/internal/core/ports"
)

// nameCellClass marks the table cells holding entry names in the index
// layout the hosts serve.
const nameCellClass = "fb-n"

// Parser implements ports.Parser.
type Parser struct{}

// NewParser creates a directory-index parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse implements ports.Parser.
func (*Parser) Parse(baseURL string, body []byte) ([]domain.FolderRef, []domain.FileRef) {
	return Parse(baseURL, body)
}

var _ ports.Parser = (*Parser)(nil)

// Parse extracts the folder and file references a directory-index page
// links to. A synthetic ".." parent entry always comes first in the
// folder sequence. Malformed or unexpected markup degrades to empty
// results; Parse never fails.
func Parse(baseURL string, body []byte) ([]domain.FolderRef, []domain.FileRef) {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	folders := []domain.FolderRef{{Name: "..", URL: resolve(base, "..")}}
	files := []domain.FileRef{}

	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		// The tokenizer recovers from almost anything; a hard parse
		// failure means no usable structure at all.
		return folders, files
	}

	walk(root, func(n *html.Node) {
		if !isNameCell(n) {
			return
		}
		walk(n, func(a *html.Node) {
			if a.Type != html.ElementNode || a.DataAtom != atom.A {
				return
			}
			href, ok := attr(a, "href")
			if !ok {
				return
			}
			// The parent entry is synthesized above.
			if strings.HasPrefix(href, "..") {
				return
			}

			ref := resolve(base, href)
			if strings.HasSuffix(href, "/") {
				folders = append(folders, domain.FolderRef{Name: text(a), URL: ref})
			} else {
				files = append(files, domain.FileRef{Name: text(a), URL: ref})
			}
		})
	})

	return folders, files
}

// walk visits n and every descendant in document order.
func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, visit)
	}
}

func isNameCell(n *html.Node) bool {
	if n.Type != html.ElementNode || n.DataAtom != atom.Td {
		return false
	}
	class, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(class) {
		if c == nameCellClass {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// text concatenates the text nodes under n in document order.
func text(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}

// resolve applies standard base+relative URL resolution. An href that
// cannot be parsed, or a missing base, passes through unchanged.
func resolve(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	if base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}
