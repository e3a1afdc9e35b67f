package render

import (
	"fmt"
	"io"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/iw2rmb/leaflet/document"
)

// HTML returns doc as a <div> element holding one element per block.
func HTML(doc *document.Document) *html.Node {
	root := element("div", "")
	for _, c := range doc.Children {
		root.AppendChild(nodeHTML(c))
	}
	return root
}

func nodeHTML(n document.Node) *html.Node {
	s := Project(n)
	el := element(s.Tag, s.Class)

	if t, ok := n.(*document.Text); ok {
		var inner *html.Node
		if t.Text != "" {
			inner = &html.Node{Type: html.TextNode, Data: t.Text}
		}
		if s.Strong {
			inner = wrap(element("strong", ""), inner)
		}
		if s.Emphasis {
			inner = wrap(element("em", ""), inner)
		}
		if inner != nil {
			el.AppendChild(inner)
		}
		return el
	}

	for _, c := range document.Children(n) {
		el.AppendChild(nodeHTML(c))
	}
	return el
}

func element(tag, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func wrap(parent, child *html.Node) *html.Node {
	if child != nil {
		parent.AppendChild(child)
	}
	return parent
}

// WriteHTML writes the blocks of doc as an HTML fragment.
func WriteHTML(w io.Writer, doc *document.Document) error {
	for c := HTML(doc).FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
	}
	return nil
}

// Markdown converts doc to Markdown through its HTML form.
func Markdown(doc *document.Document) (string, error) {
	out, err := htmltomarkdown.ConvertNode(HTML(doc))
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
