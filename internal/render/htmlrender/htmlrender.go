// Package htmlrender serializes a page node tree and its style sheet into an
// HTML document.
package htmlrender

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alexisbeaulieu97/pageshell/internal/style"
	"github.com/alexisbeaulieu97/pageshell/internal/ui"
)

// RootID is the id of the element the sections are mounted under.
const RootID = "root"

// Page describes one HTML document.
type Page struct {
	Title string
	Sheet *style.Sheet
	Body  []ui.Node
	// StylesheetHref links an external stylesheet instead of inlining the
	// sheet's CSS in a <style> element.
	StylesheetHref string
	Lang           string
}

// Render writes page as a complete HTML document.
func Render(w io.Writer, page Page) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	root := element(atom.Html, html.Attribute{Key: "lang", Val: lang})
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(element(atom.Meta,
		html.Attribute{Key: "name", Val: "viewport"},
		html.Attribute{Key: "content", Val: "width=device-width, initial-scale=1"},
	))
	title := element(atom.Title)
	title.AppendChild(&html.Node{Type: html.TextNode, Data: page.Title})
	head.AppendChild(title)

	switch {
	case page.StylesheetHref != "":
		head.AppendChild(element(atom.Link,
			html.Attribute{Key: "rel", Val: "stylesheet"},
			html.Attribute{Key: "href", Val: page.StylesheetHref},
		))
	case page.Sheet != nil:
		styleEl := element(atom.Style)
		styleEl.AppendChild(&html.Node{Type: html.TextNode, Data: "\n" + page.Sheet.CSS()})
		head.AppendChild(styleEl)
	}
	root.AppendChild(head)

	body := element(atom.Body)
	mount := element(atom.Div, html.Attribute{Key: "id", Val: RootID})
	for _, n := range page.Body {
		if converted := convert(n); converted != nil {
			mount.AppendChild(converted)
		}
	}
	body.AppendChild(mount)
	root.AppendChild(body)

	if err := html.Render(w, doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Fragment writes nodes as HTML without a surrounding document.
func Fragment(w io.Writer, nodes ...ui.Node) error {
	for _, n := range nodes {
		converted := convert(n)
		if converted == nil {
			continue
		}
		if err := html.Render(w, converted); err != nil {
			return err
		}
	}
	return nil
}

// String renders page and returns the document as a string.
func String(page Page) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func convert(n ui.Node) *html.Node {
	switch v := n.(type) {
	case ui.Text:
		return &html.Node{Type: html.TextNode, Data: string(v)}
	case *ui.Element:
		if v == nil {
			return nil
		}
		tag := v.Tag
		if tag == "" {
			tag = "div"
		}
		out := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Lookup([]byte(tag)),
			Data:     tag,
		}
		if v.Class != "" {
			out.Attr = append(out.Attr, html.Attribute{Key: "class", Val: v.Class})
		}
		for _, child := range v.Children {
			if c := convert(child); c != nil {
				out.AppendChild(c)
			}
		}
		return out
	default:
		return nil
	}
}
