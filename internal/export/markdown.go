package export

import (
	"strings"

	"github.com/dgallion1/docstruct/internal/doctree"
	"github.com/dgallion1/docstruct/internal/refs"
)

// Markdown renders the document as Markdown. Heading level is min(depth+1, 6)
// hash marks; each heading carries an HTML anchor derived from the label or a
// slugified title, and body content has references resolved to static text.
func Markdown(s *doctree.DocumentState) string {
	var b strings.Builder

	walk(s, func(n *doctree.DocNode, depth int) {
		switch n.Kind {
		case doctree.KindTOC:
			return
		case doctree.KindPage:
			b.WriteString("---\n\n")
			return
		case doctree.KindParagraph:
			// Paragraphs are body text, not headings.
		default:
			if heading := headingText(n); heading != "" {
				level := depth + 1
				if level > 6 {
					level = 6
				}
				// Anchors ride inline on the heading line: a standalone
				// HTML line would open an HTML block and swallow the heading.
				if anchor := anchorFor(n); anchor != "" {
					heading += ` <a id="` + anchor + `"></a>`
				}
				b.WriteString(strings.Repeat("#", level) + " " + heading + "\n\n")
			}
		}
		if n.Content != "" {
			b.WriteString(refs.ResolveContent(s, n.Content) + "\n\n")
		}
	})

	return strings.TrimRight(b.String(), "\n") + "\n"
}
