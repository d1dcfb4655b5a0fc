package export

import (
	"strings"

	"github.com/dgallion1/docstruct/internal/doctree"
	"github.com/dgallion1/docstruct/internal/refs"
)

// PlainText renders the document as indented text: two spaces per level
// substitute for heading markup, and references resolve to static text.
func PlainText(s *doctree.DocumentState) string {
	var b strings.Builder

	walk(s, func(n *doctree.DocNode, depth int) {
		indent := strings.Repeat("  ", depth)
		switch n.Kind {
		case doctree.KindTOC:
			return
		case doctree.KindPage:
			b.WriteString(indent + "----------\n\n")
			return
		case doctree.KindParagraph:
		default:
			if heading := headingText(n); heading != "" {
				b.WriteString(indent + heading + "\n\n")
			}
		}
		if n.Content != "" {
			resolved := refs.ResolveContent(s, n.Content)
			for _, line := range strings.Split(resolved, "\n") {
				b.WriteString(indent + line + "\n")
			}
			b.WriteString("\n")
		}
	})

	return strings.TrimRight(b.String(), "\n") + "\n"
}
