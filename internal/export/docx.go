package export

import (
	"fmt"
	"io"

	"github.com/dgallion1/docstruct/internal/doctree"
	"github.com/dgallion1/docstruct/internal/refs"
	"github.com/fumiama/go-docx"
)

// DOCX writes the document as a .docx file. Headings map to the Word
// Heading1..Heading6 styles by depth, and references resolve to static text
// since Word performs no cross-referencing of its own here.
func DOCX(s *doctree.DocumentState, w io.Writer) error {
	doc := docx.New().WithDefaultTheme()

	if root := s.Nodes[s.RootID]; root != nil && root.Title != "" {
		doc.AddParagraph().Style("Title").AddText(root.Title)
	}

	walk(s, func(n *doctree.DocNode, depth int) {
		switch n.Kind {
		case doctree.KindTOC, doctree.KindPage:
			return
		case doctree.KindParagraph:
		default:
			if heading := headingText(n); heading != "" {
				level := depth + 1
				if level > 6 {
					level = 6
				}
				doc.AddParagraph().Style(fmt.Sprintf("Heading%d", level)).AddText(heading)
			}
		}
		if n.Content != "" {
			doc.AddParagraph().AddText(refs.ResolveContent(s, n.Content))
		}
	})

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}
