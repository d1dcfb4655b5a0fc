// Package export renders a DocumentState to its textual wire formats. All
// renderers traverse depth-first, pre-order, from the root's children, and
// degrade on missing titles or content instead of failing: losing valid
// structure to a formatting edge case is unacceptable.
package export

import (
	"strings"

	"github.com/dgallion1/docstruct/internal/doctree"
)

// walk visits every node below the root in depth-first pre-order, with the
// node's depth (root children at 0).
func walk(s *doctree.DocumentState, visit func(n *doctree.DocNode, depth int)) {
	var rec func(parentID string, depth int)
	rec = func(parentID string, depth int) {
		for _, child := range s.Children(parentID) {
			visit(child, depth)
			rec(child.ID, depth+1)
		}
	}
	rec(s.RootID, 0)
}

// headingText joins the derived number and title, either may be absent.
func headingText(n *doctree.DocNode) string {
	switch {
	case n.Number != "" && n.Title != "":
		return n.Number + " " + n.Title
	case n.Number != "":
		return n.Number
	default:
		return n.Title
	}
}

// anchorFor derives a stable anchor from the label, falling back to a
// slugified title.
func anchorFor(n *doctree.DocNode) string {
	if n.Label != "" {
		return n.Label
	}
	return slugify(n.Title)
}

func slugify(title string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// hasRootTOC reports whether a toc node sits directly under the root.
func hasRootTOC(s *doctree.DocumentState) bool {
	for _, child := range s.Children(s.RootID) {
		if child.Kind == doctree.KindTOC {
			return true
		}
	}
	return false
}
