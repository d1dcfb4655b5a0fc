// Package refs resolves in-content cross-reference markers against a
// document snapshot. Resolution is a read-only projection: nothing here
// mutates DocumentState.
package refs

import (
	"strings"

	"github.com/dgallion1/docstruct/internal/doctree"
)

// Placeholder is emitted when a reference target has neither a citable
// ancestor nor a usable title.
const Placeholder = "(unresolved reference)"

// Marker is one reference occurrence found in free text. Start and End are
// byte offsets of the whole marker, label excluded from neither.
type Marker struct {
	Label string
	Start int
	End   int
}

// Scan extracts every reference marker from content in a single linear pass.
// Three syntaxes are recognized: \ref{label}, [ref:label] and {{ref:label}}.
// A hand-written scanner is used instead of regexp so scanning stays linear
// on adversarial input.
func Scan(content string) []Marker {
	var out []Marker
	for i := 0; i < len(content); {
		m, ok := matchAt(content, i)
		if !ok {
			i++
			continue
		}
		out = append(out, m)
		i = m.End
	}
	return out
}

func matchAt(content string, i int) (Marker, bool) {
	rest := content[i:]
	switch {
	case strings.HasPrefix(rest, `\ref{`):
		return closeMarker(content, i, len(`\ref{`), "}")
	case strings.HasPrefix(rest, "{{ref:"):
		return closeMarker(content, i, len("{{ref:"), "}}")
	case strings.HasPrefix(rest, "[ref:"):
		return closeMarker(content, i, len("[ref:"), "]")
	}
	return Marker{}, false
}

// closeMarker finds the terminator and cuts out the label. An unterminated
// or empty marker is not a marker at all.
func closeMarker(content string, start, openLen int, closer string) (Marker, bool) {
	labelStart := start + openLen
	rel := strings.Index(content[labelStart:], closer)
	if rel <= 0 {
		return Marker{}, false
	}
	label := content[labelStart : labelStart+rel]
	if strings.ContainsAny(label, "\n{}[]") {
		return Marker{}, false
	}
	return Marker{
		Label: label,
		Start: start,
		End:   labelStart + rel + len(closer),
	}, true
}

// FindByLabel returns the node bound to label, or nil when unbound.
func FindByLabel(s *doctree.DocumentState, label string) *doctree.DocNode {
	id, ok := s.Labels[label]
	if !ok {
		return nil
	}
	return s.Nodes[id]
}

// FormatReferenceText renders the display text for a reference to nodeID.
// The nearest citable ancestor-or-self (part, chapter or section) anchors
// the text: "<Kind> <number>" when numbered, its title otherwise. Without a
// citable anchor the node's own title is used, then a generic placeholder.
func FormatReferenceText(s *doctree.DocumentState, nodeID string) string {
	node, ok := s.Nodes[nodeID]
	if !ok {
		return Placeholder
	}
	for cur := node; cur != nil; cur = s.Nodes[cur.ParentID] {
		if !doctree.Citable(cur.Kind) {
			if cur.ID == s.RootID {
				break
			}
			continue
		}
		if cur.Number != "" {
			return cur.Kind.Display() + " " + cur.Number
		}
		if cur.Title != "" {
			return cur.Title
		}
		break
	}
	if node.Title != "" {
		return node.Title
	}
	return Placeholder
}

// ResolveContent replaces every recognized marker with its resolved display
// text in one non-recursive pass: resolved text is never re-scanned, so a
// title containing marker syntax cannot expand unboundedly. Markers whose
// label is unbound resolve to "[unresolved: <label>]".
func ResolveContent(s *doctree.DocumentState, content string) string {
	markers := Scan(content)
	if len(markers) == 0 {
		return content
	}
	var b strings.Builder
	last := 0
	for _, m := range markers {
		b.WriteString(content[last:m.Start])
		if id, ok := s.Labels[m.Label]; ok {
			b.WriteString(FormatReferenceText(s, id))
		} else {
			b.WriteString("[unresolved: " + m.Label + "]")
		}
		last = m.End
	}
	b.WriteString(content[last:])
	return b.String()
}
