// Package doctree implements the manuscript structure engine: a typed
// document tree with derived auto-numbering and a label registry for
// cross-references. Every operation is a pure state transition — the input
// DocumentState is never mutated, and a fresh, fully renumbered snapshot is
// returned on success.
package doctree

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Scheme selects how numbers are derived for a kind.
type Scheme string

const (
	SchemeNone   Scheme = "none"
	SchemeRoman  Scheme = "roman"
	SchemeArabic Scheme = "arabic"
	SchemeDotted Scheme = "dotted"
)

// Settings holds document-wide rendering and numbering configuration.
type Settings struct {
	Numbering map[Kind]Scheme `json:"numbering"`
	PageMode  string          `json:"pageMode,omitempty"`
}

// Version is one entry in the document's version history. The engine only
// carries the list; loading and saving belong to the persistence collaborator.
type Version struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Note      string    `json:"note,omitempty"`
}

// DocNode is one node in the structure tree.
type DocNode struct {
	ID       string         `json:"id"`
	Kind     Kind           `json:"kind"`
	ParentID string         `json:"parentId,omitempty"` // empty only for the root
	Order    int            `json:"order"`              // contiguous among siblings
	Title    string         `json:"title,omitempty"`
	Content  string         `json:"content,omitempty"`
	Label    string         `json:"label,omitempty"`
	Numbered *bool          `json:"numbered,omitempty"` // nil means true
	Number   string         `json:"number,omitempty"`   // derived, never authoritative
	Meta     map[string]any `json:"meta,omitempty"`
}

// IsNumbered reports whether the node participates in numbering.
func (n *DocNode) IsNumbered() bool {
	return n.Numbered == nil || *n.Numbered
}

// DocumentState is a full structured-document snapshot.
type DocumentState struct {
	RootID   string              `json:"rootId"`
	Nodes    map[string]*DocNode `json:"nodes"`
	Settings Settings            `json:"settings"`
	Labels   map[string]string   `json:"labels"`
	Versions []Version           `json:"versions"`
}

// DefaultNumbering is the scheme table for a book-shaped manuscript:
// roman parts, arabic chapters, dotted everything below.
func DefaultNumbering() map[Kind]Scheme {
	return map[Kind]Scheme{
		KindPart:          SchemeRoman,
		KindChapter:       SchemeArabic,
		KindSection:       SchemeDotted,
		KindSubsection:    SchemeDotted,
		KindSubsubsection: SchemeDotted,
		KindParagraph:     SchemeNone,
	}
}

// New creates an empty document containing only a root node.
func New(title string) *DocumentState {
	rootID := uuid.NewString()
	return &DocumentState{
		RootID: rootID,
		Nodes: map[string]*DocNode{
			rootID: {ID: rootID, Kind: KindRoot, Title: title},
		},
		Settings: Settings{Numbering: DefaultNumbering()},
		Labels:   map[string]string{},
		Versions: []Version{},
	}
}

// Node returns the node with the given id.
func (s *DocumentState) Node(id string) (*DocNode, error) {
	n, ok := s.Nodes[id]
	if !ok {
		return nil, &NotFoundError{What: "node", ID: id}
	}
	return n, nil
}

// Children returns the direct children of parentID in document order.
func (s *DocumentState) Children(parentID string) []*DocNode {
	var out []*DocNode
	for _, n := range s.Nodes {
		if n.ID != s.RootID && n.ParentID == parentID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Depth returns the number of ancestors between the node and the root:
// a direct child of the root has depth 0. The root itself has depth -1.
func (s *DocumentState) Depth(id string) int {
	depth := -1
	for cur := s.Nodes[id]; cur != nil && cur.ID != s.RootID; cur = s.Nodes[cur.ParentID] {
		depth++
	}
	return depth
}
