package doctree

import (
	"time"

	"github.com/google/uuid"
)

// Structural operations. Each one validates against the input state, then
// clones, mutates the clone, renumbers it and returns it. On failure the
// input state is returned untouched semantics-wise: no clone escapes.

// CreateNode appends a new leaf as the last child of parentID (the root when
// parentID is empty). The parent→child kind pairing is enforced here; see
// DESIGN.md for the rationale.
func CreateNode(s *DocumentState, parentID string, kind Kind) (*DocumentState, string, error) {
	if parentID == "" {
		parentID = s.RootID
	}
	parent, err := s.Node(parentID)
	if err != nil {
		return nil, "", err
	}
	if !ValidKind(kind) || kind == KindRoot {
		return nil, "", validationf("invalid node kind %q", kind)
	}
	if !CanContain(parent.Kind, kind) {
		return nil, "", validationf("a %s cannot contain a %s", parent.Kind, kind)
	}

	next := s.Clone()
	id := uuid.NewString()
	next.Nodes[id] = &DocNode{
		ID:       id,
		Kind:     kind,
		ParentID: parentID,
		Order:    len(next.Children(parentID)),
	}
	renumber(next)
	return next, id, nil
}

// DeleteNode removes the node and every transitive descendant, releasing any
// labels held by the deleted subtree. Deleting the root is rejected.
func DeleteNode(s *DocumentState, nodeID string) (*DocumentState, error) {
	node, err := s.Node(nodeID)
	if err != nil {
		return nil, err
	}
	if nodeID == s.RootID {
		return nil, validationf("cannot delete the root node")
	}

	next := s.Clone()
	doomed := subtreeIDs(next, nodeID)
	for _, id := range doomed {
		if label := next.Nodes[id].Label; label != "" {
			delete(next.Labels, label)
		}
		delete(next.Nodes, id)
	}
	resequence(next, node.ParentID)
	renumber(next)
	return next, nil
}

// MoveNode reparents the node and slots it at newOrder among the new
// siblings, keeping sibling order contiguous. Moving a node under itself or
// one of its descendants fails with CycleError.
func MoveNode(s *DocumentState, nodeID, newParentID string, newOrder int) (*DocumentState, error) {
	node, err := s.Node(nodeID)
	if err != nil {
		return nil, err
	}
	if nodeID == s.RootID {
		return nil, validationf("cannot move the root node")
	}
	if newParentID == "" {
		newParentID = s.RootID
	}
	newParent, err := s.Node(newParentID)
	if err != nil {
		return nil, err
	}
	if newParentID == nodeID || isDescendant(s, nodeID, newParentID) {
		return nil, &CycleError{NodeID: nodeID, NewParentID: newParentID}
	}
	if !CanContain(newParent.Kind, node.Kind) {
		return nil, validationf("a %s cannot contain a %s", newParent.Kind, node.Kind)
	}

	next := s.Clone()
	moved := next.Nodes[nodeID]
	oldParentID := moved.ParentID
	moved.ParentID = newParentID

	// Remove from the sibling set, insert at the clamped slot, reassign orders.
	var rest []*DocNode
	for _, sib := range next.Children(newParentID) {
		if sib.ID != moved.ID {
			rest = append(rest, sib)
		}
	}
	if newOrder < 0 {
		newOrder = 0
	}
	if newOrder > len(rest) {
		newOrder = len(rest)
	}
	ordered := make([]*DocNode, 0, len(rest)+1)
	ordered = append(ordered, rest[:newOrder]...)
	ordered = append(ordered, moved)
	ordered = append(ordered, rest[newOrder:]...)
	for i, sib := range ordered {
		sib.Order = i
	}
	if oldParentID != newParentID {
		resequence(next, oldParentID)
	}
	renumber(next)
	return next, nil
}

// PromoteNode shifts the node's kind one level up the hierarchy
// (section → chapter), content preserved. Promoting a part fails.
func PromoteNode(s *DocumentState, nodeID string) (*DocumentState, error) {
	return shiftKind(s, nodeID, promoteTo, "promoted")
}

// DemoteNode shifts the node's kind one level down (chapter → section).
// Demoting a paragraph fails.
func DemoteNode(s *DocumentState, nodeID string) (*DocumentState, error) {
	return shiftKind(s, nodeID, demoteTo, "demoted")
}

func shiftKind(s *DocumentState, nodeID string, table map[Kind]Kind, verb string) (*DocumentState, error) {
	node, err := s.Node(nodeID)
	if err != nil {
		return nil, err
	}
	target, ok := table[node.Kind]
	if !ok {
		return nil, validationf("a %s cannot be %s", node.Kind, verb)
	}
	next := s.Clone()
	next.Nodes[nodeID].Kind = target
	renumber(next)
	return next, nil
}

// NodeUpdate carries optional field updates; nil pointers leave the field as is.
type NodeUpdate struct {
	Title    *string
	Content  *string
	Numbered *bool
	Meta     map[string]any
}

// UpdateNode applies field updates to a single node.
func UpdateNode(s *DocumentState, nodeID string, upd NodeUpdate) (*DocumentState, error) {
	if _, err := s.Node(nodeID); err != nil {
		return nil, err
	}
	next := s.Clone()
	node := next.Nodes[nodeID]
	if upd.Title != nil {
		node.Title = *upd.Title
	}
	if upd.Content != nil {
		node.Content = *upd.Content
	}
	if upd.Numbered != nil {
		v := *upd.Numbered
		node.Numbered = &v
	}
	if upd.Meta != nil {
		node.Meta = upd.Meta
	}
	renumber(next)
	return next, nil
}

// SetLabel binds a globally unique label to the node, or clears the node's
// label when label is empty. Binding a label already held by another node
// fails with ValidationError.
func SetLabel(s *DocumentState, nodeID, label string) (*DocumentState, error) {
	if _, err := s.Node(nodeID); err != nil {
		return nil, err
	}
	if label != "" {
		if holder, ok := s.Labels[label]; ok && holder != nodeID {
			return nil, validationf("label %q is already bound to node %s", label, holder)
		}
	}

	next := s.Clone()
	node := next.Nodes[nodeID]
	if node.Label != "" {
		delete(next.Labels, node.Label)
	}
	node.Label = label
	if label != "" {
		next.Labels[label] = nodeID
	}
	return next, nil
}

// SaveVersion appends a version entry to the history and returns it.
func SaveVersion(s *DocumentState, note string) (*DocumentState, Version) {
	next := s.Clone()
	v := Version{ID: uuid.NewString(), CreatedAt: time.Now().UTC(), Note: note}
	next.Versions = append(next.Versions, v)
	return next, v
}

// subtreeIDs returns nodeID and all transitive descendants.
func subtreeIDs(s *DocumentState, nodeID string) []string {
	out := []string{nodeID}
	for i := 0; i < len(out); i++ {
		for _, child := range s.Children(out[i]) {
			out = append(out, child.ID)
		}
	}
	return out
}

// isDescendant reports whether id lies strictly below ancestorID.
func isDescendant(s *DocumentState, ancestorID, id string) bool {
	for cur := s.Nodes[id]; cur != nil && cur.ParentID != ""; cur = s.Nodes[cur.ParentID] {
		if cur.ParentID == ancestorID {
			return true
		}
	}
	return false
}

// resequence rewrites sibling order values to 0..n-1 in document order.
func resequence(s *DocumentState, parentID string) {
	for i, child := range s.Children(parentID) {
		child.Order = i
	}
}
