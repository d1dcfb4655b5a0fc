package doctree

// Validate checks referential integrity and reports the first problem found
// as an ImportError. It never repairs: broken state is rejected, not patched.
func (s *DocumentState) Validate() error {
	if s.RootID == "" {
		return importf("rootId is empty")
	}
	root, ok := s.Nodes[s.RootID]
	if !ok {
		return importf("rootId %q does not resolve to a node", s.RootID)
	}
	if root.Kind != KindRoot {
		return importf("root node %s has kind %q, want %q", root.ID, root.Kind, KindRoot)
	}
	if root.ParentID != "" {
		return importf("root node %s has a parent", root.ID)
	}

	for id, n := range s.Nodes {
		if n == nil {
			return importf("node entry %q is null", id)
		}
		if n.ID != id {
			return importf("node key %q does not match node id %q", id, n.ID)
		}
		if !ValidKind(n.Kind) {
			return importf("node %s has unknown kind %q", id, n.Kind)
		}
		if id == s.RootID {
			continue
		}
		if n.ParentID == "" {
			return importf("node %s has no parent but is not the root", id)
		}
		if _, ok := s.Nodes[n.ParentID]; !ok {
			return importf("node %s references missing parent %q", id, n.ParentID)
		}
		if n.Label != "" && s.Labels[n.Label] != id {
			return importf("node %s holds label %q that is not registered to it", id, n.Label)
		}
	}

	for label, target := range s.Labels {
		n, ok := s.Nodes[target]
		if !ok {
			return importf("label %q references missing node %q", label, target)
		}
		if n.Label != label {
			return importf("label %q is registered to node %s, which holds %q", label, target, n.Label)
		}
	}

	// Every parent chain must reach the root; a chain longer than the node
	// count means a cycle among parent pointers.
	for id, n := range s.Nodes {
		steps := 0
		for cur := n; cur.ID != s.RootID; cur = s.Nodes[cur.ParentID] {
			steps++
			if steps > len(s.Nodes) {
				return importf("node %s has a cyclic parent chain", id)
			}
		}
	}

	// Sibling order must be contiguous and unique: 0..n-1 per parent.
	for id := range s.Nodes {
		children := s.Children(id)
		for i, child := range children {
			if child.Order != i {
				return importf("children of %s have non-contiguous order (node %s has order %d, want %d)",
					id, child.ID, child.Order, i)
			}
		}
	}

	return nil
}
