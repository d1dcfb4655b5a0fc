package doctree

// Clone deep-copies the state. Operations clone first and mutate the copy,
// so callers holding older snapshots keep a consistent view.
func (s *DocumentState) Clone() *DocumentState {
	out := &DocumentState{
		RootID: s.RootID,
		Nodes:  make(map[string]*DocNode, len(s.Nodes)),
		Settings: Settings{
			Numbering: make(map[Kind]Scheme, len(s.Settings.Numbering)),
			PageMode:  s.Settings.PageMode,
		},
		Labels: make(map[string]string, len(s.Labels)),
	}
	for id, n := range s.Nodes {
		out.Nodes[id] = n.clone()
	}
	for k, v := range s.Settings.Numbering {
		out.Settings.Numbering[k] = v
	}
	for label, id := range s.Labels {
		out.Labels[label] = id
	}
	if s.Versions != nil {
		out.Versions = make([]Version, len(s.Versions))
		copy(out.Versions, s.Versions)
	}
	return out
}

func (n *DocNode) clone() *DocNode {
	c := *n
	if n.Numbered != nil {
		v := *n.Numbered
		c.Numbered = &v
	}
	if n.Meta != nil {
		c.Meta = make(map[string]any, len(n.Meta))
		for k, v := range n.Meta {
			c.Meta[k] = v
		}
	}
	return &c
}
