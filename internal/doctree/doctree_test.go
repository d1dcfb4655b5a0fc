package doctree

import "testing"

func TestDepth(t *testing.T) {
	s := New("book")
	s, chapter := mustCreate(t, s, "", KindChapter)
	s, section := mustCreate(t, s, chapter, KindSection)

	if got := s.Depth(s.RootID); got != -1 {
		t.Errorf("root depth = %d, want -1", got)
	}
	if got := s.Depth(chapter); got != 0 {
		t.Errorf("chapter depth = %d, want 0", got)
	}
	if got := s.Depth(section); got != 1 {
		t.Errorf("section depth = %d, want 1", got)
	}
}

func TestKindDisplay(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPart, "Part"},
		{KindChapter, "Chapter"},
		{KindSection, "Section"},
		{Kind(""), ""},
	}
	for _, tt := range tests {
		if got := tt.kind.Display(); got != tt.want {
			t.Errorf("Display(%q) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestCanContain(t *testing.T) {
	tests := []struct {
		parent, child Kind
		want          bool
	}{
		{KindRoot, KindPart, true},
		{KindRoot, KindChapter, true},
		{KindPart, KindChapter, true},
		{KindChapter, KindSection, true},
		{KindChapter, KindParagraph, true},
		{KindSection, KindSubsection, true},
		{KindSubsection, KindSubsubsection, true},
		{KindSubsubsection, KindParagraph, true},
		{KindRoot, KindSection, false},
		{KindPart, KindSection, false},
		{KindParagraph, KindParagraph, false},
		{KindSection, KindChapter, false},
	}
	for _, tt := range tests {
		if got := CanContain(tt.parent, tt.child); got != tt.want {
			t.Errorf("CanContain(%s, %s) = %v, want %v", tt.parent, tt.child, got, tt.want)
		}
	}
}

func TestClone_Independent(t *testing.T) {
	s := New("book")
	s, chapter := mustCreate(t, s, "", KindChapter)
	s = mustSetLabel(t, s, chapter, "ch")

	c := s.Clone()
	c.Nodes[chapter].Title = "changed"
	c.Labels["extra"] = chapter
	if s.Nodes[chapter].Title == "changed" {
		t.Error("clone shares node structs with the original")
	}
	if _, ok := s.Labels["extra"]; ok {
		t.Error("clone shares the label map with the original")
	}
}
