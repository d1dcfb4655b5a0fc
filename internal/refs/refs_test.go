package refs

import (
	"strings"
	"testing"

	"github.com/dgallion1/docstruct/internal/doctree"
)

// labeledSection builds a document where a section numbered 2.3 carries the
// label "my-section".
func labeledSection(t *testing.T) (*doctree.DocumentState, string) {
	t.Helper()
	s := doctree.New("book")
	s, _, err := doctree.CreateNode(s, "", doctree.KindChapter)
	if err != nil {
		t.Fatalf("CreateNode: %v", err)
	}
	s, ch2, err := doctree.CreateNode(s, "", doctree.KindChapter)
	if err != nil {
		t.Fatalf("CreateNode: %v", err)
	}
	var target string
	for i := 0; i < 3; i++ {
		s, target, err = doctree.CreateNode(s, ch2, doctree.KindSection)
		if err != nil {
			t.Fatalf("CreateNode: %v", err)
		}
	}
	s, err = doctree.SetLabel(s, target, "my-section")
	if err != nil {
		t.Fatalf("SetLabel: %v", err)
	}
	if got := s.Nodes[target].Number; got != "2.3" {
		t.Fatalf("fixture broken: section number %q, want %q", got, "2.3")
	}
	return s, target
}

func TestScan_AllSyntaxes(t *testing.T) {
	content := `See \ref{alpha} and [ref:beta] and also {{ref:gamma}}.`
	markers := Scan(content)
	if len(markers) != 3 {
		t.Fatalf("expected 3 markers, got %d: %+v", len(markers), markers)
	}
	wantLabels := []string{"alpha", "beta", "gamma"}
	for i, m := range markers {
		if m.Label != wantLabels[i] {
			t.Errorf("marker %d: expected label %q, got %q", i, wantLabels[i], m.Label)
		}
		if content[m.Start:m.End] == "" || !strings.Contains(content[m.Start:m.End], m.Label) {
			t.Errorf("marker %d: offsets [%d,%d) do not cover the marker", i, m.Start, m.End)
		}
	}
}

func TestScan_IgnoresMalformedMarkers(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unterminated ref", `\ref{never closed`},
		{"unterminated bracket", `[ref:dangling`},
		{"unterminated braces", `{{ref:open}`},
		{"empty label", `\ref{} and [ref:] and {{ref:}}`},
		{"newline in label", "[ref:split\nlabel]"},
		{"plain text", "no markers here, just {braces} and [brackets]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if markers := Scan(tt.content); len(markers) != 0 {
				t.Errorf("expected no markers, got %+v", markers)
			}
		})
	}
}

func TestScan_AdjacentMarkers(t *testing.T) {
	markers := Scan(`[ref:a][ref:b]`)
	if len(markers) != 2 {
		t.Fatalf("expected 2 markers, got %d", len(markers))
	}
	if markers[0].Label != "a" || markers[1].Label != "b" {
		t.Errorf("unexpected labels: %+v", markers)
	}
}

func TestFindByLabel(t *testing.T) {
	s, target := labeledSection(t)
	if n := FindByLabel(s, "my-section"); n == nil || n.ID != target {
		t.Errorf("FindByLabel returned %+v, want node %s", n, target)
	}
	if n := FindByLabel(s, "nope"); n != nil {
		t.Errorf("expected nil for unbound label, got %+v", n)
	}
}

func TestFormatReferenceText_NumberedSection(t *testing.T) {
	s, target := labeledSection(t)
	got := FormatReferenceText(s, target)
	if got != "Section 2.3" {
		t.Errorf("expected %q, got %q", "Section 2.3", got)
	}
}

func TestFormatReferenceText_ParagraphUsesCitableAncestor(t *testing.T) {
	s, section := labeledSection(t)
	s, para, err := doctree.CreateNode(s, section, doctree.KindParagraph)
	if err != nil {
		t.Fatalf("CreateNode: %v", err)
	}
	// Paragraphs are not citable; the enclosing section anchors the text.
	if got := FormatReferenceText(s, para); got != "Section 2.3" {
		t.Errorf("expected %q, got %q", "Section 2.3", got)
	}
}

func TestFormatReferenceText_UnnumberedFallsBackToTitle(t *testing.T) {
	s, target := labeledSection(t)
	title := "Afterword"
	numbered := false
	s, err := doctree.UpdateNode(s, target, doctree.NodeUpdate{Title: &title, Numbered: &numbered})
	if err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}
	if got := FormatReferenceText(s, target); got != "Afterword" {
		t.Errorf("expected title fallback %q, got %q", "Afterword", got)
	}
}

func TestFormatReferenceText_Placeholder(t *testing.T) {
	s := doctree.New("book")
	if got := FormatReferenceText(s, "missing"); got != Placeholder {
		t.Errorf("expected placeholder for unknown node, got %q", got)
	}
}

func TestResolveContent_AllThreeSyntaxes(t *testing.T) {
	s, _ := labeledSection(t)
	for _, content := range []string{
		`As shown in \ref{my-section}, the effect holds.`,
		`As shown in [ref:my-section], the effect holds.`,
		`As shown in {{ref:my-section}}, the effect holds.`,
	} {
		got := ResolveContent(s, content)
		if !strings.Contains(got, "Section") || !strings.Contains(got, "2.3") {
			t.Errorf("resolved %q to %q, want Section and 2.3 present", content, got)
		}
		if strings.Contains(got, "ref") {
			t.Errorf("marker survived resolution: %q", got)
		}
	}
}

func TestResolveContent_UnresolvedLabel(t *testing.T) {
	s := doctree.New("book")
	got := ResolveContent(s, `see [ref:ghost]`)
	if got != "see [unresolved: ghost]" {
		t.Errorf("expected unresolved marker text, got %q", got)
	}
}

func TestResolveContent_SinglePassNoExpansion(t *testing.T) {
	s := doctree.New("book")
	s, chapter, err := doctree.CreateNode(s, "", doctree.KindChapter)
	if err != nil {
		t.Fatalf("CreateNode: %v", err)
	}
	s, para, err := doctree.CreateNode(s, chapter, doctree.KindParagraph)
	if err != nil {
		t.Fatalf("CreateNode: %v", err)
	}
	// The target's display text itself contains marker syntax. It must be
	// emitted literally, not re-scanned.
	title := "see [ref:self]"
	numbered := false
	s, err = doctree.UpdateNode(s, chapter, doctree.NodeUpdate{Title: &title, Numbered: &numbered})
	if err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}
	s, err = doctree.SetLabel(s, para, "self")
	if err != nil {
		t.Fatalf("SetLabel: %v", err)
	}

	got := ResolveContent(s, `[ref:self]`)
	if got != "see [ref:self]" {
		t.Errorf("expected single-pass literal output, got %q", got)
	}
}

func TestResolveContent_PreservesSurroundingText(t *testing.T) {
	s, _ := labeledSection(t)
	got := ResolveContent(s, `before [ref:my-section] after`)
	if !strings.HasPrefix(got, "before ") || !strings.HasSuffix(got, " after") {
		t.Errorf("surrounding text mangled: %q", got)
	}
}
