package export

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dgallion1/docstruct/internal/doctree"
)

// buildBook assembles a small manuscript used across the export tests:
// a toc, a part with one chapter, and two sections under that chapter, the
// second labeled and referenced from the chapter body.
func buildBook(t *testing.T) *doctree.DocumentState {
	t.Helper()
	s := doctree.New("The Study")

	s, _, err := doctree.CreateNode(s, "", doctree.KindTOC)
	if err != nil {
		t.Fatalf("CreateNode toc: %v", err)
	}
	s, part, err := doctree.CreateNode(s, "", doctree.KindPart)
	if err != nil {
		t.Fatalf("CreateNode part: %v", err)
	}
	s = updateNode(t, s, part, "Foundations", "")

	s, chapter, err := doctree.CreateNode(s, part, doctree.KindChapter)
	if err != nil {
		t.Fatalf("CreateNode chapter: %v", err)
	}
	s = updateNode(t, s, chapter, "Origins", `The method appears in [ref:sec-methods].`)

	s, sec1, err := doctree.CreateNode(s, chapter, doctree.KindSection)
	if err != nil {
		t.Fatalf("CreateNode section: %v", err)
	}
	s = updateNode(t, s, sec1, "Background", "Prior work.")

	s, sec2, err := doctree.CreateNode(s, chapter, doctree.KindSection)
	if err != nil {
		t.Fatalf("CreateNode section: %v", err)
	}
	s = updateNode(t, s, sec2, "Methods", "We proceed carefully.")
	s, err = doctree.SetLabel(s, sec2, "sec-methods")
	if err != nil {
		t.Fatalf("SetLabel: %v", err)
	}

	s, _ = doctree.SaveVersion(s, "initial")
	return s
}

func updateNode(t *testing.T, s *doctree.DocumentState, id, title, content string) *doctree.DocumentState {
	t.Helper()
	next, err := doctree.UpdateNode(s, id, doctree.NodeUpdate{Title: &title, Content: &content})
	if err != nil {
		t.Fatalf("UpdateNode: %v", err)
	}
	return next
}

func TestJSONRoundTrip(t *testing.T) {
	s := buildBook(t)

	out, err := JSON(s)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	imported, err := Import([]byte(out))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if !reflect.DeepEqual(s, imported) {
		t.Errorf("round trip diverged:\nbefore: %+v\nafter:  %+v", s, imported)
	}
}

func TestImport_RecomputesNumbers(t *testing.T) {
	s := buildBook(t)
	out, err := JSON(s)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	// Tamper with a derived number; import must not trust it.
	tampered := strings.Replace(out, `"number": "I"`, `"number": "XIX"`, 1)
	imported, err := Import([]byte(tampered))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	for _, n := range imported.Nodes {
		if n.Number == "XIX" {
			t.Error("import trusted a hand-set number")
		}
	}
}

func TestImport_Failures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"rootId": `},
		{"empty rootId", `{"rootId":"","nodes":{},"labels":{}}`},
		{"dangling rootId", `{"rootId":"r","nodes":{},"labels":{}}`},
		{
			"dangling parent",
			`{"rootId":"r","nodes":{
				"r":{"id":"r","kind":"root"},
				"a":{"id":"a","kind":"chapter","parentId":"ghost","order":0}
			},"labels":{}}`,
		},
		{
			"dangling label target",
			`{"rootId":"r","nodes":{"r":{"id":"r","kind":"root"}},"labels":{"x":"ghost"}}`,
		},
		{
			"label registry mismatch",
			`{"rootId":"r","nodes":{
				"r":{"id":"r","kind":"root"},
				"a":{"id":"a","kind":"chapter","parentId":"r","order":0,"label":"mine"}
			},"labels":{}}`,
		},
		{
			"second root",
			`{"rootId":"r","nodes":{
				"r":{"id":"r","kind":"root"},
				"a":{"id":"a","kind":"chapter","order":0}
			},"labels":{}}`,
		},
		{
			"non-contiguous order",
			`{"rootId":"r","nodes":{
				"r":{"id":"r","kind":"root"},
				"a":{"id":"a","kind":"chapter","parentId":"r","order":0},
				"b":{"id":"b","kind":"chapter","parentId":"r","order":2}
			},"labels":{}}`,
		},
		{
			"unknown kind",
			`{"rootId":"r","nodes":{
				"r":{"id":"r","kind":"root"},
				"a":{"id":"a","kind":"appendix","parentId":"r","order":0}
			},"labels":{}}`,
		},
		{
			"parent cycle",
			`{"rootId":"r","nodes":{
				"r":{"id":"r","kind":"root"},
				"a":{"id":"a","kind":"chapter","parentId":"b","order":0},
				"b":{"id":"b","kind":"chapter","parentId":"a","order":0}
			},"labels":{}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Import([]byte(tt.body))
			var ie *doctree.ImportError
			if !errors.As(err, &ie) {
				t.Fatalf("expected ImportError, got %v", err)
			}
		})
	}
}
