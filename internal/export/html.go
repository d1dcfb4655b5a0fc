package export

import (
	"bytes"

	"github.com/dgallion1/docstruct/internal/doctree"
	"github.com/yuin/goldmark"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// HTML renders the document by passing the Markdown form through goldmark.
// Raw HTML is allowed so the per-heading anchors survive the conversion.
func HTML(s *doctree.DocumentState) (string, error) {
	md := goldmark.New(
		goldmark.WithRendererOptions(htmlrenderer.WithUnsafe()),
	)
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(s)), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
