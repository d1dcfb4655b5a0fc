package api

import (
	"bytes"
	"net/http"

	"github.com/dgallion1/docstruct/internal/export"
)

// handleExport renders a draft in the requested format. Export never fails
// on structurally odd-but-valid trees; only the draft lookup and the binary
// writers can error here.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	state, ok := s.loadDraft(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	switch format {
	case "json":
		out, err := export.JSON(state)
		if err != nil {
			jsonError(w, "export json: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(out))

	case "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(export.Markdown(state)))

	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(export.PlainText(state)))

	case "latex":
		w.Header().Set("Content-Type", "application/x-latex")
		w.Write([]byte(export.LaTeX(state)))

	case "html":
		out, err := export.HTML(state)
		if err != nil {
			jsonError(w, "export html: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(out))

	case "docx":
		var buf bytes.Buffer
		if err := export.DOCX(state, &buf); err != nil {
			jsonError(w, "export docx: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		w.Header().Set("Content-Disposition", `attachment; filename="draft.docx"`)
		w.Write(buf.Bytes())

	default:
		jsonError(w, "unsupported export format: "+format, http.StatusBadRequest)
	}
}
