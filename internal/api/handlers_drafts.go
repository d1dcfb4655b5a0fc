package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dgallion1/docstruct/internal/doctree"
	"github.com/dgallion1/docstruct/internal/export"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// handleCreateDraft creates an empty draft, or imports a full DocumentState
// when the body carries one under "state".
func (s *Server) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string          `json:"title"`
		State json.RawMessage `json:"state"`
	}
	if err := s.decodeBody(w, r, &req); err != nil {
		return
	}

	var state *doctree.DocumentState
	if len(req.State) > 0 {
		imported, err := export.Import(req.State)
		if err != nil {
			s.writeOpError(w, err)
			return
		}
		state = imported
	} else {
		state = doctree.New(req.Title)
	}

	draftID := uuid.NewString()
	if err := s.store.Put(r.Context(), draftID, state); err != nil {
		jsonError(w, "store draft: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"draft_id": draftID,
		"state":    state,
	})
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	state, ok := s.loadDraft(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"state": state})
}

func (s *Server) handleCreateNode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ParentID string       `json:"parent_id"`
		Kind     doctree.Kind `json:"kind"`
	}
	if err := s.decodeBody(w, r, &req); err != nil {
		return
	}
	state, ok := s.loadDraft(w, r)
	if !ok {
		return
	}
	next, nodeID, err := doctree.CreateNode(state, req.ParentID, req.Kind)
	if err != nil {
		s.writeOpError(w, err)
		return
	}
	s.saveAndRespond(w, r, next, map[string]any{"node_id": nodeID})
}

func (s *Server) handleUpdateNode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    *string        `json:"title"`
		Content  *string        `json:"content"`
		Numbered *bool          `json:"numbered"`
		Meta     map[string]any `json:"meta"`
	}
	if err := s.decodeBody(w, r, &req); err != nil {
		return
	}
	state, ok := s.loadDraft(w, r)
	if !ok {
		return
	}
	next, err := doctree.UpdateNode(state, chi.URLParam(r, "nodeID"), doctree.NodeUpdate{
		Title:    req.Title,
		Content:  req.Content,
		Numbered: req.Numbered,
		Meta:     req.Meta,
	})
	if err != nil {
		s.writeOpError(w, err)
		return
	}
	s.saveAndRespond(w, r, next, nil)
}

func (s *Server) handleDeleteNode(w http.ResponseWriter, r *http.Request) {
	state, ok := s.loadDraft(w, r)
	if !ok {
		return
	}
	next, err := doctree.DeleteNode(state, chi.URLParam(r, "nodeID"))
	if err != nil {
		s.writeOpError(w, err)
		return
	}
	s.saveAndRespond(w, r, next, nil)
}

func (s *Server) handleMoveNode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NewParentID string `json:"new_parent_id"`
		NewOrder    int    `json:"new_order"`
	}
	if err := s.decodeBody(w, r, &req); err != nil {
		return
	}
	state, ok := s.loadDraft(w, r)
	if !ok {
		return
	}
	next, err := doctree.MoveNode(state, chi.URLParam(r, "nodeID"), req.NewParentID, req.NewOrder)
	if err != nil {
		s.writeOpError(w, err)
		return
	}
	s.saveAndRespond(w, r, next, nil)
}

func (s *Server) handlePromoteNode(w http.ResponseWriter, r *http.Request) {
	s.handleShiftKind(w, r, doctree.PromoteNode)
}

func (s *Server) handleDemoteNode(w http.ResponseWriter, r *http.Request) {
	s.handleShiftKind(w, r, doctree.DemoteNode)
}

func (s *Server) handleShiftKind(w http.ResponseWriter, r *http.Request, op func(*doctree.DocumentState, string) (*doctree.DocumentState, error)) {
	state, ok := s.loadDraft(w, r)
	if !ok {
		return
	}
	next, err := op(state, chi.URLParam(r, "nodeID"))
	if err != nil {
		s.writeOpError(w, err)
		return
	}
	s.saveAndRespond(w, r, next, nil)
}

func (s *Server) handleSetLabel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label string `json:"label"`
	}
	if err := s.decodeBody(w, r, &req); err != nil {
		return
	}
	state, ok := s.loadDraft(w, r)
	if !ok {
		return
	}
	next, err := doctree.SetLabel(state, chi.URLParam(r, "nodeID"), req.Label)
	if err != nil {
		s.writeOpError(w, err)
		return
	}
	s.saveAndRespond(w, r, next, nil)
}

func (s *Server) handleSaveVersion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Note string `json:"note"`
	}
	if err := s.decodeBody(w, r, &req); err != nil {
		return
	}
	state, ok := s.loadDraft(w, r)
	if !ok {
		return
	}
	next, version := doctree.SaveVersion(state, req.Note)
	s.saveAndRespond(w, r, next, map[string]any{"version": version})
}

// decodeBody decodes a JSON body under the configured size limit. An empty
// body is allowed and leaves dst zero-valued.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
	return err
}

// loadDraft fetches the draft named in the URL, writing the error response
// itself when the draft is missing or the store fails.
func (s *Server) loadDraft(w http.ResponseWriter, r *http.Request) (*doctree.DocumentState, bool) {
	draftID := chi.URLParam(r, "draftID")
	state, err := s.store.Get(r.Context(), draftID)
	if err != nil {
		jsonError(w, "load draft: "+err.Error(), http.StatusBadGateway)
		return nil, false
	}
	if state == nil {
		jsonError(w, "draft not found: "+draftID, http.StatusNotFound)
		return nil, false
	}
	return state, true
}

func (s *Server) saveAndRespond(w http.ResponseWriter, r *http.Request, next *doctree.DocumentState, extra map[string]any) {
	draftID := chi.URLParam(r, "draftID")
	if err := s.store.Put(r.Context(), draftID, next); err != nil {
		jsonError(w, "store draft: "+err.Error(), http.StatusBadGateway)
		return
	}
	resp := map[string]any{"state": next}
	for k, v := range extra {
		resp[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// writeOpError maps engine error kinds to distinct HTTP statuses so the UI
// can surface each one differently.
func (s *Server) writeOpError(w http.ResponseWriter, err error) {
	var (
		notFound   *doctree.NotFoundError
		cycle      *doctree.CycleError
		validation *doctree.ValidationError
		importErr  *doctree.ImportError
	)
	switch {
	case errors.As(err, &notFound):
		jsonError(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &cycle):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &validation):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &importErr):
		jsonError(w, err.Error(), http.StatusBadRequest)
	default:
		jsonError(w, err.Error(), http.StatusInternalServerError)
	}
}
