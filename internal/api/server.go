package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dgallion1/docstruct/internal/config"
	"github.com/dgallion1/docstruct/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for docstruct.
type Server struct {
	router chi.Router
	store  store.Store
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(st store.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store: st,
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.DocstructAPIKey, s.log))

		r.Post("/api/drafts", s.handleCreateDraft)
		r.Get("/api/drafts/{draftID}", s.handleGetDraft)
		r.Get("/api/drafts/{draftID}/export", s.handleExport)
		r.Post("/api/drafts/{draftID}/versions", s.handleSaveVersion)

		r.Post("/api/drafts/{draftID}/nodes", s.handleCreateNode)
		r.Patch("/api/drafts/{draftID}/nodes/{nodeID}", s.handleUpdateNode)
		r.Delete("/api/drafts/{draftID}/nodes/{nodeID}", s.handleDeleteNode)
		r.Post("/api/drafts/{draftID}/nodes/{nodeID}/move", s.handleMoveNode)
		r.Post("/api/drafts/{draftID}/nodes/{nodeID}/promote", s.handlePromoteNode)
		r.Post("/api/drafts/{draftID}/nodes/{nodeID}/demote", s.handleDemoteNode)
		r.Put("/api/drafts/{draftID}/nodes/{nodeID}/label", s.handleSetLabel)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
