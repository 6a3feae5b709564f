package handler

import (
	"log/slog"
	"net/http"

	"docshelf/internal/domain/services"
	"docshelf/internal/httputil"
)

// SectionHandler handles section HTTP requests.
type SectionHandler struct {
	sections services.SectionService
	logger   *slog.Logger
}

// NewSectionHandler creates a new section handler.
func NewSectionHandler(sections services.SectionService, logger *slog.Logger) *SectionHandler {
	return &SectionHandler{sections: sections, logger: logger}
}

// ListSections returns the full nested forest.
// GET /api/sections
func (h *SectionHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"sections": h.sections.ListSections(r.Context()),
	})
}

// CreateSection creates a new empty section.
// POST /api/sections
func (h *SectionHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req services.CreateSectionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	section, err := h.sections.CreateSection(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, section)
}

// UpdateSection renames a section.
// PATCH /api/sections/{id}
func (h *SectionHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section id is required")
		return
	}

	var req services.UpdateSectionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	section, err := h.sections.UpdateSection(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, section)
}

// DeleteSection removes a section and its subtree.
// DELETE /api/sections/{id}
func (h *SectionHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section id is required")
		return
	}

	if err := h.sections.DeleteSection(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTree returns one section's nested tree.
// GET /api/sections/{id}/tree
func (h *SectionHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section id is required")
		return
	}

	tree, err := h.sections.GetTree(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tree)
}

// ListFiles returns a section's files flattened depth-first.
// GET /api/sections/{id}/files
func (h *SectionHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section id is required")
		return
	}

	files, err := h.sections.ListFiles(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"files": files})
}

// HealthCheck reports liveness.
// GET /health
func (h *SectionHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
