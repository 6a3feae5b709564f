package handler

import (
	"log/slog"
	"net/http"

	"docshelf/internal/domain/services"
	"docshelf/internal/httputil"
)

// FileHandler handles file metadata and move HTTP requests.
type FileHandler struct {
	files  services.FileService
	logger *slog.Logger
}

// NewFileHandler creates a new file handler.
func NewFileHandler(files services.FileService, logger *slog.Logger) *FileHandler {
	return &FileHandler{files: files, logger: logger}
}

// UpdateFile applies a partial metadata update.
// PATCH /api/files/{id}
func (h *FileHandler) UpdateFile(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "file id is required")
		return
	}

	var req services.UpdateFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, err := h.files.UpdateFile(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}

// MoveFiles relocates a batch of files into one destination.
// POST /api/files/move
func (h *FileHandler) MoveFiles(w http.ResponseWriter, r *http.Request) {
	var req services.MoveFilesRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.files.MoveFiles(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, report)
}
