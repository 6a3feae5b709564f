package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"docshelf/internal/domain/models"
	"docshelf/internal/domain/services"
	"docshelf/internal/httputil"
	"docshelf/internal/service"
)

// SearchHandler handles search and path-lookup HTTP requests.
type SearchHandler struct {
	search services.SearchService
	logger *slog.Logger
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(search services.SearchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{search: search, logger: logger}
}

// Search runs a scored full-tree search.
// GET /api/search?q=<term>&scope=<name|metadata|all>&section=<id>&limit=<n>
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	opts := models.SearchOptions{
		Term:      query.Get("q"),
		Scope:     models.SearchScope(query.Get("scope")),
		SectionID: query.Get("section"),
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		opts.Limit = limit
	}

	results, err := h.search.Search(r.Context(), opts)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"count":   len(results),
	})
}

// GetItem resolves an item by its path, using the /-joined folder path
// query encoding.
// GET /api/items?section=<id>&folder=<id1>/<id2>
func (h *SearchHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	sectionID := query.Get("section")
	if sectionID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section query parameter is required")
		return
	}
	path := append([]string{sectionID}, service.DecodeFolderPath(query.Get("folder"))...)

	item, err := h.search.FindItemByPath(r.Context(), path)
	if err != nil {
		handleError(w, err)
		return
	}

	breadcrumb, err := h.search.Breadcrumb(r.Context(), sectionID, item.ItemID())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"item":       item,
		"breadcrumb": breadcrumb,
	})
}
