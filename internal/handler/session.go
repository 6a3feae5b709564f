package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"docshelf/internal/auth"
	"docshelf/internal/domain"
	"docshelf/internal/httputil"
)

// SessionHandler issues placeholder session tokens. There is no
// password check; this endpoint exists so the UI has an identity to
// stamp audit entries with.
type SessionHandler struct {
	tokens auth.TokenIssuer
	logger *slog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(tokens auth.TokenIssuer, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{tokens: tokens, logger: logger}
}

type createSessionRequest struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// CreateSession mints a session token for a named user.
// POST /api/auth/session
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.UserID = strings.TrimSpace(req.UserID)
	if err := validation.Validate(req.UserID, validation.Required, validation.Length(1, 128)); err != nil {
		handleError(w, fmt.Errorf("%w: user_id: %v", domain.ErrValidation, err))
		return
	}

	token, err := h.tokens.IssueToken(req.UserID, req.Name)
	if err != nil {
		h.logger.Error("failed to issue session token", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "failed to issue session token")
		return
	}

	h.logger.Info("session issued", "user_id", req.UserID)
	httputil.RespondJSON(w, http.StatusCreated, map[string]string{
		"token":   token,
		"user_id": req.UserID,
	})
}
