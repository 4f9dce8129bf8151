package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/urlfence/urlfence/internal/handler/dto"
	"github.com/urlfence/urlfence/internal/service"
	"github.com/urlfence/urlfence/internal/validate"
)

// BlockedURLHandler handles HTTP requests for a user's deny list.
type BlockedURLHandler struct {
	svc    *service.BlockedURLService
	logger *slog.Logger
}

// NewBlockedURLHandler creates a new BlockedURLHandler.
func NewBlockedURLHandler(svc *service.BlockedURLService, logger *slog.Logger) *BlockedURLHandler {
	return &BlockedURLHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/users/{id}/blocked-urls.
// Entries come back ordered by creation time descending.
func (h *BlockedURLHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	urls, err := h.svc.ListBlockedURLs(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBlockedURLListResponse(urls))
}

// Create handles POST /api/users/{id}/blocked-urls.
func (h *BlockedURLHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req dto.CreateBlockedURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if errs := validate.CreateBlockedURL(req.URL); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	blocked, err := h.svc.BlockURL(r.Context(), userID, req.URL)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("url_blocked",
		slog.String("user_id", userID),
		slog.String("blocked_url_id", blocked.ID),
	)

	writeJSON(w, http.StatusCreated, dto.ToBlockedURLResponse(blocked))
}

// Delete handles DELETE /api/users/{id}/blocked-urls/{urlId}.
// The record must belong to the path's user; on mismatch nothing is deleted.
func (h *BlockedURLHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	urlID := chi.URLParam(r, "urlId")

	if err := h.svc.UnblockURL(r.Context(), userID, urlID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("url_unblocked",
		slog.String("user_id", userID),
		slog.String("blocked_url_id", urlID),
	)

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: msgURLRemoved})
}

// handleServiceError maps service errors to HTTP responses.
func (h *BlockedURLHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, msgUserNotFound)
	case errors.Is(err, service.ErrBlockedURLNotFound):
		writeError(w, http.StatusNotFound, msgBlockedURLNotFound)
	case errors.Is(err, service.ErrURLAlreadyBlocked):
		writeError(w, http.StatusConflict, msgURLBlocked)
	case errors.Is(err, service.ErrNotOwner):
		writeError(w, http.StatusForbidden, msgForbidden)
	default:
		h.logger.Error("internal_error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgInternalError)
	}
}
