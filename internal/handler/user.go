package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/urlfence/urlfence/internal/handler/dto"
	"github.com/urlfence/urlfence/internal/service"
	"github.com/urlfence/urlfence/internal/validate"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/users.
// Returns all users newest first, each annotated with its blocked-URL count.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserListResponse(users))
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if errs := validate.CreateUser(req.Email); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	user, err := h.svc.CreateUser(r.Context(), req.Email)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user_created",
		slog.String("user_id", user.ID),
	)

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(user))
}

// handleServiceError maps service errors to HTTP responses.
// Unexpected failures are logged server-side and surface as a generic 500.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmailExists):
		writeError(w, http.StatusConflict, msgUserExists)
	default:
		h.logger.Error("internal_error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgInternalError)
	}
}
