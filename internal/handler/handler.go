// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/urlfence/urlfence/internal/handler/dto"
	"github.com/urlfence/urlfence/internal/validate"
)

// Response messages. These are part of the wire contract.
const (
	msgLoginOK            = "Login realizado com sucesso"
	msgLogoutOK           = "Logout realizado com sucesso"
	msgURLRemoved         = "URL removida com sucesso"
	msgInvalidCredentials = "Credenciais inválidas"
	msgUserExists         = "Usuário já existe com este email"
	msgUserNotFound       = "Usuário não encontrado"
	msgURLBlocked         = "URL já está bloqueada para este usuário"
	msgBlockedURLNotFound = "URL bloqueada não encontrada"
	msgForbidden          = "Não autorizado"
	msgInternalError      = "Erro interno do servidor"
	msgInvalidBody        = "Corpo da requisição inválido"
	msgNotFound           = "Recurso não encontrado"
	msgMethodNotAllowed   = "Método não permitido"
)

// Handler provides fallback handlers not tied to a resource.
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, msgNotFound)
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already gone; nothing useful left to do.
		_ = err
	}
}

// writeError writes a single-message error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.ErrorResponse{Error: message})
}

// writeValidationErrors writes a 400 with field-level failures.
func writeValidationErrors(w http.ResponseWriter, errs []validate.FieldError) {
	writeJSON(w, http.StatusBadRequest, dto.ValidationErrorResponse{Error: errs})
}
