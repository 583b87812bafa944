package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/perugo/perugo-api/internal/domain"
	"github.com/perugo/perugo-api/internal/http/response"
)

// Login handles user authentication
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "Formato JSON inválido", response.CodeInvalidInput)
		return
	}

	res, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, res)
}

// Register handles user registration
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "Formato JSON inválido", response.CodeInvalidInput)
		return
	}

	res, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, res)
}

// Recover handles password recovery requests. It reports success whether or
// not the email has an account, so the route does not reveal which addresses
// are registered.
func (h *Handlers) Recover(w http.ResponseWriter, r *http.Request) {
	var req domain.RecoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "Formato JSON inválido", response.CodeInvalidInput)
		return
	}

	if err := h.authService.Recover(r.Context(), &req); err != nil {
		response.WriteDomainError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Si el correo está registrado, se enviaron instrucciones de recuperación",
		"email":   req.Email,
	})
}
