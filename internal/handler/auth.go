package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/viniciusbarbosa/agendabarber-api/internal/usecase"
)

// Login verifies credentials and returns the user without the password hash.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if msg := h.decodeAndValidate(r, &req); msg != "" {
		h.respondError(w, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	user, err := h.auth.Login(ctx, usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			h.respondError(w, http.StatusNotFound, "Usuário não encontrado.")
		case errors.Is(err, usecase.ErrWrongPassword):
			h.respondError(w, http.StatusUnauthorized, "Senha incorreta.")
		default:
			h.respondInternal(w, r, err)
		}
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]userResponse{
		"user": {ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// Register creates a new account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if msg := h.decodeAndValidate(r, &req); msg != "" {
		h.respondError(w, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if _, err := h.auth.Register(ctx, usecase.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyRegistered) {
			h.respondError(w, http.StatusConflict, "E-mail já cadastrado.")
			return
		}
		h.respondInternal(w, r, err)
		return
	}

	h.respondMessage(w, http.StatusCreated, "Cadastro realizado com sucesso!")
}
