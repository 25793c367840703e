package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/viniciusbarbosa/agendabarber-api/internal/usecase"
)

// ForgotPassword issues a reset token and mails the reset link.
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if msg := h.decodeAndValidate(r, &req); msg != "" {
		h.respondError(w, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.passwordReset.RequestReset(ctx, req.Email); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			h.respondError(w, http.StatusNotFound, "Usuário não encontrado.")
			return
		}
		h.respondInternal(w, r, err)
		return
	}

	h.respondMessage(w, http.StatusOK, "E-mail de recuperação enviado com sucesso.")
}

// ResetPassword consumes a reset token and stores the new password.
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		h.respondError(w, http.StatusBadRequest, "Token é obrigatório.")
		return
	}

	var req resetPasswordRequest
	if msg := h.decodeAndValidate(r, &req); msg != "" {
		h.respondError(w, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.passwordReset.ResetPassword(ctx, token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidResetToken):
			h.respondError(w, http.StatusBadRequest, "Token inválido ou já utilizado.")
		case errors.Is(err, usecase.ErrResetTokenExpired):
			h.respondError(w, http.StatusBadRequest, "Token expirado.")
		default:
			h.respondInternal(w, r, err)
		}
		return
	}

	h.respondMessage(w, http.StatusOK, "Senha redefinida com sucesso!")
}
