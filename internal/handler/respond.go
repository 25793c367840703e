package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

func (h *Handler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

func (h *Handler) respondMessage(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}

// respondInternal logs the real error and answers with a generic message, or
// with a timeout message when the per-request deadline was hit. Internals are
// never echoed to the client.
func (h *Handler) respondInternal(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")

	if errors.Is(err, context.DeadlineExceeded) {
		h.respondError(w, http.StatusGatewayTimeout, "Tempo de requisição esgotado.")
		return
	}

	h.respondError(w, http.StatusInternalServerError, "Erro interno no servidor.")
}

// decodeAndValidate parses the JSON body into dst and runs the validator.
// The returned message, when non-empty, is a client-safe 400 description.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) string {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return "Requisição inválida."
	}

	if err := h.validate.Struct(dst); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			return errs[0].Translate(h.trans)
		}
		return "Requisição inválida."
	}

	return ""
}
