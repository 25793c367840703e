// Package handler maps HTTP requests onto the usecases and translates their
// typed errors into status codes.
package handler

import (
	"net/http"
	"time"

	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_br_translations "github.com/go-playground/validator/v10/translations/pt_BR"
	"github.com/rs/zerolog"

	"github.com/viniciusbarbosa/agendabarber-api/internal/usecase"
)

// Handler holds the usecases and request plumbing shared by all endpoints.
type Handler struct {
	logger        *zerolog.Logger
	validate      *validator.Validate
	trans         ut.Translator
	timeout       time.Duration
	auth          usecase.AuthUsecase
	passwordReset usecase.PasswordResetUsecase
	booking       usecase.BookingUsecase
}

// New creates a Handler with a pt-BR translated validator.
func New(
	logger *zerolog.Logger,
	timeout time.Duration,
	auth usecase.AuthUsecase,
	passwordReset usecase.PasswordResetUsecase,
	booking usecase.BookingUsecase,
) *Handler {
	validate := validator.New(validator.WithRequiredStructEnabled())

	locale := pt_BR.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("pt_BR")

	if err := pt_br_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		logger.Fatal().Err(err).Msg("failed to register validator translations")
	}

	return &Handler{
		logger:        logger,
		validate:      validate,
		trans:         trans,
		timeout:       timeout,
		auth:          auth,
		passwordReset: passwordReset,
		booking:       booking,
	}
}

// Health reports service liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
