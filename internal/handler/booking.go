package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/viniciusbarbosa/agendabarber-api/internal/usecase"
)

// Book reserves an appointment slot.
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if msg := h.decodeAndValidate(r, &req); msg != "" {
		h.respondError(w, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if _, err := h.booking.Book(ctx, usecase.BookParams{
		Name:    req.Name,
		Phone:   req.Phone,
		Service: req.Service,
		Date:    req.Date,
		Time:    req.Time,
	}); err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotTaken):
			h.respondError(w, http.StatusConflict, "Horário já reservado.")
		case errors.Is(err, usecase.ErrUnknownService):
			h.respondError(w, http.StatusBadRequest, "Serviço inválido.")
		case errors.Is(err, usecase.ErrInvalidDate):
			h.respondError(w, http.StatusBadRequest, "Data inválida.")
		case errors.Is(err, usecase.ErrOutsideSchedule):
			h.respondError(w, http.StatusBadRequest, "Horário fora do expediente.")
		default:
			h.respondInternal(w, r, err)
		}
		return
	}

	h.respondMessage(w, http.StatusCreated, "Agendamento realizado com sucesso!")
}

// ListBookings returns the bookings of one calendar date, so the client can
// compute slot availability.
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.respondError(w, http.StatusBadRequest, "Data é obrigatória.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	bookings, err := h.booking.ListByDate(ctx, date)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDate) {
			h.respondError(w, http.StatusBadRequest, "Data inválida.")
			return
		}
		h.respondInternal(w, r, err)
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, bookingResponse{
			ID:      b.ID,
			Name:    b.Name,
			Phone:   b.Phone,
			Service: b.Service,
			Date:    b.Date,
			Time:    b.Time,
		})
	}

	h.respondJSON(w, http.StatusOK, map[string][]bookingResponse{"bookings": out})
}
