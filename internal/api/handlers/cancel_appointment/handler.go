package cancel_appointment

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	cancelAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/cancel_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные входные данные"
	msgCalendarUnavailable = "календарь временно недоступен"
)

type Handler struct {
	useCase           CancelAppointmentUseCase
	defaultCalendarID string
	logger            Logger
}

func NewHandler(useCase CancelAppointmentUseCase, defaultCalendarID string, logger Logger) *Handler {
	return &Handler{
		useCase:           useCase,
		defaultCalendarID: defaultCalendarID,
		logger:            logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID := vars["appointmentId"]

	// Тело запроса опционально
	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = h.defaultCalendarID
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &cancelAppointment.Request{
		CalendarID:    calendarID,
		AppointmentID: appointmentID,
		Reason:        req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid input: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, cancelAppointment.ErrCalendarUnavailable):
			h.logger.Error("PATCH /appointments/{id}/cancel - Calendar unavailable: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondServiceUnavailable(w, msgCalendarUnavailable)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel appointment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled successfully: appointment_id=%s, already_gone=%t",
		appointmentID, result.AlreadyGone)
	handlers.RespondJSON(w, http.StatusOK, &CancelAppointmentResponse{
		AppointmentID: result.AppointmentID,
		Status:        "cancelled",
		AlreadyGone:   result.AlreadyGone,
	})
}
