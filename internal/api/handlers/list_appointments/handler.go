package list_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	listAppointments "github.com/m04kA/SMC-SchedulingService/internal/usecase/list_appointments"
)

const (
	msgInvalidParams       = "некорректные параметры запроса"
	msgInvalidInput        = "некорректные входные данные"
	msgCalendarUnavailable = "календарь временно недоступен"
)

type Handler struct {
	useCase ListAppointmentsUseCase
	logger  Logger
}

func NewHandler(useCase ListAppointmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendars/{calendarId}/appointments
// Query params: from (RFC3339), to (RFC3339)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	calendarID := vars["calendarId"]

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(calendarID, query.Get("from"), query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /calendars/{id}/appointments - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, listAppointments.ErrInvalidInput):
			h.logger.Warn("GET /calendars/{id}/appointments - Invalid input: calendar_id=%s, error=%v", calendarID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, listAppointments.ErrCalendarUnavailable):
			h.logger.Error("GET /calendars/{id}/appointments - Calendar unavailable: calendar_id=%s, error=%v", calendarID, err)
			handlers.RespondServiceUnavailable(w, msgCalendarUnavailable)

		default:
			h.logger.Error("GET /calendars/{id}/appointments - Failed to list appointments: calendar_id=%s, error=%v",
				calendarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /calendars/{id}/appointments - Appointments retrieved successfully: calendar_id=%s, count=%d",
		calendarID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, response)
}
