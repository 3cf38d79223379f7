package find_next_available

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	findNextAvailable "github.com/m04kA/SMC-SchedulingService/internal/usecase/find_next_available"
)

const (
	msgInvalidParams       = "некорректные параметры запроса"
	msgInvalidInput        = "некорректные входные данные"
	msgNoSlotFound         = "свободный слот не найден в пределах горизонта поиска"
	msgCalendarUnavailable = "календарь временно недоступен"
)

type Handler struct {
	useCase FindNextAvailableUseCase
	logger  Logger
}

func NewHandler(useCase FindNextAvailableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendars/{calendarId}/next-available
// Query params: from (RFC3339), durationMinutes, maxDays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	calendarID := vars["calendarId"]

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(calendarID,
		query.Get("from"), query.Get("durationMinutes"), query.Get("maxDays"))
	if err != nil {
		h.logger.Warn("GET /calendars/{id}/next-available - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findNextAvailable.ErrNoSlotFound):
			h.logger.Info("GET /calendars/{id}/next-available - No slot found: calendar_id=%s", calendarID)
			handlers.RespondNotFound(w, msgNoSlotFound)

		case errors.Is(err, findNextAvailable.ErrInvalidInput):
			h.logger.Warn("GET /calendars/{id}/next-available - Invalid input: calendar_id=%s, error=%v", calendarID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, findNextAvailable.ErrCalendarUnavailable):
			h.logger.Error("GET /calendars/{id}/next-available - Calendar unavailable: calendar_id=%s, error=%v", calendarID, err)
			handlers.RespondServiceUnavailable(w, msgCalendarUnavailable)

		default:
			h.logger.Error("GET /calendars/{id}/next-available - Failed to find slot: calendar_id=%s, error=%v", calendarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /calendars/{id}/next-available - Slot found: calendar_id=%s, start=%s, days_scanned=%d",
		calendarID, response.Start, result.DaysScanned)
	handlers.RespondJSON(w, http.StatusOK, response)
}
