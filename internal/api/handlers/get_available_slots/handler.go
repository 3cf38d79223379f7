package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate         = "дата обязательна"
	msgInvalidParams       = "некорректные параметры запроса"
	msgInvalidInput        = "некорректные входные данные"
	msgCalendarUnavailable = "календарь временно недоступен"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendars/{calendarId}/available-slots
// Query params: date (required, YYYY-MM-DD), durationMinutes, stepMinutes,
// rangeStart (HH:MM), rangeEnd (HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	calendarID := vars["calendarId"]

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /calendars/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты и времени)
	useCaseReq, err := ToUseCaseRequest(calendarID, dateStr,
		query.Get("durationMinutes"), query.Get("stepMinutes"),
		query.Get("rangeStart"), query.Get("rangeEnd"))
	if err != nil {
		h.logger.Warn("GET /calendars/{id}/available-slots - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /calendars/{id}/available-slots - Invalid input: calendar_id=%s, error=%v", calendarID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrCalendarUnavailable):
			h.logger.Error("GET /calendars/{id}/available-slots - Calendar unavailable: calendar_id=%s, error=%v", calendarID, err)
			handlers.RespondServiceUnavailable(w, msgCalendarUnavailable)

		default:
			h.logger.Error("GET /calendars/{id}/available-slots - Failed to get slots: calendar_id=%s, error=%v", calendarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /calendars/{id}/available-slots - Slots retrieved successfully: calendar_id=%s, date=%s, slots_count=%d",
		calendarID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
