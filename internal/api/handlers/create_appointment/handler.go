package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput         = "некорректные входные данные"
	msgInvalidDate          = "дата приема в прошлом"
	msgSlotConflict         = "выбранный временной слот уже занят"
	msgDayClosed            = "клиника закрыта в выбранную дату"
	msgOutsideBusinessHours = "слот выходит за пределы рабочих часов"
	msgCalendarUnavailable  = "календарь временно недоступен"
)

type Handler struct {
	useCase           CreateAppointmentUseCase
	defaultCalendarID string
	logger            Logger
}

func NewHandler(useCase CreateAppointmentUseCase, defaultCalendarID string, logger Logger) *Handler {
	return &Handler{
		useCase:           useCase,
		defaultCalendarID: defaultCalendarID,
		logger:            logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(h.defaultCalendarID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: calendar_id=%s, date=%s, time=%s",
				useCaseReq.CalendarID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrDayClosed):
			h.logger.Warn("POST /appointments - Day closed: calendar_id=%s, date=%s", useCaseReq.CalendarID, req.Date)
			handlers.RespondBadRequest(w, msgDayClosed)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: calendar_id=%s, date=%s, time=%s",
				useCaseReq.CalendarID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: calendar_id=%s, date=%s", useCaseReq.CalendarID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: calendar_id=%s, error=%v", useCaseReq.CalendarID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrCalendarUnavailable):
			h.logger.Error("POST /appointments - Calendar unavailable: calendar_id=%s, error=%v", useCaseReq.CalendarID, err)
			handlers.RespondServiceUnavailable(w, msgCalendarUnavailable)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: calendar_id=%s, error=%v",
				useCaseReq.CalendarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, calendar_id=%s",
		result.ID, result.CalendarID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
