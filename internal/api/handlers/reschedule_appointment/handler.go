package reschedule_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	rescheduleAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput         = "некорректные входные данные"
	msgInvalidDate          = "новая дата приема в прошлом"
	msgAppointmentNotFound  = "запись не найдена"
	msgSlotConflict         = "выбранный временной слот уже занят"
	msgDayClosed            = "клиника закрыта в выбранную дату"
	msgOutsideBusinessHours = "слот выходит за пределы рабочих часов"
	msgCalendarUnavailable  = "календарь временно недоступен"
)

type Handler struct {
	useCase           RescheduleAppointmentUseCase
	defaultCalendarID string
	logger            Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, defaultCalendarID string, logger Logger) *Handler {
	return &Handler{
		useCase:           useCase,
		defaultCalendarID: defaultCalendarID,
		logger:            logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID := vars["appointmentId"]

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(appointmentID, h.defaultCalendarID)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/reschedule - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, rescheduleAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments/{id}/reschedule - Slot conflict: appointment_id=%s, new_date=%s, new_time=%s",
				appointmentID, req.NewDate, req.NewStartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, rescheduleAppointment.ErrDayClosed):
			h.logger.Warn("POST /appointments/{id}/reschedule - Day closed: appointment_id=%s, new_date=%s",
				appointmentID, req.NewDate)
			handlers.RespondBadRequest(w, msgDayClosed)

		case errors.Is(err, rescheduleAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments/{id}/reschedule - Outside business hours: appointment_id=%s, new_date=%s, new_time=%s",
				appointmentID, req.NewDate, req.NewStartTime)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, rescheduleAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments/{id}/reschedule - Invalid date: appointment_id=%s, new_date=%s",
				appointmentID, req.NewDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/reschedule - Invalid input: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rescheduleAppointment.ErrCalendarUnavailable):
			h.logger.Error("POST /appointments/{id}/reschedule - Calendar unavailable: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondServiceUnavailable(w, msgCalendarUnavailable)

		default:
			h.logger.Error("POST /appointments/{id}/reschedule - Failed to reschedule: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments/{id}/reschedule - Appointment rescheduled successfully: appointment_id=%s -> %s",
		result.PreviousID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
