package reschedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	rescheduleAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	CalendarID      string `json:"calendarId,omitempty"` // пустое значение = календарь по умолчанию
	NewDate         string `json:"newDate"`              // "2026-09-20"
	NewStartTime    string `json:"newStartTime"`         // "14:00"
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}

// RescheduleAppointmentResponse HTTP response model
type RescheduleAppointmentResponse struct {
	ID              string  `json:"id"`
	PreviousID      string  `json:"previousId"`
	CalendarID      string  `json:"calendarId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Start           string  `json:"start"` // RFC3339
	End             string  `json:"end"`   // RFC3339
	DurationMinutes int     `json:"durationMinutes"`
	PatientName     string  `json:"patientName"`
	PatientEmail    string  `json:"patientEmail"`
	PatientPhone    *string `json:"patientPhone,omitempty"`
	ServiceType     string  `json:"serviceType"`
	Notes           *string `json:"notes,omitempty"`
	Warning         *string `json:"warning,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(appointmentID, defaultCalendarID string) (*rescheduleAppointment.Request, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, err
	}

	newStartTime, err := types.NewTimeStringFromString(r.NewStartTime)
	if err != nil {
		return nil, err
	}

	calendarID := r.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	return &rescheduleAppointment.Request{
		CalendarID:      calendarID,
		AppointmentID:   appointmentID,
		NewDate:         newDate,
		NewStartTime:    newStartTime,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *RescheduleAppointmentResponse {
	return &RescheduleAppointmentResponse{
		ID:              resp.ID,
		PreviousID:      resp.PreviousID,
		CalendarID:      resp.CalendarID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		Start:           resp.Start.Format(time.RFC3339),
		End:             resp.End.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		PatientName:     resp.PatientName,
		PatientEmail:    resp.PatientEmail,
		PatientPhone:    resp.PatientPhone,
		ServiceType:     resp.ServiceType,
		Notes:           resp.Notes,
		Warning:         resp.StaleAppointmentWarning,
	}
}
