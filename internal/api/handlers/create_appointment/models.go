package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CalendarID      string  `json:"calendarId,omitempty"` // пустое значение = календарь по умолчанию
	Date            string  `json:"date"`                 // "2026-09-15"
	StartTime       string  `json:"startTime"`            // "10:00"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	PatientName     string  `json:"patientName"`
	PatientEmail    string  `json:"patientEmail"`
	PatientPhone    *string `json:"patientPhone,omitempty"`
	ServiceType     string  `json:"serviceType"`
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string  `json:"id"`
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
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(defaultCalendarID string) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	calendarID := r.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	return &createAppointment.Request{
		CalendarID:      calendarID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		PatientName:     r.PatientName,
		PatientEmail:    r.PatientEmail,
		PatientPhone:    r.PatientPhone,
		ServiceType:     r.ServiceType,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
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
	}
}
