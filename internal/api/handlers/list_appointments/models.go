package list_appointments

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	listAppointments "github.com/m04kA/SMC-SchedulingService/internal/usecase/list_appointments"
)

// AppointmentResponse HTTP модель одной записи
type AppointmentResponse struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Start           string  `json:"start"` // RFC3339
	End             string  `json:"end"`   // RFC3339
	DurationMinutes int     `json:"durationMinutes"`
	PatientName     string  `json:"patientName,omitempty"`
	PatientEmail    string  `json:"patientEmail,omitempty"`
	PatientPhone    *string `json:"patientPhone,omitempty"`
	ServiceType     string  `json:"serviceType,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ListAppointmentsResponse HTTP модель ответа
type ListAppointmentsResponse struct {
	CalendarID   string                `json:"calendarId"`
	From         string                `json:"from"` // RFC3339
	To           string                `json:"to"`   // RFC3339
	Appointments []AppointmentResponse `json:"appointments"`
}

// ToUseCaseRequest собирает запрос use case из параметров HTTP запроса
func ToUseCaseRequest(calendarID, fromStr, toStr string) (*listAppointments.Request, error) {
	req := &listAppointments.Request{CalendarID: calendarID}

	var err error
	if fromStr != "" {
		if req.From, err = time.Parse(time.RFC3339, fromStr); err != nil {
			return nil, err
		}
	}
	if toStr != "" {
		if req.To, err = time.Parse(time.RFC3339, toStr); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listAppointments.Response) *ListAppointmentsResponse {
	items := make([]AppointmentResponse, 0, len(resp.Appointments))
	for _, a := range resp.Appointments {
		items = append(items, AppointmentResponse{
			ID:              a.ID,
			Date:            a.Date.Format(domain.DateFormat),
			StartTime:       a.StartTime.String(),
			EndTime:         a.EndTime.String(),
			Start:           a.Start.Format(time.RFC3339),
			End:             a.End.Format(time.RFC3339),
			DurationMinutes: a.DurationMinutes,
			PatientName:     a.PatientName,
			PatientEmail:    a.PatientEmail,
			PatientPhone:    a.PatientPhone,
			ServiceType:     a.ServiceType,
			Notes:           a.Notes,
		})
	}

	return &ListAppointmentsResponse{
		CalendarID:   resp.CalendarID,
		From:         resp.From.Format(time.RFC3339),
		To:           resp.To.Format(time.RFC3339),
		Appointments: items,
	}
}
