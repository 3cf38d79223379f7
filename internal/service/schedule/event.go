package schedule

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/googlecalendar"
)

// Ключи полей записи в описании события календаря
const (
	fieldPatient = "Patient"
	fieldEmail   = "Email"
	fieldPhone   = "Phone"
	fieldService = "Service"
	fieldNotes   = "Notes"
)

// encodeEvent упаковывает данные записи в событие календаря.
// Детали пациента хранятся в описании события строками "Ключ: значение".
func encodeEvent(appt domain.Appointment) googlecalendar.CreateEventInput {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", fieldPatient, appt.PatientName)
	fmt.Fprintf(&b, "%s: %s\n", fieldEmail, appt.PatientEmail)
	if appt.PatientPhone != nil && *appt.PatientPhone != "" {
		fmt.Fprintf(&b, "%s: %s\n", fieldPhone, *appt.PatientPhone)
	}
	fmt.Fprintf(&b, "%s: %s\n", fieldService, appt.ServiceType)
	if appt.Notes != nil && *appt.Notes != "" {
		fmt.Fprintf(&b, "%s: %s\n", fieldNotes, *appt.Notes)
	}

	return googlecalendar.CreateEventInput{
		Summary:       fmt.Sprintf("Appointment: %s (%s)", appt.PatientName, appt.ServiceType),
		Description:   b.String(),
		Start:         appt.Start,
		End:           appt.End,
		AttendeeEmail: appt.PatientEmail,
		AttendeeName:  appt.PatientName,
	}
}

// decodeEvent восстанавливает запись из события календаря.
// События, созданные не этим сервисом, дают запись без деталей пациента.
func decodeEvent(calendarID string, ev googlecalendar.Event) domain.Appointment {
	appt := domain.Appointment{
		ID:         ev.ID,
		CalendarID: calendarID,
		Start:      ev.Start,
		End:        ev.End,
	}

	for _, line := range strings.Split(ev.Description, "\n") {
		key, value, found := strings.Cut(line, ": ")
		if !found {
			continue
		}
		switch key {
		case fieldPatient:
			appt.PatientName = value
		case fieldEmail:
			appt.PatientEmail = value
		case fieldPhone:
			phone := value
			appt.PatientPhone = &phone
		case fieldService:
			appt.ServiceType = value
		case fieldNotes:
			notes := value
			appt.Notes = &notes
		}
	}

	return appt
}
