package domain

import "time"

// Appointment represents a booked appointment backed by a remote calendar
// event. ID is assigned by the remote store on creation; the record is
// never mutated in place - reschedule creates a new event with a new ID.
type Appointment struct {
	ID         string // Remote event ID
	CalendarID string
	Start      time.Time
	End        time.Time

	PatientName  string
	PatientEmail string
	PatientPhone *string
	ServiceType  string
	Notes        *string
}

// DurationMinutes возвращает длительность приема в минутах
func (a *Appointment) DurationMinutes() int {
	return int(a.End.Sub(a.Start) / time.Minute)
}
