package cancel_appointment

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CalendarID string  `json:"calendarId,omitempty"` // пустое значение = календарь по умолчанию
	Reason     *string `json:"reason,omitempty"`
}

// CancelAppointmentResponse HTTP response model
type CancelAppointmentResponse struct {
	AppointmentID string `json:"appointmentId"`
	Status        string `json:"status"` // "cancelled"
	AlreadyGone   bool   `json:"alreadyGone,omitempty"`
}
