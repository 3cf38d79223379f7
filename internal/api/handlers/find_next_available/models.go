package find_next_available

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	findNextAvailable "github.com/m04kA/SMC-SchedulingService/internal/usecase/find_next_available"
)

// NextAvailableResponse HTTP модель ответа
type NextAvailableResponse struct {
	CalendarID      string `json:"calendarId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Start           string `json:"start"` // RFC3339
	End             string `json:"end"`   // RFC3339
	DurationMinutes int    `json:"durationMinutes"`
	DaysScanned     int    `json:"daysScanned"`
}

// ToUseCaseRequest собирает запрос use case из параметров HTTP запроса
func ToUseCaseRequest(calendarID, fromStr, durationStr, maxDaysStr string) (*findNextAvailable.Request, error) {
	req := &findNextAvailable.Request{CalendarID: calendarID}

	var err error
	if fromStr != "" {
		if req.From, err = time.Parse(time.RFC3339, fromStr); err != nil {
			return nil, err
		}
	}
	if durationStr != "" {
		if req.DurationMinutes, err = strconv.Atoi(durationStr); err != nil {
			return nil, err
		}
	}
	if maxDaysStr != "" {
		if req.MaxDaysToScan, err = strconv.Atoi(maxDaysStr); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findNextAvailable.Response) *NextAvailableResponse {
	return &NextAvailableResponse{
		CalendarID:      resp.CalendarID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		Start:           resp.Start.Format(time.RFC3339),
		End:             resp.End.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		DaysScanned:     resp.DaysScanned,
	}
}
