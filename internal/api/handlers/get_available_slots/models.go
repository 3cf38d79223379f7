package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	Start     string `json:"start"`     // RFC3339
	End       string `json:"end"`       // RFC3339
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
}

// AvailableSlotsResponse HTTP модель ответа
type AvailableSlotsResponse struct {
	CalendarID      string         `json:"calendarId"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// ToUseCaseRequest собирает запрос use case из параметров HTTP запроса
func ToUseCaseRequest(calendarID, dateStr, durationStr, stepStr, rangeStartStr, rangeEndStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		CalendarID: calendarID,
		Date:       date,
	}

	if durationStr != "" {
		if req.DurationMinutes, err = strconv.Atoi(durationStr); err != nil {
			return nil, err
		}
	}
	if stepStr != "" {
		if req.StepMinutes, err = strconv.Atoi(stepStr); err != nil {
			return nil, err
		}
	}
	if rangeStartStr != "" {
		if req.RangeStart, err = types.NewTimeStringFromString(rangeStartStr); err != nil {
			return nil, err
		}
	}
	if rangeEndStr != "" {
		if req.RangeEnd, err = types.NewTimeStringFromString(rangeEndStr); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Start:     s.Start.Format(time.RFC3339),
			End:       s.End.Format(time.RFC3339),
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}

	return &AvailableSlotsResponse{
		CalendarID:      resp.CalendarID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
