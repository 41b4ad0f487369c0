package get_available_days

import (
	getAvailableDays "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_days"
)

// AvailableDaysResponse HTTP response model
type AvailableDaysResponse struct {
	From            string `json:"from"`
	Until           string `json:"until"`
	MasterID        string `json:"masterId"`
	DurationMinutes int    `json:"durationMinutes"`
	Days            []Day  `json:"days"`
}

type Day struct {
	Date      string `json:"date"`
	HasWindow bool   `json:"hasWindow"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDays.Response) *AvailableDaysResponse {
	days := make([]Day, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = Day{Date: d.Date, HasWindow: d.HasWindow}
	}

	return &AvailableDaysResponse{
		From:            resp.From,
		Until:           resp.Until,
		MasterID:        resp.Master.ID,
		DurationMinutes: resp.DurationMinutes,
		Days:            days,
	}
}
