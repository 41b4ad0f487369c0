package get_day_slots

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getDaySlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_day_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date            string `json:"date"`
	MasterID        string `json:"masterId"`
	DurationMinutes int    `json:"durationMinutes"`
	StepMinutes     int    `json:"stepMinutes"`
	IsOpen          bool   `json:"isOpen"`
	Reason          string `json:"reason,omitempty"`
	Slots           []Slot `json:"slots"`
}

// Slot свободный интервал
type Slot struct {
	StartISO string `json:"startISO"`
	EndISO   string `json:"endISO"`
}

// FromSlots конвертирует доменные слоты
func FromSlots(slots []domain.Slot) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			StartISO: handlers.FormatInstant(s.Start),
			EndISO:   handlers.FormatInstant(s.End),
		}
	}
	return result
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	return &DaySlotsResponse{
		Date:            resp.Date,
		MasterID:        resp.Master.ID,
		DurationMinutes: resp.DurationMinutes,
		StepMinutes:     resp.StepMinutes,
		IsOpen:          resp.Window.IsOpen,
		Reason:          string(resp.Window.Reason),
		Slots:           FromSlots(resp.Slots),
	}
}
