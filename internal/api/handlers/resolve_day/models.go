package resolve_day

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	resolveDay "github.com/m04kA/SMC-AvailabilityService/internal/usecase/resolve_day"
)

// DayResponse HTTP response model
type DayResponse struct {
	Date     string `json:"date"`
	MasterID string `json:"masterId"`
	IsOpen   bool   `json:"isOpen"`
	Reason   string `json:"reason,omitempty"`
	Open     string `json:"open,omitempty"`  // HH:MM
	Close    string `json:"close,omitempty"` // HH:MM
	StartISO string `json:"startISO,omitempty"`
	EndISO   string `json:"endISO,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveDay.Response) *DayResponse {
	w := resp.Window
	result := &DayResponse{
		Date:     w.Date,
		MasterID: resp.Master.ID,
		IsOpen:   w.IsOpen,
		Reason:   string(w.Reason),
	}

	if w.IsOpen {
		result.Open = w.Open.String()
		result.Close = w.Close.String()
		result.StartISO = handlers.FormatInstant(w.Start)
		result.EndISO = handlers.FormatInstant(w.End)
	}

	return result
}
