package get_procedures

import (
	getProcedures "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_procedures"
)

// ProceduresResponse HTTP response model
type ProceduresResponse struct {
	MasterID   string      `json:"masterId"`
	Procedures []Procedure `json:"procedures"`
}

// Procedure процедура каталога
type Procedure struct {
	ID          string `json:"id"`
	NamePL      string `json:"name_pl"`
	NameRU      string `json:"name_ru,omitempty"`
	Category    string `json:"category,omitempty"`
	DurationMin int    `json:"duration_min"`
	PricePLN    string `json:"price_pln"`
	Order       *int   `json:"order,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getProcedures.Response) *ProceduresResponse {
	procedures := make([]Procedure, len(resp.Procedures))
	for i, p := range resp.Procedures {
		procedures[i] = Procedure{
			ID:          p.ID,
			NamePL:      p.NamePL,
			NameRU:      p.NameRU,
			Category:    p.Category,
			DurationMin: p.DurationMinutes,
			PricePLN:    p.Price,
			Order:       p.Order,
		}
	}

	return &ProceduresResponse{
		MasterID:   resp.Master.ID,
		Procedures: procedures,
	}
}
