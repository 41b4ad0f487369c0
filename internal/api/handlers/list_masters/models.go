package list_masters

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// MastersResponse HTTP response model; календарь и таблица мастера наружу не отдаются
type MastersResponse struct {
	Masters []Master `json:"masters"`
}

type Master struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
}

func FromDomain(masters []domain.Master) *MastersResponse {
	result := make([]Master, len(masters))
	for i, m := range masters {
		result[i] = Master{ID: m.ID, Name: m.Name, IsDefault: m.IsDefault}
	}
	return &MastersResponse{Masters: result}
}
