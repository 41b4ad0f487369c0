package masters

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Registry реестр мастеров салона
// Мастер по умолчанию - отмеченный IsDefault, иначе первый в списке
type Registry struct {
	masters []domain.Master
	byID    map[string]domain.Master
	def     domain.Master
}

// NewRegistry создает реестр; порядок мастеров сохраняется
func NewRegistry(masters []domain.Master) (*Registry, error) {
	if len(masters) == 0 {
		return nil, ErrNoMasters
	}

	r := &Registry{
		masters: make([]domain.Master, 0, len(masters)),
		byID:    make(map[string]domain.Master, len(masters)),
		def:     masters[0],
	}

	for _, m := range masters {
		key := normalizeID(m.ID)
		if _, exists := r.byID[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMaster, m.ID)
		}
		r.byID[key] = m
		r.masters = append(r.masters, m)
		if m.IsDefault {
			r.def = m
		}
	}
	r.def.IsDefault = true

	return r, nil
}

// Get возвращает мастера по ID
func (r *Registry) Get(id string) (domain.Master, bool) {
	m, ok := r.byID[normalizeID(id)]
	if ok {
		m.IsDefault = m.ID == r.def.ID
	}
	return m, ok
}

// GetSafe возвращает мастера по ID или мастера по умолчанию для пустого/неизвестного ID
func (r *Registry) GetSafe(id string) domain.Master {
	if m, ok := r.Get(id); ok {
		return m
	}
	return r.def
}

// Default возвращает мастера по умолчанию
func (r *Registry) Default() domain.Master {
	return r.def
}

// List возвращает мастеров в порядке конфигурации
func (r *Registry) List() []domain.Master {
	result := make([]domain.Master, len(r.masters))
	for i, m := range r.masters {
		m.IsDefault = m.ID == r.def.ID
		result[i] = m
	}
	return result
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
