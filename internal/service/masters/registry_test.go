package masters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func salonMasters() []domain.Master {
	return []domain.Master{
		{ID: "olga", Name: "Olga", CalendarID: "olga-cal", SheetID: "olga-sheet"},
		{ID: "juli", Name: "Juli", CalendarID: "juli-cal", SheetID: "juli-sheet"},
	}
}

func TestRegistry_GetSafe(t *testing.T) {
	registry, err := NewRegistry(salonMasters())
	require.NoError(t, err)

	assert.Equal(t, "juli", registry.GetSafe("juli").ID)
	assert.Equal(t, "juli", registry.GetSafe(" JULI ").ID)
	assert.Equal(t, "olga", registry.GetSafe("").ID)
	assert.Equal(t, "olga", registry.GetSafe("unknown").ID)
	assert.True(t, registry.GetSafe("").IsDefault)
}

func TestRegistry_ExplicitDefault(t *testing.T) {
	masters := salonMasters()
	masters[1].IsDefault = true

	registry, err := NewRegistry(masters)
	require.NoError(t, err)

	assert.Equal(t, "juli", registry.Default().ID)
	assert.Equal(t, "juli", registry.GetSafe("nobody").CalendarID[:4])

	list := registry.List()
	require.Len(t, list, 2)
	assert.Equal(t, "olga", list[0].ID)
	assert.False(t, list[0].IsDefault)
	assert.True(t, list[1].IsDefault)
}

func TestRegistry_Errors(t *testing.T) {
	_, err := NewRegistry(nil)
	assert.ErrorIs(t, err, ErrNoMasters)

	masters := append(salonMasters(), domain.Master{ID: "Olga"})
	_, err = NewRegistry(masters)
	assert.ErrorIs(t, err, ErrDuplicateMaster)
}
