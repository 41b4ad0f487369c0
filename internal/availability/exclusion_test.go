package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestExclusion_Matches(t *testing.T) {
	start := at(t, testDate, 10, 0)
	end := at(t, testDate, 11, 0)
	exclusion := Exclusion{BookingID: "evt-1", Start: start, End: end}

	tests := []struct {
		name string
		busy domain.BusyInterval
		want bool
	}{
		{name: "same id, other time", busy: domain.BusyInterval{ID: "evt-1", Start: start.Add(time.Hour), End: end.Add(time.Hour)}, want: true},
		{name: "no id, exact time", busy: domain.BusyInterval{Start: start, End: end}, want: true},
		{name: "other id, drift within tolerance", busy: domain.BusyInterval{ID: "evt-2", Start: start.Add(500 * time.Millisecond), End: end.Add(-time.Second)}, want: true},
		{name: "start drift beyond tolerance", busy: domain.BusyInterval{Start: start.Add(2 * time.Second), End: end}, want: false},
		{name: "same start, other end", busy: domain.BusyInterval{Start: start, End: end.Add(15 * time.Minute)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exclusion.Matches(tt.busy))
		})
	}
}

func TestExclusion_EmptyMatchesNothing(t *testing.T) {
	busy := []domain.BusyInterval{
		{Start: at(t, testDate, 10, 0), End: at(t, testDate, 11, 0)},
		{ID: "", Start: at(t, testDate, 12, 0), End: at(t, testDate, 13, 0)},
	}

	assert.Equal(t, busy, Exclusion{}.Filter(busy))
}
