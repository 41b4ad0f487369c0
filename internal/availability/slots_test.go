package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestGenerateSlots_FullFreeDay(t *testing.T) {
	window := openWindow(t, testDate)

	slots := GenerateSlots(window, nil, 60, 15, Exclusion{})

	require.Len(t, slots, 25)
	assert.True(t, at(t, testDate, 10, 0).Equal(slots[0].Start))
	assert.True(t, at(t, testDate, 11, 0).Equal(slots[0].End))
	assert.True(t, at(t, testDate, 16, 0).Equal(slots[24].Start))
	assert.True(t, at(t, testDate, 17, 0).Equal(slots[24].End))
}

func TestGenerateSlots_BusyIntervalExcludesOverlaps(t *testing.T) {
	window := openWindow(t, testDate)
	busy := []domain.BusyInterval{
		{ID: "evt-9", Start: at(t, testDate, 12, 0), End: at(t, testDate, 13, 0)},
	}

	slots := GenerateSlots(window, busy, 60, 15, Exclusion{})

	starts := make(map[string]bool, len(slots))
	for _, s := range slots {
		starts[s.Start.Format(domain.TimeFormat)] = true
	}

	assert.Len(t, slots, 18)
	assert.True(t, starts["11:00"], "touching the busy start is allowed")
	assert.True(t, starts["13:00"], "touching the busy end is allowed")
	for _, excluded := range []string{"11:15", "11:30", "11:45", "12:00", "12:15", "12:30", "12:45"} {
		assert.False(t, starts[excluded], excluded)
	}
}

func TestGenerateSlots_NeverOverlapsBusy(t *testing.T) {
	window := openWindow(t, testDate)
	busy := []domain.BusyInterval{
		{Start: at(t, testDate, 10, 20), End: at(t, testDate, 10, 50)},
		{Start: at(t, testDate, 13, 5), End: at(t, testDate, 14, 10)},
		{Start: at(t, testDate, 16, 30), End: at(t, testDate, 18, 0)},
	}

	for _, duration := range []int{15, 30, 45, 60, 90} {
		for _, step := range []int{5, 15, 30} {
			for _, s := range GenerateSlots(window, busy, duration, step, Exclusion{}) {
				for _, b := range busy {
					assert.True(t, !s.End.After(b.Start) || !s.Start.Before(b.End),
						"slot %s-%s overlaps busy %s-%s", s.Start, s.End, b.Start, b.End)
				}
				assert.False(t, s.Start.Before(window.Start))
				assert.False(t, s.End.After(window.End))
				assert.Equal(t, time.Duration(duration)*time.Minute, s.Duration())
			}
		}
	}
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	window := openWindow(t, testDate)
	busy := []domain.BusyInterval{
		{Start: at(t, testDate, 11, 0), End: at(t, testDate, 12, 30)},
		{Start: at(t, testDate, 9, 0), End: at(t, testDate, 10, 15)},
	}

	first := GenerateSlots(window, busy, 45, 15, Exclusion{})
	second := GenerateSlots(window, busy, 45, 15, Exclusion{})

	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].Start.Before(first[i].Start))
	}
}

func TestGenerateSlots_ClosingBoundary(t *testing.T) {
	window := openWindow(t, testDate)

	slots := GenerateSlots(window, nil, 60, 1, Exclusion{})

	last := slots[len(slots)-1]
	assert.True(t, at(t, testDate, 16, 0).Equal(last.Start), "slot ending at closing time is included")
	assert.True(t, window.End.Equal(last.End))
	assert.Len(t, slots, 361, "16:01 would end one minute past closing")
}

func TestGenerateSlots_ClosedOrInvalid(t *testing.T) {
	window := openWindow(t, testDate)

	assert.Empty(t, GenerateSlots(Window{Date: testDate, Reason: ReasonDayOff}, nil, 60, 15, Exclusion{}))
	assert.Empty(t, GenerateSlots(window, nil, 0, 15, Exclusion{}))
	assert.Empty(t, GenerateSlots(window, nil, 60, 0, Exclusion{}))
	assert.Empty(t, GenerateSlots(window, nil, 8*60, 15, Exclusion{}))
	assert.NotNil(t, GenerateSlots(window, nil, 8*60, 15, Exclusion{}))
}

func TestGenerateSlots_SelfExclusion(t *testing.T) {
	window := openWindow(t, testDate)
	own := domain.BusyInterval{ID: "evt-1", Start: at(t, testDate, 10, 0), End: at(t, testDate, 11, 0)}

	blocked := GenerateSlots(window, []domain.BusyInterval{own}, 90, 15, Exclusion{})
	require.NotEmpty(t, blocked)
	assert.False(t, at(t, testDate, 10, 0).Equal(blocked[0].Start))

	byID := GenerateSlots(window, []domain.BusyInterval{own}, 90, 15, Exclusion{BookingID: "evt-1"})
	require.NotEmpty(t, byID)
	assert.True(t, at(t, testDate, 10, 0).Equal(byID[0].Start))

	byTime := GenerateSlots(window, []domain.BusyInterval{own}, 90, 15, Exclusion{Start: own.Start, End: own.End})
	assert.Equal(t, byID, byTime)
}

func TestDropBefore(t *testing.T) {
	window := openWindow(t, testDate)
	slots := GenerateSlots(window, nil, 60, 30, Exclusion{})

	remaining := DropBefore(slots, at(t, testDate, 14, 10))

	require.NotEmpty(t, remaining)
	assert.True(t, at(t, testDate, 14, 30).Equal(remaining[0].Start))
	assert.Len(t, remaining, 4)
}
