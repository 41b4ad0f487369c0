package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestCheckExtension_FitsInPlace(t *testing.T) {
	window := openWindow(t, testDate)

	result := CheckExtension(window, nil, ExtensionRequest{
		BookingID:          "evt-1",
		CurrentStart:       at(t, testDate, 14, 0),
		CurrentEnd:         at(t, testDate, 14, 30),
		NewDurationMinutes: 45,
		StepMinutes:        15,
	})

	assert.Equal(t, StatusCanExtend, result.Status)
	assert.Equal(t, ExtensionReasonNone, result.Reason)
	assert.True(t, at(t, testDate, 14, 45).Equal(result.NewEnd))
	assert.Nil(t, result.Suggested)
}

func TestCheckExtension_IgnoresOwnReservation(t *testing.T) {
	window := openWindow(t, testDate)
	own := domain.BusyInterval{ID: "evt-1", Start: at(t, testDate, 10, 0), End: at(t, testDate, 11, 0)}

	byID := CheckExtension(window, []domain.BusyInterval{own}, ExtensionRequest{
		BookingID:          "evt-1",
		CurrentStart:       own.Start,
		CurrentEnd:         own.End,
		NewDurationMinutes: 90,
	})
	assert.Equal(t, StatusCanExtend, byID.Status)

	own.ID = ""
	byTime := CheckExtension(window, []domain.BusyInterval{own}, ExtensionRequest{
		CurrentStart:       own.Start,
		CurrentEnd:         own.End,
		NewDurationMinutes: 90,
	})
	assert.Equal(t, StatusCanExtend, byTime.Status)
}

func TestCheckExtension_ShorterServiceAlwaysFits(t *testing.T) {
	closed := Window{Date: "2024-06-16", Reason: ReasonDayOff}

	result := CheckExtension(closed, nil, ExtensionRequest{
		CurrentStart:       at(t, "2024-06-16", 10, 0),
		CurrentEnd:         at(t, "2024-06-16", 11, 0),
		NewDurationMinutes: 30,
	})

	assert.Equal(t, StatusCanExtend, result.Status)
}

func TestCheckExtension_ClosedDay(t *testing.T) {
	closed := Window{Date: "2024-06-16", Reason: ReasonUnparseableHours}

	result := CheckExtension(closed, nil, ExtensionRequest{
		CurrentStart:       at(t, "2024-06-16", 10, 0),
		CurrentEnd:         at(t, "2024-06-16", 10, 30),
		NewDurationMinutes: 60,
	})

	assert.Equal(t, StatusNoAvailability, result.Status)
	assert.Equal(t, ExtensionReasonDayClosed, result.Reason)
	assert.Empty(t, result.Alternatives)
}

func TestCheckExtension_ConflictSuggestsEarlierStart(t *testing.T) {
	window := openWindow(t, testDate)
	busy := []domain.BusyInterval{
		{ID: "evt-1", Start: at(t, testDate, 14, 0), End: at(t, testDate, 14, 30)},
		{ID: "evt-2", Start: at(t, testDate, 14, 30), End: at(t, testDate, 15, 0)},
	}

	result := CheckExtension(window, busy, ExtensionRequest{
		BookingID:          "evt-1",
		CurrentStart:       at(t, testDate, 14, 0),
		CurrentEnd:         at(t, testDate, 14, 30),
		NewDurationMinutes: 45,
		StepMinutes:        15,
	})

	assert.Equal(t, StatusCanShiftBack, result.Status)
	assert.Equal(t, ExtensionReasonConflict, result.Reason)
	require.NotNil(t, result.Suggested)
	assert.True(t, at(t, testDate, 13, 45).Equal(result.Suggested.Start))
	assert.True(t, at(t, testDate, 14, 30).Equal(result.Suggested.End))
	assert.NotEmpty(t, result.Alternatives)
}

func TestCheckExtension_PastClosingSuggestsEarlierStart(t *testing.T) {
	window := openWindow(t, testDate)

	result := CheckExtension(window, nil, ExtensionRequest{
		CurrentStart:       at(t, testDate, 16, 30),
		CurrentEnd:         at(t, testDate, 17, 0),
		NewDurationMinutes: 60,
		StepMinutes:        15,
	})

	assert.Equal(t, StatusCanShiftBack, result.Status)
	assert.Equal(t, ExtensionReasonOutsideWorkingHours, result.Reason)
	require.NotNil(t, result.Suggested)
	assert.True(t, at(t, testDate, 16, 0).Equal(result.Suggested.Start))
}

func TestCheckExtension_NoEarlierSlot(t *testing.T) {
	window := openWindow(t, testDate)
	busy := []domain.BusyInterval{
		{ID: "evt-2", Start: at(t, testDate, 10, 30), End: at(t, testDate, 11, 0)},
	}

	result := CheckExtension(window, busy, ExtensionRequest{
		BookingID:          "evt-1",
		CurrentStart:       at(t, testDate, 10, 0),
		CurrentEnd:         at(t, testDate, 10, 30),
		NewDurationMinutes: 60,
		StepMinutes:        15,
	})

	assert.Equal(t, StatusNoAvailability, result.Status)
	assert.Equal(t, ExtensionReasonConflict, result.Reason)
	assert.Nil(t, result.Suggested)
	require.NotEmpty(t, result.Alternatives)
	assert.True(t, at(t, testDate, 11, 0).Equal(result.Alternatives[0].Start))
}

func TestCheckExtension_FullyBookedDay(t *testing.T) {
	window := openWindow(t, testDate)
	busy := []domain.BusyInterval{
		{ID: "evt-2", Start: at(t, testDate, 10, 0), End: at(t, testDate, 14, 0)},
		{ID: "evt-1", Start: at(t, testDate, 14, 0), End: at(t, testDate, 14, 30)},
		{ID: "evt-3", Start: at(t, testDate, 14, 30), End: at(t, testDate, 17, 0)},
	}

	result := CheckExtension(window, busy, ExtensionRequest{
		BookingID:          "evt-1",
		CurrentStart:       at(t, testDate, 14, 0),
		CurrentEnd:         at(t, testDate, 14, 30),
		NewDurationMinutes: 60,
	})

	assert.Equal(t, StatusNoAvailability, result.Status)
	assert.Empty(t, result.Alternatives)
}

func TestCheckExtension_DaylightSavingDays(t *testing.T) {
	resolver := NewResolver(warsaw(t))

	// 2024-03-31 clocks go forward, 2024-10-27 clocks go back; both are Sundays
	for _, date := range []string{"2024-03-31", "2024-10-27"} {
		t.Run(date, func(t *testing.T) {
			exceptions := domain.Exceptions{date: {Hours: "10:00-17:00"}}
			window, err := resolver.ResolveDay(date, standardWeek(), exceptions, nil)
			require.NoError(t, err)

			fits := CheckExtension(window, nil, ExtensionRequest{
				CurrentStart:       at(t, date, 16, 0),
				CurrentEnd:         at(t, date, 16, 30),
				NewDurationMinutes: 60,
			})
			assert.Equal(t, StatusCanExtend, fits.Status)

			overflows := CheckExtension(window, nil, ExtensionRequest{
				CurrentStart:       at(t, date, 16, 30),
				CurrentEnd:         at(t, date, 17, 0),
				NewDurationMinutes: 60,
			})
			assert.Equal(t, ExtensionReasonOutsideWorkingHours, overflows.Reason)
		})
	}
}

func TestCheckExtension_ClosingAtMidnight(t *testing.T) {
	exceptions := domain.Exceptions{testDate: {Hours: "18:00-24:00"}}
	window, err := NewResolver(warsaw(t)).ResolveDay(testDate, standardWeek(), exceptions, nil)
	require.NoError(t, err)

	result := CheckExtension(window, nil, ExtensionRequest{
		CurrentStart:       at(t, testDate, 23, 0),
		CurrentEnd:         at(t, testDate, 23, 30),
		NewDurationMinutes: 60,
	})

	assert.Equal(t, StatusCanExtend, result.Status)
}
