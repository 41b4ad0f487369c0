package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func TestWorkingHours_AllowsCategory(t *testing.T) {
	osteo := WorkingHours{Hours: "10:00-17:00", Category: "osteo"}

	assert.True(t, osteo.AllowsCategory(ptr.Ptr("osteo")))
	assert.True(t, osteo.AllowsCategory(ptr.Ptr(" Osteo ")))
	assert.False(t, osteo.AllowsCategory(ptr.Ptr("massage")))
	assert.False(t, osteo.AllowsCategory(ptr.Ptr("")))
	assert.True(t, osteo.AllowsCategory(nil))

	assert.True(t, WorkingHours{Category: "all"}.AllowsCategory(ptr.Ptr("massage")))
	assert.True(t, WorkingHours{}.AllowsCategory(ptr.Ptr("massage")))
}

func TestBusyInterval_Overlaps(t *testing.T) {
	base := time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return base.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }
	busy := BusyInterval{Start: at(12, 0), End: at(13, 0)}

	assert.True(t, busy.Overlaps(at(11, 15), at(12, 15)))
	assert.True(t, busy.Overlaps(at(12, 0), at(13, 0)))
	assert.True(t, busy.Overlaps(at(12, 45), at(13, 45)))
	assert.False(t, busy.Overlaps(at(11, 0), at(12, 0)))
	assert.False(t, busy.Overlaps(at(13, 0), at(14, 0)))
}

func TestActiveProcedures_SortsByOrder(t *testing.T) {
	procedures := []Procedure{
		{ID: "c", IsActive: true},
		{ID: "b", IsActive: true, Order: ptr.Ptr(2)},
		{ID: "x", IsActive: false, Order: ptr.Ptr(0)},
		{ID: "a", IsActive: true, Order: ptr.Ptr(1)},
	}

	active := ActiveProcedures(procedures)

	ids := make([]string, 0, len(active))
	for _, p := range active {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestWeekdayKey(t *testing.T) {
	assert.Equal(t, Tuesday, WeekdayKey(time.Tuesday))
	assert.Equal(t, Sunday, WeekdayKey(time.Sunday))
}

func TestSalonPolicy(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)

	busyStart, _ := types.NewTimeStringFromString("05:00")
	busyEnd, _ := types.NewTimeStringFromString("22:00")
	policy := SalonPolicy{
		Location:                loc,
		MinBookingNoticeMinutes: 60,
		BusyWindowStart:         busyStart,
		BusyWindowEnd:           busyEnd,
	}

	day := time.Date(2024, 6, 11, 0, 0, 0, 0, loc)
	from, to := policy.BusyRange(day)
	assert.Equal(t, time.Date(2024, 6, 11, 5, 0, 0, 0, loc), from)
	assert.Equal(t, time.Date(2024, 6, 11, 22, 0, 0, 0, loc), to)

	now := time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC) // 01:30 in Warsaw
	assert.Equal(t, now.Add(time.Hour), policy.EarliestStart(now))
	assert.Equal(t, day, policy.Today(now))
}
