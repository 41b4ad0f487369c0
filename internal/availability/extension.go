package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ExtensionStatus is the outcome of an extension check
type ExtensionStatus string

const (
	StatusCanExtend      ExtensionStatus = "can_extend"
	StatusCanShiftBack   ExtensionStatus = "can_shift_back"
	StatusNoAvailability ExtensionStatus = "no_availability"
)

// ExtensionReason explains why the booking cannot keep its start time
type ExtensionReason string

const (
	ExtensionReasonNone                ExtensionReason = ""
	ExtensionReasonDayClosed           ExtensionReason = "day_closed"
	ExtensionReasonConflict            ExtensionReason = "conflict"
	ExtensionReasonOutsideWorkingHours ExtensionReason = "outside_working_hours"
)

// ExtensionRequest describes a booking whose service changes duration
type ExtensionRequest struct {
	BookingID          string
	CurrentStart       time.Time
	CurrentEnd         time.Time
	NewDurationMinutes int
	StepMinutes        int
}

// ExtensionResult is the answer of CheckExtension.
// Suggested is set for StatusCanShiftBack; Alternatives lists every free slot of the
// new duration on that day when the booking cannot stay in place.
type ExtensionResult struct {
	Status       ExtensionStatus
	Reason       ExtensionReason
	NewEnd       time.Time
	Suggested    *domain.Slot
	Alternatives []domain.Slot
}

// CheckExtension decides whether a booking can keep its start time with a new duration.
// The closing check compares wall-clock minutes since local midnight so that it stays
// correct on daylight-saving transition days.
func CheckExtension(window Window, busy []domain.BusyInterval, req ExtensionRequest) ExtensionResult {
	newDuration := time.Duration(req.NewDurationMinutes) * time.Minute
	newEnd := req.CurrentStart.Add(newDuration)

	// Shorter or equal service always fits into the booking's own interval
	if newDuration <= req.CurrentEnd.Sub(req.CurrentStart) {
		return ExtensionResult{Status: StatusCanExtend, NewEnd: newEnd}
	}

	if !window.IsOpen {
		return ExtensionResult{Status: StatusNoAvailability, Reason: ExtensionReasonDayClosed}
	}

	exclude := Exclusion{BookingID: req.BookingID, Start: req.CurrentStart, End: req.CurrentEnd}
	blocking := exclude.Filter(busy)

	conflict := hasConflict(blocking, req.CurrentStart, newEnd)
	withinHours := endsWithinSchedule(window, newEnd)
	if !conflict && withinHours {
		return ExtensionResult{Status: StatusCanExtend, NewEnd: newEnd}
	}

	reason := ExtensionReasonConflict
	if !conflict {
		reason = ExtensionReasonOutsideWorkingHours
	}

	step := req.StepMinutes
	if step <= 0 {
		step = domain.DefaultStepMinutes
	}
	alternatives := GenerateSlots(window, busy, req.NewDurationMinutes, step, exclude)

	var suggested *domain.Slot
	for i := range alternatives {
		if alternatives[i].Start.After(req.CurrentStart) {
			break
		}
		suggested = &alternatives[i]
	}

	if suggested != nil {
		return ExtensionResult{
			Status:       StatusCanShiftBack,
			Reason:       reason,
			Suggested:    suggested,
			Alternatives: alternatives,
		}
	}

	return ExtensionResult{
		Status:       StatusNoAvailability,
		Reason:       reason,
		Alternatives: alternatives,
	}
}

// endsWithinSchedule compares the end's wall-clock minutes with the closing minutes.
// An end at local midnight of the next day counts as 24:00.
func endsWithinSchedule(window Window, end time.Time) bool {
	local := end.In(window.Start.Location())
	endMinutes := local.Hour()*60 + local.Minute()

	switch local.Format(domain.DateFormat) {
	case window.Date:
	case window.Start.AddDate(0, 0, 1).Format(domain.DateFormat):
		if endMinutes != 0 {
			return false
		}
		endMinutes = 24 * 60
	default:
		return false
	}

	return endMinutes <= window.Close.Minutes()
}
