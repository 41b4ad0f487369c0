package availability

import (
	"regexp"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

var (
	// "09.00", "9 00" -> "09:00", "9:00"
	separatedTimeRe = regexp.MustCompile(`(\d{1,2})[.\s]+(\d{2})`)

	hoursRangeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*[–—-]\s*(\d{1,2}):(\d{2})`)
)

// NormalizeHours converts human-entered variants such as "09.00-17.00" or
// "9 00 – 17 00" to the colon form "09:00-17:00".
func NormalizeHours(raw string) string {
	return separatedTimeRe.ReplaceAllString(strings.TrimSpace(raw), "$1:$2")
}

// ParseHours extracts opening and closing wall-clock times from a raw hours string.
// ok is false when no range is found, a time is out of range, or the range is empty.
func ParseHours(raw string) (opening, closing types.TimeString, ok bool) {
	match := hoursRangeRe.FindStringSubmatch(NormalizeHours(raw))
	if match == nil {
		return types.TimeString{}, types.TimeString{}, false
	}

	opening, err := types.NewTimeStringFromString(match[1] + ":" + match[2])
	if err != nil {
		return types.TimeString{}, types.TimeString{}, false
	}
	closing, err = types.NewTimeStringFromString(match[3] + ":" + match[4])
	if err != nil {
		return types.TimeString{}, types.TimeString{}, false
	}

	if !opening.IsBefore(closing) {
		return types.TimeString{}, types.TimeString{}, false
	}

	return opening, closing, true
}
