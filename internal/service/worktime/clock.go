package worktime

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ClockMinutes parses a 24-hour "HH:mm" clock string into minutes since
// midnight (0-1439). Malformed input is a caller contract violation and
// returns an error; it is never silently treated as a zero duration.
func ClockMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q: want HH:mm", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return hour*60 + minute, nil
}

// HoursBetween returns the duration from start to end in hours. An end
// earlier than the start is taken as a shift crossing midnight and wraps
// forward by 24 hours.
func HoursBetween(start, end string) (float64, error) {
	startMin, err := ClockMinutes(start)
	if err != nil {
		return 0, err
	}
	endMin, err := ClockMinutes(end)
	if err != nil {
		return 0, err
	}

	if endMin < startMin {
		endMin += minutesPerDay
	}

	return float64(endMin-startMin) / 60, nil
}

// LateNightOverlap returns the hours of the shift falling inside the
// late-night window. The window is treated as two sub-intervals on a 48-hour
// timeline, [nightStartHour, 24) and [24, 24+nightEndHour), with the shift
// extended past 24h when end < start. Zero is a valid result, not "no data".
func LateNightOverlap(start, end string, nightStartHour, nightEndHour int) (float64, error) {
	startMin, err := ClockMinutes(start)
	if err != nil {
		return 0, err
	}
	endMin, err := ClockMinutes(end)
	if err != nil {
		return 0, err
	}

	if endMin < startMin {
		endMin += minutesPerDay
	}

	nightStart := nightStartHour * 60
	nightEnd := (24 + nightEndHour) * 60

	overlap := 0

	// Evening portion, nightStartHour through midnight.
	from := max(startMin, nightStart)
	to := min(endMin, minutesPerDay)
	if from < to {
		overlap += to - from
	}

	// Early-morning portion past midnight, only reachable for wrapped shifts.
	if endMin > minutesPerDay {
		from = max(startMin, minutesPerDay)
		to = min(endMin, nightEnd)
		if from < to {
			overlap += to - from
		}
	}

	return float64(overlap) / 60, nil
}
