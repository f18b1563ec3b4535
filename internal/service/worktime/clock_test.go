package worktime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"23:59", 1439},
		{"12:30", 750},
	}
	for _, c := range cases {
		got, err := ClockMinutes(c.input)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "ClockMinutes(%q)", c.input)
	}
}

func TestClockMinutesRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "9:00:00", "24:00", "12:60", "ab:cd", "12-30"} {
		_, err := ClockMinutes(input)
		assert.Error(t, err, "ClockMinutes(%q)", input)
	}
}

func TestHoursBetween(t *testing.T) {
	cases := []struct {
		start, end string
		want       float64
	}{
		{"09:00", "18:00", 9},
		{"09:00", "09:00", 0},
		{"09:15", "17:45", 8.5},
		// Crossing midnight wraps forward.
		{"22:00", "06:00", 8},
		{"23:30", "00:30", 1},
	}
	for _, c := range cases {
		got, err := HoursBetween(c.start, c.end)
		require.NoError(t, err)
		assert.InDelta(t, c.want, got, 1e-9, "HoursBetween(%q, %q)", c.start, c.end)
	}
}

func TestLateNightOverlap(t *testing.T) {
	cases := []struct {
		start, end string
		want       float64
	}{
		{"09:00", "17:00", 0},
		{"21:00", "23:00", 1},
		{"22:00", "23:00", 1},
		// Wrapped shift covers both the evening and the morning portion.
		{"22:00", "01:00", 3},
		{"20:00", "06:00", 7},
		// Ends exactly at the window start.
		{"18:00", "22:00", 0},
		// Morning hours without a wrap never count; the window's morning
		// half lives past the 24h mark and is only reachable by wrapping.
		{"03:00", "07:00", 0},
	}
	for _, c := range cases {
		got, err := LateNightOverlap(c.start, c.end, 22, 5)
		require.NoError(t, err)
		assert.InDelta(t, c.want, got, 1e-9, "LateNightOverlap(%q, %q)", c.start, c.end)
	}
}

func TestLateNightOverlapCustomWindow(t *testing.T) {
	got, err := LateNightOverlap("19:00", "23:00", 20, 4)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-9)
}
