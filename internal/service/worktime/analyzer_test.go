package worktime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/settings"
)

func TestAnalyzeDayStandardShift(t *testing.T) {
	cfg := settings.DefaultRateConfig()

	// 09:00-18:00 with the 60-minute default break is exactly 8 worked
	// hours, on the boundary everywhere. No flags.
	got, err := AnalyzeDay("09:00", "18:00", cfg)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.EarlyOvertime)
	assert.False(t, got.Overtime)
	assert.False(t, got.EarlyLeave)
	assert.InDelta(t, 0.0, got.LateNightHours, 1e-9)
}

func TestAnalyzeDayFlags(t *testing.T) {
	cfg := settings.DefaultRateConfig()

	cases := []struct {
		name          string
		start, end    string
		earlyOvertime bool
		overtime      bool
		earlyLeave    bool
	}{
		{"early start", "08:30", "17:30", true, false, false},
		{"early start into a long day", "08:30", "18:00", true, true, false},
		{"long day", "09:00", "20:00", false, true, false},
		{"left early", "09:00", "16:00", false, false, true},
		{"start on the standard hour", "09:00", "18:00", false, false, false},
		{"end on the standard hour", "09:00", "17:00", false, false, false},
		{"everything at once", "08:00", "21:00", true, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := AnalyzeDay(c.start, c.end, cfg)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, c.earlyOvertime, got.EarlyOvertime, "early overtime")
			assert.Equal(t, c.overtime, got.Overtime, "overtime")
			assert.Equal(t, c.earlyLeave, got.EarlyLeave, "early leave")
		})
	}
}

func TestAnalyzeDayLateNight(t *testing.T) {
	cfg := settings.DefaultRateConfig()

	got, err := AnalyzeDay("14:00", "23:30", cfg)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Overtime)
	assert.InDelta(t, 1.5, got.LateNightHours, 1e-9)
}

func TestAnalyzeDayEmptyTimes(t *testing.T) {
	cfg := settings.DefaultRateConfig()

	for _, c := range [][2]string{{"", ""}, {"09:00", ""}, {"", "18:00"}} {
		got, err := AnalyzeDay(c[0], c[1], cfg)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestAnalyzeDayMalformedTime(t *testing.T) {
	cfg := settings.DefaultRateConfig()

	_, err := AnalyzeDay("9am", "18:00", cfg)
	assert.Error(t, err)
}

func TestAnalyzeDayIdempotent(t *testing.T) {
	cfg := settings.DefaultRateConfig()

	first, err := AnalyzeDay("08:30", "22:45", cfg)
	require.NoError(t, err)
	second, err := AnalyzeDay("08:30", "22:45", cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
