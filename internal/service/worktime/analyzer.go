package worktime

import (
	"github.com/seika-clinic/attendance-backend-go/internal/domain/settings"
)

// DayAnalysis classifies a single shift for display alongside the attendance
// record (badges in the schedule view). The monthly payroll aggregation makes
// its own, independent overtime decision against the cumulative monthly
// threshold; the two can legitimately disagree and are not reconciled.
type DayAnalysis struct {
	EarlyOvertime  bool    `json:"early_overtime"`
	Overtime       bool    `json:"overtime"`
	EarlyLeave     bool    `json:"early_leave"`
	LateNightHours float64 `json:"late_night_overtime_hours"`
}

// AnalyzeDay classifies one shift against the configured reference hours.
// Pure function of its inputs. Returns nil when either clock time is empty,
// meaning the record was not analyzed and any previously stored flags should
// be cleared.
//
// The boolean flags compare raw clock positions and never wrap an
// end-before-start shift across midnight (the save path rejects end <= start
// as an input error). The late-night hours computation does wrap, per
// LateNightOverlap. The asymmetry is deliberate and kept as-is.
func AnalyzeDay(start, end string, cfg settings.RateConfig) (*DayAnalysis, error) {
	if start == "" || end == "" {
		return nil, nil
	}

	startMin, err := ClockMinutes(start)
	if err != nil {
		return nil, err
	}
	endMin, err := ClockMinutes(end)
	if err != nil {
		return nil, err
	}

	worked := float64(endMin-startMin)/60 - float64(cfg.DefaultBreakMinutes)/60

	lateNight, err := LateNightOverlap(start, end, cfg.LateNightStartHour, cfg.LateNightEndHour)
	if err != nil {
		return nil, err
	}

	return &DayAnalysis{
		EarlyOvertime:  startMin < cfg.EarlyOvertimeStandardHour*60,
		Overtime:       worked > cfg.RegularHoursPerDay,
		EarlyLeave:     endMin < cfg.EarlyLeaveStandardHour*60,
		LateNightHours: lateNight,
	}, nil
}
