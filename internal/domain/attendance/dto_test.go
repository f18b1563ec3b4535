package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seika-clinic/attendance-backend-go/internal/pkg/validator"
)

func TestSaveAttendanceRequestValidate(t *testing.T) {
	t.Run("valid full day", func(t *testing.T) {
		req := SaveAttendanceRequest{
			StaffID:   "staff-1",
			Date:      "2025-06-02",
			StartTime: "09:00",
			EndTime:   "18:00",
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("empty clock times are allowed", func(t *testing.T) {
		req := SaveAttendanceRequest{
			StaffID: "staff-1",
			Date:    "2025-06-02",
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("end must be later than start", func(t *testing.T) {
		req := SaveAttendanceRequest{
			StaffID:   "staff-1",
			Date:      "2025-06-02",
			StartTime: "18:00",
			EndTime:   "09:00",
		}
		err := req.Validate()
		require.Error(t, err)

		var vErrs validator.ValidationErrors
		require.ErrorAs(t, err, &vErrs)
		assert.Contains(t, vErrs.ToMap(), "end_time")
	})

	t.Run("collects all field errors", func(t *testing.T) {
		negBreak := -30
		req := SaveAttendanceRequest{
			Date:         "06/02/2025",
			StartTime:    "9am",
			BreakMinutes: &negBreak,
		}
		err := req.Validate()
		require.Error(t, err)

		var vErrs validator.ValidationErrors
		require.ErrorAs(t, err, &vErrs)
		m := vErrs.ToMap()
		assert.Contains(t, m, "staff_id")
		assert.Contains(t, m, "date")
		assert.Contains(t, m, "start_time")
		assert.Contains(t, m, "break_minutes")
	})
}

func TestBulkSaveAttendanceRequestValidate(t *testing.T) {
	t.Run("valid entries", func(t *testing.T) {
		req := BulkSaveAttendanceRequest{
			Date: "2025-06-02",
			Entries: []SaveAttendanceRequest{
				{StaffID: "staff-1", StartTime: "09:00", EndTime: "17:00"},
				{StaffID: "staff-2", StartTime: "10:00", EndTime: "19:00"},
			},
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("rejects duplicate staff in one day", func(t *testing.T) {
		req := BulkSaveAttendanceRequest{
			Date: "2025-06-02",
			Entries: []SaveAttendanceRequest{
				{StaffID: "staff-1", StartTime: "09:00", EndTime: "17:00"},
				{StaffID: "staff-1", StartTime: "18:00", EndTime: "20:00"},
			},
		}
		err := req.Validate()
		require.Error(t, err)

		var vErrs validator.ValidationErrors
		require.ErrorAs(t, err, &vErrs)
		assert.Contains(t, vErrs.ToMap(), "entries[1].staff_id")
	})

	t.Run("prefixes entry field errors with the index", func(t *testing.T) {
		req := BulkSaveAttendanceRequest{
			Date: "2025-06-02",
			Entries: []SaveAttendanceRequest{
				{StaffID: "staff-1", StartTime: "25:00", EndTime: "17:00"},
			},
		}
		err := req.Validate()
		require.Error(t, err)

		var vErrs validator.ValidationErrors
		require.ErrorAs(t, err, &vErrs)
		assert.Contains(t, vErrs.ToMap(), "entries[0].start_time")
	})
}

func TestAnalyzeWorkRequestValidate(t *testing.T) {
	valid := AnalyzeWorkRequest{StartTime: "09:00", EndTime: "22:30"}
	assert.NoError(t, valid.Validate())

	invalid := AnalyzeWorkRequest{StartTime: "", EndTime: "17:00"}
	err := invalid.Validate()
	require.Error(t, err)

	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	assert.Contains(t, vErrs.ToMap(), "start_time")
}
