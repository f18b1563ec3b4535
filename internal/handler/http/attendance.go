package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/attendance"
	"github.com/seika-clinic/attendance-backend-go/internal/handler/http/response"
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	Save(w http.ResponseWriter, r *http.Request)
	BulkSave(w http.ResponseWriter, r *http.Request)
	Analyze(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListByRange(w http.ResponseWriter, r *http.Request)
	ListByStaffMonth(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Save implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var saveReq attendance.SaveAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := saveReq.Validate(); err != nil {
		slog.Error("Save attendance validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	saved, err := h.attendanceService.Save(r.Context(), saveReq)
	if err != nil {
		slog.Error("Save attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record saved successfully", saved)
}

// BulkSave implements AttendanceHandler.
func (h *AttendanceHandlerImpl) BulkSave(w http.ResponseWriter, r *http.Request) {
	var bulkReq attendance.BulkSaveAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&bulkReq); err != nil {
		slog.Error("Bulk save attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := bulkReq.Validate(); err != nil {
		slog.Error("Bulk save attendance validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	saved, err := h.attendanceService.BulkSave(r.Context(), bulkReq)
	if err != nil {
		slog.Error("Bulk save attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance records saved successfully", saved)
}

// Analyze implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Analyze(w http.ResponseWriter, r *http.Request) {
	var analyzeReq attendance.AnalyzeWorkRequest

	if err := json.NewDecoder(r.Body).Decode(&analyzeReq); err != nil {
		slog.Error("Analyze work decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := analyzeReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Analyze(r.Context(), analyzeReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByDate implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "Invalid date parameter, expected YYYY-MM-DD", nil)
		return
	}

	records, err := h.attendanceService.ListByDate(r.Context(), date)
	if err != nil {
		slog.Error("List attendance by date service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListByRange implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByRange(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	_, startOK := validator.IsValidDate(start)
	if _, endOK := validator.IsValidDate(end); !startOK || !endOK {
		response.BadRequest(w, "Invalid start or end parameter, expected YYYY-MM-DD", nil)
		return
	}

	records, err := h.attendanceService.ListByRange(r.Context(), start, end)
	if err != nil {
		slog.Error("List attendance by range service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// ListByStaffMonth implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByStaffMonth(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffId")
	month := r.URL.Query().Get("month")
	if _, ok := validator.IsValidMonth(month); !ok {
		response.BadRequest(w, "Invalid month parameter, expected YYYY-MM", nil)
		return
	}

	records, err := h.attendanceService.ListByStaffMonth(r.Context(), staffID, month)
	if err != nil {
		slog.Error("List attendance by staff month service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staffId")
	date := chi.URLParam(r, "date")
	if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "Invalid date parameter, expected YYYY-MM-DD", nil)
		return
	}

	if err := h.attendanceService.Delete(r.Context(), staffID, date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted successfully", nil)
}
