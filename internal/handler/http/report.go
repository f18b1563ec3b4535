package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/report"
	"github.com/seika-clinic/attendance-backend-go/internal/handler/http/response"
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	ExportPayroll(w http.ResponseWriter, r *http.Request)
	ExportAttendance(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

func writeWorkbook(w http.ResponseWriter, content []byte, filename string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		slog.Error("Failed to write workbook response", "error", err)
	}
}

// ExportPayroll implements ReportHandler.
func (h *ReportHandlerImpl) ExportPayroll(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if _, ok := validator.IsValidMonth(month); !ok {
		response.BadRequest(w, "Invalid month parameter, expected YYYY-MM", nil)
		return
	}

	content, filename, err := h.reportService.ExportPayrollMonth(r.Context(), month)
	if err != nil {
		slog.Error("Export payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, content, filename)
}

// ExportAttendance implements ReportHandler.
func (h *ReportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if _, ok := validator.IsValidMonth(month); !ok {
		response.BadRequest(w, "Invalid month parameter, expected YYYY-MM", nil)
		return
	}

	content, filename, err := h.reportService.ExportAttendanceMonth(r.Context(), month)
	if err != nil {
		slog.Error("Export attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, content, filename)
}
