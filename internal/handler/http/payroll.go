package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/payroll"
	"github.com/seika-clinic/attendance-backend-go/internal/handler/http/response"
	"github.com/seika-clinic/attendance-backend-go/internal/pkg/validator"
)

type PayrollHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	CalculateAll(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	SetCustomItems(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Calculate implements PayrollHandler. The result is a preview; nothing is
// persisted until Save.
func (h *PayrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	staffID := chi.URLParam(r, "staffId")
	if _, ok := validator.IsValidMonth(month); !ok {
		response.BadRequest(w, "Invalid month parameter, expected YYYY-MM", nil)
		return
	}

	calc, err := h.payrollService.Calculate(r.Context(), month, staffID)
	if err != nil {
		slog.Error("Calculate payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToResponse(calc))
}

// CalculateAll implements PayrollHandler.
func (h *PayrollHandlerImpl) CalculateAll(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	if _, ok := validator.IsValidMonth(month); !ok {
		response.BadRequest(w, "Invalid month parameter, expected YYYY-MM", nil)
		return
	}

	calcs, err := h.payrollService.CalculateAll(r.Context(), month)
	if err != nil {
		slog.Error("Calculate all payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToResponses(calcs))
}

// Save implements PayrollHandler.
func (h *PayrollHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	staffID := chi.URLParam(r, "staffId")
	if _, ok := validator.IsValidMonth(month); !ok {
		response.BadRequest(w, "Invalid month parameter, expected YYYY-MM", nil)
		return
	}

	calc, err := h.payrollService.Save(r.Context(), month, staffID)
	if err != nil {
		slog.Error("Save payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll calculation saved successfully", payroll.ToResponse(calc))
}

// Get implements PayrollHandler.
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	staffID := chi.URLParam(r, "staffId")
	if _, ok := validator.IsValidMonth(month); !ok {
		response.BadRequest(w, "Invalid month parameter, expected YYYY-MM", nil)
		return
	}

	calc, err := h.payrollService.Get(r.Context(), month, staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToResponse(calc))
}

// ListByMonth implements PayrollHandler.
func (h *PayrollHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	if _, ok := validator.IsValidMonth(month); !ok {
		response.BadRequest(w, "Invalid month parameter, expected YYYY-MM", nil)
		return
	}

	calcs, err := h.payrollService.ListByMonth(r.Context(), month)
	if err != nil {
		slog.Error("List payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.ToResponses(calcs))
}

// Delete implements PayrollHandler.
func (h *PayrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	staffID := chi.URLParam(r, "staffId")
	if _, ok := validator.IsValidMonth(month); !ok {
		response.BadRequest(w, "Invalid month parameter, expected YYYY-MM", nil)
		return
	}

	if err := h.payrollService.Delete(r.Context(), month, staffID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll calculation deleted successfully", nil)
}

// SetCustomItems implements PayrollHandler.
func (h *PayrollHandlerImpl) SetCustomItems(w http.ResponseWriter, r *http.Request) {
	var itemsReq payroll.SetCustomItemsRequest

	if err := json.NewDecoder(r.Body).Decode(&itemsReq); err != nil {
		slog.Error("Set custom items decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	itemsReq.Month = chi.URLParam(r, "month")
	itemsReq.StaffID = chi.URLParam(r, "staffId")

	if err := itemsReq.Validate(); err != nil {
		slog.Error("Set custom items validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	calc, err := h.payrollService.SetCustomItems(r.Context(), &itemsReq)
	if err != nil {
		slog.Error("Set custom items service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Custom items updated successfully", payroll.ToResponse(calc))
}
