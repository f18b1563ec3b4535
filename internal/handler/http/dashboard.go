package http

import (
	"log/slog"
	"net/http"

	"github.com/seika-clinic/attendance-backend-go/internal/domain/dashboard"
	"github.com/seika-clinic/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetDashboard implements DashboardHandler. Both parameters are optional and
// default to today.
func (h *DashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	month := r.URL.Query().Get("month")

	data, err := h.dashboardService.GetDashboard(r.Context(), date, month)
	if err != nil {
		slog.Error("Get dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}
