package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns combined dashboard data, sections fetched concurrently
	GetDashboard(ctx context.Context, date, month string) (*DashboardResponse, error)
}
