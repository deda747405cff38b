package handlers

import (
	"net/http"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/response"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/service"
)

// DashboardHandler handles HTTP requests for the firm-wide dashboard.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the provided service dependency.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Dashboard handles GET requests for the firm-wide dashboard aggregate.
// Every figure is recomputed from raw rows; a failed read of any component
// fails the whole request rather than understating capital.
//
// Endpoint: GET /api/dashboard
// Response: 200 OK with DashboardStats
// Error: 500 Internal Server Error if any component read fails
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to load dashboard", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, stats)
}
