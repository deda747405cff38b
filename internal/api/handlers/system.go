package handlers

import (
	"net/http"
	"time"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/response"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/service"
)

// SystemHandler handles HTTP requests for system endpoints.
type SystemHandler struct {
	systemService *service.SystemService
	sweepService  *service.SweepService
}

// NewSystemHandler creates a new SystemHandler with the provided service dependencies.
func NewSystemHandler(systemService *service.SystemService, sweepService *service.SweepService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
		sweepService:  sweepService,
	}
}

// Health handles GET requests for the health check.
//
// Endpoint: GET /api/system/health
// Response: 200 OK with {"status": "healthy"}
// Error: 503 Service Unavailable if the database is unreachable
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		response.RespondError(w, http.StatusServiceUnavailable, "unhealthy", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Version handles GET requests for the application version.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with {"version": "..."}
func (h *SystemHandler) Version(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, map[string]string{"version": h.systemService.CheckVersion()})
}

// RunSweep handles POST requests to trigger the waiting-period maturation
// sweep. Used by external schedulers; the in-process cron scheduler calls
// the service directly. The route is protected by the API key middleware.
//
// Endpoint: POST /api/system/waiting-period-sweep
// Response: 200 OK with SweepResult
// Error: 500 Internal Server Error if the sweep fails
func (h *SystemHandler) RunSweep(w http.ResponseWriter, _ *http.Request) {
	result, err := h.sweepService.Run(time.Now())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to run maturation sweep", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
