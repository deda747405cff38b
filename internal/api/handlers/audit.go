package handlers

import (
	"net/http"
	"strconv"

	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/response"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/service"
)

// AuditHandler handles HTTP requests for the audit trail.
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new AuditHandler with the provided service dependency.
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// Logs handles GET requests to retrieve recent audit entries.
// The optional limit query parameter caps the number of entries returned;
// omitted or non-numeric values return everything.
//
// Endpoint: GET /api/audit?limit=100
// Response: 200 OK with array of AuditLogEntry
// Error: 500 Internal Server Error if retrieval fails
func (h *AuditHandler) Logs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid limit", err.Error())
			return
		}
		limit = parsed
	}

	logs, err := h.auditService.GetLogs(limit)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve audit logs", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, logs)
}
