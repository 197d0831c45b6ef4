package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coinfolio/internal/services"
)

// AdminHandler exposes maintenance jobs behind the admin API key
type AdminHandler struct {
	maintenanceService services.MaintenanceServicer
	auditService       services.AuditServicer
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(maintenanceService services.MaintenanceServicer, auditService services.AuditServicer) *AdminHandler {
	return &AdminHandler{maintenanceService: maintenanceService, auditService: auditService}
}

// PurgeOrphans removes rows whose owning account is gone
// @Summary     Purge orphaned rows
// @Description Delete holdings, portfolios and referral records that reference a deleted account
// @Tags        admin
// @Produce     json
// @Param       X-API-Key header string true "Admin API key"
// @Success     200 {object} services.OrphanReport "Rows removed"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     503 {object} ErrorResponse "Maintenance not configured"
// @Router      /admin/maintenance/orphans [post]
func (h *AdminHandler) PurgeOrphans(c *gin.Context) {
	report, err := h.maintenanceService.PurgeOrphans()
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("", services.AuditActionPurgeOrphans, "maintenance", "", c.ClientIP(), map[string]interface{}{
		"holdings":   report.Holdings,
		"portfolios": report.Portfolios,
		"referrals":  report.Referrals,
	})

	c.JSON(http.StatusOK, report)
}
