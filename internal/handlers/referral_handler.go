package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coinfolio/internal/pagination"
	"coinfolio/internal/services"
)

// ReferralHandler handles referral listing and point redemption
type ReferralHandler struct {
	referralService services.ReferralServicer
	auditService    services.AuditServicer
}

// NewReferralHandler creates a new ReferralHandler
func NewReferralHandler(referralService services.ReferralServicer, auditService services.AuditServicer) *ReferralHandler {
	return &ReferralHandler{referralService: referralService, auditService: auditService}
}

// ListReferrals lists accounts the caller referred
// @Summary     List referrals
// @Description Paginated list of accounts that signed up with the caller's referral code
// @Tags        referrals
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(10)
// @Success     200 {object} pagination.PageResponse[services.ReferralEntry] "Referrals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /referrals [get]
func (h *ReferralHandler) ListReferrals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.referralService.ListReferrals(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Redeem trades bonus points for cash
// @Summary     Trade in points
// @Description Convert all bonus points into cash, one point per dollar
// @Tags        referrals
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.TradeInResult "Redemption"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Router      /referrals/redeem [post]
func (h *ReferralHandler) Redeem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.referralService.TradeInPoints(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if result.Redeemed > 0 {
		h.auditService.Log(userID, services.AuditActionRedeemPoints, "portfolio", result.Portfolio.ID, c.ClientIP(),
			map[string]interface{}{"points": strconv.FormatInt(result.Redeemed, 10)})
	}

	c.JSON(http.StatusOK, result)
}
