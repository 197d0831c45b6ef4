package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"coinfolio/internal/services"
)

// PortfolioHandler handles portfolio trades and valuation
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
	auditService     services.AuditServicer
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService services.PortfolioServicer, auditService services.AuditServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, auditService: auditService}
}

// BuyRequest represents a purchase of a coin for a cash amount
type BuyRequest struct {
	CoinID string          `json:"coin_id" binding:"required,coin_id"`
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0" swaggertype:"string" example:"500.00"`
}

// SellRequest represents a sale of part or all of a holding
type SellRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required,gt=0" swaggertype:"string" example:"4"`
}

// GetPortfolio refreshes valuations and returns the portfolio
// @Summary     Get portfolio
// @Description Re-price every holding, persist the new crypto value and return balances, holdings, referral code, referrals and bonus points
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.PortfolioView "Portfolio"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Router      /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.portfolioService.GetPortfolio(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetPriceChanges returns the 24h change of each held coin
// @Summary     Held coin 24h changes
// @Description 24 hour price change for every coin the caller holds. Coins without data report 0.
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} services.PriceChange "Changes"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /portfolio/changes [get]
func (h *PortfolioHandler) GetPriceChanges(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes, err := h.portfolioService.PriceChanges(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"changes": changes})
}

// Buy purchases a coin for a cash amount
// @Summary     Buy a coin
// @Description Spend a cash amount on a coin at the current market price
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BuyRequest true "Coin and cash amount"
// @Success     201 {object} services.TradeResult "Trade result"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient funds"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Coin not found"
// @Failure     503 {object} ErrorResponse "Price unavailable"
// @Router      /portfolio/buy [post]
func (h *PortfolioHandler) Buy(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.portfolioService.Buy(c.Request.Context(), userID, req.CoinID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionBuy, "holding", result.Holding.ID, c.ClientIP(), map[string]interface{}{
		"coin_id":  req.CoinID,
		"amount":   result.Amount.String(),
		"quantity": result.Quantity.String(),
		"price":    result.Price.String(),
	})

	c.JSON(http.StatusCreated, result)
}

// GetHolding returns a holding with a fresh quote
// @Summary     Get holding quote
// @Description Holding details with fresh market data for the sell page. Stored values are returned with price_available=false when the price source fails.
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding ID"
// @Success     200 {object} services.HoldingQuote "Holding quote"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Router      /portfolio/holdings/{id} [get]
func (h *PortfolioHandler) GetHolding(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	holdingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	quote, err := h.portfolioService.GetHoldingQuote(c.Request.Context(), userID, holdingID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// Sell sells a quantity of a holding
// @Summary     Sell a holding
// @Description Sell a quantity of a holding at its last observed price. Selling the whole position removes it.
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding ID"
// @Param       request body SellRequest true "Quantity to sell"
// @Success     200 {object} services.TradeResult "Trade result"
// @Failure     400 {object} ErrorResponse "Invalid input or insufficient quantity"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Router      /portfolio/holdings/{id}/sell [post]
func (h *PortfolioHandler) Sell(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	holdingID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	result, err := h.portfolioService.Sell(c.Request.Context(), userID, holdingID, req.Quantity)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionSell, "holding", holdingID, c.ClientIP(), map[string]interface{}{
		"quantity": req.Quantity.String(),
		"proceeds": result.Amount.String(),
		"price":    result.Price.String(),
	})

	c.JSON(http.StatusOK, result)
}

// Reset restores the starting balance
// @Summary     Reset portfolio
// @Description Delete every holding and restore the starting cash balance
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Portfolio "Reset portfolio"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Router      /portfolio/reset [post]
func (h *PortfolioHandler) Reset(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	portfolio, err := h.portfolioService.Reset(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, services.AuditActionReset, "portfolio", portfolio.ID, c.ClientIP(), nil)
	c.JSON(http.StatusOK, gin.H{"portfolio": portfolio})
}
