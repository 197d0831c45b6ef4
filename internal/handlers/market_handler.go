package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coinfolio/internal/services"
)

// MarketHandler serves read-only market data
type MarketHandler struct {
	marketService services.MarketServicer
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(marketService services.MarketServicer) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

// SearchQuery holds the buy page search parameters
type SearchQuery struct {
	Query string `form:"query" binding:"required,max=100"`
}

// ChartQuery holds the price chart parameters
type ChartQuery struct {
	Days int `form:"days" binding:"omitempty,chart_days"`
}

// TopCoins lists coins by market cap
// @Summary     Top coins
// @Description Coins ranked by market cap with 7 day sparklines
// @Tags        market
// @Produce     json
// @Success     200 {array} provider.MarketCoin "Coins"
// @Failure     503 {object} ErrorResponse "Price unavailable"
// @Router      /market/top [get]
func (h *MarketHandler) TopCoins(c *gin.Context) {
	coins, err := h.marketService.TopCoins(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"coins": coins})
}

// Search finds a coin and quotes it for purchase
// @Summary     Search a coin to buy
// @Description Best search hit with its current price, whether it is already held and the caller's cash balance
// @Tags        market
// @Produce     json
// @Security    BearerAuth
// @Param       query query string true "Search text"
// @Success     200 {object} services.SearchQuote "Quote"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No coin found"
// @Failure     503 {object} ErrorResponse "Price unavailable"
// @Router      /market/search [get]
func (h *MarketHandler) Search(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	quote, err := h.marketService.SearchQuote(c.Request.Context(), userID, q.Query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// Chart returns a price history
// @Summary     Price chart
// @Description Price history for a coin, or for the top coin by market cap when no coin is given
// @Tags        market
// @Produce     json
// @Param       coin_id path string false "Coin ID"
// @Param       days query int false "History window in days (1, 7, 14, 30, 90, 180, 365)"
// @Success     200 {object} services.ChartView "Chart"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Coin not found"
// @Failure     503 {object} ErrorResponse "Price unavailable"
// @Router      /market/charts [get]
// @Router      /market/charts/{coin_id} [get]
func (h *MarketHandler) Chart(c *gin.Context) {
	var q ChartQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	chart, err := h.marketService.Chart(c.Request.Context(), c.Param("coin_id"), q.Days)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, chart)
}
