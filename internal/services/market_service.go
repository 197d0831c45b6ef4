package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "coinfolio/internal/errors"
	"coinfolio/internal/logger"
	"coinfolio/internal/models"
	"coinfolio/internal/provider"
)

const (
	// homeCoins is the size of the market-cap ranking on the home page.
	homeCoins = 10
	// chartCoins is the size of the coin picker next to the chart.
	chartCoins = 25
	// DefaultChartDays is the history window when none is requested.
	DefaultChartDays = 30
)

// marketService serves read-only market data.
type marketService struct {
	db     *gorm.DB
	prices provider.PriceSource
}

// NewMarketService creates a new MarketServicer.
func NewMarketService(db *gorm.DB, prices provider.PriceSource) MarketServicer {
	return &marketService{db: db, prices: prices}
}

// priceSourceError maps a provider failure onto the API error table.
func priceSourceError(err error, notFound *apperrors.AppError) error {
	if errors.Is(err, provider.ErrNotFound) {
		return apperrors.Wrap(notFound, err)
	}
	return apperrors.Wrap(apperrors.ErrPriceUnavailable, err)
}

// SearchQuote finds the best hit for query and prices it, noting whether the
// caller already holds the coin and how much cash they have.
func (s *marketService) SearchQuote(ctx context.Context, userID, query string) (*SearchQuote, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "query is required")
	}

	hit, err := s.prices.Search(ctx, query)
	if err != nil {
		logger.Get().Warnw("coin search failed", "query", query, "error", err)
		return nil, priceSourceError(err, apperrors.ErrCoinNotFound)
	}

	prices, err := s.prices.SimplePrices(ctx, []string{hit.ID})
	if err != nil {
		logger.Get().Warnw("price source request failed", "coin_id", hit.ID, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrPriceUnavailable, err)
	}
	price, ok := prices[hit.ID]
	if !ok || !price.Price.IsPositive() {
		return nil, apperrors.ErrPriceUnavailable
	}

	quote := &SearchQuote{
		Coin:        hit,
		Price:       price.Price,
		Change24h:   price.Change24h,
		CashBalance: decimal.Zero,
	}

	var holding models.Holding
	err = s.db.Where("user_id = ? AND coin_id = ?", userID, hit.ID).First(&holding).Error
	switch {
	case err == nil:
		quote.AlreadyHeld = true
		quote.HoldingID = holding.ID
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var portfolio models.Portfolio
	err = s.db.Where("user_id = ?", userID).First(&portfolio).Error
	switch {
	case err == nil:
		quote.CashBalance = portfolio.CashBalance
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return quote, nil
}

// TopCoins returns the market-cap ranking with 7 day sparklines.
func (s *marketService) TopCoins(ctx context.Context) ([]provider.MarketCoin, error) {
	coins, err := s.prices.TopMarkets(ctx, homeCoins, true)
	if err != nil {
		logger.Get().Warnw("top markets request failed", "error", err)
		return nil, apperrors.Wrap(apperrors.ErrPriceUnavailable, err)
	}
	return coins, nil
}

// Chart returns the price history of coinID, or of the top coin by market
// cap when coinID is empty.
func (s *marketService) Chart(ctx context.Context, coinID string, days int) (*ChartView, error) {
	if days <= 0 {
		days = DefaultChartDays
	}

	coins, err := s.prices.TopMarkets(ctx, chartCoins, false)
	if err != nil {
		logger.Get().Warnw("top markets request failed", "error", err)
		return nil, apperrors.Wrap(apperrors.ErrPriceUnavailable, err)
	}

	if coinID == "" {
		if len(coins) == 0 {
			return nil, apperrors.ErrCoinNotFound
		}
		coinID = coins[0].ID
	}

	points, err := s.prices.MarketChart(ctx, coinID, days)
	if err != nil {
		logger.Get().Warnw("market chart request failed", "coin_id", coinID, "error", err)
		return nil, priceSourceError(err, apperrors.ErrCoinNotFound)
	}

	return &ChartView{CoinID: coinID, Days: days, Prices: points, Coins: coins}, nil
}
