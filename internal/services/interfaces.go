package services

import (
	"context"

	"github.com/shopspring/decimal"

	"coinfolio/internal/models"
	"coinfolio/internal/pagination"
	"coinfolio/internal/provider"
)

// UserServicer defines the contract for account-related business logic.
type UserServicer interface {
	CreateUser(username, email, password, referralCode string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(login, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
	DeleteUser(userID string) error
}

// PortfolioView is the refreshed portfolio page: balances, holdings and the
// caller's referral state.
type PortfolioView struct {
	Portfolio    *models.Portfolio `json:"portfolio"`
	Holdings     []models.Holding  `json:"holdings"`
	ReferralCode string            `json:"referral_code"`
	Referrals    []string          `json:"referrals"`
	Bonus        int64             `json:"bonus"`
	TotalValue   decimal.Decimal   `json:"total_value"`
}

// TradeResult reports the state after a buy or sell. Holding is nil when a
// sell liquidated the position.
type TradeResult struct {
	Portfolio *models.Portfolio `json:"portfolio"`
	Holding   *models.Holding   `json:"holding,omitempty"`
	Quantity  decimal.Decimal   `json:"quantity"`
	Price     decimal.Decimal   `json:"price"`
	Amount    decimal.Decimal   `json:"amount"`
}

// HoldingQuote is a holding together with fresh coin data for the sell page.
type HoldingQuote struct {
	Holding        *models.Holding `json:"holding"`
	Coin           *provider.Coin  `json:"coin"`
	PriceAvailable bool            `json:"price_available"`
}

// PriceChange is the 24h movement of one held coin.
type PriceChange struct {
	CoinID         string          `json:"coin_id"`
	Name           string          `json:"name"`
	Symbol         string          `json:"symbol"`
	Price          decimal.Decimal `json:"price"`
	Change24h      decimal.Decimal `json:"price_change_percentage_24h"`
	PriceAvailable bool            `json:"price_available"`
}

// PortfolioServicer defines the contract for portfolio mutations and valuation.
type PortfolioServicer interface {
	GetPortfolio(ctx context.Context, userID string) (*PortfolioView, error)
	Buy(ctx context.Context, userID, coinID string, amount decimal.Decimal) (*TradeResult, error)
	Sell(ctx context.Context, userID, holdingID string, quantity decimal.Decimal) (*TradeResult, error)
	Reset(ctx context.Context, userID string) (*models.Portfolio, error)
	GetHoldingQuote(ctx context.Context, userID, holdingID string) (*HoldingQuote, error)
	PriceChanges(ctx context.Context, userID string) ([]PriceChange, error)
}

// ReferralEntry is one account the caller referred.
type ReferralEntry struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// TradeInResult reports a points redemption.
type TradeInResult struct {
	Redeemed  int64             `json:"redeemed"`
	Portfolio *models.Portfolio `json:"portfolio"`
}

// ReferralServicer defines the contract for referral codes and bonus points.
type ReferralServicer interface {
	ResolveReferrer(code string) (*models.User, error)
	ListReferrals(userID string, page pagination.PageRequest) (*pagination.PageResponse[ReferralEntry], error)
	TradeInPoints(ctx context.Context, userID string) (*TradeInResult, error)
}

// SearchQuote is the buy page for the best hit of a search.
type SearchQuote struct {
	Coin        *provider.SearchHit `json:"coin"`
	Price       decimal.Decimal     `json:"price"`
	Change24h   decimal.Decimal     `json:"price_change_percentage_24h"`
	AlreadyHeld bool                `json:"already_held"`
	HoldingID   string              `json:"holding_id,omitempty"`
	CashBalance decimal.Decimal     `json:"cash_balance"`
}

// ChartView is a price history plus the coins offered as alternatives.
type ChartView struct {
	CoinID string                `json:"coin_id"`
	Days   int                   `json:"days"`
	Prices []provider.PricePoint `json:"prices"`
	Coins  []provider.MarketCoin `json:"coins"`
}

// MarketServicer defines the contract for read-only market data.
type MarketServicer interface {
	SearchQuote(ctx context.Context, userID, query string) (*SearchQuote, error)
	TopCoins(ctx context.Context) ([]provider.MarketCoin, error)
	Chart(ctx context.Context, coinID string, days int) (*ChartView, error)
}

// OrphanReport counts rows removed by a maintenance sweep.
type OrphanReport struct {
	Holdings   int64 `json:"holdings"`
	Portfolios int64 `json:"portfolios"`
	Referrals  int64 `json:"referrals"`
}

// MaintenanceServicer defines the contract for data-repair jobs.
type MaintenanceServicer interface {
	PurgeOrphans() (*OrphanReport, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
