// Package provider fetches coin prices and market metadata from an external
// market-data service.
package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when the market-data service does not know the coin
	// or a search has no hits.
	ErrNotFound = errors.New("coin not found")

	// ErrMalformedPayload is returned when a response cannot be decoded or is
	// missing the fields needed to identify the coin.
	ErrMalformedPayload = errors.New("malformed payload")
)

// Coin is the detail view of a single coin. Fields the service omitted are
// left at their defaults: zero for numbers, "unknown" for Symbol and the coin
// id for Name.
type Coin struct {
	ID             string          `json:"id"`
	Symbol         string          `json:"symbol"`
	Name           string          `json:"name"`
	Image          string          `json:"image"`
	MarketCapRank  int             `json:"market_cap_rank"`
	Price          decimal.Decimal `json:"current_price"`
	PriceChange24h decimal.Decimal `json:"price_change_percentage_24h"`
}

// HasPrice reports whether the service returned a usable spot price.
func (c *Coin) HasPrice() bool {
	return c.Price.IsPositive()
}

// SimplePrice is a spot price with its optional 24h change.
type SimplePrice struct {
	Price     decimal.Decimal `json:"price"`
	Change24h decimal.Decimal `json:"change_24h"`
}

// SearchHit is a single coin returned by a free-text search.
type SearchHit struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	MarketCapRank int    `json:"market_cap_rank"`
	Thumb         string `json:"thumb"`
	Large         string `json:"large"`
}

// MarketCoin is one row of the market-cap ranking.
type MarketCoin struct {
	ID                       string            `json:"id"`
	Symbol                   string            `json:"symbol"`
	Name                     string            `json:"name"`
	Image                    string            `json:"image"`
	CurrentPrice             decimal.Decimal   `json:"current_price"`
	MarketCap                decimal.Decimal   `json:"market_cap"`
	MarketCapRank            int               `json:"market_cap_rank"`
	PriceChangePercentage24h decimal.Decimal   `json:"price_change_percentage_24h"`
	Sparkline                []decimal.Decimal `json:"sparkline,omitempty"`
}

// PricePoint is one sample of a price history.
type PricePoint struct {
	Time  time.Time       `json:"time"`
	Price decimal.Decimal `json:"price"`
}

// FetchError records a failed call for a specific coin.
type FetchError struct {
	CoinID string
	Err    error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.CoinID, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *FetchError) Unwrap() error { return e.Err }

// PriceSource is the market-data collaborator used by the services.
// Every call is a blocking round trip bounded by ctx and the client timeout.
type PriceSource interface {
	// GetCoin returns current price, 24h change and metadata for one coin.
	GetCoin(ctx context.Context, coinID string) (*Coin, error)

	// SimplePrices returns spot prices for the given ids. Ids the service did
	// not return are absent from the map.
	SimplePrices(ctx context.Context, coinIDs []string) (map[string]SimplePrice, error)

	// Search returns the best hit for a free-text query, or ErrNotFound.
	Search(ctx context.Context, query string) (*SearchHit, error)

	// TopMarkets returns coins ordered by market cap, descending.
	TopMarkets(ctx context.Context, perPage int, sparkline bool) ([]MarketCoin, error)

	// MarketChart returns the price history for the last `days` days.
	MarketChart(ctx context.Context, coinID string, days int) ([]PricePoint, error)
}
