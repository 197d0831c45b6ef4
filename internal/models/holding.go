package models

import "github.com/shopspring/decimal"

// Holding is a quantity of one coin held by a user. A row exists only while
// Quantity is positive.
type Holding struct {
	Base
	UserID         string          `gorm:"type:uuid;not null;uniqueIndex:uq_holdings_user_coin" json:"user_id"`
	CoinID         string          `gorm:"not null;uniqueIndex:uq_holdings_user_coin" json:"coin_id"`
	Name           string          `gorm:"not null" json:"name"`
	Symbol         string          `gorm:"not null" json:"symbol"`
	Quantity       decimal.Decimal `gorm:"type:numeric(36,18);not null" json:"quantity"`
	CurrentPrice   decimal.Decimal `gorm:"type:numeric(36,18);not null" json:"current_price"`
	PriceChange24h decimal.Decimal `gorm:"column:price_change_24h;type:numeric(20,8);not null;default:0" json:"price_change_percentage_24h"`
	TotalValue     decimal.Decimal `gorm:"type:numeric(36,18);not null;default:0" json:"total_value"`

	// PriceAvailable is false when the last refresh could not reach the price
	// source and CurrentPrice is the previously stored value.
	PriceAvailable bool `gorm:"-" json:"price_available"`
}

// MarketValue is Quantity valued at the stored CurrentPrice.
func (h *Holding) MarketValue() decimal.Decimal {
	return h.Quantity.Mul(h.CurrentPrice)
}
