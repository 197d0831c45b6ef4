package models

import "github.com/shopspring/decimal"

// Portfolio is the single cash/crypto ledger row owned by a user.
//
// CashBalance and CryptoValue are stored independently; TotalValue is the
// persisted sum and must be recomputed whenever either side changes.
type Portfolio struct {
	Base
	UserID      string          `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CashBalance decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"cash_balance"`
	CryptoValue decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"crypto_value"`
	TotalValue  decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"total_value"`
}

// Recalculate sets TotalValue from the two stored components.
func (p *Portfolio) Recalculate() {
	p.TotalValue = p.CashBalance.Add(p.CryptoValue)
}

// Reset restores the portfolio to its signup state.
func (p *Portfolio) Reset(startingCash decimal.Decimal) {
	p.CashBalance = startingCash
	p.CryptoValue = decimal.Zero
	p.Recalculate()
}
