package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "coinfolio/internal/errors"
	"coinfolio/internal/logger"
	"coinfolio/internal/models"
	"coinfolio/internal/provider"
)

const (
	// cashPlaces matches the numeric(20,2) balance columns.
	cashPlaces = 2
	// quantityPlaces matches the numeric(36,18) quantity column.
	quantityPlaces = 18
)

// portfolioService buys, sells, revalues and resets portfolios.
type portfolioService struct {
	db           *gorm.DB
	prices       provider.PriceSource
	startingCash decimal.Decimal
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB, prices provider.PriceSource, startingCash decimal.Decimal) PortfolioServicer {
	return &portfolioService{db: db, prices: prices, startingCash: startingCash}
}

// fetchCoin asks the price source for coinID and maps every failure, including
// a missing price, to ErrPriceUnavailable.
func (s *portfolioService) fetchCoin(ctx context.Context, coinID string) (*provider.Coin, error) {
	coin, err := s.prices.GetCoin(ctx, coinID)
	if err != nil {
		logger.Get().Warnw("price source request failed", "coin_id", coinID, "error", err)
		if errors.Is(err, provider.ErrNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrCoinNotFound, err)
		}
		return nil, apperrors.Wrap(apperrors.ErrPriceUnavailable, err)
	}
	if !coin.HasPrice() {
		logger.Get().Warnw("price source returned no price", "coin_id", coinID)
		return nil, apperrors.ErrPriceUnavailable
	}
	return coin, nil
}

// Buy spends amount of cash on coinID at the current spot price. An existing
// holding grows in quantity and keeps its stored price; otherwise a new
// holding is created at the observed price.
func (s *portfolioService) Buy(ctx context.Context, userID, coinID string, amount decimal.Decimal) (*TradeResult, error) {
	amount = amount.Round(cashPlaces)
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount must be greater than zero")
	}
	if coinID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "coin_id is required")
	}

	coin, err := s.fetchCoin(ctx, coinID)
	if err != nil {
		return nil, err
	}
	quantity := amount.DivRound(coin.Price, quantityPlaces)

	result := &TradeResult{Quantity: quantity, Price: coin.Price, Amount: amount}
	err = withAccountTx(s.db, userID, func(tx *gorm.DB, portfolio *models.Portfolio) error {
		if amount.GreaterThan(portfolio.CashBalance) {
			return apperrors.ErrInsufficientFunds
		}

		var holding models.Holding
		err := tx.Where("user_id = ? AND coin_id = ?", userID, coin.ID).First(&holding).Error
		switch {
		case err == nil:
			holding.Quantity = holding.Quantity.Add(quantity)
			holding.TotalValue = holding.MarketValue()
			if err := tx.Save(&holding).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			holding = models.Holding{
				UserID:         userID,
				CoinID:         coin.ID,
				Name:           coin.Name,
				Symbol:         coin.Symbol,
				Quantity:       quantity,
				CurrentPrice:   coin.Price,
				PriceChange24h: coin.PriceChange24h,
			}
			holding.TotalValue = holding.MarketValue()
			if err := tx.Create(&holding).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		default:
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		holding.PriceAvailable = true

		portfolio.CashBalance = portfolio.CashBalance.Sub(amount)
		portfolio.CryptoValue = portfolio.CryptoValue.Add(amount)
		portfolio.Recalculate()
		if err := tx.Save(portfolio).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		result.Portfolio = portfolio
		result.Holding = &holding
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Sell liquidates quantity of a holding at its stored price. The quantity is
// rounded to the stored precision first, and the row is deleted when the
// remaining quantity is exactly zero.
func (s *portfolioService) Sell(ctx context.Context, userID, holdingID string, quantity decimal.Decimal) (*TradeResult, error) {
	quantity = quantity.Round(quantityPlaces)
	if !quantity.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Quantity must be greater than zero")
	}

	result := &TradeResult{Quantity: quantity}
	err := withAccountTx(s.db, userID, func(tx *gorm.DB, portfolio *models.Portfolio) error {
		holding, err := findHolding(tx, userID, holdingID)
		if err != nil {
			return err
		}

		if quantity.GreaterThan(holding.Quantity) {
			return apperrors.WithMessage(apperrors.ErrInsufficientQuantity,
				fmt.Sprintf("Insufficient quantity of %s. You only have %s.", holding.Name, holding.Quantity.String()))
		}

		proceeds := quantity.Mul(holding.CurrentPrice).Round(cashPlaces)
		remaining := holding.Quantity.Sub(quantity)

		if remaining.IsZero() {
			if err := tx.Unscoped().Delete(holding).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		} else {
			holding.Quantity = remaining
			holding.TotalValue = holding.MarketValue()
			if err := tx.Save(holding).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			holding.PriceAvailable = true
			result.Holding = holding
		}

		portfolio.CashBalance = portfolio.CashBalance.Add(proceeds)
		portfolio.CryptoValue = portfolio.CryptoValue.Sub(proceeds)
		portfolio.Recalculate()
		if err := tx.Save(portfolio).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		result.Portfolio = portfolio
		result.Price = holding.CurrentPrice
		result.Amount = proceeds
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetPortfolio re-marks every holding to the current market and persists the
// new crypto value. Holdings whose price could not be fetched keep their
// stored price and are returned with PriceAvailable false.
func (s *portfolioService) GetPortfolio(ctx context.Context, userID string) (*PortfolioView, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	holdings, err := listHoldings(s.db, userID)
	if err != nil {
		return nil, err
	}

	// Price calls happen before the lock is taken so a slow price source
	// never holds the portfolio row.
	quotes := make(map[string]*provider.Coin, len(holdings))
	for i := range holdings {
		coinID := holdings[i].CoinID
		if _, seen := quotes[coinID]; seen {
			continue
		}
		coin, err := s.prices.GetCoin(ctx, coinID)
		if err != nil || !coin.HasPrice() {
			logger.Get().Warnw("price unavailable during refresh", "coin_id", coinID, "error", err)
			quotes[coinID] = nil
			continue
		}
		quotes[coinID] = coin
	}

	view := &PortfolioView{ReferralCode: user.ReferralCode, Bonus: user.Bonus}
	err = withAccountTx(s.db, userID, func(tx *gorm.DB, portfolio *models.Portfolio) error {
		// Reload under the lock; a concurrent trade may have changed the set.
		current, err := listHoldings(tx, userID)
		if err != nil {
			return err
		}

		cryptoValue := decimal.Zero
		for i := range current {
			h := &current[i]
			if coin := quotes[h.CoinID]; coin != nil {
				h.CurrentPrice = coin.Price
				h.PriceChange24h = coin.PriceChange24h
				h.PriceAvailable = true
			}
			h.TotalValue = h.MarketValue()
			cryptoValue = cryptoValue.Add(h.TotalValue)

			if err := tx.Model(h).Updates(map[string]interface{}{
				"current_price":   h.CurrentPrice,
				"price_change_24h": h.PriceChange24h,
				"total_value":     h.TotalValue,
			}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		portfolio.CryptoValue = cryptoValue.Round(cashPlaces)
		portfolio.Recalculate()
		if err := tx.Save(portfolio).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		referrals, err := referredUsernames(tx, userID)
		if err != nil {
			return err
		}

		view.Portfolio = portfolio
		view.Holdings = current
		view.Referrals = referrals
		view.TotalValue = portfolio.TotalValue
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// Reset deletes every holding and restores the starting cash balance.
func (s *portfolioService) Reset(ctx context.Context, userID string) (*models.Portfolio, error) {
	var reset *models.Portfolio
	err := withAccountTx(s.db, userID, func(tx *gorm.DB, portfolio *models.Portfolio) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Holding{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		portfolio.Reset(s.startingCash)
		if err := tx.Save(portfolio).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		reset = portfolio
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reset, nil
}

// GetHoldingQuote returns a holding with fresh coin data. When the price
// source fails the stored values stand in and PriceAvailable is false.
func (s *portfolioService) GetHoldingQuote(ctx context.Context, userID, holdingID string) (*HoldingQuote, error) {
	holding, err := findHolding(s.db, userID, holdingID)
	if err != nil {
		return nil, err
	}

	coin, err := s.prices.GetCoin(ctx, holding.CoinID)
	if err != nil || !coin.HasPrice() {
		logger.Get().Warnw("price unavailable for sell quote", "coin_id", holding.CoinID, "error", err)
		return &HoldingQuote{
			Holding: holding,
			Coin: &provider.Coin{
				ID:             holding.CoinID,
				Name:           holding.Name,
				Symbol:         holding.Symbol,
				Price:          holding.CurrentPrice,
				PriceChange24h: holding.PriceChange24h,
			},
			PriceAvailable: false,
		}, nil
	}

	holding.PriceAvailable = true
	return &HoldingQuote{Holding: holding, Coin: coin, PriceAvailable: true}, nil
}

// PriceChanges reports the 24h change for each held coin in one batch call.
// Coins the source omitted report a zero change.
func (s *portfolioService) PriceChanges(ctx context.Context, userID string) ([]PriceChange, error) {
	holdings, err := listHoldings(s.db, userID)
	if err != nil {
		return nil, err
	}
	if len(holdings) == 0 {
		return []PriceChange{}, nil
	}

	ids := make([]string, 0, len(holdings))
	for i := range holdings {
		ids = append(ids, holdings[i].CoinID)
	}

	prices, err := s.prices.SimplePrices(ctx, ids)
	if err != nil {
		logger.Get().Warnw("price source request failed", "coin_ids", ids, "error", err)
		prices = map[string]provider.SimplePrice{}
	}

	changes := make([]PriceChange, 0, len(holdings))
	for i := range holdings {
		h := holdings[i]
		change := PriceChange{
			CoinID: h.CoinID,
			Name:   h.Name,
			Symbol: h.Symbol,
			Price:  h.CurrentPrice,
		}
		if p, ok := prices[h.CoinID]; ok {
			change.Price = p.Price
			change.Change24h = p.Change24h
			change.PriceAvailable = true
		}
		changes = append(changes, change)
	}
	return changes, nil
}

// findHolding loads a holding owned by userID.
func findHolding(db *gorm.DB, userID, holdingID string) (*models.Holding, error) {
	var holding models.Holding
	if err := db.Where("id = ? AND user_id = ?", holdingID, userID).First(&holding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHoldingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &holding, nil
}

func listHoldings(db *gorm.DB, userID string) ([]models.Holding, error) {
	var holdings []models.Holding
	if err := db.Where("user_id = ?", userID).Order("created_at ASC").Find(&holdings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return holdings, nil
}

// referredUsernames lists the usernames of accounts referred by userID.
func referredUsernames(db *gorm.DB, userID string) ([]string, error) {
	names := []string{}
	if err := db.Model(&models.Referral{}).
		Joins("JOIN users ON users.id = referrals.user_id").
		Where("referrals.referrer_id = ?", userID).
		Order("referrals.created_at ASC").
		Pluck("users.username", &names).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return names, nil
}
