package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	apperrors "coinfolio/internal/errors"
	"coinfolio/internal/models"
	"coinfolio/internal/provider"
	"coinfolio/internal/testutil"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- fake price source ---

type fakePriceSource struct {
	mu         sync.Mutex
	coins      map[string]*provider.Coin
	coinErrs   map[string]error
	simple     map[string]provider.SimplePrice
	simpleErr  error
	hits       map[string]*provider.SearchHit
	markets    []provider.MarketCoin
	marketsErr error
	charts     map[string][]provider.PricePoint
	getCalls   int
}

func newFakePriceSource() *fakePriceSource {
	return &fakePriceSource{
		coins:    map[string]*provider.Coin{},
		coinErrs: map[string]error{},
		simple:   map[string]provider.SimplePrice{},
		hits:     map[string]*provider.SearchHit{},
		charts:   map[string][]provider.PricePoint{},
	}
}

func (f *fakePriceSource) setPrice(coinID, price string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.coins[coinID] = &provider.Coin{
		ID:             coinID,
		Name:           strings.ToUpper(coinID[:1]) + coinID[1:],
		Symbol:         coinID[:3],
		Price:          dec(price),
		PriceChange24h: dec("1.5"),
	}
	delete(f.coinErrs, coinID)
}

func (f *fakePriceSource) GetCoin(_ context.Context, coinID string) (*provider.Coin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if err, ok := f.coinErrs[coinID]; ok {
		return nil, err
	}
	coin, ok := f.coins[coinID]
	if !ok {
		return nil, &provider.FetchError{CoinID: coinID, Err: provider.ErrNotFound}
	}
	c := *coin
	return &c, nil
}

func (f *fakePriceSource) SimplePrices(_ context.Context, coinIDs []string) (map[string]provider.SimplePrice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.simpleErr != nil {
		return nil, f.simpleErr
	}
	out := map[string]provider.SimplePrice{}
	for _, id := range coinIDs {
		if p, ok := f.simple[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (f *fakePriceSource) Search(_ context.Context, query string) (*provider.SearchHit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	hit, ok := f.hits[query]
	if !ok {
		return nil, &provider.FetchError{CoinID: query, Err: provider.ErrNotFound}
	}
	return hit, nil
}

func (f *fakePriceSource) TopMarkets(_ context.Context, perPage int, _ bool) ([]provider.MarketCoin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.marketsErr != nil {
		return nil, f.marketsErr
	}
	if len(f.markets) > perPage {
		return f.markets[:perPage], nil
	}
	return f.markets, nil
}

func (f *fakePriceSource) MarketChart(_ context.Context, coinID string, _ int) ([]provider.PricePoint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	points, ok := f.charts[coinID]
	if !ok {
		return nil, &provider.FetchError{CoinID: coinID, Err: provider.ErrNotFound}
	}
	return points, nil
}

func setupPortfolioService(t *testing.T) (*gorm.DB, *fakePriceSource, PortfolioServicer) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	prices := newFakePriceSource()
	return db, prices, NewPortfolioService(db, prices, testutil.StartingCash)
}

func countHoldings(t *testing.T, db *gorm.DB, userID string) int64 {
	t.Helper()
	var n int64
	db.Unscoped().Model(&models.Holding{}).Where("user_id = ?", userID).Count(&n)
	return n
}

// --- tests ---

func TestPortfolioService_BuyThenSellScenario(t *testing.T) {
	db, prices, svc := setupPortfolioService(t)
	user, _ := testutil.CreateTestUserWithPortfolio(t, db)
	prices.setPrice("bitcoin", "50.00")
	ctx := context.Background()

	bought, err := svc.Buy(ctx, user.ID, "bitcoin", dec("500.00"))
	require.NoError(t, err)
	testutil.AssertDecimal(t, "quantity", bought.Holding.Quantity, "10")
	testutil.AssertDecimal(t, "cash", bought.Portfolio.CashBalance, "99500.00")
	testutil.AssertDecimal(t, "crypto", bought.Portfolio.CryptoValue, "500.00")
	testutil.AssertDecimal(t, "total", bought.Portfolio.TotalValue, "100000.00")

	sold, err := svc.Sell(ctx, user.ID, bought.Holding.ID, dec("4"))
	require.NoError(t, err)
	require.NotNil(t, sold.Holding, "holding must be retained after a partial sell")
	testutil.AssertDecimal(t, "quantity", sold.Holding.Quantity, "6")
	testutil.AssertDecimal(t, "proceeds", sold.Amount, "200")

	stored := testutil.ReloadPortfolio(t, db, user.ID)
	testutil.AssertDecimal(t, "cash", stored.CashBalance, "99700.00")
	testutil.AssertDecimal(t, "crypto", stored.CryptoValue, "300.00")
	testutil.AssertDecimal(t, "total", stored.TotalValue, "100000.00")
	assert.Equal(t, int64(1), countHoldings(t, db, user.ID))
}

func TestPortfolioService_Buy(t *testing.T) {
	ctx := context.Background()

	t.Run("insufficient_funds_leaves_state_unchanged", func(t *testing.T) {
		db, prices, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		prices.setPrice("bitcoin", "50")

		_, err := svc.Buy(ctx, user.ID, "bitcoin", dec("100000.01"))
		testutil.AssertAppError(t, err, "INSUFFICIENT_FUNDS")

		stored := testutil.ReloadPortfolio(t, db, user.ID)
		testutil.AssertDecimal(t, "cash", stored.CashBalance, "100000.00")
		testutil.AssertDecimal(t, "crypto", stored.CryptoValue, "0")
		assert.Equal(t, int64(0), countHoldings(t, db, user.ID))
	})

	t.Run("insufficient_funds_on_existing_holding", func(t *testing.T) {
		db, prices, svc := setupPortfolioService(t)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestPortfolio(t, db, user.ID, dec("10"))
		h := testutil.CreateTestHolding(t, db, user.ID, "bitcoin", dec("1"), dec("40"))
		prices.setPrice("bitcoin", "50")

		_, err := svc.Buy(ctx, user.ID, "bitcoin", dec("20"))
		testutil.AssertAppError(t, err, "INSUFFICIENT_FUNDS")

		var reloaded models.Holding
		db.First(&reloaded, "id = ?", h.ID)
		testutil.AssertDecimal(t, "quantity", reloaded.Quantity, "1")
	})

	t.Run("spending_exact_cash_is_allowed", func(t *testing.T) {
		db, prices, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		prices.setPrice("ethereum", "2500")

		result, err := svc.Buy(ctx, user.ID, "ethereum", dec("100000.00"))
		require.NoError(t, err)
		testutil.AssertDecimal(t, "cash", result.Portfolio.CashBalance, "0")
		testutil.AssertDecimal(t, "quantity", result.Holding.Quantity, "40")
	})

	t.Run("existing_holding_keeps_stored_price", func(t *testing.T) {
		db, prices, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		h := testutil.CreateTestHolding(t, db, user.ID, "bitcoin", dec("1"), dec("40"))
		prices.setPrice("bitcoin", "50")

		result, err := svc.Buy(ctx, user.ID, "bitcoin", dec("100"))
		require.NoError(t, err)
		assert.Equal(t, h.ID, result.Holding.ID)
		testutil.AssertDecimal(t, "quantity", result.Holding.Quantity, "3")
		testutil.AssertDecimal(t, "stored price", result.Holding.CurrentPrice, "40")
		assert.Equal(t, int64(1), countHoldings(t, db, user.ID))
	})

	t.Run("new_holding_takes_name_and_symbol_from_source", func(t *testing.T) {
		db, prices, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		prices.setPrice("dogecoin", "0.25")

		result, err := svc.Buy(ctx, user.ID, "dogecoin", dec("10"))
		require.NoError(t, err)
		assert.Equal(t, "Dogecoin", result.Holding.Name)
		assert.Equal(t, "dog", result.Holding.Symbol)
		testutil.AssertDecimal(t, "quantity", result.Holding.Quantity, "40")
	})

	t.Run("price_source_failure", func(t *testing.T) {
		db, prices, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		prices.coinErrs["bitcoin"] = &provider.FetchError{CoinID: "bitcoin", Err: errors.New("timeout")}

		_, err := svc.Buy(ctx, user.ID, "bitcoin", dec("100"))
		testutil.AssertAppError(t, err, "PRICE_UNAVAILABLE")

		stored := testutil.ReloadPortfolio(t, db, user.ID)
		testutil.AssertDecimal(t, "cash", stored.CashBalance, "100000.00")
	})

	t.Run("zero_price_is_unavailable", func(t *testing.T) {
		db, prices, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		prices.setPrice("deadcoin", "0")

		_, err := svc.Buy(ctx, user.ID, "deadcoin", dec("100"))
		testutil.AssertAppError(t, err, "PRICE_UNAVAILABLE")
	})

	t.Run("unknown_coin", func(t *testing.T) {
		db, _, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)

		_, err := svc.Buy(ctx, user.ID, "no-such-coin", dec("100"))
		testutil.AssertAppError(t, err, "COIN_NOT_FOUND")
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		db, prices, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		prices.setPrice("bitcoin", "50")

		for _, amount := range []string{"0", "-5", "0.001"} {
			_, err := svc.Buy(ctx, user.ID, "bitcoin", dec(amount))
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		}
		assert.Equal(t, 0, prices.getCalls, "price source must not be called for invalid input")
	})
}

func TestPortfolioService_Buy_ConcurrentRequestsNeverOverspend(t *testing.T) {
	db, prices, svc := setupPortfolioService(t)
	user, _ := testutil.CreateTestUserWithPortfolio(t, db)
	prices.setPrice("bitcoin", "100")

	const buyers = 15
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, rejected := 0, 0

	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Buy(context.Background(), user.ID, "bitcoin", dec("10000"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, apperrors.ErrInsufficientFunds):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, buyers-10, rejected)

	stored := testutil.ReloadPortfolio(t, db, user.ID)
	testutil.AssertDecimal(t, "cash", stored.CashBalance, "0")
	testutil.AssertDecimal(t, "crypto", stored.CryptoValue, "100000")

	var holding models.Holding
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&holding).Error)
	testutil.AssertDecimal(t, "quantity", holding.Quantity, "1000")
}

func TestPortfolioService_Sell(t *testing.T) {
	ctx := context.Background()

	t.Run("full_liquidation_removes_row", func(t *testing.T) {
		db, _, svc := setupPortfolioService(t)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestPortfolio(t, db, user.ID, dec("1000"))
		db.Model(&models.Portfolio{}).Where("user_id = ?", user.ID).
			Updates(map[string]interface{}{"crypto_value": dec("125"), "total_value": dec("1125")})
		h := testutil.CreateTestHolding(t, db, user.ID, "solana", dec("2.5"), dec("50"))

		result, err := svc.Sell(ctx, user.ID, h.ID, dec("2.5"))
		require.NoError(t, err)
		assert.Nil(t, result.Holding)
		testutil.AssertDecimal(t, "cash", result.Portfolio.CashBalance, "1125")
		testutil.AssertDecimal(t, "crypto", result.Portfolio.CryptoValue, "0")
		assert.Equal(t, int64(0), countHoldings(t, db, user.ID))
	})

	t.Run("quantity_rounds_to_stored_precision", func(t *testing.T) {
		db, _, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		h := testutil.CreateTestHolding(t, db, user.ID, "bitcoin", dec("10"), dec("50"))

		result, err := svc.Sell(ctx, user.ID, h.ID, dec("9.99999999999999999999"))
		require.NoError(t, err)
		assert.Nil(t, result.Holding)
		testutil.AssertDecimal(t, "quantity", result.Quantity, "10")
		testutil.AssertDecimal(t, "proceeds", result.Amount, "500")
		assert.Equal(t, int64(0), countHoldings(t, db, user.ID))
	})

	t.Run("quantity_below_precision_is_invalid", func(t *testing.T) {
		db, _, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		h := testutil.CreateTestHolding(t, db, user.ID, "bitcoin", dec("1"), dec("50"))

		_, err := svc.Sell(ctx, user.ID, h.ID, dec("0.0000000000000000001"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("oversell_names_held_amount", func(t *testing.T) {
		db, _, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		h := testutil.CreateTestHolding(t, db, user.ID, "bitcoin", dec("2.5"), dec("50"))

		_, err := svc.Sell(ctx, user.ID, h.ID, dec("3"))
		testutil.AssertAppError(t, err, "INSUFFICIENT_QUANTITY")
		assert.Contains(t, err.Error(), "2.5")

		stored := testutil.ReloadPortfolio(t, db, user.ID)
		testutil.AssertDecimal(t, "cash", stored.CashBalance, "100000.00")
		var reloaded models.Holding
		db.First(&reloaded, "id = ?", h.ID)
		testutil.AssertDecimal(t, "quantity", reloaded.Quantity, "2.5")
	})

	t.Run("uses_stored_price_without_fetching", func(t *testing.T) {
		db, prices, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		h := testutil.CreateTestHolding(t, db, user.ID, "bitcoin", dec("2"), dec("30"))
		prices.setPrice("bitcoin", "1000")

		result, err := svc.Sell(ctx, user.ID, h.ID, dec("1"))
		require.NoError(t, err)
		testutil.AssertDecimal(t, "proceeds", result.Amount, "30")
		assert.Equal(t, 0, prices.getCalls)
	})

	t.Run("other_users_holding_is_not_found", func(t *testing.T) {
		db, _, svc := setupPortfolioService(t)
		owner, _ := testutil.CreateTestUserWithPortfolio(t, db)
		intruder, _ := testutil.CreateTestUserWithPortfolio(t, db)
		h := testutil.CreateTestHolding(t, db, owner.ID, "bitcoin", dec("1"), dec("50"))

		_, err := svc.Sell(ctx, intruder.ID, h.ID, dec("1"))
		testutil.AssertAppError(t, err, "HOLDING_NOT_FOUND")
	})

	t.Run("non_positive_quantity", func(t *testing.T) {
		db, _, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		h := testutil.CreateTestHolding(t, db, user.ID, "bitcoin", dec("1"), dec("50"))

		_, err := svc.Sell(ctx, user.ID, h.ID, dec("0"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestPortfolioService_GetPortfolio(t *testing.T) {
	ctx := context.Background()

	t.Run("remarks_holdings_to_market", func(t *testing.T) {
		db, prices, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		testutil.CreateTestHolding(t, db, user.ID, "bitcoin", dec("2"), dec("50"))
		testutil.CreateTestHolding(t, db, user.ID, "ethereum", dec("10"), dec("3"))
		prices.setPrice("bitcoin", "60")
		prices.setPrice("ethereum", "4")

		view, err := svc.GetPortfolio(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, view.Holdings, 2)
		for _, h := range view.Holdings {
			assert.True(t, h.PriceAvailable, h.CoinID)
		}
		testutil.AssertDecimal(t, "crypto", view.Portfolio.CryptoValue, "160")
		testutil.AssertDecimal(t, "total", view.TotalValue, "100160")
		assert.Equal(t, user.ReferralCode, view.ReferralCode)

		stored := testutil.ReloadPortfolio(t, db, user.ID)
		testutil.AssertDecimal(t, "stored crypto", stored.CryptoValue, "160")

		var btc models.Holding
		db.Where("user_id = ? AND coin_id = ?", user.ID, "bitcoin").First(&btc)
		testutil.AssertDecimal(t, "stored price", btc.CurrentPrice, "60")
		testutil.AssertDecimal(t, "stored value", btc.TotalValue, "120")
		testutil.AssertDecimal(t, "stored change", btc.PriceChange24h, "1.5")
	})

	t.Run("failed_fetch_keeps_stored_price", func(t *testing.T) {
		db, prices, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		testutil.CreateTestHolding(t, db, user.ID, "bitcoin", dec("2"), dec("50"))
		testutil.CreateTestHolding(t, db, user.ID, "flaky", dec("4"), dec("5"))
		prices.setPrice("bitcoin", "60")
		prices.coinErrs["flaky"] = errors.New("rate limited")

		view, err := svc.GetPortfolio(ctx, user.ID)
		require.NoError(t, err)

		byCoin := map[string]models.Holding{}
		for _, h := range view.Holdings {
			byCoin[h.CoinID] = h
		}
		assert.True(t, byCoin["bitcoin"].PriceAvailable)
		assert.False(t, byCoin["flaky"].PriceAvailable)
		testutil.AssertDecimal(t, "flaky price", byCoin["flaky"].CurrentPrice, "5")
		testutil.AssertDecimal(t, "crypto", view.Portfolio.CryptoValue, "140")
	})

	t.Run("lists_referrals_and_bonus", func(t *testing.T) {
		db, _, svc := setupPortfolioService(t)
		users := newTestUserService(db)
		referrer, err := users.CreateUser("ref", "ref@example.com", "password123", "")
		require.NoError(t, err)
		_, err = users.CreateUser("kid", "kid@example.com", "password123", referrer.ReferralCode)
		require.NoError(t, err)

		view, err := svc.GetPortfolio(ctx, referrer.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"kid"}, view.Referrals)
		assert.Equal(t, int64(100), view.Bonus)
		assert.Empty(t, view.Holdings)
	})

	t.Run("unknown_user", func(t *testing.T) {
		_, _, svc := setupPortfolioService(t)

		_, err := svc.GetPortfolio(ctx, "0190c8a6-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestPortfolioService_Reset(t *testing.T) {
	db, prices, svc := setupPortfolioService(t)
	user, _ := testutil.CreateTestUserWithPortfolio(t, db)
	prices.setPrice("bitcoin", "50")
	prices.setPrice("ethereum", "20")
	ctx := context.Background()

	_, err := svc.Buy(ctx, user.ID, "bitcoin", dec("1000"))
	require.NoError(t, err)
	_, err = svc.Buy(ctx, user.ID, "ethereum", dec("2000"))
	require.NoError(t, err)

	portfolio, err := svc.Reset(ctx, user.ID)
	require.NoError(t, err)
	testutil.AssertDecimal(t, "cash", portfolio.CashBalance, "100000.00")
	testutil.AssertDecimal(t, "crypto", portfolio.CryptoValue, "0")
	testutil.AssertDecimal(t, "total", portfolio.TotalValue, "100000.00")
	assert.Equal(t, int64(0), countHoldings(t, db, user.ID))

	stored := testutil.ReloadPortfolio(t, db, user.ID)
	testutil.AssertDecimal(t, "stored cash", stored.CashBalance, "100000.00")
}

func TestPortfolioService_GetHoldingQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh_quote", func(t *testing.T) {
		db, prices, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		h := testutil.CreateTestHolding(t, db, user.ID, "bitcoin", dec("1"), dec("50"))
		prices.setPrice("bitcoin", "55")

		quote, err := svc.GetHoldingQuote(ctx, user.ID, h.ID)
		require.NoError(t, err)
		assert.True(t, quote.PriceAvailable)
		testutil.AssertDecimal(t, "quote", quote.Coin.Price, "55")
	})

	t.Run("falls_back_to_stored_values", func(t *testing.T) {
		db, prices, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		h := testutil.CreateTestHolding(t, db, user.ID, "bitcoin", dec("1"), dec("50"))
		prices.coinErrs["bitcoin"] = errors.New("down")

		quote, err := svc.GetHoldingQuote(ctx, user.ID, h.ID)
		require.NoError(t, err)
		assert.False(t, quote.PriceAvailable)
		testutil.AssertDecimal(t, "quote", quote.Coin.Price, "50")
		assert.Equal(t, h.Name, quote.Coin.Name)
	})

	t.Run("not_found", func(t *testing.T) {
		db, _, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)

		_, err := svc.GetHoldingQuote(ctx, user.ID, "missing")
		testutil.AssertAppError(t, err, "HOLDING_NOT_FOUND")
	})
}

func TestPortfolioService_PriceChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("missing_coins_report_zero", func(t *testing.T) {
		db, prices, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		testutil.CreateTestHolding(t, db, user.ID, "bitcoin", dec("1"), dec("50"))
		testutil.CreateTestHolding(t, db, user.ID, "obscure", dec("1"), dec("2"))
		prices.simple["bitcoin"] = provider.SimplePrice{Price: dec("51"), Change24h: dec("-3.2")}

		changes, err := svc.PriceChanges(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, changes, 2)

		byCoin := map[string]PriceChange{}
		for _, c := range changes {
			byCoin[c.CoinID] = c
		}
		testutil.AssertDecimal(t, "btc change", byCoin["bitcoin"].Change24h, "-3.2")
		assert.True(t, byCoin["bitcoin"].PriceAvailable)
		testutil.AssertDecimal(t, "obscure change", byCoin["obscure"].Change24h, "0")
		assert.False(t, byCoin["obscure"].PriceAvailable)
	})

	t.Run("source_failure_degrades", func(t *testing.T) {
		db, prices, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)
		testutil.CreateTestHolding(t, db, user.ID, "bitcoin", dec("1"), dec("50"))
		prices.simpleErr = errors.New("503")

		changes, err := svc.PriceChanges(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, changes, 1)
		assert.False(t, changes[0].PriceAvailable)
	})

	t.Run("no_holdings", func(t *testing.T) {
		db, _, svc := setupPortfolioService(t)
		user, _ := testutil.CreateTestUserWithPortfolio(t, db)

		changes, err := svc.PriceChanges(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, changes)
	})
}

func TestLockPortfolio_UsesRowLockOnPostgres(t *testing.T) {
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = mockDb.Close() }()

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"id", "user_id", "cash_balance", "crypto_value", "total_value"}).
		AddRow("p-1", "u-1", "99500.00", "500.00", "100000.00")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "portfolios" WHERE user_id = \$1 .* FOR UPDATE`).
		WillReturnRows(rows)
	mock.ExpectCommit()

	err = db.Transaction(func(tx *gorm.DB) error {
		portfolio, err := lockPortfolio(tx, "u-1")
		if err != nil {
			return err
		}
		testutil.AssertDecimal(t, "cash", portfolio.CashBalance, "99500.00")
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
