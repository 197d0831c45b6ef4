package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"coinfolio/internal/models"
	"coinfolio/internal/uuid"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// StartingCash mirrors the default signup balance.
var StartingCash = decimal.RequireFromString("100000.00")

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password, unique username,
// email and referral code, and no portfolio.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	n := nextID()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     fmt.Sprintf("user%d", n),
		Email:        fmt.Sprintf("user%d@test.com", n),
		Password:     string(hash),
		ReferralCode: uuid.NewReferralCode(),
		IsActive:     true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestPortfolio creates a portfolio with the given cash balance and zero crypto value.
func CreateTestPortfolio(t *testing.T, db *gorm.DB, userID string, cash decimal.Decimal) *models.Portfolio {
	t.Helper()

	portfolio := &models.Portfolio{
		UserID:      userID,
		CashBalance: cash,
		CryptoValue: decimal.Zero,
	}
	portfolio.Recalculate()
	if err := db.Create(portfolio).Error; err != nil {
		t.Fatalf("failed to create test portfolio: %v", err)
	}
	return portfolio
}

// CreateTestUserWithPortfolio creates a user holding the default starting cash.
func CreateTestUserWithPortfolio(t *testing.T, db *gorm.DB) (*models.User, *models.Portfolio) {
	t.Helper()

	user := CreateTestUser(t, db)
	return user, CreateTestPortfolio(t, db, user.ID, StartingCash)
}

// CreateTestHolding creates a holding of coinID with the given quantity and stored price.
func CreateTestHolding(t *testing.T, db *gorm.DB, userID, coinID string, quantity, price decimal.Decimal) *models.Holding {
	t.Helper()

	holding := &models.Holding{
		UserID:       userID,
		CoinID:       coinID,
		Name:         fmt.Sprintf("Test Coin %d", nextID()),
		Symbol:       "tst",
		Quantity:     quantity,
		CurrentPrice: price,
		TotalValue:   quantity.Mul(price),
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return holding
}

// ReloadPortfolio reads the user's portfolio straight from the database.
func ReloadPortfolio(t *testing.T, db *gorm.DB, userID string) *models.Portfolio {
	t.Helper()

	var portfolio models.Portfolio
	if err := db.Where("user_id = ?", userID).First(&portfolio).Error; err != nil {
		t.Fatalf("failed to reload portfolio: %v", err)
	}
	return &portfolio
}
