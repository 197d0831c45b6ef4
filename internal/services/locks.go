package services

import (
	"errors"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "coinfolio/internal/errors"
	"coinfolio/internal/models"
)

// keyedMutex serializes work per key. Entries are reference counted and
// dropped once no goroutine holds or waits for them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedEntry
}

type keyedEntry struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*keyedEntry)}
}

// Lock blocks until key is free and returns the matching unlock func.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &keyedEntry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// accountLocks is shared by every service that mutates a portfolio.
var accountLocks = newKeyedMutex()

// lockPortfolio loads the user's portfolio inside tx with a row lock.
// Dialects without FOR UPDATE support skip the clause.
func lockPortfolio(tx *gorm.DB, userID string) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&portfolio).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPortfolioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &portfolio, nil
}

// withAccountTx runs fn in a transaction holding both the in-process account
// lock and the portfolio row lock.
func withAccountTx(db *gorm.DB, userID string, fn func(tx *gorm.DB, portfolio *models.Portfolio) error) error {
	unlock := accountLocks.Lock(userID)
	defer unlock()

	return db.Transaction(func(tx *gorm.DB) error {
		portfolio, err := lockPortfolio(tx, userID)
		if err != nil {
			return err
		}
		return fn(tx, portfolio)
	})
}
