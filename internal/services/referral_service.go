package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "coinfolio/internal/errors"
	"coinfolio/internal/models"
	"coinfolio/internal/pagination"
)

// referralPageSize is the page size used when the caller does not pass one.
const referralPageSize = 10

// referralService resolves referral codes and redeems bonus points.
type referralService struct {
	db *gorm.DB
}

// NewReferralService creates a new ReferralServicer.
func NewReferralService(db *gorm.DB) ReferralServicer {
	return &referralService{db: db}
}

// ResolveReferrer returns the account owning code, or ErrReferrerNotFound.
func (s *referralService) ResolveReferrer(code string) (*models.User, error) {
	return findByReferralCode(s.db, code)
}

// ListReferrals returns the accounts referred by userID, oldest first.
func (s *referralService) ListReferrals(userID string, page pagination.PageRequest) (*pagination.PageResponse[ReferralEntry], error) {
	page.Defaults(referralPageSize)

	var totalItems int64
	if err := s.db.Model(&models.Referral{}).Where("referrer_id = ?", userID).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var referrals []models.Referral
	if err := s.db.Preload("User").Where("referrer_id = ?", userID).
		Order("created_at ASC").
		Scopes(pagination.Paginate(page)).
		Find(&referrals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	entries := make([]ReferralEntry, 0, len(referrals))
	for i := range referrals {
		entries = append(entries, ReferralEntry{
			UserID:    referrals[i].UserID,
			Username:  referrals[i].User.Username,
			CreatedAt: referrals[i].CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// TradeInPoints converts all of the caller's bonus points into cash at one
// point per unit of currency and zeroes the bonus.
func (s *referralService) TradeInPoints(ctx context.Context, userID string) (*TradeInResult, error) {
	result := &TradeInResult{}
	err := withAccountTx(s.db.WithContext(ctx), userID, func(tx *gorm.DB, portfolio *models.Portfolio) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", userID).First(&user).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrUserNotFound, err)
		}

		redeemed := user.Bonus
		if redeemed > 0 {
			// Relative decrement keeps referral credits committed after the read.
			if err := tx.Model(&models.User{}).Where("id = ?", userID).
				Update("bonus", gorm.Expr("bonus - ?", redeemed)).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}

			portfolio.CashBalance = portfolio.CashBalance.Add(decimal.NewFromInt(redeemed))
			portfolio.Recalculate()
			if err := tx.Save(portfolio).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		result.Redeemed = redeemed
		result.Portfolio = portfolio
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
