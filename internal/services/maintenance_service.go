package services

import (
	"gorm.io/gorm"

	apperrors "coinfolio/internal/errors"
	"coinfolio/internal/logger"
	"coinfolio/internal/models"
)

// maintenanceService repairs rows left behind by removed accounts.
type maintenanceService struct {
	db *gorm.DB
}

// NewMaintenanceService creates a new MaintenanceServicer.
func NewMaintenanceService(db *gorm.DB) MaintenanceServicer {
	return &maintenanceService{db: db}
}

// PurgeOrphans deletes holdings, portfolios and referral edges that point at
// an account which no longer exists.
func (s *maintenanceService) PurgeOrphans() (*OrphanReport, error) {
	report := &OrphanReport{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		owners := func() *gorm.DB {
			return tx.Session(&gorm.Session{NewDB: true}).Unscoped().Model(&models.User{}).Select("id")
		}

		res := tx.Unscoped().Where("user_id NOT IN (?)", owners()).Delete(&models.Holding{})
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		report.Holdings = res.RowsAffected

		res = tx.Unscoped().Where("user_id NOT IN (?)", owners()).Delete(&models.Portfolio{})
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		report.Portfolios = res.RowsAffected

		res = tx.Unscoped().Where("user_id NOT IN (?) OR referrer_id NOT IN (?)", owners(), owners()).Delete(&models.Referral{})
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		report.Referrals = res.RowsAffected
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Infow("orphan purge finished",
		"holdings", report.Holdings,
		"portfolios", report.Portfolios,
		"referrals", report.Referrals,
	)
	return report, nil
}
