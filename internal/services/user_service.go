package services

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "coinfolio/internal/errors"
	"coinfolio/internal/models"
	"coinfolio/internal/uuid"
)

const (
	maxFailedLoginAttempts = 5
	lockoutDuration        = 15 * time.Minute

	// referralCodeAttempts bounds retries when a generated code collides.
	referralCodeAttempts = 5
)

// userService handles account-related business logic.
type userService struct {
	db            *gorm.DB
	startingCash  decimal.Decimal
	referralBonus int64
}

// NewUserService creates a new UserServicer. Every new account starts with
// startingCash; a referrer earns referralBonus points per signup.
func NewUserService(db *gorm.DB, startingCash decimal.Decimal, referralBonus int64) UserServicer {
	return &userService{db: db, startingCash: startingCash, referralBonus: referralBonus}
}

// CreateUser registers a new account with its portfolio. When referralCode is
// set the referrer must exist; the referral edge and the referrer's bonus are
// written in the same transaction as the account.
func (s *userService) CreateUser(username, email, password, referralCode string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username, email and password are required")
	}

	var referrer *models.User
	if referralCode != "" {
		r, err := findByReferralCode(s.db, referralCode)
		if err != nil {
			return nil, err
		}
		referrer = r
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateUsername
	}
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		IsActive: true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		code, txErr := uniqueReferralCode(tx)
		if txErr != nil {
			return txErr
		}
		user.ReferralCode = code

		if txErr := tx.Create(user).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}

		portfolio := &models.Portfolio{UserID: user.ID}
		portfolio.Reset(s.startingCash)
		if txErr := tx.Create(portfolio).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		user.Portfolio = portfolio

		if referrer == nil {
			return nil
		}

		referral := &models.Referral{UserID: user.ID, ReferrerID: referrer.ID}
		if txErr := tx.Omit("User", "Referrer").Create(referral).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		if txErr := tx.Model(&models.User{}).Where("id = ?", referrer.ID).
			Update("bonus", gorm.Expr("bonus + ?", s.referralBonus)).Error; txErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// uniqueReferralCode generates a code not yet assigned to any account.
func uniqueReferralCode(tx *gorm.DB) (string, error) {
	for i := 0; i < referralCodeAttempts; i++ {
		code := uuid.NewReferralCode()
		var count int64
		if err := tx.Unscoped().Model(&models.User{}).Where("referral_code = ?", code).Count(&count).Error; err != nil {
			return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", apperrors.WithMessage(apperrors.ErrInternalServer, "could not allocate a referral code")
}

// findByReferralCode resolves a referral code to its owner.
func findByReferralCode(db *gorm.DB, code string) (*models.User, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, apperrors.ErrReferrerNotFound
	}

	var user models.User
	if err := db.Where("referral_code = ?", code).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReferrerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByEmail retrieves an active user by email
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ? AND is_active = ?", strings.ToLower(email), true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}

// AttemptLogin authenticates by username or email. After
// maxFailedLoginAttempts consecutive failures the account is locked for
// lockoutDuration. Unknown logins and wrong passwords return the same error.
func (s *userService) AttemptLogin(login, password string) (*models.User, error) {
	login = strings.TrimSpace(login)

	var user models.User
	query := s.db.Where("username = ? AND is_active = ?", login, true)
	if strings.Contains(login, "@") {
		query = s.db.Where("email = ? AND is_active = ?", strings.ToLower(login), true)
	}
	if err := query.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	now := time.Now()
	if user.LockedUntil != nil && user.LockedUntil.After(now) {
		return nil, apperrors.ErrAccountLocked
	}

	if !s.VerifyPassword(&user, password) {
		updates := map[string]interface{}{"failed_login_attempts": user.FailedLoginAttempts + 1}
		if user.FailedLoginAttempts+1 >= maxFailedLoginAttempts {
			updates["locked_until"] = now.Add(lockoutDuration)
			updates["failed_login_attempts"] = 0
		}
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	user.LastLoginAt = &now
	if err := s.db.Model(&user).Updates(map[string]interface{}{
		"failed_login_attempts": 0,
		"locked_until":          nil,
		"last_login_at":         now,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &user, nil
}

// StoreRefreshTokenHash saves the hash of the current refresh token. An
// empty hash revokes it.
func (s *userService) StoreRefreshTokenHash(userID, tokenHash string) error {
	result := s.db.Model(&models.User{}).Where("id = ?", userID).Update("refresh_token_hash", tokenHash)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// GetRefreshTokenHash returns the stored refresh token hash.
func (s *userService) GetRefreshTokenHash(userID string) (string, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return "", err
	}
	return user.RefreshTokenHash, nil
}

// DeleteUser removes the account together with its portfolio, holdings and
// referral edges in either direction.
func (s *userService) DeleteUser(userID string) error {
	unlock := accountLocks.Lock(userID)
	defer unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Holding{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&models.Portfolio{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Unscoped().Where("user_id = ? OR referrer_id = ?", userID, userID).Delete(&models.Referral{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Unscoped().Delete(&user).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
