package models

import "time"

// User is a signed-up account. Bonus holds referral points, redeemable
// one-for-one against the portfolio cash balance.
type User struct {
	Base
	Username            string     `gorm:"uniqueIndex;not null" json:"username"`
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	Password            string     `gorm:"not null" json:"-"`
	ReferralCode        string     `gorm:"uniqueIndex;size:16;not null" json:"referral_code"`
	Bonus               int64      `gorm:"not null;default:0" json:"bonus"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	RefreshTokenHash    string     `gorm:"size:64" json:"-"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`
	Portfolio           *Portfolio `gorm:"foreignKey:UserID" json:"portfolio,omitempty"`
	Holdings            []Holding  `gorm:"foreignKey:UserID" json:"holdings,omitempty"`
}
