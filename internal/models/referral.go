package models

// Referral links a referred user to the user whose code they signed up with.
// Rows are written once at signup and never updated.
type Referral struct {
	Base
	UserID     string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	ReferrerID string `gorm:"type:uuid;index;not null" json:"referrer_id"`
	User       User   `gorm:"foreignKey:UserID" json:"user"`
	Referrer   User   `gorm:"foreignKey:ReferrerID" json:"-"`
}
