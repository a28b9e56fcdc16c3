package models

import "time"

// ProfileModel maps to the profiles table. Rows are written by the identity
// provider sync; this service only reads them.
type ProfileModel struct {
	ID                  string    `gorm:"type:char(36);primaryKey"`
	Email               string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name                string    `gorm:"type:varchar(100);not null"`
	DisplayName         string    `gorm:"type:varchar(100)"`
	Role                string    `gorm:"type:varchar(20);not null;default:'subscriber';index"`
	OnboardingCompleted bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
