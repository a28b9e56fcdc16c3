package models

import "time"

// ActiveKey is the sentinel stored in SubscriptionModel.ActiveKey while a
// subscription is active. Inactive rows carry NULL, so the composite unique
// index (user_id, program_id, active_key) admits at most one active
// subscription per user and program while allowing any number of ended ones.
const ActiveKey = "active"

// SubscriptionModel maps to the subscriptions table.
type SubscriptionModel struct {
	ID               string     `gorm:"type:char(36);primaryKey"`
	UserID           string     `gorm:"type:char(36);not null;uniqueIndex:uidx_user_program_active,priority:1"`
	ProgramID        string     `gorm:"type:char(36);not null;uniqueIndex:uidx_user_program_active,priority:2;index"`
	Status           string     `gorm:"type:varchar(20);not null;index"`
	ActiveKey        *string    `gorm:"type:varchar(10);uniqueIndex:uidx_user_program_active,priority:3"`
	PaymentOrderID   *uint      `gorm:"index"`
	PaymentMethod    string     `gorm:"type:varchar(20);not null"`
	PaymentAmount    int64      `gorm:"not null"`
	CurrentPeriodEnd *time.Time `gorm:""`
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
