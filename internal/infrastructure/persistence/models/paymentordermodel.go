package models

import "time"

// PaymentOrderModel maps to the payment_orders table. OrderID is the public
// token handed to the checkout widget; the numeric primary key stays internal.
type PaymentOrderModel struct {
	ID         uint       `gorm:"primaryKey;autoIncrement"`
	OrderID    string     `gorm:"type:char(36);uniqueIndex;not null"`
	UserID     string     `gorm:"type:char(36);not null;index"`
	ProgramID  string     `gorm:"type:char(36);not null;index"`
	Amount     int64      `gorm:"not null"`
	Status     string     `gorm:"type:varchar(20);not null;default:'ready';index"`
	PaymentKey *string    `gorm:"type:varchar(100);uniqueIndex"`
	ApprovedAt *time.Time `gorm:""`
	CreatedAt  time.Time  `gorm:"not null"`
	UpdatedAt  time.Time  `gorm:"not null"`
}

func (PaymentOrderModel) TableName() string {
	return "payment_orders"
}
