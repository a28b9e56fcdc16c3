package models

import "time"

// ProgramModel maps to the programs table.
type ProgramModel struct {
	ID             string    `gorm:"type:char(36);primaryKey"`
	CoachID        string    `gorm:"type:char(36);not null;index"`
	Title          string    `gorm:"type:varchar(200);not null"`
	Description    string    `gorm:"type:text"`
	Price          int64     `gorm:"not null"`
	ThumbnailURL   *string   `gorm:"type:varchar(500)"`
	IsActive       bool      `gorm:"not null;default:false;index"`
	OnSale         bool      `gorm:"not null;default:true"`
	SaleStopReason *string   `gorm:"type:varchar(500)"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (ProgramModel) TableName() string {
	return "programs"
}
