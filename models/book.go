package models

import (
	"time"

	"gorm.io/gorm"
)

// Book holds the denormalized metadata a drift snapshot is built from.
// Rows are upserted when a gift is listed; the exchange core only reads them.
type Book struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ISBN      string         `json:"isbn" gorm:"uniqueIndex;not null"`
	Title     string         `json:"title" gorm:"not null"`
	Author    string         `json:"author"`
	Publisher string         `json:"publisher"`
	Image     string         `json:"image"`
	Summary   string         `json:"summary"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
