package models

import (
	"time"

	"gorm.io/gorm"
)

// Wish is a want-record for a book. Launched flips to true when the wisher
// receives the book through a successful drift.
type Wish struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	User      User           `json:"user,omitempty"`
	ISBN      string         `json:"isbn" gorm:"not null;index"`
	Launched  bool           `json:"launched" gorm:"default:false"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
