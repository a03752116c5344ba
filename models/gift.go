package models

import (
	"time"

	"gorm.io/gorm"
)

// Gift is a book a user has put up for exchange. Launched flips to true
// exactly once, when a drift for it reaches Success.
type Gift struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	User      User           `json:"user,omitempty"`
	ISBN      string         `json:"isbn" gorm:"not null;index"`
	Launched  bool           `json:"launched" gorm:"default:false"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (g *Gift) IsOwnedBy(userID uint) bool {
	return g.UserID == userID
}
