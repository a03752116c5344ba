package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Nickname  string         `json:"nickname" gorm:"not null"`
	Role      UserRole       `json:"role" gorm:"default:'member'"`
	Beans     int            `json:"beans" gorm:"default:1"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Gifts  []Gift `json:"gifts,omitempty"`
	Wishes []Wish `json:"wishes,omitempty"`
}

// UserSummary is the public shape handed to other participants of a drift.
type UserSummary struct {
	ID       uint   `json:"id"`
	Nickname string `json:"nickname"`
	Beans    int    `json:"beans"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Nickname: u.Nickname, Beans: u.Beans}
}
