package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DriftStatus is the lifecycle state of a drift. It is stored as an integer
// and only the four known values are accepted when reading rows back; an
// unknown value is a data error, not something to coerce.
type DriftStatus int

const (
	DriftPending  DriftStatus = 1
	DriftSuccess  DriftStatus = 2
	DriftRejected DriftStatus = 3
	DriftRedrawn  DriftStatus = 4
)

func ParseDriftStatus(v int64) (DriftStatus, error) {
	s := DriftStatus(v)
	switch s {
	case DriftPending, DriftSuccess, DriftRejected, DriftRedrawn:
		return s, nil
	}
	return 0, fmt.Errorf("unknown drift status %d", v)
}

func (s DriftStatus) String() string {
	switch s {
	case DriftPending:
		return "pending"
	case DriftSuccess:
		return "success"
	case DriftRejected:
		return "rejected"
	case DriftRedrawn:
		return "redrawn"
	}
	return fmt.Sprintf("DriftStatus(%d)", int(s))
}

func (s *DriftStatus) Scan(value interface{}) error {
	var raw int64
	switch v := value.(type) {
	case int64:
		raw = v
	case int:
		raw = int64(v)
	default:
		return fmt.Errorf("cannot scan %T into DriftStatus", value)
	}
	parsed, err := ParseDriftStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s DriftStatus) Value() (driver.Value, error) {
	if _, err := ParseDriftStatus(int64(s)); err != nil {
		return nil, err
	}
	return int64(s), nil
}

// Drift is one exchange transaction between a requester and a gifter.
// Participants and the book snapshot are fixed at creation; only Status
// changes afterwards, exactly once, away from DriftPending.
type Drift struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Status    DriftStatus    `json:"status" gorm:"type:integer;default:1;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Participants
	RequesterID       uint   `json:"requester_id" gorm:"not null;index"`
	RequesterNickname string `json:"requester_nickname"`
	GifterID          uint   `json:"gifter_id" gorm:"not null;index"`
	GifterNickname    string `json:"gifter_nickname"`

	// Book snapshot, denormalized at creation
	GiftID     uint   `json:"gift_id" gorm:"not null"`
	ISBN       string `json:"isbn" gorm:"not null"`
	BookTitle  string `json:"book_title"`
	BookAuthor string `json:"book_author"`
	BookImg    string `json:"book_img"`

	// Shipping details supplied by the requester
	RecipientName string `json:"recipient_name"`
	Address       string `json:"address"`
	Mobile        string `json:"mobile"`
	Message       string `json:"message"`
}

func (d *Drift) IsRequester(userID uint) bool {
	return d.RequesterID == userID
}

func (d *Drift) IsGifter(userID uint) bool {
	return d.GifterID == userID
}
