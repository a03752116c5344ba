package models

import (
	"time"
)

// BeanLog is the audit trail of the bean ledger. One row is written inside
// the same transaction as every balance mutation.
type BeanLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"-"`
	Delta     int       `json:"delta" gorm:"not null"`
	Reason    string    `json:"reason" gorm:"not null"` // "drift_sent", "drift_rejected", "drift_redrawn", "drift_mailed", "admin_grant"
	DriftID   *uint     `json:"drift_id,omitempty"`
	Drift     *Drift    `json:"-"`
}

func (BeanLog) TableName() string {
	return "bean_logs"
}
