package services

import (
	"errors"

	"github.com/avelarde/bookdrift-be/config"
	"github.com/avelarde/bookdrift-be/models"
	"gorm.io/gorm"
)

// Bean ledger reasons recorded in bean_logs.
const (
	BeanReasonDriftSent     = "drift_sent"
	BeanReasonDriftRejected = "drift_rejected"
	BeanReasonDriftRedrawn  = "drift_redrawn"
	BeanReasonDriftMailed   = "drift_mailed"
	BeanReasonAdminGrant    = "admin_grant"
)

var ErrUserNotFound = errors.New("user not found")

type BeanService struct{}

func NewBeanService() *BeanService {
	return &BeanService{}
}

// CreditBeans adds beans to a user inside the caller's transaction. It never
// commits on its own; the surrounding unit of work decides the outcome.
func (s *BeanService) CreditBeans(tx *gorm.DB, userID uint, amount int, reason string, driftID *uint) error {
	return s.adjustBeans(tx, userID, amount, reason, driftID)
}

// DebitBeans removes beans from a user inside the caller's transaction.
// Overdraft protection is the caller's admission check, not this helper.
func (s *BeanService) DebitBeans(tx *gorm.DB, userID uint, amount int, reason string, driftID *uint) error {
	return s.adjustBeans(tx, userID, -amount, reason, driftID)
}

func (s *BeanService) adjustBeans(tx *gorm.DB, userID uint, delta int, reason string, driftID *uint) error {
	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("beans", gorm.Expr("beans + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}

	entry := models.BeanLog{
		UserID:  userID,
		Delta:   delta,
		Reason:  reason,
		DriftID: driftID,
	}
	return tx.Create(&entry).Error
}

// Balance returns the user's current bean count.
func (s *BeanService) Balance(userID uint) (int, error) {
	var user models.User
	if err := config.DB.Select("beans").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return user.Beans, nil
}

// CanSendDrift is the admission check run before a drift request is accepted.
func (s *BeanService) CanSendDrift(userID uint) (bool, error) {
	beans, err := s.Balance(userID)
	if err != nil {
		return false, err
	}
	return beans >= beansToSend, nil
}

// History returns the bean audit trail for a user, newest first.
func (s *BeanService) History(userID uint) ([]models.BeanLog, error) {
	var logs []models.BeanLog
	err := config.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

// GrantBeans credits beans outside the drift lifecycle (admin action).
func (s *BeanService) GrantBeans(userID uint, amount int) error {
	if amount <= 0 {
		return errors.New("grant amount must be positive")
	}
	return config.DB.Transaction(func(tx *gorm.DB) error {
		return s.CreditBeans(tx, userID, amount, BeanReasonAdminGrant, nil)
	})
}
