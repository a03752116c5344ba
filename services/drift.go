package services

import (
	"errors"

	"github.com/avelarde/bookdrift-be/config"
	"github.com/avelarde/bookdrift-be/models"
	"gorm.io/gorm"
)

// beansToSend is the admission threshold for requesting a book.
const beansToSend = 1

var (
	ErrSelfTarget     = errors.New("cannot request your own gift")
	ErrNotEnoughBeans = errors.New("not enough beans to send a drift")
	ErrDriftNotFound  = errors.New("drift not found")
	ErrGiftNotFound   = errors.New("gift not found")
)

// DriftCreateInput carries the shipping details the requester fills in.
type DriftCreateInput struct {
	RecipientName string
	Address       string
	Mobile        string
	Message       string
}

type DriftService struct {
	beanService *BeanService
	notifier    *NotificationService
}

func NewDriftService() *DriftService {
	return &DriftService{
		beanService: NewBeanService(),
		notifier:    NewNotificationService(),
	}
}

// CreateDrift opens a new exchange: it snapshots the gift and its book onto a
// pending drift and debits the requester by one bean, all in one transaction.
// The notification to the gifter is sent after commit and is best-effort.
func (s *DriftService) CreateDrift(requesterID, giftID uint, in DriftCreateInput) (*models.Drift, error) {
	var gift models.Gift
	if err := config.DB.Preload("User").First(&gift, giftID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGiftNotFound
		}
		return nil, err
	}
	if gift.Launched {
		return nil, ErrGiftNotFound
	}
	if gift.IsOwnedBy(requesterID) {
		return nil, ErrSelfTarget
	}

	var drift models.Drift
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		// Re-read the balance inside the transaction; the pre-check outside
		// would be a lost update waiting to happen.
		var requester models.User
		if err := tx.First(&requester, requesterID).Error; err != nil {
			return err
		}
		if requester.Beans < beansToSend {
			return ErrNotEnoughBeans
		}

		var book models.Book
		if err := tx.Where("isbn = ?", gift.ISBN).First(&book).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGiftNotFound
			}
			return err
		}

		drift = newDriftSnapshot(&requester, &gift, &book, in)
		if err := tx.Create(&drift).Error; err != nil {
			return err
		}
		return s.beanService.DebitBeans(tx, requester.ID, beansToSend, BeanReasonDriftSent, &drift.ID)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.DriftRequested(&drift, gift.User.Email)
	return &drift, nil
}

// RejectDrift lets the gifter turn a pending request down. The requester gets
// the bean back.
func (s *DriftService) RejectDrift(gifterID, driftID uint) error {
	var drift models.Drift
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gifter_id = ? AND id = ? AND status = ?",
			gifterID, driftID, models.DriftPending).First(&drift).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDriftNotFound
			}
			return err
		}
		if err := s.transition(tx, &drift, models.DriftRejected); err != nil {
			return err
		}
		return s.beanService.CreditBeans(tx, drift.RequesterID, 1, BeanReasonDriftRejected, &drift.ID)
	})
	if err != nil {
		return err
	}

	s.notifier.DriftResolved(&drift)
	return nil
}

// RedrawDrift lets the requester withdraw a pending request and reclaim the
// bean. The pending-status predicate is deliberate: without it a requester
// could redraw an already-resolved drift and collect a second refund.
func (s *DriftService) RedrawDrift(requesterID, driftID uint) error {
	var drift models.Drift
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("requester_id = ? AND id = ? AND status = ?",
			requesterID, driftID, models.DriftPending).First(&drift).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDriftNotFound
			}
			return err
		}
		if err := s.transition(tx, &drift, models.DriftRedrawn); err != nil {
			return err
		}
		return s.beanService.CreditBeans(tx, requesterID, 1, BeanReasonDriftRedrawn, &drift.ID)
	})
	if err != nil {
		return err
	}

	s.notifier.DriftResolved(&drift)
	return nil
}

// MarkMailed completes an exchange: status to success, one bean to the gifter
// for shipping, the gift retired, and every open wish of the requester for
// this ISBN fulfilled. All four effects share one transaction.
func (s *DriftService) MarkMailed(gifterID, driftID uint) error {
	var drift models.Drift
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gifter_id = ? AND id = ? AND status = ?",
			gifterID, driftID, models.DriftPending).First(&drift).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDriftNotFound
			}
			return err
		}
		if err := s.transition(tx, &drift, models.DriftSuccess); err != nil {
			return err
		}
		if err := s.beanService.CreditBeans(tx, gifterID, 1, BeanReasonDriftMailed, &drift.ID); err != nil {
			return err
		}

		res := tx.Model(&models.Gift{}).
			Where("id = ?", drift.GiftID).
			Update("launched", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrGiftNotFound
		}

		// Every still-open wish of the requester for this book is satisfied
		// by the delivery, not just one row.
		return tx.Model(&models.Wish{}).
			Where("isbn = ? AND user_id = ? AND launched = ?", drift.ISBN, drift.RequesterID, false).
			Update("launched", true).Error
	})
	if err != nil {
		return err
	}

	s.notifier.DriftResolved(&drift)
	return nil
}

// ListForUser returns every drift the user participates in, either side,
// newest first.
func (s *DriftService) ListForUser(userID uint) ([]models.Drift, error) {
	var drifts []models.Drift
	err := config.DB.Where("requester_id = ? OR gifter_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&drifts).Error
	return drifts, err
}

// transition flips a drift out of pending. The status predicate makes the
// update a compare-and-set: if a concurrent transition got there first the
// row no longer matches and the whole transaction rolls back as not found.
func (s *DriftService) transition(tx *gorm.DB, drift *models.Drift, to models.DriftStatus) error {
	res := tx.Model(&models.Drift{}).
		Where("id = ? AND status = ?", drift.ID, models.DriftPending).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDriftNotFound
	}
	drift.Status = to
	return nil
}

// newDriftSnapshot enumerates every field copied onto the drift record. The
// mapping is explicit on purpose: a renamed source field should fail to
// compile here, not silently drop data.
func newDriftSnapshot(requester *models.User, gift *models.Gift, book *models.Book, in DriftCreateInput) models.Drift {
	return models.Drift{
		Status:            models.DriftPending,
		RequesterID:       requester.ID,
		RequesterNickname: requester.Nickname,
		GifterID:          gift.UserID,
		GifterNickname:    gift.User.Nickname,
		GiftID:            gift.ID,
		ISBN:              gift.ISBN,
		BookTitle:         book.Title,
		BookAuthor:        book.Author,
		BookImg:           book.Image,
		RecipientName:     in.RecipientName,
		Address:           in.Address,
		Mobile:            in.Mobile,
		Message:           in.Message,
	}
}
