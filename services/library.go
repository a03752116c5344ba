package services

import (
	"errors"

	"github.com/avelarde/bookdrift-be/config"
	"github.com/avelarde/bookdrift-be/models"
	"gorm.io/gorm"
)

var ErrAlreadyListed = errors.New("already listed for this book")

// BookInput is the book metadata supplied when a gift is listed.
type BookInput struct {
	ISBN      string
	Title     string
	Author    string
	Publisher string
	Image     string
	Summary   string
}

// LibraryService manages gift and wish listings. Launched flags are only ever
// flipped by the drift lifecycle, never here.
type LibraryService struct{}

func NewLibraryService() *LibraryService {
	return &LibraryService{}
}

// AddGift lists a book for giving away and records its metadata so drift
// snapshots can be built from it later.
func (s *LibraryService) AddGift(userID uint, in BookInput) (*models.Gift, error) {
	var gift models.Gift
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := upsertBook(tx, in); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Gift{}).
			Where("user_id = ? AND isbn = ? AND launched = ?", userID, in.ISBN, false).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyListed
		}

		gift = models.Gift{UserID: userID, ISBN: in.ISBN}
		return tx.Create(&gift).Error
	})
	if err != nil {
		return nil, err
	}
	return &gift, nil
}

// AddWish records that the user wants a copy of the book.
func (s *LibraryService) AddWish(userID uint, isbn string) (*models.Wish, error) {
	var wish models.Wish
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Wish{}).
			Where("user_id = ? AND isbn = ? AND launched = ?", userID, isbn, false).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyListed
		}

		wish = models.Wish{UserID: userID, ISBN: isbn}
		return tx.Create(&wish).Error
	})
	if err != nil {
		return nil, err
	}
	return &wish, nil
}

func (s *LibraryService) MyGifts(userID uint) ([]models.Gift, error) {
	var gifts []models.Gift
	err := config.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&gifts).Error
	return gifts, err
}

func (s *LibraryService) MyWishes(userID uint) ([]models.Wish, error) {
	var wishes []models.Wish
	err := config.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&wishes).Error
	return wishes, err
}

func (s *LibraryService) GiftByID(giftID uint) (*models.Gift, error) {
	var gift models.Gift
	if err := config.DB.Preload("User").First(&gift, giftID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGiftNotFound
		}
		return nil, err
	}
	return &gift, nil
}

// upsertBook keeps the book table current without clobbering richer existing
// metadata with blanks.
func upsertBook(tx *gorm.DB, in BookInput) error {
	var book models.Book
	err := tx.Where("isbn = ?", in.ISBN).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		book = models.Book{
			ISBN:      in.ISBN,
			Title:     in.Title,
			Author:    in.Author,
			Publisher: in.Publisher,
			Image:     in.Image,
			Summary:   in.Summary,
		}
		return tx.Create(&book).Error
	}
	if err != nil {
		return err
	}

	if in.Title != "" {
		book.Title = in.Title
	}
	if in.Author != "" {
		book.Author = in.Author
	}
	if in.Publisher != "" {
		book.Publisher = in.Publisher
	}
	if in.Image != "" {
		book.Image = in.Image
	}
	if in.Summary != "" {
		book.Summary = in.Summary
	}
	return tx.Save(&book).Error
}
