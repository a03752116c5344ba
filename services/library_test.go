package services

import (
	"testing"

	"github.com/avelarde/bookdrift-be/config"
	"github.com/avelarde/bookdrift-be/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddGiftUpsertsBook(t *testing.T) {
	setupTestDB(t)
	svc := NewLibraryService()

	owner := createUser(t, "owner", 1)

	gift, err := svc.AddGift(owner.ID, BookInput{
		ISBN:   "9787501524044",
		Title:  "Flowers for Algernon",
		Author: "Daniel Keyes",
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, gift.UserID)
	assert.False(t, gift.Launched)

	var book models.Book
	require.NoError(t, config.DB.Where("isbn = ?", "9787501524044").First(&book).Error)
	assert.Equal(t, "Flowers for Algernon", book.Title)
	assert.Equal(t, "Daniel Keyes", book.Author)
}

func TestAddGiftDuplicate(t *testing.T) {
	setupTestDB(t)
	svc := NewLibraryService()

	owner := createUser(t, "owner", 1)

	_, err := svc.AddGift(owner.ID, BookInput{ISBN: "9780553283686", Title: "Hyperion"})
	require.NoError(t, err)

	_, err = svc.AddGift(owner.ID, BookInput{ISBN: "9780553283686", Title: "Hyperion"})
	assert.ErrorIs(t, err, ErrAlreadyListed)

	// A launched copy no longer blocks relisting.
	require.NoError(t, config.DB.Model(&models.Gift{}).
		Where("user_id = ?", owner.ID).
		Update("launched", true).Error)
	_, err = svc.AddGift(owner.ID, BookInput{ISBN: "9780553283686", Title: "Hyperion"})
	assert.NoError(t, err)
}

func TestUpsertBookKeepsExistingMetadata(t *testing.T) {
	setupTestDB(t)
	svc := NewLibraryService()

	first := createUser(t, "first", 1)
	second := createUser(t, "second", 1)

	_, err := svc.AddGift(first.ID, BookInput{
		ISBN:    "9780007322596",
		Title:   "Mostly Harmless",
		Author:  "Douglas Adams",
		Summary: "The fifth book in the trilogy.",
	})
	require.NoError(t, err)

	// A sparser listing of the same book must not blank what we know.
	_, err = svc.AddGift(second.ID, BookInput{ISBN: "9780007322596", Title: "Mostly Harmless"})
	require.NoError(t, err)

	var book models.Book
	require.NoError(t, config.DB.Where("isbn = ?", "9780007322596").First(&book).Error)
	assert.Equal(t, "Douglas Adams", book.Author)
	assert.Equal(t, "The fifth book in the trilogy.", book.Summary)

	var count int64
	require.NoError(t, config.DB.Model(&models.Book{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddWish(t *testing.T) {
	setupTestDB(t)
	svc := NewLibraryService()

	user := createUser(t, "wisher", 1)

	wish, err := svc.AddWish(user.ID, "9780141439518")
	require.NoError(t, err)
	assert.False(t, wish.Launched)

	_, err = svc.AddWish(user.ID, "9780141439518")
	assert.ErrorIs(t, err, ErrAlreadyListed)

	wishes, err := svc.MyWishes(user.ID)
	require.NoError(t, err)
	assert.Len(t, wishes, 1)
}

func TestGiftByID(t *testing.T) {
	setupTestDB(t)
	svc := NewLibraryService()

	owner := createUser(t, "owner", 1)
	created, err := svc.AddGift(owner.ID, BookInput{ISBN: "9780001", Title: "Book One"})
	require.NoError(t, err)

	gift, err := svc.GiftByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner", gift.User.Nickname)

	_, err = svc.GiftByID(999)
	assert.ErrorIs(t, err, ErrGiftNotFound)
}
