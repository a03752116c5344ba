package services

import (
	"fmt"
	"testing"

	"github.com/avelarde/bookdrift-be/config"
	"github.com/avelarde/bookdrift-be/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points config.DB at a fresh in-memory database so the services
// run their real transaction paths.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every statement on the one in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Gift{},
		&models.Wish{},
		&models.Drift{},
		&models.BeanLog{},
	))

	config.DB = db
	t.Cleanup(func() {
		config.DB = nil
		sqlDB.Close()
	})
}

func createUser(t *testing.T, nickname string, beans int) *models.User {
	t.Helper()

	user := &models.User{
		Email:    fmt.Sprintf("%s@example.com", nickname),
		Password: "irrelevant",
		Nickname: nickname,
		IsActive: true,
	}
	require.NoError(t, config.DB.Create(user).Error)
	// Set the balance explicitly; the column default would swallow a zero.
	require.NoError(t, config.DB.Model(user).UpdateColumn("beans", beans).Error)
	user.Beans = beans
	return user
}

func listGift(t *testing.T, owner *models.User, isbn, title string) *models.Gift {
	t.Helper()

	gift, err := NewLibraryService().AddGift(owner.ID, BookInput{
		ISBN:   isbn,
		Title:  title,
		Author: "Test Author",
		Image:  "http://img.example.com/" + isbn,
	})
	require.NoError(t, err)
	return gift
}

func userBeans(t *testing.T, userID uint) int {
	t.Helper()

	var user models.User
	require.NoError(t, config.DB.First(&user, userID).Error)
	return user.Beans
}

func totalBeans(t *testing.T) int {
	t.Helper()

	var total int64
	require.NoError(t, config.DB.Model(&models.User{}).
		Select("COALESCE(SUM(beans), 0)").Scan(&total).Error)
	return int(total)
}

var defaultShipping = DriftCreateInput{
	RecipientName: "Ana Reader",
	Address:       "12 Paper St",
	Mobile:        "13812345678",
	Message:       "Looking forward to it",
}
