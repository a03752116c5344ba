package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/avelarde/bookdrift-be/config"
	"github.com/avelarde/bookdrift-be/models"
	"github.com/avelarde/bookdrift-be/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testMobilePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
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

// driftRouter wires the drift endpoints behind a stub auth middleware that
// injects the acting user, the way the JWT middleware does in production.
func driftRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("cnmobile", func(fl validator.FieldLevel) bool {
			return testMobilePattern.MatchString(fl.Field().String())
		})
	}

	dc := NewDriftController()
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	r.POST("/drifts", dc.Create)
	r.GET("/drifts/pending", dc.Pending)
	r.PUT("/drifts/:id/reject", dc.Reject)
	r.PUT("/drifts/:id/redraw", dc.Redraw)
	r.PUT("/drifts/:id/mailed", dc.Mailed)
	return r
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
	require.NoError(t, config.DB.Model(user).UpdateColumn("beans", beans).Error)
	user.Beans = beans
	return user
}

func listGift(t *testing.T, owner *models.User, isbn, title string) *models.Gift {
	t.Helper()

	gift, err := services.NewLibraryService().AddGift(owner.ID, services.BookInput{
		ISBN:  isbn,
		Title: title,
	})
	require.NoError(t, err)
	return gift
}

func createBody(giftID uint, mobile string) *bytes.Buffer {
	payload, _ := json.Marshal(gin.H{
		"gift_id":        giftID,
		"recipient_name": "Ana Reader",
		"address":        "12 Paper St",
		"mobile":         mobile,
		"message":        "thanks",
	})
	return bytes.NewBuffer(payload)
}

func TestCreateDriftEndpoint(t *testing.T) {
	setupTestDB(t)

	gifter := createUser(t, "gifter", 1)
	requester := createUser(t, "requester", 2)
	gift := listGift(t, gifter, "9787501524044", "Flowers for Algernon")

	router := driftRouter(requester.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/drifts", createBody(gift.ID, "13812345678"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Drift models.Drift `json:"drift"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.DriftPending, resp.Drift.Status)
	assert.Equal(t, requester.ID, resp.Drift.RequesterID)
}

func TestCreateDriftEndpointSelfTarget(t *testing.T) {
	setupTestDB(t)

	owner := createUser(t, "owner", 2)
	gift := listGift(t, owner, "9780553283686", "Hyperion")

	router := driftRouter(owner.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/drifts", createBody(gift.ID, "13812345678"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateDriftEndpointNotEnoughBeans(t *testing.T) {
	setupTestDB(t)

	gifter := createUser(t, "gifter", 1)
	broke := createUser(t, "broke", 0)
	gift := listGift(t, gifter, "9780553283686", "Hyperion")

	router := driftRouter(broke.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/drifts", createBody(gift.ID, "13812345678"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateDriftEndpointInvalidMobile(t *testing.T) {
	setupTestDB(t)

	gifter := createUser(t, "gifter", 1)
	requester := createUser(t, "requester", 2)
	gift := listGift(t, gifter, "9780553283686", "Hyperion")

	router := driftRouter(requester.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/drifts", createBody(gift.ID, "not-a-mobile"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRejectEndpoint(t *testing.T) {
	setupTestDB(t)

	gifter := createUser(t, "gifter", 1)
	requester := createUser(t, "requester", 2)
	gift := listGift(t, gifter, "9787501524044", "Flowers for Algernon")

	drift, err := services.NewDriftService().CreateDrift(requester.ID, gift.ID, services.DriftCreateInput{
		RecipientName: "Ana Reader",
		Address:       "12 Paper St",
		Mobile:        "13812345678",
	})
	require.NoError(t, err)

	router := driftRouter(gifter.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/drifts/%d/reject", drift.ID), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// Same call again: the drift is terminal now, so it is gone from the
	// gifter's pending view.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, fmt.Sprintf("/drifts/%d/reject", drift.ID), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRejectEndpointBadID(t *testing.T) {
	setupTestDB(t)
	user := createUser(t, "user", 1)

	router := driftRouter(user.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/drifts/abc/reject", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPendingEndpoint(t *testing.T) {
	setupTestDB(t)

	gifter := createUser(t, "gifter", 1)
	requester := createUser(t, "requester", 2)
	gift := listGift(t, gifter, "9787501524044", "Flowers for Algernon")

	_, err := services.NewDriftService().CreateDrift(requester.ID, gift.ID, services.DriftCreateInput{
		RecipientName: "Ana Reader",
		Address:       "12 Paper St",
		Mobile:        "13812345678",
	})
	require.NoError(t, err)

	for _, uid := range []uint{requester.ID, gifter.ID} {
		router := driftRouter(uid)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/drifts/pending", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Drifts []models.Drift `json:"drifts"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Drifts, 1)
	}
}
