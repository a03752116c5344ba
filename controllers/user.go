package controllers

import (
	"net/http"

	"github.com/avelarde/bookdrift-be/config"
	"github.com/avelarde/bookdrift-be/models"
	"github.com/avelarde/bookdrift-be/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	beanService *services.BeanService
}

func NewUserController() *UserController {
	return &UserController{
		beanService: services.NewBeanService(),
	}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetBeans returns the caller's balance and the audit trail behind it.
func (uc *UserController) GetBeans(c *gin.Context) {
	userID := c.GetUint("user_id")

	beans, err := uc.beanService.Balance(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	history, err := uc.beanService.History(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bean history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"beans":   beans,
		"history": history,
	})
}
