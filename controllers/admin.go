package controllers

import (
	"net/http"

	"github.com/avelarde/bookdrift-be/config"
	"github.com/avelarde/bookdrift-be/models"
	"github.com/avelarde/bookdrift-be/services"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	authService *services.AuthService
	beanService *services.BeanService
}

func NewAdminController() *AdminController {
	return &AdminController{
		authService: services.NewAuthService(),
		beanService: services.NewBeanService(),
	}
}

type CreateUserRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Nickname string          `json:"nickname" binding:"required,min=2,max=24"`
	Role     models.UserRole `json:"role" binding:"required,oneof=admin member"`
}

type GrantBeansRequest struct {
	UserID uint `json:"user_id" binding:"required"`
	Amount int  `json:"amount" binding:"required,gt=0"`
}

func (ac *AdminController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.authService.CreateUser(req.Email, req.Password, req.Nickname, req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (ac *AdminController) GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GrantBeans credits beans outside the drift economy, e.g. to compensate a
// user after a dispute.
func (ac *AdminController) GrantBeans(c *gin.Context) {
	var req GrantBeansRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ac.beanService.GrantBeans(req.UserID, req.Amount); err != nil {
		c.JSON(driftErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Beans granted"})
}
