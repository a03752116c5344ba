package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/avelarde/bookdrift-be/services"
	"github.com/gin-gonic/gin"
)

type DriftController struct {
	driftService *services.DriftService
}

func NewDriftController() *DriftController {
	return &DriftController{
		driftService: services.NewDriftService(),
	}
}

type CreateDriftRequest struct {
	GiftID        uint   `json:"gift_id" binding:"required"`
	RecipientName string `json:"recipient_name" binding:"required,max=64"`
	Address       string `json:"address" binding:"required,max=128"`
	Mobile        string `json:"mobile" binding:"required,cnmobile"`
	Message       string `json:"message" binding:"max=256"`
}

// Create opens a drift against somebody else's gift.
func (dc *DriftController) Create(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req CreateDriftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	drift, err := dc.driftService.CreateDrift(userID, req.GiftID, services.DriftCreateInput{
		RecipientName: req.RecipientName,
		Address:       req.Address,
		Mobile:        req.Mobile,
		Message:       req.Message,
	})
	if err != nil {
		c.JSON(driftErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"drift": drift})
}

// Pending lists every drift the caller participates in, newest first.
func (dc *DriftController) Pending(c *gin.Context) {
	userID := c.GetUint("user_id")

	drifts, err := dc.driftService.ListForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list drifts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"drifts": drifts})
}

// Reject is the gifter declining a pending request.
func (dc *DriftController) Reject(c *gin.Context) {
	userID := c.GetUint("user_id")
	driftID, ok := driftIDParam(c)
	if !ok {
		return
	}

	if err := dc.driftService.RejectDrift(userID, driftID); err != nil {
		c.JSON(driftErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Drift rejected"})
}

// Redraw is the requester withdrawing their own pending request.
func (dc *DriftController) Redraw(c *gin.Context) {
	userID := c.GetUint("user_id")
	driftID, ok := driftIDParam(c)
	if !ok {
		return
	}

	if err := dc.driftService.RedrawDrift(userID, driftID); err != nil {
		c.JSON(driftErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Drift redrawn"})
}

// Mailed is the gifter confirming the book was shipped.
func (dc *DriftController) Mailed(c *gin.Context) {
	userID := c.GetUint("user_id")
	driftID, ok := driftIDParam(c)
	if !ok {
		return
	}

	if err := dc.driftService.MarkMailed(userID, driftID); err != nil {
		c.JSON(driftErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Drift marked as mailed"})
}

func driftIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid drift id"})
		return 0, false
	}
	return uint(id), true
}

func driftErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrSelfTarget):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotEnoughBeans):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrDriftNotFound),
		errors.Is(err, services.ErrGiftNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
