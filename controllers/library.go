package controllers

import (
	"errors"
	"net/http"

	"github.com/avelarde/bookdrift-be/services"
	"github.com/gin-gonic/gin"
)

type LibraryController struct {
	libraryService *services.LibraryService
}

func NewLibraryController() *LibraryController {
	return &LibraryController{
		libraryService: services.NewLibraryService(),
	}
}

type AddGiftRequest struct {
	ISBN      string `json:"isbn" binding:"required,isbn"`
	Title     string `json:"title" binding:"required"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	Image     string `json:"image"`
	Summary   string `json:"summary"`
}

type AddWishRequest struct {
	ISBN string `json:"isbn" binding:"required,isbn"`
}

func (lc *LibraryController) AddGift(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req AddGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gift, err := lc.libraryService.AddGift(userID, services.BookInput{
		ISBN:      req.ISBN,
		Title:     req.Title,
		Author:    req.Author,
		Publisher: req.Publisher,
		Image:     req.Image,
		Summary:   req.Summary,
	})
	if err != nil {
		if errors.Is(err, services.ErrAlreadyListed) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add gift"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"gift": gift})
}

func (lc *LibraryController) AddWish(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req AddWishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wish, err := lc.libraryService.AddWish(userID, req.ISBN)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyListed) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add wish"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"wish": wish})
}

func (lc *LibraryController) MyGifts(c *gin.Context) {
	userID := c.GetUint("user_id")

	gifts, err := lc.libraryService.MyGifts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list gifts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"gifts": gifts})
}

func (lc *LibraryController) MyWishes(c *gin.Context) {
	userID := c.GetUint("user_id")

	wishes, err := lc.libraryService.MyWishes(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list wishes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishes": wishes})
}
