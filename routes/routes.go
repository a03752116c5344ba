package routes

import (
	"regexp"

	"github.com/avelarde/bookdrift-be/config"
	"github.com/avelarde/bookdrift-be/controllers"
	"github.com/avelarde/bookdrift-be/middleware"
	"github.com/avelarde/bookdrift-be/websocket"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var mobilePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("cnmobile", func(fl validator.FieldLevel) bool {
			return mobilePattern.MatchString(fl.Field().String())
		})
	}
}

func SetupRoutes() *gin.Engine {
	r := gin.Default()

	registerValidations()

	// Initialize controllers
	authController := controllers.NewAuthController()
	driftController := controllers.NewDriftController()
	libraryController := controllers.NewLibraryController()
	userController := controllers.NewUserController()
	adminController := controllers.NewAdminController()

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/login", authController.Login)
		public.POST("/auth/register", authController.Register)
	}

	// Protected routes
	protected := r.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware())
	{
		// Drift lifecycle
		protected.POST("/drifts", driftController.Create)
		protected.GET("/drifts/pending", driftController.Pending)
		protected.PUT("/drifts/:id/reject", driftController.Reject)
		protected.PUT("/drifts/:id/redraw", driftController.Redraw)
		protected.PUT("/drifts/:id/mailed", driftController.Mailed)

		// Library
		protected.POST("/gifts", libraryController.AddGift)
		protected.GET("/gifts", libraryController.MyGifts)
		protected.POST("/wishes", libraryController.AddWish)
		protected.GET("/wishes", libraryController.MyWishes)

		// User routes
		protected.GET("/profile", userController.GetProfile)
		protected.GET("/beans", userController.GetBeans)

		// Realtime notifications
		protected.GET("/ws", websocket.HandleWebSocket(config.WSHub))
	}

	// Admin only routes
	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminOnly())
	{
		admin.POST("/users", adminController.CreateUser)
		admin.GET("/users", adminController.GetUsers)
		admin.POST("/beans", adminController.GrantBeans)
	}

	return r
}
