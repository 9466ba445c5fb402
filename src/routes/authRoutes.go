package routes

import (
	"github.com/NGD-Portal/NGD-Backend/src/controllers"
	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(router *gin.Engine, service *services.UserService) {
	controller := controllers.NewUserController(service)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", controller.Register)
		authGroup.POST("/login", controller.Login)
		authGroup.GET("/verify-email", controller.VerifyEmail)
		authGroup.POST("/forgot-password", controller.ForgotPassword)
		authGroup.POST("/reset-password", controller.ResetPassword)
		authGroup.GET("/lookups", controller.RegistrationLookups)
	}

	profileGroup := router.Group("/profile")
	profileGroup.Use(middleware.AuthMiddleware())
	{
		profileGroup.GET("", controller.Me)
		profileGroup.PUT("", controller.UpdateMe)
		profileGroup.POST("/photo", controller.UploadMyPhoto)
	}

	userGroup := router.Group("/admin/users")
	userGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		userGroup.GET("", controller.ListUsers)
		userGroup.POST("/", controller.CreateUser)
		userGroup.GET("/:id", controller.GetUser)
		userGroup.PUT("/:id", controller.UpdateUser)
		userGroup.POST("/:id/approve", controller.ApproveUser)
		userGroup.POST("/:id/refuse", controller.RefuseUser)
		userGroup.PUT("/:id/status", controller.SetUserActive)
		userGroup.DELETE("/:id", controller.DeleteUser)
	}
}
