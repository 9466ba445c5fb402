package routes

import (
	"github.com/NGD-Portal/NGD-Backend/src/controllers"
	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupRequestRoutes(router *gin.Engine, service *services.RequestService) {
	controller := controllers.NewRequestController(service)

	// The request form's reference data is public; only submission needs a login.
	router.GET("/requests/lookups", controller.GetLookups)

	requestGroup := router.Group("/requests")
	requestGroup.Use(middleware.AuthMiddleware())
	{
		requestGroup.POST("/", controller.CreateRequest)
	}

	// Staff of any role work their own queue and reply from it; listing,
	// assignment and full request details stay admin-only.
	staffGroup := router.Group("/admin")
	staffGroup.Use(middleware.AuthMiddleware())
	{
		staffGroup.GET("/assigned_requests", controller.AssignedRequests)
		staffGroup.POST("/reply", controller.Reply)
	}

	adminGroup := router.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminGroup.GET("/requests", controller.ListRequests)
		adminGroup.GET("/request-details/", controller.RequestDetails)
		adminGroup.POST("/assign_request", controller.AssignRole)
	}
}
