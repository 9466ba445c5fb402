package routes

import (
	"github.com/NGD-Portal/NGD-Backend/src/controllers"
	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupSearchRoutes(router *gin.Engine, search *services.SearchService, chatbot *services.ChatbotService) {
	controller := controllers.NewSearchController(search, chatbot)

	router.GET("/search", controller.Search)
	router.POST("/chatbot/ask", controller.Ask)
}

func SetupSurveyRoutes(router *gin.Engine, service *services.SurveyService) {
	controller := controllers.NewSurveyController(service)

	surveyGroup := router.Group("/survey")
	surveyGroup.Use(middleware.OptionalAuth())
	{
		surveyGroup.POST("/vote", controller.Vote)
		surveyGroup.GET("/questions", controller.Questions)
		surveyGroup.POST("/answers", controller.SubmitAnswers)
	}

	adminGroup := router.Group("/admin/survey")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminGroup.GET("/vote-stats", controller.VoteStats)
		adminGroup.GET("/stats", controller.Stats)
		adminGroup.GET("/responses", controller.Responses)
		adminGroup.GET("/responses/export", controller.ExportResponses)
		adminGroup.POST("/questions", controller.CreateQuestion)
		adminGroup.DELETE("/questions/:id", controller.DeleteQuestion)
	}
}

func SetupVisitorRoutes(router *gin.Engine, service *services.VisitorService) {
	controller := controllers.NewVisitorController(service)

	router.POST("/visitors/track", controller.Track)

	adminGroup := router.Group("/admin/visitors")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminGroup.GET("/count", controller.Count)
		adminGroup.GET("/by-country", controller.ByCountry)
	}
}

func SetupStatisticsRoutes(router *gin.Engine, service *services.StatisticsService) {
	controller := controllers.NewStatisticsController(service)

	adminGroup := router.Group("/admin/statistics")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminGroup.GET("", controller.Summary)
	}
}

func SetupRoleRoutes(router *gin.Engine, service *services.RoleService) {
	controller := controllers.NewRoleController(service)

	featureGroup := router.Group("/features")
	featureGroup.Use(middleware.AuthMiddleware())
	{
		featureGroup.GET("/mine", controller.MyFeatures)
	}

	roleGroup := router.Group("/admin/roles")
	roleGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		roleGroup.GET("", controller.List)
		roleGroup.POST("/", controller.Create)
		roleGroup.PUT("/:id", controller.Update)
		roleGroup.DELETE("/:id", controller.Delete)
		roleGroup.GET("/:id/features", controller.RoleFeatures)
		roleGroup.PUT("/:id/features", controller.SetRoleFeatures)
	}

	adminFeatureGroup := router.Group("/admin/features")
	adminFeatureGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminFeatureGroup.GET("", controller.ListFeatures)
		adminFeatureGroup.POST("/", controller.CreateFeature)
		adminFeatureGroup.DELETE("/:id", controller.DeleteFeature)
	}
}
