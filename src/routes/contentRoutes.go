package routes

import (
	"github.com/NGD-Portal/NGD-Backend/src/controllers"
	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupNewsRoutes(router *gin.Engine, service *services.NewsService) {
	controller := controllers.NewNewsController(service)

	router.GET("/news-sliders", controller.Sliders)

	newsGroup := router.Group("/news")
	{
		newsGroup.GET("", controller.List)
		newsGroup.GET("/:id", controller.Get)
	}

	adminGroup := router.Group("/news")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminGroup.POST("/", controller.Create)
		adminGroup.PUT("/:id", controller.Update)
		adminGroup.DELETE("/:id", controller.Delete)
	}
}

func SetupProductRoutes(router *gin.Engine, service *services.ProductService) {
	controller := controllers.NewProductController(service)

	productGroup := router.Group("/products")
	{
		productGroup.GET("", controller.List)
		productGroup.GET("/:id", controller.Get)
	}

	adminGroup := router.Group("/products")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminGroup.POST("/", controller.Create)
		adminGroup.PUT("/:id", controller.Update)
		adminGroup.DELETE("/:id", controller.Delete)
	}
}

func SetupProjectRoutes(router *gin.Engine, service *services.ProjectService) {
	controller := controllers.NewProjectController(service)

	projectGroup := router.Group("/projects")
	{
		projectGroup.GET("", controller.List)
		projectGroup.GET("/:id", controller.Get)
	}

	adminGroup := router.Group("/projects")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminGroup.POST("/", controller.Create)
		adminGroup.PUT("/:id", controller.Update)
		adminGroup.DELETE("/:id", controller.Delete)

		adminGroup.POST("/:id/details", controller.CreateDetail)
	}

	detailGroup := router.Group("/project-details")
	detailGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		detailGroup.PUT("/:id", controller.UpdateDetail)
		detailGroup.DELETE("/:id", controller.DeleteDetail)
	}
}

func SetupFAQRoutes(router *gin.Engine, service *services.FAQService) {
	controller := controllers.NewFAQController(service)

	faqGroup := router.Group("/faq")
	{
		faqGroup.GET("", controller.List)
		faqGroup.GET("/match", controller.Match)
	}
	router.GET("/faq-categories", controller.ListCategories)

	adminGroup := router.Group("/faq")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminGroup.POST("/", controller.Create)
		adminGroup.PUT("/:id", controller.Update)
		adminGroup.DELETE("/:id", controller.Delete)
	}

	categoryGroup := router.Group("/faq-categories")
	categoryGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		categoryGroup.POST("/", controller.CreateCategory)
		categoryGroup.PUT("/:id", controller.UpdateCategory)
		categoryGroup.DELETE("/:id", controller.DeleteCategory)
	}
}

func SetupVideoRoutes(router *gin.Engine, service *services.VideoService) {
	controller := controllers.NewVideoController(service)

	router.GET("/videos", controller.List)

	adminGroup := router.Group("/videos")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminGroup.POST("/", controller.Create)
		adminGroup.PUT("/:id", controller.Update)
		adminGroup.DELETE("/:id", controller.Delete)
	}
}

func SetupLogoRoutes(router *gin.Engine, service *services.LogoService) {
	controller := controllers.NewLogoController(service)

	router.GET("/logos", controller.List)

	adminGroup := router.Group("/logos")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminGroup.POST("/", controller.Create)
		adminGroup.PUT("/:id", controller.Update)
		adminGroup.DELETE("/:id", controller.Delete)
	}
}

func SetupManualGuideRoutes(router *gin.Engine, service *services.ManualGuideService) {
	controller := controllers.NewManualGuideController(service)

	router.GET("/manual-guides", controller.List)

	adminGroup := router.Group("/manual-guides")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminGroup.POST("/", controller.Create)
		adminGroup.PUT("/:id", controller.Update)
		adminGroup.DELETE("/:id", controller.Delete)
	}
}

func SetupMetadataRoutes(router *gin.Engine, service *services.MetadataService) {
	controller := controllers.NewMetadataController(service)

	publicGroup := router.Group("")
	{
		publicGroup.GET("/datasets", controller.ListDatasets)
		publicGroup.GET("/datasets/:id", controller.GetDataset)
		publicGroup.GET("/metadata", controller.ListMetadata)
		publicGroup.GET("/metadata/:id", controller.GetMetadata)
	}

	adminGroup := router.Group("")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminGroup.POST("/datasets/", controller.CreateDataset)
		adminGroup.PUT("/datasets/:id", controller.UpdateDataset)
		adminGroup.DELETE("/datasets/:id", controller.DeleteDataset)

		adminGroup.POST("/metadata/", controller.CreateMetadata)
		adminGroup.PUT("/metadata/:id", controller.UpdateMetadata)
		adminGroup.DELETE("/metadata/:id", controller.DeleteMetadata)
	}
}

func SetupContactUsRoutes(router *gin.Engine, service *services.ContactUsService) {
	controller := controllers.NewContactUsController(service)

	router.POST("/contact-us", controller.Submit)

	adminGroup := router.Group("/admin/contact-us")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminGroup.GET("", controller.List)
		adminGroup.GET("/:id", controller.Get)
		adminGroup.POST("/:id/reply", controller.Reply)
	}
}
