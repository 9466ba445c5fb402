package main

import (
	"github.com/NGD-Portal/NGD-Backend/src/config"
	"github.com/NGD-Portal/NGD-Backend/src/db"
	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/routes"
	"github.com/NGD-Portal/NGD-Backend/src/seed"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	middleware.SetSecretKey(cfg.JWTSecret)

	database, err := db.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := database.AutoMigrate(
		&models.UserModel{},
		&models.DomainModel{},
		&models.RoleModel{},
		&models.AppFeatureModel{},
		&models.RoleFeatureModel{},
		&models.CategoryModel{},
		&models.StatusModel{},
		&models.FormatModel{},
		&models.ProjectionModel{},
		&models.RequestInformationModel{},
		&models.ComplaintScreenModel{},
		&models.UserTitleModel{},
		&models.OrganizationTypeModel{},
		&models.CountryModel{},
		&models.CityModel{},
		&models.RequestModel{},
		&models.RequestDataModel{},
		&models.ReplyModel{},
		&models.RequestRequestInformationModel{},
		&models.RequestFormatModel{},
		&models.NewsModel{},
		&models.ProductModel{},
		&models.ProjectModel{},
		&models.ProjectDetailModel{},
		&models.FAQCategoryModel{},
		&models.FAQModel{},
		&models.VideoModel{},
		&models.LogoModel{},
		&models.ManualGuideModel{},
		&models.ContactUsModel{},
		&models.ContactUsReplyModel{},
		&models.DatasetInfoModel{},
		&models.MetadataInfoModel{},
		&models.VoteModel{},
		&models.FeedbackCategoryModel{},
		&models.QuestionTypeModel{},
		&models.FeedbackQuestionModel{},
		&models.QuestionChoiceModel{},
		&models.FeedbackAnswerModel{},
		&models.VisitorModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v", err)
	}

	seed.Seed(database)

	store := utils.NewAttachmentStore(cfg.UploadRoot)
	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, cfg.UploadRoot)
	defer mailer.Close()

	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.AllowedOrigins))
	router.Static("/static", cfg.UploadRoot)

	// Services setup
	userService := services.NewUserService(database, store, mailer, cfg.FrontendBaseURL)
	requestService := services.NewRequestService(database, store, mailer, cfg.SystemEmail)
	newsService := services.NewNewsService(database, store)
	productService := services.NewProductService(database, store)
	projectService := services.NewProjectService(database, store)
	faqService := services.NewFAQService(database)
	videoService := services.NewVideoService(database, store)
	logoService := services.NewLogoService(database, store)
	manualGuideService := services.NewManualGuideService(database, store)
	metadataService := services.NewMetadataService(database, store)
	contactUsService := services.NewContactUsService(database, store, mailer, cfg.SystemEmail)
	searchService := services.NewSearchService(database)
	chatbotService := services.NewChatbotService(faqService, searchService)
	surveyService := services.NewSurveyService(database)
	visitorService := services.NewVisitorService(database)
	statisticsService := services.NewStatisticsService(database)
	roleService := services.NewRoleService(database)

	// Routes setup
	routes.SetupAuthRoutes(router, userService)
	routes.SetupRequestRoutes(router, requestService)
	routes.SetupNewsRoutes(router, newsService)
	routes.SetupProductRoutes(router, productService)
	routes.SetupProjectRoutes(router, projectService)
	routes.SetupFAQRoutes(router, faqService)
	routes.SetupVideoRoutes(router, videoService)
	routes.SetupLogoRoutes(router, logoService)
	routes.SetupManualGuideRoutes(router, manualGuideService)
	routes.SetupMetadataRoutes(router, metadataService)
	routes.SetupContactUsRoutes(router, contactUsService)
	routes.SetupSearchRoutes(router, searchService, chatbotService)
	routes.SetupSurveyRoutes(router, surveyService)
	routes.SetupVisitorRoutes(router, visitorService)
	routes.SetupStatisticsRoutes(router, statisticsService)
	routes.SetupRoleRoutes(router, roleService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "NGD Portal API")
	})

	if err := router.Run(cfg.ServerHost); err != nil {
		log.Fatalf("Error starting server on %s: %v", cfg.ServerHost, err)
	}
}
