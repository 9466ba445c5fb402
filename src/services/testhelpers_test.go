package services

import (
	"sync"
	"testing"

	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
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
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// recordingNotifier captures queued emails instead of sending them.
type recordingNotifier struct {
	mu     sync.Mutex
	emails []utils.Email
}

func (n *recordingNotifier) Enqueue(msg utils.Email) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.emails = append(n.emails, msg)
}

func (n *recordingNotifier) sent() []utils.Email {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]utils.Email, len(n.emails))
	copy(out, n.emails)
	return out
}

func seedRequestLookups(t *testing.T, db *gorm.DB) {
	t.Helper()

	statuses := []models.StatusModel{
		{ID: 2, Name: "Under Review", NameAr: "قيد المراجعة"},
		{ID: 4, Name: "Completed", NameAr: "مكتمل"},
		{ID: models.StatusSubmittedID, Name: "Submitted", NameAr: "مقدم"},
	}
	for _, status := range statuses {
		if err := db.Create(&status).Error; err != nil {
			t.Fatalf("failed to seed status: %v", err)
		}
	}

	categories := []models.CategoryModel{
		{ID: 1, Name: "Inquiry", NameAr: "استفسار"},
		{ID: models.CategoryDataRequestID, Name: "Data Request", NameAr: "طلب بيانات"},
	}
	for _, category := range categories {
		if err := db.Create(&category).Error; err != nil {
			t.Fatalf("failed to seed category: %v", err)
		}
	}

	projections := []models.ProjectionModel{
		{ID: 1, Name: "WGS 84"},
		{ID: 2, Name: "Web Mercator"},
	}
	for _, projection := range projections {
		if err := db.Create(&projection).Error; err != nil {
			t.Fatalf("failed to seed projection: %v", err)
		}
	}

	for id, name := range map[int]string{1: "Topographic Maps", 2: "Satellite Imagery", 3: "Elevation Data", 4: "Road Networks", 5: "Boundaries"} {
		if err := db.Create(&models.RequestInformationModel{ID: id, Name: name}).Error; err != nil {
			t.Fatalf("failed to seed request information: %v", err)
		}
	}
	for id, name := range map[int]string{1: "Shapefile", 2: "GeoJSON", 3: "KML", 4: "GeoTIFF", 5: "CSV"} {
		if err := db.Create(&models.FormatModel{ID: id, Name: name}).Error; err != nil {
			t.Fatalf("failed to seed format: %v", err)
		}
	}
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.UserModel {
	t.Helper()

	user := models.UserModel{
		FirstName:     "Test",
		LastName:      "User",
		Email:         email,
		PasswordHash:  "x",
		RoleID:        2,
		IsApproved:    true,
		IsActive:      true,
		EmailVerified: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return &user
}
