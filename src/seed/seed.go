package seed

import (
	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/models"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads the reference tables and the bootstrap admin account. Every step
// is idempotent; existing rows are left alone so it can run on every boot.
func Seed(db *gorm.DB) {
	seedStatuses(db)
	seedCategories(db)
	seedRoles(db)
	seedFormats(db)
	seedProjections(db)
	seedRequestInformation(db)
	seedComplaintScreens(db)
	seedTitles(db)
	seedQuestionTypes(db)
	seedAdmin(db)
}

// Status ids are contract: new requests start at 7 (Submitted).
func seedStatuses(db *gorm.DB) {
	statuses := []models.StatusModel{
		{ID: 1, Name: "Draft", NameAr: "مسودة"},
		{ID: 2, Name: "Under Review", NameAr: "قيد المراجعة"},
		{ID: 3, Name: "In Progress", NameAr: "قيد التنفيذ"},
		{ID: 4, Name: "Completed", NameAr: "مكتمل"},
		{ID: 5, Name: "Rejected", NameAr: "مرفوض"},
		{ID: 6, Name: "On Hold", NameAr: "معلق"},
		{ID: 7, Name: "Submitted", NameAr: "مقدم"},
	}
	for _, status := range statuses {
		var existing models.StatusModel
		if err := db.First(&existing, status.ID).Error; err == nil {
			continue
		}
		if err := db.Create(&status).Error; err != nil {
			log.WithError(err).Errorf("Failed to seed status %d", status.ID)
		}
	}
}

// Category 8 is the Data Request category that carries the geospatial
// extension.
func seedCategories(db *gorm.DB) {
	categories := []models.CategoryModel{
		{ID: 1, Name: "Inquiry", NameAr: "استفسار"},
		{ID: 2, Name: "Complaint", NameAr: "شكوى"},
		{ID: 3, Name: "Suggestion", NameAr: "اقتراح"},
		{ID: 4, Name: "Technical Support", NameAr: "دعم فنى"},
		{ID: 5, Name: "Account Issue", NameAr: "مشكلة فى الحساب"},
		{ID: 6, Name: "Partnership", NameAr: "شراكة"},
		{ID: 7, Name: "Other", NameAr: "أخرى"},
		{ID: 8, Name: "Data Request", NameAr: "طلب بيانات"},
	}
	for _, category := range categories {
		var existing models.CategoryModel
		if err := db.First(&existing, category.ID).Error; err == nil {
			continue
		}
		if err := db.Create(&category).Error; err != nil {
			log.WithError(err).Errorf("Failed to seed category %d", category.ID)
		}
	}
}

func seedRoles(db *gorm.DB) {
	roles := []models.RoleModel{
		{ID: middleware.AdminRoleID, NameEn: "Admin", NameAr: "مدير النظام"},
		{ID: 2, NameEn: "User", NameAr: "مستخدم"},
		{ID: 3, NameEn: "Data Team", NameAr: "فريق البيانات"},
		{ID: 4, NameEn: "Support Team", NameAr: "فريق الدعم"},
	}
	for _, role := range roles {
		var existing models.RoleModel
		if err := db.First(&existing, role.ID).Error; err == nil {
			continue
		}
		if err := db.Create(&role).Error; err != nil {
			log.WithError(err).Errorf("Failed to seed role %d", role.ID)
		}
	}
}

func seedFormats(db *gorm.DB) {
	formats := []string{"Shapefile", "GeoJSON", "KML", "File Geodatabase", "GeoTIFF", "CSV", "DWG", "Other"}
	for i, name := range formats {
		var existing models.FormatModel
		if err := db.First(&existing, i+1).Error; err == nil {
			continue
		}
		if err := db.Create(&models.FormatModel{ID: i + 1, Name: name}).Error; err != nil {
			log.WithError(err).Errorf("Failed to seed format %q", name)
		}
	}
}

func seedProjections(db *gorm.DB) {
	projections := []string{"WGS 84", "WGS 84 / UTM zone 36N", "WGS 84 / UTM zone 37N", "WGS 84 / UTM zone 38N", "Web Mercator"}
	for i, name := range projections {
		var existing models.ProjectionModel
		if err := db.First(&existing, i+1).Error; err == nil {
			continue
		}
		if err := db.Create(&models.ProjectionModel{ID: i + 1, Name: name}).Error; err != nil {
			log.WithError(err).Errorf("Failed to seed projection %q", name)
		}
	}
}

func seedRequestInformation(db *gorm.DB) {
	items := []models.RequestInformationModel{
		{ID: 1, Name: "Topographic Maps", NameAr: "خرائط طبوغرافية"},
		{ID: 2, Name: "Satellite Imagery", NameAr: "صور الأقمار الصناعية"},
		{ID: 3, Name: "Aerial Photos", NameAr: "صور جوية"},
		{ID: 4, Name: "Elevation Data", NameAr: "بيانات الارتفاعات"},
		{ID: 5, Name: "Administrative Boundaries", NameAr: "الحدود الإدارية"},
		{ID: 6, Name: "Road Networks", NameAr: "شبكات الطرق"},
		{ID: 7, Name: "Geodetic Control Points", NameAr: "نقاط التحكم الجيوديسية"},
	}
	for _, item := range items {
		var existing models.RequestInformationModel
		if err := db.First(&existing, item.ID).Error; err == nil {
			continue
		}
		if err := db.Create(&item).Error; err != nil {
			log.WithError(err).Errorf("Failed to seed request information %d", item.ID)
		}
	}
}

func seedComplaintScreens(db *gorm.DB) {
	screens := []models.ComplaintScreenModel{
		{ID: 1, Name: "Home Page", NameAr: "الصفحة الرئيسية"},
		{ID: 2, Name: "Map Viewer", NameAr: "عارض الخرائط"},
		{ID: 3, Name: "Data Catalog", NameAr: "دليل البيانات"},
		{ID: 4, Name: "My Account", NameAr: "حسابى"},
		{ID: 5, Name: "Other", NameAr: "أخرى"},
	}
	for _, screen := range screens {
		var existing models.ComplaintScreenModel
		if err := db.First(&existing, screen.ID).Error; err == nil {
			continue
		}
		if err := db.Create(&screen).Error; err != nil {
			log.WithError(err).Errorf("Failed to seed complaint screen %d", screen.ID)
		}
	}
}

func seedTitles(db *gorm.DB) {
	titles := []string{"Mr.", "Mrs.", "Ms.", "Dr.", "Eng.", "Prof."}
	for i, title := range titles {
		var existing models.UserTitleModel
		if err := db.First(&existing, i+1).Error; err == nil {
			continue
		}
		if err := db.Create(&models.UserTitleModel{ID: i + 1, Title: title}).Error; err != nil {
			log.WithError(err).Errorf("Failed to seed title %q", title)
		}
	}
}

func seedQuestionTypes(db *gorm.DB) {
	types := []string{"single_choice", "multi_choice", "text", "rating"}
	for i, name := range types {
		var existing models.QuestionTypeModel
		if err := db.First(&existing, i+1).Error; err == nil {
			continue
		}
		if err := db.Create(&models.QuestionTypeModel{ID: i + 1, TypeOfQuestion: name}).Error; err != nil {
			log.WithError(err).Errorf("Failed to seed question type %q", name)
		}
	}
}

func seedAdmin(db *gorm.DB) {
	var admin models.UserModel
	if err := db.Where("email = ?", "admin@ngd.gov.sa").First(&admin).Error; err == nil {
		log.Info("Admin account already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash the admin password")
		return
	}

	admin = models.UserModel{
		FirstName:     "System",
		LastName:      "Administrator",
		Email:         "admin@ngd.gov.sa",
		PasswordHash:  string(hashed),
		RoleID:        middleware.AdminRoleID,
		IsApproved:    true,
		IsActive:      true,
		EmailVerified: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.WithError(err).Error("Failed to seed the admin account")
		return
	}
	log.Info("Admin account created")
}
