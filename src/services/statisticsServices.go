package services

import (
	"github.com/NGD-Portal/NGD-Backend/src/models"
	"gorm.io/gorm"
)

// StatisticsService feeds the admin dashboard summary cards.
type StatisticsService struct {
	db *gorm.DB
}

func NewStatisticsService(db *gorm.DB) *StatisticsService {
	return &StatisticsService{db: db}
}

// Summary counts the portal's main entities in one shot.
func (s *StatisticsService) Summary() (map[string]int64, error) {
	summary := map[string]int64{}

	counts := []struct {
		key   string
		model interface{}
		query func(*gorm.DB) *gorm.DB
	}{
		{"users", &models.UserModel{}, func(q *gorm.DB) *gorm.DB { return q.Where("is_deleted = ?", false) }},
		{"pending_users", &models.UserModel{}, func(q *gorm.DB) *gorm.DB {
			return q.Where("is_deleted = ? AND is_approved = ? AND email_verified = ?", false, false, true)
		}},
		{"requests", &models.RequestModel{}, nil},
		{"news", &models.NewsModel{}, func(q *gorm.DB) *gorm.DB { return q.Where("is_deleted = ?", false) }},
		{"products", &models.ProductModel{}, func(q *gorm.DB) *gorm.DB { return q.Where("is_deleted = ?", false) }},
		{"projects", &models.ProjectModel{}, func(q *gorm.DB) *gorm.DB { return q.Where("is_deleted = ?", false) }},
		{"datasets", &models.DatasetInfoModel{}, func(q *gorm.DB) *gorm.DB { return q.Where("is_deleted = ?", false) }},
		{"metadata", &models.MetadataInfoModel{}, func(q *gorm.DB) *gorm.DB { return q.Where("is_deleted = ?", false) }},
		{"visitors", &models.VisitorModel{}, nil},
		{"votes", &models.VoteModel{}, nil},
		{"contact_messages", &models.ContactUsModel{}, nil},
	}

	for _, item := range counts {
		query := s.db.Model(item.model)
		if item.query != nil {
			query = item.query(query)
		}
		var count int64
		if err := query.Count(&count).Error; err != nil {
			return nil, err
		}
		summary[item.key] = count
	}

	// Per-status request breakdown rides along for the workflow chart.
	type statusCount struct {
		StatusID int
		Name     string
		Count    int64
	}
	var byStatus []statusCount
	if err := s.db.Table("request_models").
		Select("request_models.status_id, status_models.name, COUNT(*) AS count").
		Joins("LEFT JOIN status_models ON status_models.id = request_models.status_id").
		Group("request_models.status_id, status_models.name").
		Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		summary["requests_status_"+itoa(row.StatusID)] = row.Count
	}

	return summary, nil
}
