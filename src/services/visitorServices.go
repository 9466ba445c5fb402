package services

import (
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitorService struct {
	db *gorm.DB
}

func NewVisitorService(db *gorm.DB) *VisitorService {
	return &VisitorService{db: db}
}

// Track records a browsing session. A missing session id mints a new one; a
// returning session only gets its VisitAt and location refreshed, so each
// session counts once.
func (s *VisitorService) Track(in models.TrackVisitorRequest, remoteIP string) (*models.VisitorModel, error) {
	sessionID := in.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	ip := in.IPAddress
	if ip == "" {
		ip = remoteIP
	}

	var visitor models.VisitorModel
	err := s.db.Where("session_id = ?", sessionID).First(&visitor).Error
	if err == nil {
		updates := map[string]interface{}{
			"visit_at":   time.Now().UTC(),
			"ip_address": ip,
		}
		if in.CountryID != nil {
			updates["country_id"] = *in.CountryID
		}
		if in.X != nil {
			updates["x"] = *in.X
		}
		if in.Y != nil {
			updates["y"] = *in.Y
		}
		if err := s.db.Model(&visitor).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := s.db.Where("session_id = ?", sessionID).First(&visitor).Error; err != nil {
			return nil, err
		}
		return &visitor, nil
	}

	visitor = models.VisitorModel{
		SessionID: sessionID,
		IPAddress: ip,
		CountryID: in.CountryID,
		X:         in.X,
		Y:         in.Y,
		VisitAt:   time.Now().UTC(),
	}
	if err := s.db.Create(&visitor).Error; err != nil {
		return nil, err
	}
	return &visitor, nil
}

func (s *VisitorService) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.VisitorModel{}).Count(&count).Error
	return count, err
}

// CountryStat is one row of the visitors-by-country breakdown.
type CountryStat struct {
	CountryID   *int   `json:"CountryID"`
	CountryName string `json:"CountryName"`
	Count       int64  `json:"Count"`
}

func (s *VisitorService) ByCountry() ([]CountryStat, error) {
	var rows []CountryStat
	err := s.db.Table("visitor_models").
		Select("visitor_models.country_id, country_models.country_name, COUNT(*) AS count").
		Joins("LEFT JOIN country_models ON country_models.id = visitor_models.country_id").
		Group("visitor_models.country_id, country_models.country_name").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}
