package services

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"gorm.io/gorm"
)

type LogoService struct {
	db    *gorm.DB
	store *utils.AttachmentStore
}

func NewLogoService(db *gorm.DB, store *utils.AttachmentStore) *LogoService {
	return &LogoService{db: db, store: store}
}

type LogoInput struct {
	NameEn   string
	NameAr   string
	Link     string
	Category string
	Image    *multipart.FileHeader
}

func (s *LogoService) Create(in LogoInput, actorID int) (*models.LogoModel, error) {
	logo := models.LogoModel{
		NameEn:          in.NameEn,
		NameAr:          optStr(in.NameAr),
		Link:            in.Link,
		Category:        in.Category,
		CreatedAt:       time.Now().UTC(),
		CreatedByUserID: &actorID,
	}
	if in.Image != nil {
		rel, err := s.store.Save(in.Image, "logos")
		if err != nil {
			return nil, err
		}
		logo.ImagePath = &rel
	}

	if err := s.db.Create(&logo).Error; err != nil {
		return nil, err
	}
	return &logo, nil
}

// List optionally filters by category ("partners", "sponsors", ...).
func (s *LogoService) List(category string) ([]models.LogoModel, error) {
	query := s.db.Where("is_deleted = ?", false)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var logos []models.LogoModel
	err := query.Order("created_at DESC").Find(&logos).Error
	return logos, err
}

func (s *LogoService) Get(id int) (*models.LogoModel, error) {
	var logo models.LogoModel
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&logo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Logo not found", "هذا الشعار غير موجود")
		}
		return nil, err
	}
	return &logo, nil
}

func (s *LogoService) Update(id int, in LogoInput, actorID int) (*models.LogoModel, error) {
	logo, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name_en":            in.NameEn,
		"name_ar":            optStr(in.NameAr),
		"link":               in.Link,
		"category":           in.Category,
		"updated_at":         time.Now().UTC(),
		"updated_by_user_id": actorID,
	}
	if in.Image != nil {
		rel, err := s.store.Save(in.Image, "logos")
		if err != nil {
			return nil, err
		}
		updates["image_path"] = rel
	}

	if err := s.db.Model(logo).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *LogoService) Delete(id int) error {
	result := s.db.Model(&models.LogoModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("Logo not found", "هذا الشعار غير موجود")
	}
	return nil
}
