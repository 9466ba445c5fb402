package services

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"gorm.io/gorm"
)

type ManualGuideService struct {
	db    *gorm.DB
	store *utils.AttachmentStore
}

func NewManualGuideService(db *gorm.DB, store *utils.AttachmentStore) *ManualGuideService {
	return &ManualGuideService{db: db, store: store}
}

type ManualGuideInput struct {
	NameEn        string
	NameAr        string
	DescriptionEn string
	DescriptionAr string
	File          *multipart.FileHeader
}

func (s *ManualGuideService) Create(in ManualGuideInput, actorID int) (*models.ManualGuideModel, error) {
	guide := models.ManualGuideModel{
		NameEn:          in.NameEn,
		NameAr:          optStr(in.NameAr),
		DescriptionEn:   optStr(in.DescriptionEn),
		DescriptionAr:   optStr(in.DescriptionAr),
		CreatedAt:       time.Now().UTC(),
		CreatedByUserID: &actorID,
	}
	if in.File != nil {
		rel, err := s.store.Save(in.File, "manuals")
		if err != nil {
			return nil, err
		}
		guide.FilePath = &rel
	}

	if err := s.db.Create(&guide).Error; err != nil {
		return nil, err
	}
	return &guide, nil
}

func (s *ManualGuideService) List() ([]models.ManualGuideModel, error) {
	var guides []models.ManualGuideModel
	err := s.db.Where("is_deleted = ?", false).Order("created_at DESC").Find(&guides).Error
	return guides, err
}

func (s *ManualGuideService) Get(id int) (*models.ManualGuideModel, error) {
	var guide models.ManualGuideModel
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&guide).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Manual guide not found", "هذا الدليل غير موجود")
		}
		return nil, err
	}
	return &guide, nil
}

func (s *ManualGuideService) Update(id int, in ManualGuideInput, actorID int) (*models.ManualGuideModel, error) {
	guide, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name_en":            in.NameEn,
		"name_ar":            optStr(in.NameAr),
		"description_en":     optStr(in.DescriptionEn),
		"description_ar":     optStr(in.DescriptionAr),
		"updated_at":         time.Now().UTC(),
		"updated_by_user_id": actorID,
	}
	if in.File != nil {
		rel, err := s.store.Save(in.File, "manuals")
		if err != nil {
			return nil, err
		}
		updates["file_path"] = rel
	}

	if err := s.db.Model(guide).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *ManualGuideService) Delete(id int) error {
	result := s.db.Model(&models.ManualGuideModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("Manual guide not found", "هذا الدليل غير موجود")
	}
	return nil
}
