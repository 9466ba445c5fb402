package services

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"gorm.io/gorm"
)

// sliderLimit caps how many news items can be flagged for the home slider.
const sliderLimit = 4

type NewsService struct {
	db    *gorm.DB
	store *utils.AttachmentStore
}

func NewNewsService(db *gorm.DB, store *utils.AttachmentStore) *NewsService {
	return &NewsService{db: db, store: store}
}

type NewsInput struct {
	TitleEn       string
	TitleAr       string
	DescriptionEn string
	DescriptionAr string
	IsSlide       bool
	Image         *multipart.FileHeader
}

func (s *NewsService) Create(in NewsInput, actorID int) (*models.NewsModel, error) {
	if in.IsSlide {
		if err := s.checkSliderCapacity(0); err != nil {
			return nil, err
		}
	}

	var imagePath *string
	if in.Image != nil {
		rel, err := s.store.Save(in.Image, "news")
		if err != nil {
			return nil, err
		}
		imagePath = &rel
	}

	news := models.NewsModel{
		TitleEn:         in.TitleEn,
		TitleAr:         in.TitleAr,
		DescriptionEn:   optStr(in.DescriptionEn),
		DescriptionAr:   optStr(in.DescriptionAr),
		IsSlide:         in.IsSlide,
		ImagePath:       imagePath,
		CreatedAt:       time.Now().UTC(),
		CreatedByUserID: &actorID,
	}
	if err := s.db.Create(&news).Error; err != nil {
		s.removeIfSet(imagePath)
		return nil, err
	}
	return &news, nil
}

func (s *NewsService) checkSliderCapacity(excludeID int) error {
	var count int64
	query := s.db.Model(&models.NewsModel{}).
		Where("is_slide = ? AND is_deleted = ?", true, false)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count >= sliderLimit {
		return utils.InvalidReferenceError(
			"Slider already has the maximum of 4 news items",
			"لا يمكن إضافة أكثر من 4 أخبار إلى الشريط الرئيسي")
	}
	return nil
}

func (s *NewsService) List() ([]models.NewsModel, error) {
	var items []models.NewsModel
	err := s.db.Where("is_deleted = ?", false).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *NewsService) Sliders() ([]models.NewsModel, error) {
	var items []models.NewsModel
	err := s.db.Where("is_slide = ? AND is_deleted = ?", true, false).
		Order("created_at DESC").Limit(sliderLimit).Find(&items).Error
	return items, err
}

// Get returns one item and bumps its read counter.
func (s *NewsService) Get(id int) (*models.NewsModel, error) {
	var news models.NewsModel
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&news).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("News item not found", "هذا الخبر غير موجود")
		}
		return nil, err
	}
	if err := s.db.Model(&news).Update("read_count", gorm.Expr("read_count + 1")).Error; err != nil {
		return nil, err
	}
	news.ReadCount++
	return &news, nil
}

func (s *NewsService) Update(id int, in NewsInput, actorID int) (*models.NewsModel, error) {
	var news models.NewsModel
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&news).Error; err != nil {
		return nil, utils.NotFoundError("News item not found", "هذا الخبر غير موجود")
	}
	if in.IsSlide {
		if err := s.checkSliderCapacity(id); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{
		"title_en":           in.TitleEn,
		"title_ar":           in.TitleAr,
		"description_en":     optStr(in.DescriptionEn),
		"description_ar":     optStr(in.DescriptionAr),
		"is_slide":           in.IsSlide,
		"updated_at":         time.Now().UTC(),
		"updated_by_user_id": actorID,
	}
	if in.Image != nil {
		rel, err := s.store.Save(in.Image, "news")
		if err != nil {
			return nil, err
		}
		updates["image_path"] = rel
	}

	if err := s.db.Model(&news).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.db.First(&news, id).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

func (s *NewsService) Delete(id int) error {
	result := s.db.Model(&models.NewsModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("News item not found", "هذا الخبر غير موجود")
	}
	return nil
}

func (s *NewsService) removeIfSet(rel *string) {
	if rel != nil {
		s.store.Remove(*rel)
	}
}

// optStr maps an empty form value to NULL.
func optStr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

