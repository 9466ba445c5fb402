package services

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"gorm.io/gorm"
)

type VideoService struct {
	db    *gorm.DB
	store *utils.AttachmentStore
}

func NewVideoService(db *gorm.DB, store *utils.AttachmentStore) *VideoService {
	return &VideoService{db: db, store: store}
}

type VideoInput struct {
	TitleEn       string
	TitleAr       string
	DescriptionEn string
	DescriptionAr string
	Link          string
	Image         *multipart.FileHeader
}

func (s *VideoService) Create(in VideoInput, actorID int) (*models.VideoModel, error) {
	video := models.VideoModel{
		TitleEn:         in.TitleEn,
		TitleAr:         optStr(in.TitleAr),
		DescriptionEn:   optStr(in.DescriptionEn),
		DescriptionAr:   optStr(in.DescriptionAr),
		Link:            in.Link,
		CreatedAt:       time.Now().UTC(),
		CreatedByUserID: &actorID,
	}
	if in.Image != nil {
		rel, err := s.store.Save(in.Image, "videos")
		if err != nil {
			return nil, err
		}
		video.ImagePath = &rel
	}

	if err := s.db.Create(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *VideoService) List() ([]models.VideoModel, error) {
	var videos []models.VideoModel
	err := s.db.Where("is_deleted = ?", false).Order("created_at DESC").Find(&videos).Error
	return videos, err
}

func (s *VideoService) Get(id int) (*models.VideoModel, error) {
	var video models.VideoModel
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Video not found", "هذا الفيديو غير موجود")
		}
		return nil, err
	}
	return &video, nil
}

func (s *VideoService) Update(id int, in VideoInput, actorID int) (*models.VideoModel, error) {
	video, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title_en":           in.TitleEn,
		"title_ar":           optStr(in.TitleAr),
		"description_en":     optStr(in.DescriptionEn),
		"description_ar":     optStr(in.DescriptionAr),
		"link":               in.Link,
		"updated_at":         time.Now().UTC(),
		"updated_by_user_id": actorID,
	}
	if in.Image != nil {
		rel, err := s.store.Save(in.Image, "videos")
		if err != nil {
			return nil, err
		}
		updates["image_path"] = rel
	}

	if err := s.db.Model(video).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *VideoService) Delete(id int) error {
	result := s.db.Model(&models.VideoModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("Video not found", "هذا الفيديو غير موجود")
	}
	return nil
}
