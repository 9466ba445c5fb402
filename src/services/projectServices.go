package services

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"gorm.io/gorm"
)

type ProjectService struct {
	db    *gorm.DB
	store *utils.AttachmentStore
}

func NewProjectService(db *gorm.DB, store *utils.AttachmentStore) *ProjectService {
	return &ProjectService{db: db, store: store}
}

type ProjectInput struct {
	NameEn        string
	NameAr        string
	DescriptionEn string
	DescriptionAr string
	ServicesName  string
	ServicesLink  string
	Image         *multipart.FileHeader
	Video         *multipart.FileHeader
}

// ProjectView bundles a project with its non-deleted detail rows.
type ProjectView struct {
	models.ProjectModel
	Details []models.ProjectDetailModel `json:"Details"`
}

func (s *ProjectService) Create(in ProjectInput, actorID int) (*models.ProjectModel, error) {
	project := models.ProjectModel{
		NameEn:          in.NameEn,
		NameAr:          in.NameAr,
		DescriptionEn:   optStr(in.DescriptionEn),
		DescriptionAr:   optStr(in.DescriptionAr),
		ServicesName:    optStr(in.ServicesName),
		ServicesLink:    optStr(in.ServicesLink),
		CreatedAt:       time.Now().UTC(),
		CreatedByUserID: &actorID,
	}

	if in.Image != nil {
		rel, err := s.store.Save(in.Image, "projects")
		if err != nil {
			return nil, err
		}
		project.ImagePath = &rel
	}
	if in.Video != nil {
		rel, err := s.store.Save(in.Video, "projects")
		if err != nil {
			return nil, err
		}
		project.VideoPath = &rel
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) List() ([]ProjectView, error) {
	var projects []models.ProjectModel
	if err := s.db.Where("is_deleted = ?", false).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}

	views := make([]ProjectView, 0, len(projects))
	for _, project := range projects {
		details, err := s.ListDetails(project.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, ProjectView{ProjectModel: project, Details: details})
	}
	return views, nil
}

func (s *ProjectService) Get(id int) (*ProjectView, error) {
	var project models.ProjectModel
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Project not found", "هذا المشروع غير موجود")
		}
		return nil, err
	}
	details, err := s.ListDetails(id)
	if err != nil {
		return nil, err
	}
	return &ProjectView{ProjectModel: project, Details: details}, nil
}

func (s *ProjectService) Update(id int, in ProjectInput, actorID int) (*models.ProjectModel, error) {
	var project models.ProjectModel
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&project).Error; err != nil {
		return nil, utils.NotFoundError("Project not found", "هذا المشروع غير موجود")
	}

	updates := map[string]interface{}{
		"name_en":            in.NameEn,
		"name_ar":            in.NameAr,
		"description_en":     optStr(in.DescriptionEn),
		"description_ar":     optStr(in.DescriptionAr),
		"services_name":      optStr(in.ServicesName),
		"services_link":      optStr(in.ServicesLink),
		"updated_at":         time.Now().UTC(),
		"updated_by_user_id": actorID,
	}
	if in.Image != nil {
		rel, err := s.store.Save(in.Image, "projects")
		if err != nil {
			return nil, err
		}
		updates["image_path"] = rel
	}
	if in.Video != nil {
		rel, err := s.store.Save(in.Video, "projects")
		if err != nil {
			return nil, err
		}
		updates["video_path"] = rel
	}

	if err := s.db.Model(&project).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete soft-deletes a project and its detail rows together.
func (s *ProjectService) Delete(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ProjectModel{}).
			Where("id = ? AND is_deleted = ?", id, false).
			Update("is_deleted", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return utils.NotFoundError("Project not found", "هذا المشروع غير موجود")
		}
		return tx.Model(&models.ProjectDetailModel{}).
			Where("project_id = ?", id).
			Update("is_deleted", true).Error
	})
}

type ProjectDetailInput struct {
	ServiceName          string
	ServiceNameAr        string
	ServiceDescription   string
	ServiceDescriptionAr string
	ServiceLink          string
	Image                *multipart.FileHeader
}

func (s *ProjectService) ListDetails(projectID int) ([]models.ProjectDetailModel, error) {
	var details []models.ProjectDetailModel
	err := s.db.Where("project_id = ? AND is_deleted = ?", projectID, false).
		Order("id ASC").Find(&details).Error
	return details, err
}

func (s *ProjectService) CreateDetail(projectID int, in ProjectDetailInput, actorID int) (*models.ProjectDetailModel, error) {
	var project models.ProjectModel
	if err := s.db.Where("id = ? AND is_deleted = ?", projectID, false).First(&project).Error; err != nil {
		return nil, utils.NotFoundError("Project not found", "هذا المشروع غير موجود")
	}

	detail := models.ProjectDetailModel{
		ProjectID:            projectID,
		ServiceName:          in.ServiceName,
		ServiceNameAr:        optStr(in.ServiceNameAr),
		ServiceDescription:   optStr(in.ServiceDescription),
		ServiceDescriptionAr: optStr(in.ServiceDescriptionAr),
		ServiceLink:          optStr(in.ServiceLink),
		CreatedAt:            time.Now().UTC(),
		CreatedByUserID:      &actorID,
	}
	if in.Image != nil {
		rel, err := s.store.Save(in.Image, "projects")
		if err != nil {
			return nil, err
		}
		detail.ImageURL = &rel
	}

	if err := s.db.Create(&detail).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *ProjectService) UpdateDetail(detailID int, in ProjectDetailInput, actorID int) (*models.ProjectDetailModel, error) {
	var detail models.ProjectDetailModel
	if err := s.db.Where("id = ? AND is_deleted = ?", detailID, false).First(&detail).Error; err != nil {
		return nil, utils.NotFoundError("Project detail not found", "تفاصيل المشروع غير موجودة")
	}

	updates := map[string]interface{}{
		"service_name":           in.ServiceName,
		"service_name_ar":        optStr(in.ServiceNameAr),
		"service_description":    optStr(in.ServiceDescription),
		"service_description_ar": optStr(in.ServiceDescriptionAr),
		"service_link":           optStr(in.ServiceLink),
		"updated_at":             time.Now().UTC(),
		"updated_by_user_id":     actorID,
	}
	if in.Image != nil {
		rel, err := s.store.Save(in.Image, "projects")
		if err != nil {
			return nil, err
		}
		updates["image_url"] = rel
	}

	if err := s.db.Model(&detail).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.db.First(&detail, detailID).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *ProjectService) DeleteDetail(detailID int) error {
	result := s.db.Model(&models.ProjectDetailModel{}).
		Where("id = ? AND is_deleted = ?", detailID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("Project detail not found", "تفاصيل المشروع غير موجودة")
	}
	return nil
}
