package services

import (
	"errors"
	"mime/multipart"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"gorm.io/gorm"
)

type MetadataService struct {
	db    *gorm.DB
	store *utils.AttachmentStore
}

func NewMetadataService(db *gorm.DB, store *utils.AttachmentStore) *MetadataService {
	return &MetadataService{db: db, store: store}
}

type DatasetInput struct {
	Name          string
	NameAr        string
	Title         string
	TitleAr       string
	Description   string
	DescriptionAr string
	CRSName       string
	EPSG          int
	Keywords      string
	KeywordsAr    string
	Image         *multipart.FileHeader
}

// DatasetView bundles a dataset with its catalog records.
type DatasetView struct {
	models.DatasetInfoModel
	Metadata []models.MetadataInfoModel `json:"Metadata"`
}

func (s *MetadataService) CreateDataset(in DatasetInput, actorID int) (*models.DatasetInfoModel, error) {
	dataset := models.DatasetInfoModel{
		Name:            in.Name,
		NameAr:          in.NameAr,
		Title:           optStr(in.Title),
		TitleAr:         optStr(in.TitleAr),
		Description:     optStr(in.Description),
		DescriptionAr:   optStr(in.DescriptionAr),
		CRSName:         optStr(in.CRSName),
		Keywords:        optStr(in.Keywords),
		KeywordsAr:      optStr(in.KeywordsAr),
		CreatedAt:       time.Now().UTC(),
		CreatedByUserID: &actorID,
	}
	if in.EPSG > 0 {
		dataset.EPSG = in.EPSG
	} else {
		dataset.EPSG = 3857
	}
	if in.Image != nil {
		rel, err := s.store.Save(in.Image, "datasets")
		if err != nil {
			return nil, err
		}
		dataset.ImagePath = &rel
	}

	if err := s.db.Create(&dataset).Error; err != nil {
		return nil, err
	}
	return &dataset, nil
}

func (s *MetadataService) ListDatasets() ([]DatasetView, error) {
	var datasets []models.DatasetInfoModel
	if err := s.db.Where("is_deleted = ?", false).Order("created_at DESC").Find(&datasets).Error; err != nil {
		return nil, err
	}

	views := make([]DatasetView, 0, len(datasets))
	for _, dataset := range datasets {
		records, err := s.ListMetadata(dataset.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, DatasetView{DatasetInfoModel: dataset, Metadata: records})
	}
	return views, nil
}

func (s *MetadataService) GetDataset(id int) (*DatasetView, error) {
	var dataset models.DatasetInfoModel
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&dataset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Dataset not found", "مجموعة البيانات غير موجودة")
		}
		return nil, err
	}
	records, err := s.ListMetadata(id)
	if err != nil {
		return nil, err
	}
	return &DatasetView{DatasetInfoModel: dataset, Metadata: records}, nil
}

func (s *MetadataService) UpdateDataset(id int, in DatasetInput, actorID int) (*models.DatasetInfoModel, error) {
	var dataset models.DatasetInfoModel
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&dataset).Error; err != nil {
		return nil, utils.NotFoundError("Dataset not found", "مجموعة البيانات غير موجودة")
	}

	updates := map[string]interface{}{
		"name":               in.Name,
		"name_ar":            in.NameAr,
		"title":              optStr(in.Title),
		"title_ar":           optStr(in.TitleAr),
		"description":        optStr(in.Description),
		"description_ar":     optStr(in.DescriptionAr),
		"crs_name":           optStr(in.CRSName),
		"keywords":           optStr(in.Keywords),
		"keywords_ar":        optStr(in.KeywordsAr),
		"updated_at":         time.Now().UTC(),
		"updated_by_user_id": actorID,
	}
	if in.EPSG > 0 {
		updates["epsg"] = in.EPSG
	}
	if in.Image != nil {
		rel, err := s.store.Save(in.Image, "datasets")
		if err != nil {
			return nil, err
		}
		updates["image_path"] = rel
	}

	if err := s.db.Model(&dataset).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.db.First(&dataset, id).Error; err != nil {
		return nil, err
	}
	return &dataset, nil
}

// DeleteDataset soft-deletes a dataset and its catalog records together.
func (s *MetadataService) DeleteDataset(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.DatasetInfoModel{}).
			Where("id = ? AND is_deleted = ?", id, false).
			Update("is_deleted", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return utils.NotFoundError("Dataset not found", "مجموعة البيانات غير موجودة")
		}
		return tx.Model(&models.MetadataInfoModel{}).
			Where("dataset_id = ?", id).
			Update("is_deleted", true).Error
	})
}

type MetadataInput struct {
	DatasetID     int
	Name          string
	NameAr        string
	Title         string
	TitleAr       string
	Description   string
	DescriptionAr string
	CreationDate  *time.Time
	URL           string
	WestBound     *float64
	EastBound     *float64
	NorthBound    *float64
	SouthBound    *float64
	ContactName   string
	PositionName  string
	Organization  string
	Email         string
	Phone         string
	Role          string
	File          *multipart.FileHeader
}

func (s *MetadataService) ListMetadata(datasetID int) ([]models.MetadataInfoModel, error) {
	var records []models.MetadataInfoModel
	query := s.db.Where("is_deleted = ?", false)
	if datasetID > 0 {
		query = query.Where("dataset_id = ?", datasetID)
	}
	err := query.Order("id ASC").Find(&records).Error
	return records, err
}

func (s *MetadataService) CreateMetadata(in MetadataInput, actorID int) (*models.MetadataInfoModel, error) {
	var dataset models.DatasetInfoModel
	if err := s.db.Where("id = ? AND is_deleted = ?", in.DatasetID, false).First(&dataset).Error; err != nil {
		return nil, utils.InvalidReferenceError("Invalid DatasetId", "مجموعة البيانات غير موجودة")
	}

	record := models.MetadataInfoModel{
		DatasetID:       in.DatasetID,
		Name:            in.Name,
		NameAr:          in.NameAr,
		Title:           optStr(in.Title),
		TitleAr:         optStr(in.TitleAr),
		Description:     optStr(in.Description),
		DescriptionAr:   optStr(in.DescriptionAr),
		CreationDate:    in.CreationDate,
		URL:             optStr(in.URL),
		WestBound:       in.WestBound,
		EastBound:       in.EastBound,
		NorthBound:      in.NorthBound,
		SouthBound:      in.SouthBound,
		ContactName:     optStr(in.ContactName),
		PositionName:    optStr(in.PositionName),
		Organization:    optStr(in.Organization),
		Email:           optStr(in.Email),
		Phone:           optStr(in.Phone),
		Role:            optStr(in.Role),
		CreatedAt:       time.Now().UTC(),
		CreatedByUserID: &actorID,
	}
	if in.File != nil {
		rel, err := s.store.Save(in.File, "metadata")
		if err != nil {
			return nil, err
		}
		record.FilePath = &rel
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *MetadataService) GetMetadata(id int) (*models.MetadataInfoModel, error) {
	var record models.MetadataInfoModel
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Metadata record not found", "سجل البيانات الوصفية غير موجود")
		}
		return nil, err
	}
	return &record, nil
}

func (s *MetadataService) UpdateMetadata(id int, in MetadataInput, actorID int) (*models.MetadataInfoModel, error) {
	record, err := s.GetMetadata(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":               in.Name,
		"name_ar":            in.NameAr,
		"title":              optStr(in.Title),
		"title_ar":           optStr(in.TitleAr),
		"description":        optStr(in.Description),
		"description_ar":     optStr(in.DescriptionAr),
		"creation_date":      in.CreationDate,
		"url":                optStr(in.URL),
		"west_bound":         in.WestBound,
		"east_bound":         in.EastBound,
		"north_bound":        in.NorthBound,
		"south_bound":        in.SouthBound,
		"contact_name":       optStr(in.ContactName),
		"position_name":      optStr(in.PositionName),
		"organization":       optStr(in.Organization),
		"email":              optStr(in.Email),
		"phone":              optStr(in.Phone),
		"role":               optStr(in.Role),
		"updated_at":         time.Now().UTC(),
		"updated_by_user_id": actorID,
	}
	if in.File != nil {
		rel, err := s.store.Save(in.File, "metadata")
		if err != nil {
			return nil, err
		}
		updates["file_path"] = rel
	}

	if err := s.db.Model(record).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetMetadata(id)
}

func (s *MetadataService) DeleteMetadata(id int) error {
	result := s.db.Model(&models.MetadataInfoModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("Metadata record not found", "سجل البيانات الوصفية غير موجود")
	}
	return nil
}
