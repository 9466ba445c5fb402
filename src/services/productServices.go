package services

import (
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"gorm.io/gorm"
)

type ProductService struct {
	db    *gorm.DB
	store *utils.AttachmentStore
}

func NewProductService(db *gorm.DB, store *utils.AttachmentStore) *ProductService {
	return &ProductService{db: db, store: store}
}

type ProductInput struct {
	NameEn              string
	NameAr              string
	DescriptionEn       string
	DescriptionAr       string
	ServicesName        string
	ServicesDescription string
	ServicesLink        string
	Image               *multipart.FileHeader
	Video               *multipart.FileHeader
}

// ProductServiceEntry is one parsed element of the stored comma-triple.
type ProductServiceEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// ProductView is the API shape: the raw triple columns replaced by a
// structured services list.
type ProductView struct {
	models.ProductModel
	Services []ProductServiceEntry `json:"Services"`
}

// parseServices zips the three comma-separated columns positionally. Missing
// trailing descriptions or links come back empty rather than dropping the
// service.
func parseServices(names, descriptions, links *string) []ProductServiceEntry {
	nameList := splitCSV(names)
	if len(nameList) == 0 {
		return []ProductServiceEntry{}
	}
	descList := splitCSV(descriptions)
	linkList := splitCSV(links)

	entries := make([]ProductServiceEntry, 0, len(nameList))
	for i, name := range nameList {
		entry := ProductServiceEntry{Name: name}
		if i < len(descList) {
			entry.Description = descList[i]
		}
		if i < len(linkList) {
			entry.Link = linkList[i]
		}
		entries = append(entries, entry)
	}
	return entries
}

func splitCSV(value *string) []string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	parts := strings.Split(*value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

func (s *ProductService) toView(product models.ProductModel) ProductView {
	view := ProductView{
		ProductModel: product,
		Services:     parseServices(product.ServicesName, product.ServicesDescription, product.ServicesLink),
	}
	view.ServicesName = nil
	view.ServicesDescription = nil
	view.ServicesLink = nil
	return view
}

func (s *ProductService) Create(in ProductInput, actorID int) (*ProductView, error) {
	product := models.ProductModel{
		NameEn:              in.NameEn,
		NameAr:              optStr(in.NameAr),
		DescriptionEn:       optStr(in.DescriptionEn),
		DescriptionAr:       optStr(in.DescriptionAr),
		ServicesName:        optStr(in.ServicesName),
		ServicesDescription: optStr(in.ServicesDescription),
		ServicesLink:        optStr(in.ServicesLink),
		CreatedAt:           time.Now().UTC(),
		CreatedByUserID:     &actorID,
	}

	if in.Image != nil {
		rel, err := s.store.Save(in.Image, "products")
		if err != nil {
			return nil, err
		}
		product.ImagePath = &rel
	}
	if in.Video != nil {
		rel, err := s.store.Save(in.Video, "products")
		if err != nil {
			return nil, err
		}
		product.VideoPath = &rel
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}
	view := s.toView(product)
	return &view, nil
}

func (s *ProductService) List() ([]ProductView, error) {
	var products []models.ProductModel
	if err := s.db.Where("is_deleted = ?", false).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, s.toView(product))
	}
	return views, nil
}

func (s *ProductService) Get(id int) (*ProductView, error) {
	var product models.ProductModel
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("Product not found", "هذا المنتج غير موجود")
		}
		return nil, err
	}
	view := s.toView(product)
	return &view, nil
}

func (s *ProductService) Update(id int, in ProductInput, actorID int) (*ProductView, error) {
	var product models.ProductModel
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&product).Error; err != nil {
		return nil, utils.NotFoundError("Product not found", "هذا المنتج غير موجود")
	}

	updates := map[string]interface{}{
		"name_en":              in.NameEn,
		"name_ar":              optStr(in.NameAr),
		"description_en":       optStr(in.DescriptionEn),
		"description_ar":       optStr(in.DescriptionAr),
		"services_name":        optStr(in.ServicesName),
		"services_description": optStr(in.ServicesDescription),
		"services_link":        optStr(in.ServicesLink),
		"updated_at":           time.Now().UTC(),
		"updated_by_user_id":   actorID,
	}
	if in.Image != nil {
		rel, err := s.store.Save(in.Image, "products")
		if err != nil {
			return nil, err
		}
		updates["image_path"] = rel
	}
	if in.Video != nil {
		rel, err := s.store.Save(in.Video, "products")
		if err != nil {
			return nil, err
		}
		updates["video_path"] = rel
	}

	if err := s.db.Model(&product).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	view := s.toView(product)
	return &view, nil
}

func (s *ProductService) Delete(id int) error {
	result := s.db.Model(&models.ProductModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("Product not found", "هذا المنتج غير موجود")
	}
	return nil
}
