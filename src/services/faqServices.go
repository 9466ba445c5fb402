package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/dtos"
	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"gorm.io/gorm"
)

type FAQService struct {
	db *gorm.DB
}

func NewFAQService(db *gorm.DB) *FAQService {
	return &FAQService{db: db}
}

type FAQInput struct {
	QuestionEn string
	QuestionAr string
	AnswerEn   string
	AnswerAr   string
	CategoryID *int
}

func (s *FAQService) Create(in FAQInput, actorID int) (*models.FAQModel, error) {
	if in.CategoryID != nil {
		var category models.FAQCategoryModel
		if err := s.db.Where("id = ? AND is_delete = ?", *in.CategoryID, false).First(&category).Error; err != nil {
			return nil, utils.InvalidReferenceError("Invalid FAQ category", "تصنيف الأسئلة غير موجود")
		}
	}

	faq := models.FAQModel{
		QuestionEn:      in.QuestionEn,
		QuestionAr:      optStr(in.QuestionAr),
		AnswerEn:        optStr(in.AnswerEn),
		AnswerAr:        optStr(in.AnswerAr),
		CategoryID:      in.CategoryID,
		CreatedAt:       time.Now().UTC(),
		CreatedByUserID: &actorID,
	}
	if err := s.db.Create(&faq).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

func (s *FAQService) List(categoryID int) ([]models.FAQModel, error) {
	query := s.db.Where("is_deleted = ?", false)
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	var faqs []models.FAQModel
	err := query.Order("id ASC").Find(&faqs).Error
	return faqs, err
}

func (s *FAQService) Get(id int) (*models.FAQModel, error) {
	var faq models.FAQModel
	if err := s.db.Where("id = ? AND is_deleted = ?", id, false).First(&faq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundError("FAQ not found", "هذا السؤال غير موجود")
		}
		return nil, err
	}
	return &faq, nil
}

func (s *FAQService) Update(id int, in FAQInput, actorID int) (*models.FAQModel, error) {
	faq, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if in.CategoryID != nil {
		var category models.FAQCategoryModel
		if err := s.db.Where("id = ? AND is_delete = ?", *in.CategoryID, false).First(&category).Error; err != nil {
			return nil, utils.InvalidReferenceError("Invalid FAQ category", "تصنيف الأسئلة غير موجود")
		}
	}

	updates := map[string]interface{}{
		"question_en":        in.QuestionEn,
		"question_ar":        optStr(in.QuestionAr),
		"answer_en":          optStr(in.AnswerEn),
		"answer_ar":          optStr(in.AnswerAr),
		"category_id":        in.CategoryID,
		"updated_at":         time.Now().UTC(),
		"updated_by_user_id": actorID,
	}
	if err := s.db.Model(faq).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *FAQService) Delete(id int) error {
	result := s.db.Model(&models.FAQModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("FAQ not found", "هذا السؤال غير موجود")
	}
	return nil
}

func (s *FAQService) ListCategories() ([]models.FAQCategoryModel, error) {
	var categories []models.FAQCategoryModel
	err := s.db.Where("is_delete = ?", false).Order("id ASC").Find(&categories).Error
	return categories, err
}

func (s *FAQService) CreateCategory(nameEn, nameAr string) (*models.FAQCategoryModel, error) {
	category := models.FAQCategoryModel{NameEn: nameEn, NameAr: nameAr}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *FAQService) UpdateCategory(id int, nameEn, nameAr string) (*models.FAQCategoryModel, error) {
	var category models.FAQCategoryModel
	if err := s.db.Where("id = ? AND is_delete = ?", id, false).First(&category).Error; err != nil {
		return nil, utils.NotFoundError("FAQ category not found", "تصنيف الأسئلة غير موجود")
	}
	if err := s.db.Model(&category).Updates(map[string]interface{}{
		"name_en": nameEn,
		"name_ar": nameAr,
	}).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *FAQService) DeleteCategory(id int) error {
	result := s.db.Model(&models.FAQCategoryModel{}).
		Where("id = ? AND is_delete = ?", id, false).
		Update("is_delete", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.NotFoundError("FAQ category not found", "تصنيف الأسئلة غير موجود")
	}
	return nil
}

// Match ranks published questions against a free-text query, best first.
// Arabic queries are matched against the Arabic question text.
func (s *FAQService) Match(query string, limit int) ([]dtos.FAQMatchDTO, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.NewAppError(utils.CodeEmptyQuery, "Query must not be empty", "برجاء كتابة سؤالك")
	}
	if limit < 1 {
		limit = 5
	}

	faqs, err := s.List(0)
	if err != nil {
		return nil, err
	}

	arabic := utils.ContainsArabic(query)
	matches := make([]dtos.FAQMatchDTO, 0, limit)
	for _, faq := range faqs {
		question := faq.QuestionEn
		if arabic && faq.QuestionAr != nil && *faq.QuestionAr != "" {
			question = *faq.QuestionAr
		}
		rank := fuzzy.RankMatchNormalizedFold(query, question)
		if rank == -1 {
			// No substring match; fall back to token overlap so partial
			// questions still hit.
			rank = tokenOverlapRank(query, question)
		}
		if rank == -1 {
			continue
		}
		matches = append(matches, dtos.FAQMatchDTO{
			FAQID:      faq.ID,
			QuestionEn: faq.QuestionEn,
			QuestionAr: faq.QuestionAr,
			AnswerEn:   faq.AnswerEn,
			AnswerAr:   faq.AnswerAr,
			Score:      rank,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score < matches[j].Score })
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// tokenOverlapRank scores by how many query tokens appear in the question.
// Lower is better to align with fuzzy.RankMatch ordering; -1 means no
// overlap at all.
func tokenOverlapRank(query, question string) int {
	questionLower := strings.ToLower(question)
	hits := 0
	tokens := strings.Fields(strings.ToLower(query))
	for _, token := range tokens {
		if len(token) < 2 {
			continue
		}
		if strings.Contains(questionLower, token) {
			hits++
		}
	}
	if hits == 0 {
		return -1
	}
	return len(tokens) - hits
}
