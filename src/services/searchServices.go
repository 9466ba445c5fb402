package services

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/dtos"
	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"gorm.io/gorm"
)

// searchCacheTTL bounds how stale a cached result page may get; searches for
// the same term within the window are served from memory.
const searchCacheTTL = 2 * time.Minute

type cachedSearch struct {
	results   []dtos.SearchResultDTO
	expiresAt time.Time
}

type searchCache struct {
	mu      sync.RWMutex
	entries map[string]cachedSearch
}

func newSearchCache() *searchCache {
	c := &searchCache{entries: make(map[string]cachedSearch)}
	go c.janitor()
	return c
}

func (c *searchCache) get(key string) ([]dtos.SearchResultDTO, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.results, true
}

func (c *searchCache) set(key string, results []dtos.SearchResultDTO) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cachedSearch{results: results, expiresAt: time.Now().Add(searchCacheTTL)}
}

func (c *searchCache) janitor() {
	ticker := time.NewTicker(searchCacheTTL)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		c.mu.Lock()
		for key, entry := range c.entries {
			if now.After(entry.expiresAt) {
				delete(c.entries, key)
			}
		}
		c.mu.Unlock()
	}
}

type SearchService struct {
	db    *gorm.DB
	cache *searchCache
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db, cache: newSearchCache()}
}

// Search fans the term out across the public catalogs and returns one merged,
// highlighted page. Matches are wrapped in <mark> tags for the frontend.
func (s *SearchService) Search(term string, page, limit int) (*dtos.SearchPageDTO, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, utils.NewAppError(utils.CodeEmptyQuery, "Search term must not be empty", "برجاء كتابة كلمة البحث")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	key := strings.ToLower(term)
	results, ok := s.cache.get(key)
	if !ok {
		var err error
		results, err = s.collect(term)
		if err != nil {
			return nil, err
		}
		s.cache.set(key, results)
	}

	start := (page - 1) * limit
	if start > len(results) {
		start = len(results)
	}
	end := start + limit
	if end > len(results) {
		end = len(results)
	}
	pageResults := results[start:end]

	return &dtos.SearchPageDTO{
		Page:    page,
		Limit:   limit,
		Count:   len(results),
		Results: pageResults,
	}, nil
}

func (s *SearchService) collect(term string) ([]dtos.SearchResultDTO, error) {
	like := "%" + strings.ToLower(term) + "%"
	results := []dtos.SearchResultDTO{}

	var news []models.NewsModel
	if err := s.db.Where("is_deleted = ?", false).
		Where("LOWER(title_en) LIKE ? OR LOWER(title_ar) LIKE ? OR LOWER(description_en) LIKE ? OR LOWER(description_ar) LIKE ?",
			like, like, like, like).
		Find(&news).Error; err != nil {
		return nil, err
	}
	for _, item := range news {
		results = append(results, highlightResult(dtos.SearchResultDTO{
			Model:         "news",
			Category:      "News",
			URL:           "/news/" + itoa(item.ID),
			TitleEn:       item.TitleEn,
			TitleAr:       item.TitleAr,
			DescriptionEn: derefOr(item.DescriptionEn, ""),
			DescriptionAr: derefOr(item.DescriptionAr, ""),
			Image:         derefOr(item.ImagePath, ""),
		}, term))
	}

	var products []models.ProductModel
	if err := s.db.Where("is_deleted = ?", false).
		Where("LOWER(name_en) LIKE ? OR LOWER(name_ar) LIKE ? OR LOWER(description_en) LIKE ? OR LOWER(description_ar) LIKE ?",
			like, like, like, like).
		Find(&products).Error; err != nil {
		return nil, err
	}
	for _, item := range products {
		results = append(results, highlightResult(dtos.SearchResultDTO{
			Model:         "product",
			Category:      "Products",
			URL:           "/products/" + itoa(item.ID),
			TitleEn:       item.NameEn,
			TitleAr:       derefOr(item.NameAr, ""),
			DescriptionEn: derefOr(item.DescriptionEn, ""),
			DescriptionAr: derefOr(item.DescriptionAr, ""),
			Image:         derefOr(item.ImagePath, ""),
		}, term))
	}

	var projects []models.ProjectModel
	if err := s.db.Where("is_deleted = ?", false).
		Where("LOWER(name_en) LIKE ? OR LOWER(name_ar) LIKE ? OR LOWER(description_en) LIKE ? OR LOWER(description_ar) LIKE ?",
			like, like, like, like).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	for _, item := range projects {
		results = append(results, highlightResult(dtos.SearchResultDTO{
			Model:         "project",
			Category:      "Projects",
			URL:           "/projects/" + itoa(item.ID),
			TitleEn:       item.NameEn,
			TitleAr:       item.NameAr,
			DescriptionEn: derefOr(item.DescriptionEn, ""),
			DescriptionAr: derefOr(item.DescriptionAr, ""),
			Image:         derefOr(item.ImagePath, ""),
		}, term))
	}

	var videos []models.VideoModel
	if err := s.db.Where("is_deleted = ?", false).
		Where("LOWER(title_en) LIKE ? OR LOWER(title_ar) LIKE ? OR LOWER(description_en) LIKE ? OR LOWER(description_ar) LIKE ?",
			like, like, like, like).
		Find(&videos).Error; err != nil {
		return nil, err
	}
	for _, item := range videos {
		results = append(results, highlightResult(dtos.SearchResultDTO{
			Model:         "video",
			Category:      "Videos",
			URL:           "/videos/" + itoa(item.ID),
			TitleEn:       item.TitleEn,
			TitleAr:       derefOr(item.TitleAr, ""),
			DescriptionEn: derefOr(item.DescriptionEn, ""),
			DescriptionAr: derefOr(item.DescriptionAr, ""),
			Image:         derefOr(item.ImagePath, ""),
		}, term))
	}

	var guides []models.ManualGuideModel
	if err := s.db.Where("is_deleted = ?", false).
		Where("LOWER(name_en) LIKE ? OR LOWER(name_ar) LIKE ? OR LOWER(description_en) LIKE ? OR LOWER(description_ar) LIKE ?",
			like, like, like, like).
		Find(&guides).Error; err != nil {
		return nil, err
	}
	for _, item := range guides {
		results = append(results, highlightResult(dtos.SearchResultDTO{
			Model:         "manual_guide",
			Category:      "Manual Guides",
			URL:           "/manual-guides/" + itoa(item.ID),
			TitleEn:       item.NameEn,
			TitleAr:       derefOr(item.NameAr, ""),
			DescriptionEn: derefOr(item.DescriptionEn, ""),
			DescriptionAr: derefOr(item.DescriptionAr, ""),
		}, term))
	}

	var datasets []models.DatasetInfoModel
	if err := s.db.Where("is_deleted = ?", false).
		Where("LOWER(name) LIKE ? OR LOWER(name_ar) LIKE ? OR LOWER(description) LIKE ? OR LOWER(description_ar) LIKE ? OR LOWER(keywords) LIKE ?",
			like, like, like, like, like).
		Find(&datasets).Error; err != nil {
		return nil, err
	}
	for _, item := range datasets {
		results = append(results, highlightResult(dtos.SearchResultDTO{
			Model:         "dataset",
			Category:      "Datasets",
			URL:           "/datasets/" + itoa(item.ID),
			TitleEn:       item.Name,
			TitleAr:       item.NameAr,
			DescriptionEn: derefOr(item.Description, ""),
			DescriptionAr: derefOr(item.DescriptionAr, ""),
			Image:         derefOr(item.ImagePath, ""),
		}, term))
	}

	var records []models.MetadataInfoModel
	if err := s.db.Where("is_deleted = ?", false).
		Where("LOWER(name) LIKE ? OR LOWER(name_ar) LIKE ? OR LOWER(description) LIKE ? OR LOWER(description_ar) LIKE ?",
			like, like, like, like).
		Find(&records).Error; err != nil {
		return nil, err
	}
	for _, item := range records {
		results = append(results, highlightResult(dtos.SearchResultDTO{
			Model:         "metadata",
			Category:      "Metadata",
			URL:           "/metadata/" + itoa(item.ID),
			TitleEn:       item.Name,
			TitleAr:       item.NameAr,
			DescriptionEn: derefOr(item.Description, ""),
			DescriptionAr: derefOr(item.DescriptionAr, ""),
		}, term))
	}

	var faqs []models.FAQModel
	if err := s.db.Where("is_deleted = ?", false).
		Where("LOWER(question_en) LIKE ? OR LOWER(question_ar) LIKE ? OR LOWER(answer_en) LIKE ? OR LOWER(answer_ar) LIKE ?",
			like, like, like, like).
		Find(&faqs).Error; err != nil {
		return nil, err
	}
	for _, item := range faqs {
		results = append(results, highlightResult(dtos.SearchResultDTO{
			Model:         "faq",
			Category:      "FAQ",
			URL:           "/faq/" + itoa(item.ID),
			TitleEn:       item.QuestionEn,
			TitleAr:       derefOr(item.QuestionAr, ""),
			DescriptionEn: derefOr(item.AnswerEn, ""),
			DescriptionAr: derefOr(item.AnswerAr, ""),
		}, term))
	}

	return results, nil
}

func itoa(id int) string {
	return strconv.Itoa(id)
}

func highlightResult(result dtos.SearchResultDTO, term string) dtos.SearchResultDTO {
	result.TitleEn = utils.Highlight(result.TitleEn, term)
	result.TitleAr = utils.Highlight(result.TitleAr, term)
	result.DescriptionEn = utils.Highlight(utils.Truncate(result.DescriptionEn, 300), term)
	result.DescriptionAr = utils.Highlight(utils.Truncate(result.DescriptionAr, 300), term)
	return result
}
