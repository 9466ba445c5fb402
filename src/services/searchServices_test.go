package services

import (
	"errors"
	"testing"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSearchService(t *testing.T) *SearchService {
	t.Helper()
	return NewSearchService(setupTestDB(t))
}

func seedSearchContent(t *testing.T, db *gorm.DB) {
	t.Helper()

	description := "Aerial imagery over Riyadh region"
	require.NoError(t, db.Create(&models.NewsModel{
		TitleEn:       "Imagery program launched",
		TitleAr:       "إطلاق برنامج التصوير",
		DescriptionEn: &description,
		CreatedAt:     time.Now().UTC(),
	}).Error)

	require.NoError(t, db.Create(&models.DatasetInfoModel{
		Name:     "Riyadh Base Map",
		NameAr:   "خريطة الرياض الأساسية",
		Keywords: optStr("basemap, imagery, riyadh"),
		EPSG:     3857,
	}).Error)

	require.NoError(t, db.Create(&models.FAQModel{
		QuestionEn: "Where can I find imagery products?",
		CreatedAt:  time.Now().UTC(),
	}).Error)

	// Deleted rows never surface.
	require.NoError(t, db.Create(&models.NewsModel{
		TitleEn:   "Old imagery announcement",
		TitleAr:   "قديم",
		IsDeleted: true,
		CreatedAt: time.Now().UTC(),
	}).Error)
}

func TestSearchFansOutAcrossCatalogs(t *testing.T) {
	service := newSearchService(t)
	seedSearchContent(t, service.db)

	page, err := service.Search("imagery", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Count)

	categories := map[string]bool{}
	for _, result := range page.Results {
		categories[result.Category] = true
	}
	assert.True(t, categories["News"])
	assert.True(t, categories["Datasets"])
	assert.True(t, categories["FAQ"])
}

func TestSearchHighlightsMatches(t *testing.T) {
	service := newSearchService(t)
	seedSearchContent(t, service.db)

	page, err := service.Search("Imagery", 1, 20)
	require.NoError(t, err)
	require.NotEmpty(t, page.Results)

	var news *string
	for i := range page.Results {
		if page.Results[i].Model == "news" {
			news = &page.Results[i].TitleEn
		}
	}
	require.NotNil(t, news)
	assert.Equal(t, "<mark>Imagery</mark> program launched", *news)
}

func TestSearchMatchesDatasetKeywords(t *testing.T) {
	service := newSearchService(t)
	seedSearchContent(t, service.db)

	page, err := service.Search("basemap", 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "dataset", page.Results[0].Model)
	assert.Contains(t, page.Results[0].URL, "/datasets/")
}

func TestSearchEmptyTerm(t *testing.T) {
	service := newSearchService(t)

	_, err := service.Search("  ", 1, 20)
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeEmptyQuery, appErr.Code)
}

func TestSearchPagination(t *testing.T) {
	service := newSearchService(t)
	seedSearchContent(t, service.db)

	first, err := service.Search("imagery", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Count)
	assert.Len(t, first.Results, 2)

	second, err := service.Search("imagery", 2, 2)
	require.NoError(t, err)
	assert.Len(t, second.Results, 1)

	beyond, err := service.Search("imagery", 9, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond.Results)
}

func TestSearchCacheServesStaleWindow(t *testing.T) {
	service := newSearchService(t)
	seedSearchContent(t, service.db)

	before, err := service.Search("imagery", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, before.Count)

	// New content within the TTL window is invisible; the key is
	// case-insensitive.
	require.NoError(t, service.db.Create(&models.NewsModel{
		TitleEn:   "Fresh imagery release",
		TitleAr:   "جديد",
		CreatedAt: time.Now().UTC(),
	}).Error)

	after, err := service.Search("IMAGERY", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, after.Count)

	// A different term bypasses the cached entry.
	fresh, err := service.Search("fresh", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Count)
}
