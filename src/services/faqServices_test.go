package services

import (
	"errors"
	"testing"

	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFAQService(t *testing.T) *FAQService {
	t.Helper()
	return NewFAQService(setupTestDB(t))
}

func seedFAQs(t *testing.T, service *FAQService) {
	t.Helper()

	questions := []FAQInput{
		{
			QuestionEn: "How do I download geospatial data?",
			QuestionAr: "كيف أقوم بتحميل البيانات الجغرافية؟",
			AnswerEn:   "Submit a data request from your profile page.",
			AnswerAr:   "قدم طلب بيانات من صفحة الملف الشخصي.",
		},
		{
			QuestionEn: "What coordinate systems are supported?",
			AnswerEn:   "WGS 84 and Web Mercator are supported.",
		},
		{
			QuestionEn: "How long does request approval take?",
			AnswerEn:   "Approval typically takes three working days.",
		},
	}
	for _, in := range questions {
		_, err := service.Create(in, 1)
		require.NoError(t, err)
	}
}

func TestFAQMatchRanksBestFirst(t *testing.T) {
	service := newFAQService(t)
	seedFAQs(t, service)

	matches, err := service.Match("download geospatial data", 5)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "How do I download geospatial data?", matches[0].QuestionEn)
}

func TestFAQMatchArabicQueryUsesArabicQuestion(t *testing.T) {
	service := newFAQService(t)
	seedFAQs(t, service)

	matches, err := service.Match("تحميل البيانات", 5)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "How do I download geospatial data?", matches[0].QuestionEn)
}

func TestFAQMatchEmptyQuery(t *testing.T) {
	service := newFAQService(t)

	_, err := service.Match("   ", 5)
	require.Error(t, err)

	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeEmptyQuery, appErr.Code)
}

func TestFAQMatchRespectsLimit(t *testing.T) {
	service := newFAQService(t)
	seedFAQs(t, service)

	matches, err := service.Match("how", 1)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestFAQMatchSkipsDeletedQuestions(t *testing.T) {
	service := newFAQService(t)
	seedFAQs(t, service)

	faqs, err := service.List(0)
	require.NoError(t, err)
	require.NoError(t, service.Delete(faqs[0].ID))

	matches, err := service.Match("download geospatial data", 5)
	require.NoError(t, err)
	for _, match := range matches {
		assert.NotEqual(t, faqs[0].ID, match.FAQID)
	}
}

func TestFAQCategoryValidation(t *testing.T) {
	service := newFAQService(t)

	missing := 42
	_, err := service.Create(FAQInput{QuestionEn: "Q", CategoryID: &missing}, 1)
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeInvalidReference, appErr.Code)

	category, err := service.CreateCategory("Accounts", "الحسابات")
	require.NoError(t, err)

	faq, err := service.Create(FAQInput{QuestionEn: "Q", CategoryID: &category.ID}, 1)
	require.NoError(t, err)

	// Listing by category only returns its own questions.
	seedFAQs(t, service)
	scoped, err := service.List(category.ID)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, faq.ID, scoped[0].ID)

	// A deleted category can no longer be referenced.
	require.NoError(t, service.DeleteCategory(category.ID))
	_, err = service.Create(FAQInput{QuestionEn: "Q2", CategoryID: &category.ID}, 1)
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeInvalidReference, appErr.Code)
}

func TestTokenOverlapRank(t *testing.T) {
	assert.Equal(t, 0, tokenOverlapRank("request approval", "How long does request approval take?"))
	assert.Equal(t, 1, tokenOverlapRank("request pricing", "How long does request approval take?"))
	assert.Equal(t, -1, tokenOverlapRank("billing", "How long does request approval take?"))
}
