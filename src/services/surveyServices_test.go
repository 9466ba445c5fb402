package services

import (
	"errors"
	"testing"

	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSurveyService(t *testing.T) *SurveyService {
	t.Helper()
	return NewSurveyService(setupTestDB(t))
}

func seedSurvey(t *testing.T, service *SurveyService) (*models.FeedbackQuestionModel, *models.FeedbackQuestionModel) {
	t.Helper()

	category := models.FeedbackCategoryModel{Category: "Usability", CategoryAr: "سهولة الاستخدام"}
	require.NoError(t, service.db.Create(&category).Error)
	choiceType := models.QuestionTypeModel{TypeOfQuestion: "single_choice"}
	require.NoError(t, service.db.Create(&choiceType).Error)
	textType := models.QuestionTypeModel{TypeOfQuestion: "text"}
	require.NoError(t, service.db.Create(&textType).Error)

	choice, err := service.CreateQuestion(FeedbackQuestionInput{
		MainQuestion:   "How easy was the portal to use?",
		MainQuestionAr: "ما مدى سهولة استخدام البوابة؟",
		CategoryID:     &category.ID,
		TypeID:         &choiceType.ID,
		Choices: []models.QuestionChoiceModel{
			{Choice: "Easy"},
			{Choice: "Hard"},
		},
	})
	require.NoError(t, err)

	text, err := service.CreateQuestion(FeedbackQuestionInput{
		MainQuestion: "Any other comments?",
		TypeID:       &textType.ID,
	})
	require.NoError(t, err)

	return choice, text
}

func TestVoteValidation(t *testing.T) {
	service := newSurveyService(t)
	visitor := "session-1"

	_, err := service.Vote(nil, &visitor, "maybe", "")
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeInvalidAnswer, appErr.Code)

	_, err = service.Vote(nil, nil, "yes", "")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeNoIdentity, appErr.Code)

	// Sub-answer is only stored for "no" votes.
	yes, err := service.Vote(nil, &visitor, " Yes ", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "yes", yes.Answer)
	assert.Nil(t, yes.SubAnswer)

	no, err := service.Vote(nil, &visitor, "no", "The map was slow")
	require.NoError(t, err)
	require.NotNil(t, no.SubAnswer)
	assert.Equal(t, "The map was slow", *no.SubAnswer)
}

func TestVoteStats(t *testing.T) {
	service := newSurveyService(t)
	visitor := "session-1"

	for i := 0; i < 3; i++ {
		_, err := service.Vote(nil, &visitor, "yes", "")
		require.NoError(t, err)
	}
	_, err := service.Vote(nil, &visitor, "no", "")
	require.NoError(t, err)

	stats, err := service.VoteStats()
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats["total"])
	assert.Equal(t, int64(3), stats["yes"])
	assert.Equal(t, int64(1), stats["no"])
	assert.Equal(t, 75.0, stats["yes_percentage"])
}

func TestGroupedQuestions(t *testing.T) {
	service := newSurveyService(t)
	choiceQuestion, _ := seedSurvey(t, service)

	groups, err := service.GroupedQuestions()
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "Usability", groups[0].Category)
	require.Len(t, groups[0].Questions, 1)
	assert.Equal(t, choiceQuestion.ID, groups[0].Questions[0].QuestionID)
	assert.Equal(t, "single_choice", groups[0].Questions[0].TypeOfQuestion)
	assert.Len(t, groups[0].Questions[0].Choices, 2)

	// Questions without a category fall into the General bucket.
	assert.Equal(t, "General", groups[1].Category)
	assert.Equal(t, 0, groups[1].CategoryID)
}

func TestSubmitAnswers(t *testing.T) {
	service := newSurveyService(t)
	choiceQuestion, textQuestion := seedSurvey(t, service)
	visitor := "session-1"

	created, err := service.SubmitAnswers(models.BulkAnswerRequest{
		Answers: []models.BulkAnswerItem{
			{QuestionID: choiceQuestion.ID, ChoiceIDs: []int{choiceQuestion.Choices[0].ID}},
			{QuestionID: textQuestion.ID, TextAnswer: "Add an offline map option"},
		},
	}, nil, &visitor)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	rows, err := service.Responses()
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestSubmitAnswersRejectsForeignChoice(t *testing.T) {
	service := newSurveyService(t)
	choiceQuestion, textQuestion := seedSurvey(t, service)
	visitor := "session-1"

	// A choice from another question rejects the whole batch.
	_, err := service.SubmitAnswers(models.BulkAnswerRequest{
		Answers: []models.BulkAnswerItem{
			{QuestionID: choiceQuestion.ID, ChoiceIDs: []int{choiceQuestion.Choices[0].ID}},
			{QuestionID: textQuestion.ID, ChoiceIDs: []int{choiceQuestion.Choices[1].ID}},
		},
	}, nil, &visitor)
	require.Error(t, err)

	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeInvalidReference, appErr.Code)

	var count int64
	service.db.Model(&models.FeedbackAnswerModel{}).Count(&count)
	assert.Zero(t, count)
}

func TestSubmitAnswersRequiresIdentity(t *testing.T) {
	service := newSurveyService(t)
	choiceQuestion, _ := seedSurvey(t, service)

	_, err := service.SubmitAnswers(models.BulkAnswerRequest{
		Answers: []models.BulkAnswerItem{
			{QuestionID: choiceQuestion.ID, ChoiceIDs: []int{choiceQuestion.Choices[0].ID}},
		},
	}, nil, nil)

	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeNoIdentity, appErr.Code)
}

func TestQuestionStats(t *testing.T) {
	service := newSurveyService(t)
	choiceQuestion, _ := seedSurvey(t, service)
	visitor := "session-1"

	easy := choiceQuestion.Choices[0].ID
	hard := choiceQuestion.Choices[1].ID
	for i := 0; i < 2; i++ {
		_, err := service.SubmitAnswers(models.BulkAnswerRequest{
			Answers: []models.BulkAnswerItem{{QuestionID: choiceQuestion.ID, ChoiceIDs: []int{easy}}},
		}, nil, &visitor)
		require.NoError(t, err)
	}
	_, err := service.SubmitAnswers(models.BulkAnswerRequest{
		Answers: []models.BulkAnswerItem{{QuestionID: choiceQuestion.ID, ChoiceIDs: []int{hard}}},
	}, nil, &visitor)
	require.NoError(t, err)

	stats, err := service.QuestionStats()
	require.NoError(t, err)
	rows := stats[choiceQuestion.ID]
	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[0].Count)
	assert.Equal(t, int64(1), rows[1].Count)
}

func TestDeleteQuestionCascadesChoices(t *testing.T) {
	service := newSurveyService(t)
	choiceQuestion, _ := seedSurvey(t, service)

	require.NoError(t, service.DeleteQuestion(choiceQuestion.ID))

	groups, err := service.GroupedQuestions()
	require.NoError(t, err)
	for _, group := range groups {
		for _, question := range group.Questions {
			assert.NotEqual(t, choiceQuestion.ID, question.QuestionID)
		}
	}

	var live int64
	service.db.Model(&models.QuestionChoiceModel{}).
		Where("question_id = ? AND is_deleted = ?", choiceQuestion.ID, false).
		Count(&live)
	assert.Zero(t, live)

	err = service.DeleteQuestion(choiceQuestion.ID)
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeNotFound, appErr.Code)
}

func TestExportResponsesLayout(t *testing.T) {
	service := newSurveyService(t)
	choiceQuestion, _ := seedSurvey(t, service)
	visitor := "session-1"

	_, err := service.SubmitAnswers(models.BulkAnswerRequest{
		Answers: []models.BulkAnswerItem{{QuestionID: choiceQuestion.ID, ChoiceIDs: []int{choiceQuestion.Choices[0].ID}}},
	}, nil, &visitor)
	require.NoError(t, err)

	file, err := service.ExportResponses()
	require.NoError(t, err)

	header, err := file.GetCellValue("Responses", "C1")
	require.NoError(t, err)
	assert.Equal(t, "Question", header)

	question, err := file.GetCellValue("Responses", "C2")
	require.NoError(t, err)
	assert.Equal(t, "How easy was the portal to use?", question)

	choice, err := file.GetCellValue("Responses", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Easy", choice)
}
