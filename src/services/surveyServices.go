package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type SurveyService struct {
	db *gorm.DB
}

func NewSurveyService(db *gorm.DB) *SurveyService {
	return &SurveyService{db: db}
}

// Vote records the home-page Yes/No vote. Either a logged-in user id or a
// visitor session id must identify the voter; SubAnswer is only kept for "No".
func (s *SurveyService) Vote(userID *int, visitorID *string, answer, subAnswer string) (*models.VoteModel, error) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "yes" && answer != "no" {
		return nil, utils.NewAppError(utils.CodeInvalidAnswer, "Answer must be yes or no", "الإجابة يجب ان تكون نعم او لا")
	}
	if userID == nil && (visitorID == nil || *visitorID == "") {
		return nil, utils.NewAppError(utils.CodeNoIdentity, "A user or visitor identity is required", "يجب تسجيل الدخول او تفعيل الجلسة اولاً")
	}

	vote := models.VoteModel{
		UserID:    userID,
		VisitorID: visitorID,
		Answer:    answer,
		CreatedAt: time.Now().UTC(),
	}
	if answer == "no" && strings.TrimSpace(subAnswer) != "" {
		vote.SubAnswer = optStr(subAnswer)
	}

	if err := s.db.Create(&vote).Error; err != nil {
		return nil, err
	}
	return &vote, nil
}

// VoteStats aggregates the yes/no split with percentages.
func (s *SurveyService) VoteStats() (map[string]interface{}, error) {
	var total, yes int64
	if err := s.db.Model(&models.VoteModel{}).Count(&total).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.VoteModel{}).Where("answer = ?", "yes").Count(&yes).Error; err != nil {
		return nil, err
	}
	no := total - yes

	yesPct, noPct := 0.0, 0.0
	if total > 0 {
		yesPct = float64(yes) * 100 / float64(total)
		noPct = float64(no) * 100 / float64(total)
	}
	return map[string]interface{}{
		"total":          total,
		"yes":            yes,
		"no":             no,
		"yes_percentage": yesPct,
		"no_percentage":  noPct,
	}, nil
}

// QuestionView is one survey question with its type, category and choices.
type QuestionView struct {
	QuestionID     int                          `json:"QuestionId"`
	MainQuestion   string                       `json:"MainQuestion"`
	MainQuestionAr *string                      `json:"MainQuestion_Ar"`
	TypeOfQuestion string                       `json:"TypeOfQuestion"`
	Choices        []models.QuestionChoiceModel `json:"Choices"`
}

// QuestionGroup is the survey page shape: questions grouped by category.
type QuestionGroup struct {
	CategoryID int            `json:"CategoryId"`
	Category   string         `json:"Category"`
	CategoryAr string         `json:"Category_Ar"`
	Questions  []QuestionView `json:"Questions"`
}

// GroupedQuestions returns the active survey grouped by feedback category, in
// category id order. Uncategorized questions land in a trailing group.
func (s *SurveyService) GroupedQuestions() ([]QuestionGroup, error) {
	var questions []models.FeedbackQuestionModel
	if err := s.db.Where("is_deleted = ?", false).
		Preload("Category").
		Preload("Type").
		Preload("Choices", "is_deleted = ?", false).
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}

	groups := []QuestionGroup{}
	index := map[int]int{}
	for _, question := range questions {
		categoryID := 0
		categoryEn, categoryAr := "General", "عام"
		if question.Category != nil {
			categoryID = question.Category.ID
			categoryEn = question.Category.Category
			categoryAr = question.Category.CategoryAr
		}

		pos, ok := index[categoryID]
		if !ok {
			groups = append(groups, QuestionGroup{
				CategoryID: categoryID,
				Category:   categoryEn,
				CategoryAr: categoryAr,
				Questions:  []QuestionView{},
			})
			pos = len(groups) - 1
			index[categoryID] = pos
		}

		view := QuestionView{
			QuestionID:     question.ID,
			MainQuestion:   question.MainQuestion,
			MainQuestionAr: question.MainQuestionAr,
			Choices:        question.Choices,
		}
		if question.Type != nil {
			view.TypeOfQuestion = question.Type.TypeOfQuestion
		}
		groups[pos].Questions = append(groups[pos].Questions, view)
	}
	return groups, nil
}

// SubmitAnswers stores a full survey submission atomically. Every choice id
// must belong to its question; a bad reference rejects the whole batch.
func (s *SurveyService) SubmitAnswers(in models.BulkAnswerRequest, userID *int, visitorID *string) (int, error) {
	if len(in.Answers) == 0 {
		return 0, utils.InvalidReferenceError("No answers submitted", "لم يتم ارسال اى اجابات")
	}
	if userID == nil && (visitorID == nil || *visitorID == "") {
		return 0, utils.NewAppError(utils.CodeNoIdentity, "A user or visitor identity is required", "يجب تسجيل الدخول او تفعيل الجلسة اولاً")
	}

	now := time.Now().UTC()
	created := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range in.Answers {
			var question models.FeedbackQuestionModel
			if err := tx.Where("id = ? AND is_deleted = ?", item.QuestionID, false).First(&question).Error; err != nil {
				return utils.InvalidReferenceError(
					fmt.Sprintf("Invalid QuestionId %d", item.QuestionID),
					"رقم السؤال غير صحيح")
			}

			if len(item.ChoiceIDs) == 0 && strings.TrimSpace(item.TextAnswer) == "" {
				continue
			}

			for _, choiceID := range item.ChoiceIDs {
				var choice models.QuestionChoiceModel
				if err := tx.Where("id = ? AND question_id = ? AND is_deleted = ?", choiceID, item.QuestionID, false).
					First(&choice).Error; err != nil {
					return utils.InvalidReferenceError(
						fmt.Sprintf("Choice %d does not belong to question %d", choiceID, item.QuestionID),
						"الاختيار لا ينتمى لهذا السؤال")
				}
				answer := models.FeedbackAnswerModel{
					QuestionID:      item.QuestionID,
					ChoiceID:        &choice.ID,
					VisitorID:       visitorID,
					CreatedAt:       now,
					CreatedByUserID: userID,
				}
				if strings.TrimSpace(item.TextAnswer) != "" {
					answer.TextAnswer = optStr(item.TextAnswer)
				}
				if err := tx.Create(&answer).Error; err != nil {
					return err
				}
				created++
			}

			if len(item.ChoiceIDs) == 0 {
				answer := models.FeedbackAnswerModel{
					QuestionID:      item.QuestionID,
					TextAnswer:      optStr(item.TextAnswer),
					VisitorID:       visitorID,
					CreatedAt:       now,
					CreatedByUserID: userID,
				}
				if err := tx.Create(&answer).Error; err != nil {
					return err
				}
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// ChoiceStat is one bar of the per-question answer distribution.
type ChoiceStat struct {
	ChoiceID int    `json:"ChoiceId"`
	Choice   string `json:"Choice"`
	Count    int64  `json:"Count"`
}

// QuestionStats counts answers per choice for every question.
func (s *SurveyService) QuestionStats() (map[int][]ChoiceStat, error) {
	var questions []models.FeedbackQuestionModel
	if err := s.db.Where("is_deleted = ?", false).
		Preload("Choices", "is_deleted = ?", false).
		Find(&questions).Error; err != nil {
		return nil, err
	}

	stats := map[int][]ChoiceStat{}
	for _, question := range questions {
		rows := make([]ChoiceStat, 0, len(question.Choices))
		for _, choice := range question.Choices {
			var count int64
			if err := s.db.Model(&models.FeedbackAnswerModel{}).
				Where("question_id = ? AND choice_id = ?", question.ID, choice.ID).
				Count(&count).Error; err != nil {
				return nil, err
			}
			rows = append(rows, ChoiceStat{ChoiceID: choice.ID, Choice: choice.Choice, Count: count})
		}
		stats[question.ID] = rows
	}
	return stats, nil
}

// ResponseRow is one flattened answer for the admin responses table and the
// spreadsheet export.
type ResponseRow struct {
	AnswerID   int       `json:"AnswerId"`
	QuestionID int       `json:"QuestionId"`
	Question   string    `json:"Question"`
	Choice     *string   `json:"Choice"`
	TextAnswer *string   `json:"TextAnswer"`
	UserID     *int      `json:"UserId"`
	VisitorID  *string   `json:"VisitorId"`
	CreatedAt  time.Time `json:"CreatedAt"`
}

func (s *SurveyService) Responses() ([]ResponseRow, error) {
	var rows []ResponseRow
	err := s.db.Table("feedback_answer_models").
		Select(`feedback_answer_models.id AS answer_id,
			feedback_answer_models.question_id,
			feedback_question_models.main_question AS question,
			question_choice_models.choice,
			feedback_answer_models.please_specify AS text_answer,
			feedback_answer_models.created_by_user_id AS user_id,
			feedback_answer_models.visitor_id,
			feedback_answer_models.created_at`).
		Joins("LEFT JOIN feedback_question_models ON feedback_question_models.id = feedback_answer_models.question_id").
		Joins("LEFT JOIN question_choice_models ON question_choice_models.id = feedback_answer_models.choice_id").
		Order("feedback_answer_models.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// ExportResponses renders the full response list as an xlsx workbook.
func (s *SurveyService) ExportResponses() (*excelize.File, error) {
	rows, err := s.Responses()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Responses"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Answer ID", "Question ID", "Question", "Choice", "Text Answer", "User ID", "Visitor ID", "Submitted At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for r, row := range rows {
		values := []interface{}{
			row.AnswerID,
			row.QuestionID,
			row.Question,
			derefOr(row.Choice, ""),
			derefOr(row.TextAnswer, ""),
			"",
			derefOr(row.VisitorID, ""),
			row.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if row.UserID != nil {
			values[5] = *row.UserID
		}
		for c, value := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, value)
		}
	}
	return f, nil
}

type FeedbackQuestionInput struct {
	MainQuestion   string
	MainQuestionAr string
	CategoryID     *int
	TypeID         *int
	Choices        []models.QuestionChoiceModel
}

func (s *SurveyService) CreateQuestion(in FeedbackQuestionInput) (*models.FeedbackQuestionModel, error) {
	question := models.FeedbackQuestionModel{
		MainQuestion:   in.MainQuestion,
		MainQuestionAr: optStr(in.MainQuestionAr),
		CategoryID:     in.CategoryID,
		TypeID:         in.TypeID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		for i := range in.Choices {
			in.Choices[i].ID = 0
			in.Choices[i].QuestionID = question.ID
			if err := tx.Create(&in.Choices[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	question.Choices = in.Choices
	return &question, nil
}

func (s *SurveyService) DeleteQuestion(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.FeedbackQuestionModel{}).
			Where("id = ? AND is_deleted = ?", id, false).
			Update("is_deleted", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return utils.NotFoundError("Question not found", "هذا السؤال غير موجود")
		}
		return tx.Model(&models.QuestionChoiceModel{}).
			Where("question_id = ?", id).
			Update("is_deleted", true).Error
	})
}
