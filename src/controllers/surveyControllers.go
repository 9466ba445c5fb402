package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type SurveyController struct {
	service *services.SurveyService
}

func NewSurveyController(service *services.SurveyService) *SurveyController {
	return &SurveyController{service: service}
}

// callerIdentity resolves the voter: the token's user id when present,
// otherwise the visitor session id header.
func callerIdentity(c *gin.Context) (*int, *string) {
	var userID *int
	if id := middleware.UserID(c); id != 0 {
		userID = &id
	}
	var visitorID *string
	if session := c.GetHeader("X-Visitor-Id"); session != "" {
		visitorID = &session
	}
	return userID, visitorID
}

func (sc *SurveyController) Vote(c *gin.Context) {
	var input struct {
		Answer    string `json:"Answer" binding:"required"`
		SubAnswer string `json:"SubAnswer"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, "Answer is required", "الإجابة مطلوبة", utils.CodeInvalidAnswer)
		return
	}

	userID, visitorID := callerIdentity(c)
	vote, err := sc.service.Vote(userID, visitorID, input.Answer, input.SubAnswer)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Vote recorded successfully", "تم تسجيل التصويت بنجاح", vote)
}

func (sc *SurveyController) VoteStats(c *gin.Context) {
	stats, err := sc.service.VoteStats()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Vote statistics fetched successfully", "تم جلب إحصائيات التصويت بنجاح", stats)
}

func (sc *SurveyController) Questions(c *gin.Context) {
	groups, err := sc.service.GroupedQuestions()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Survey questions fetched successfully", "تم جلب أسئلة الاستبيان بنجاح", groups)
}

func (sc *SurveyController) SubmitAnswers(c *gin.Context) {
	var input models.BulkAnswerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, "answers are required", "الإجابات مطلوبة", utils.CodeInvalidReference)
		return
	}

	userID, visitorID := callerIdentity(c)
	created, err := sc.service.SubmitAnswers(input, userID, visitorID)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Answers submitted successfully", "تم إرسال الإجابات بنجاح", gin.H{"created": created})
}

func (sc *SurveyController) Stats(c *gin.Context) {
	stats, err := sc.service.QuestionStats()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Survey statistics fetched successfully", "تم جلب إحصائيات الاستبيان بنجاح", stats)
}

func (sc *SurveyController) Responses(c *gin.Context) {
	rows, err := sc.service.Responses()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Survey responses fetched successfully", "تم جلب ردود الاستبيان بنجاح", rows)
}

// ExportResponses streams the responses workbook; this endpoint bypasses the
// JSON envelope.
func (sc *SurveyController) ExportResponses(c *gin.Context) {
	file, err := sc.service.ExportResponses()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}

	filename := fmt.Sprintf("survey_responses_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

func (sc *SurveyController) CreateQuestion(c *gin.Context) {
	var input struct {
		MainQuestion   string                       `json:"MainQuestion" binding:"required"`
		MainQuestionAr string                       `json:"MainQuestion_Ar"`
		CategoryID     *int                         `json:"CategoryId"`
		TypeID         *int                         `json:"TypeId"`
		Choices        []models.QuestionChoiceModel `json:"Choices"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, "MainQuestion is required", "نص السؤال مطلوب", utils.CodeInvalidReference)
		return
	}

	question, err := sc.service.CreateQuestion(services.FeedbackQuestionInput{
		MainQuestion:   input.MainQuestion,
		MainQuestionAr: input.MainQuestionAr,
		CategoryID:     input.CategoryID,
		TypeID:         input.TypeID,
		Choices:        input.Choices,
	})
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Question created successfully", "تم إنشاء السؤال بنجاح", question)
}

func (sc *SurveyController) DeleteQuestion(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid question id", "رقم السؤال غير صحيح", utils.CodeNotFound)
		return
	}
	if err := sc.service.DeleteQuestion(id); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Question deleted successfully", "تم حذف السؤال بنجاح", nil)
}
