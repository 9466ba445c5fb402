package controllers

import (
	"strconv"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type FAQController struct {
	service *services.FAQService
}

func NewFAQController(service *services.FAQService) *FAQController {
	return &FAQController{service: service}
}

type faqPayload struct {
	QuestionEn string `json:"QuestionEn" binding:"required"`
	QuestionAr string `json:"QuestionAr"`
	AnswerEn   string `json:"AnswerEn"`
	AnswerAr   string `json:"AnswerAr"`
	CategoryID *int   `json:"CategoryId"`
}

func (fc *FAQController) Create(c *gin.Context) {
	var payload faqPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Fail(c, "QuestionEn is required", "نص السؤال مطلوب", utils.CodeInvalidReference)
		return
	}
	faq, err := fc.service.Create(services.FAQInput{
		QuestionEn: payload.QuestionEn,
		QuestionAr: payload.QuestionAr,
		AnswerEn:   payload.AnswerEn,
		AnswerAr:   payload.AnswerAr,
		CategoryID: payload.CategoryID,
	}, middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "FAQ created successfully", "تم إنشاء السؤال بنجاح", faq)
}

func (fc *FAQController) List(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Query("category_id"))
	faqs, err := fc.service.List(categoryID)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "FAQs fetched successfully", "تم جلب الأسئلة بنجاح", faqs)
}

func (fc *FAQController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid FAQ id", "رقم السؤال غير صحيح", utils.CodeNotFound)
		return
	}
	var payload faqPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Fail(c, "QuestionEn is required", "نص السؤال مطلوب", utils.CodeInvalidReference)
		return
	}
	faq, err := fc.service.Update(id, services.FAQInput{
		QuestionEn: payload.QuestionEn,
		QuestionAr: payload.QuestionAr,
		AnswerEn:   payload.AnswerEn,
		AnswerAr:   payload.AnswerAr,
		CategoryID: payload.CategoryID,
	}, middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "FAQ updated successfully", "تم تحديث السؤال بنجاح", faq)
}

func (fc *FAQController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid FAQ id", "رقم السؤال غير صحيح", utils.CodeNotFound)
		return
	}
	if err := fc.service.Delete(id); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "FAQ deleted successfully", "تم حذف السؤال بنجاح", nil)
}

func (fc *FAQController) Match(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	matches, err := fc.service.Match(c.Query("q"), limit)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "FAQ matches fetched successfully", "تم جلب نتائج البحث بنجاح", matches)
}

type faqCategoryPayload struct {
	NameEn string `json:"NameEn" binding:"required"`
	NameAr string `json:"NameAr"`
}

func (fc *FAQController) ListCategories(c *gin.Context) {
	categories, err := fc.service.ListCategories()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "FAQ categories fetched successfully", "تم جلب التصنيفات بنجاح", categories)
}

func (fc *FAQController) CreateCategory(c *gin.Context) {
	var payload faqCategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Fail(c, "NameEn is required", "الاسم مطلوب", utils.CodeInvalidReference)
		return
	}
	category, err := fc.service.CreateCategory(payload.NameEn, payload.NameAr)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "FAQ category created successfully", "تم إنشاء التصنيف بنجاح", category)
}

func (fc *FAQController) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid category id", "رقم التصنيف غير صحيح", utils.CodeNotFound)
		return
	}
	var payload faqCategoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Fail(c, "NameEn is required", "الاسم مطلوب", utils.CodeInvalidReference)
		return
	}
	category, err := fc.service.UpdateCategory(id, payload.NameEn, payload.NameAr)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "FAQ category updated successfully", "تم تحديث التصنيف بنجاح", category)
}

func (fc *FAQController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid category id", "رقم التصنيف غير صحيح", utils.CodeNotFound)
		return
	}
	if err := fc.service.DeleteCategory(id); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "FAQ category deleted successfully", "تم حذف التصنيف بنجاح", nil)
}
