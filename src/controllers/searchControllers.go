package controllers

import (
	"strconv"

	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type SearchController struct {
	search  *services.SearchService
	chatbot *services.ChatbotService
}

func NewSearchController(search *services.SearchService, chatbot *services.ChatbotService) *SearchController {
	return &SearchController{search: search, chatbot: chatbot}
}

func (sc *SearchController) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := sc.search.Search(c.Query("q"), page, limit)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Search results fetched successfully", "تم جلب نتائج البحث بنجاح", result)
}

func (sc *SearchController) Ask(c *gin.Context) {
	var input struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, "query is required", "برجاء كتابة سؤالك", utils.CodeEmptyQuery)
		return
	}

	reply, err := sc.chatbot.Ask(input.Query)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Answer generated successfully", "تم توليد الإجابة بنجاح", reply)
}
