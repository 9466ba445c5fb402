package controllers

import (
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	service *services.StatisticsService
}

func NewStatisticsController(service *services.StatisticsService) *StatisticsController {
	return &StatisticsController{service: service}
}

func (sc *StatisticsController) Summary(c *gin.Context) {
	summary, err := sc.service.Summary()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Statistics fetched successfully", "تم جلب الإحصائيات بنجاح", summary)
}
