package controllers

import (
	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type VisitorController struct {
	service *services.VisitorService
}

func NewVisitorController(service *services.VisitorService) *VisitorController {
	return &VisitorController{service: service}
}

func (vc *VisitorController) Track(c *gin.Context) {
	var input models.TrackVisitorRequest
	// An empty body is fine; the server mints the session and echoes the IP.
	_ = c.ShouldBindJSON(&input)

	visitor, err := vc.service.Track(input, c.ClientIP())
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Visit recorded successfully", "تم تسجيل الزيارة بنجاح", visitor)
}

func (vc *VisitorController) Count(c *gin.Context) {
	count, err := vc.service.Count()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Visitor count fetched successfully", "تم جلب عدد الزوار بنجاح", gin.H{"count": count})
}

func (vc *VisitorController) ByCountry(c *gin.Context) {
	rows, err := vc.service.ByCountry()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Visitor breakdown fetched successfully", "تم جلب توزيع الزوار بنجاح", rows)
}
