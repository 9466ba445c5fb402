package controllers

import (
	"strconv"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type ManualGuideController struct {
	service *services.ManualGuideService
}

func NewManualGuideController(service *services.ManualGuideService) *ManualGuideController {
	return &ManualGuideController{service: service}
}

func manualGuideInputFromForm(c *gin.Context) services.ManualGuideInput {
	input := services.ManualGuideInput{
		NameEn:        c.PostForm("NameEn"),
		NameAr:        c.PostForm("NameAr"),
		DescriptionEn: c.PostForm("DescriptionEn"),
		DescriptionAr: c.PostForm("DescriptionAr"),
	}
	if file, err := c.FormFile("file"); err == nil {
		input.File = file
	}
	return input
}

func (mc *ManualGuideController) Create(c *gin.Context) {
	input := manualGuideInputFromForm(c)
	if input.NameEn == "" {
		utils.Fail(c, "NameEn is required", "الاسم مطلوب", utils.CodeInvalidReference)
		return
	}
	guide, err := mc.service.Create(input, middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Manual guide created successfully", "تم إنشاء الدليل بنجاح", guide)
}

func (mc *ManualGuideController) List(c *gin.Context) {
	guides, err := mc.service.List()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Manual guides fetched successfully", "تم جلب الأدلة بنجاح", guides)
}

func (mc *ManualGuideController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid manual guide id", "رقم الدليل غير صحيح", utils.CodeNotFound)
		return
	}
	guide, err := mc.service.Update(id, manualGuideInputFromForm(c), middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Manual guide updated successfully", "تم تحديث الدليل بنجاح", guide)
}

func (mc *ManualGuideController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid manual guide id", "رقم الدليل غير صحيح", utils.CodeNotFound)
		return
	}
	if err := mc.service.Delete(id); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Manual guide deleted successfully", "تم حذف الدليل بنجاح", nil)
}
