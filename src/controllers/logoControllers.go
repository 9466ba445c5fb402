package controllers

import (
	"strconv"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type LogoController struct {
	service *services.LogoService
}

func NewLogoController(service *services.LogoService) *LogoController {
	return &LogoController{service: service}
}

func logoInputFromForm(c *gin.Context) services.LogoInput {
	input := services.LogoInput{
		NameEn:   c.PostForm("NameEn"),
		NameAr:   c.PostForm("NameAr"),
		Link:     c.PostForm("Link"),
		Category: c.PostForm("Category"),
	}
	if file, err := c.FormFile("image"); err == nil {
		input.Image = file
	}
	return input
}

func (lc *LogoController) Create(c *gin.Context) {
	input := logoInputFromForm(c)
	if input.NameEn == "" || input.Category == "" {
		utils.Fail(c, "NameEn and Category are required", "الاسم والتصنيف مطلوبان", utils.CodeInvalidReference)
		return
	}
	logo, err := lc.service.Create(input, middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Logo created successfully", "تم إنشاء الشعار بنجاح", logo)
}

func (lc *LogoController) List(c *gin.Context) {
	logos, err := lc.service.List(c.Query("category"))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Logos fetched successfully", "تم جلب الشعارات بنجاح", logos)
}

func (lc *LogoController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid logo id", "رقم الشعار غير صحيح", utils.CodeNotFound)
		return
	}
	logo, err := lc.service.Update(id, logoInputFromForm(c), middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Logo updated successfully", "تم تحديث الشعار بنجاح", logo)
}

func (lc *LogoController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid logo id", "رقم الشعار غير صحيح", utils.CodeNotFound)
		return
	}
	if err := lc.service.Delete(id); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Logo deleted successfully", "تم حذف الشعار بنجاح", nil)
}
