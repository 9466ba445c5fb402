package controllers

import (
	"strconv"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type NewsController struct {
	service *services.NewsService
}

func NewNewsController(service *services.NewsService) *NewsController {
	return &NewsController{service: service}
}

func newsInputFromForm(c *gin.Context) services.NewsInput {
	input := services.NewsInput{
		TitleEn:       c.PostForm("TitleEn"),
		TitleAr:       c.PostForm("TitleAr"),
		DescriptionEn: c.PostForm("DescriptionEn"),
		DescriptionAr: c.PostForm("DescriptionAr"),
		IsSlide:       c.PostForm("IsSlide") == "true",
	}
	if file, err := c.FormFile("image"); err == nil {
		input.Image = file
	}
	return input
}

func (nc *NewsController) Create(c *gin.Context) {
	input := newsInputFromForm(c)
	if input.TitleEn == "" {
		utils.Fail(c, "TitleEn is required", "العنوان مطلوب", utils.CodeInvalidReference)
		return
	}
	news, err := nc.service.Create(input, middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "News created successfully", "تم إنشاء الخبر بنجاح", news)
}

func (nc *NewsController) List(c *gin.Context) {
	items, err := nc.service.List()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "News fetched successfully", "تم جلب الأخبار بنجاح", items)
}

func (nc *NewsController) Sliders(c *gin.Context) {
	items, err := nc.service.Sliders()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Slider news fetched successfully", "تم جلب أخبار الشريط بنجاح", items)
}

func (nc *NewsController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid news id", "رقم الخبر غير صحيح", utils.CodeNotFound)
		return
	}
	news, err := nc.service.Get(id)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "News fetched successfully", "تم جلب الخبر بنجاح", news)
}

func (nc *NewsController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid news id", "رقم الخبر غير صحيح", utils.CodeNotFound)
		return
	}
	news, err := nc.service.Update(id, newsInputFromForm(c), middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "News updated successfully", "تم تحديث الخبر بنجاح", news)
}

func (nc *NewsController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid news id", "رقم الخبر غير صحيح", utils.CodeNotFound)
		return
	}
	if err := nc.service.Delete(id); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "News deleted successfully", "تم حذف الخبر بنجاح", nil)
}
