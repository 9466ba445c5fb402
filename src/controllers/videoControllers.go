package controllers

import (
	"strconv"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type VideoController struct {
	service *services.VideoService
}

func NewVideoController(service *services.VideoService) *VideoController {
	return &VideoController{service: service}
}

func videoInputFromForm(c *gin.Context) services.VideoInput {
	input := services.VideoInput{
		TitleEn:       c.PostForm("TitleEn"),
		TitleAr:       c.PostForm("TitleAr"),
		DescriptionEn: c.PostForm("DescriptionEn"),
		DescriptionAr: c.PostForm("DescriptionAr"),
		Link:          c.PostForm("Link"),
	}
	if file, err := c.FormFile("image"); err == nil {
		input.Image = file
	}
	return input
}

func (vc *VideoController) Create(c *gin.Context) {
	input := videoInputFromForm(c)
	if input.TitleEn == "" || input.Link == "" {
		utils.Fail(c, "TitleEn and Link are required", "العنوان والرابط مطلوبان", utils.CodeInvalidReference)
		return
	}
	video, err := vc.service.Create(input, middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Video created successfully", "تم إنشاء الفيديو بنجاح", video)
}

func (vc *VideoController) List(c *gin.Context) {
	videos, err := vc.service.List()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Videos fetched successfully", "تم جلب الفيديوهات بنجاح", videos)
}

func (vc *VideoController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid video id", "رقم الفيديو غير صحيح", utils.CodeNotFound)
		return
	}
	video, err := vc.service.Update(id, videoInputFromForm(c), middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Video updated successfully", "تم تحديث الفيديو بنجاح", video)
}

func (vc *VideoController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid video id", "رقم الفيديو غير صحيح", utils.CodeNotFound)
		return
	}
	if err := vc.service.Delete(id); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Video deleted successfully", "تم حذف الفيديو بنجاح", nil)
}
