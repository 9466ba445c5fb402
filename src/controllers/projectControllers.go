package controllers

import (
	"strconv"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	service *services.ProjectService
}

func NewProjectController(service *services.ProjectService) *ProjectController {
	return &ProjectController{service: service}
}

func projectInputFromForm(c *gin.Context) services.ProjectInput {
	input := services.ProjectInput{
		NameEn:        c.PostForm("NameEn"),
		NameAr:        c.PostForm("NameAr"),
		DescriptionEn: c.PostForm("DescriptionEn"),
		DescriptionAr: c.PostForm("DescriptionAr"),
		ServicesName:  c.PostForm("ServicesName"),
		ServicesLink:  c.PostForm("ServicesLink"),
	}
	if file, err := c.FormFile("image"); err == nil {
		input.Image = file
	}
	if file, err := c.FormFile("video"); err == nil {
		input.Video = file
	}
	return input
}

func (pc *ProjectController) Create(c *gin.Context) {
	input := projectInputFromForm(c)
	if input.NameEn == "" {
		utils.Fail(c, "NameEn is required", "الاسم مطلوب", utils.CodeInvalidReference)
		return
	}
	project, err := pc.service.Create(input, middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Project created successfully", "تم إنشاء المشروع بنجاح", project)
}

func (pc *ProjectController) List(c *gin.Context) {
	projects, err := pc.service.List()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Projects fetched successfully", "تم جلب المشاريع بنجاح", projects)
}

func (pc *ProjectController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid project id", "رقم المشروع غير صحيح", utils.CodeNotFound)
		return
	}
	project, err := pc.service.Get(id)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Project fetched successfully", "تم جلب المشروع بنجاح", project)
}

func (pc *ProjectController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid project id", "رقم المشروع غير صحيح", utils.CodeNotFound)
		return
	}
	project, err := pc.service.Update(id, projectInputFromForm(c), middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Project updated successfully", "تم تحديث المشروع بنجاح", project)
}

func (pc *ProjectController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid project id", "رقم المشروع غير صحيح", utils.CodeNotFound)
		return
	}
	if err := pc.service.Delete(id); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Project deleted successfully", "تم حذف المشروع بنجاح", nil)
}

func projectDetailInputFromForm(c *gin.Context) services.ProjectDetailInput {
	input := services.ProjectDetailInput{
		ServiceName:          c.PostForm("ServiceName"),
		ServiceNameAr:        c.PostForm("ServiceNameAr"),
		ServiceDescription:   c.PostForm("ServiceDescription"),
		ServiceDescriptionAr: c.PostForm("ServiceDescriptionAr"),
		ServiceLink:          c.PostForm("ServiceLink"),
	}
	if file, err := c.FormFile("image"); err == nil {
		input.Image = file
	}
	return input
}

func (pc *ProjectController) CreateDetail(c *gin.Context) {
	projectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid project id", "رقم المشروع غير صحيح", utils.CodeNotFound)
		return
	}
	input := projectDetailInputFromForm(c)
	if input.ServiceName == "" {
		utils.Fail(c, "ServiceName is required", "اسم الخدمة مطلوب", utils.CodeInvalidReference)
		return
	}
	detail, err := pc.service.CreateDetail(projectID, input, middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Project detail created successfully", "تم إنشاء تفاصيل المشروع بنجاح", detail)
}

func (pc *ProjectController) UpdateDetail(c *gin.Context) {
	detailID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid detail id", "رقم التفاصيل غير صحيح", utils.CodeNotFound)
		return
	}
	detail, err := pc.service.UpdateDetail(detailID, projectDetailInputFromForm(c), middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Project detail updated successfully", "تم تحديث تفاصيل المشروع بنجاح", detail)
}

func (pc *ProjectController) DeleteDetail(c *gin.Context) {
	detailID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid detail id", "رقم التفاصيل غير صحيح", utils.CodeNotFound)
		return
	}
	if err := pc.service.DeleteDetail(detailID); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Project detail deleted successfully", "تم حذف تفاصيل المشروع بنجاح", nil)
}
