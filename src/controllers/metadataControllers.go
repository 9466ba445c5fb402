package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type MetadataController struct {
	service *services.MetadataService
}

func NewMetadataController(service *services.MetadataService) *MetadataController {
	return &MetadataController{service: service}
}

func datasetInputFromForm(c *gin.Context) services.DatasetInput {
	epsg, _ := strconv.Atoi(c.PostForm("EPSG"))
	input := services.DatasetInput{
		Name:          c.PostForm("Name"),
		NameAr:        c.PostForm("NameAr"),
		Title:         c.PostForm("Title"),
		TitleAr:       c.PostForm("TitleAr"),
		Description:   c.PostForm("Description"),
		DescriptionAr: c.PostForm("DescriptionAr"),
		CRSName:       c.PostForm("CRSName"),
		EPSG:          epsg,
		Keywords:      c.PostForm("Keywords"),
		KeywordsAr:    c.PostForm("KeywordsAr"),
	}
	if file, err := c.FormFile("image"); err == nil {
		input.Image = file
	}
	return input
}

func (mc *MetadataController) CreateDataset(c *gin.Context) {
	input := datasetInputFromForm(c)
	if input.Name == "" {
		utils.Fail(c, "Name is required", "الاسم مطلوب", utils.CodeInvalidReference)
		return
	}
	dataset, err := mc.service.CreateDataset(input, middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Dataset created successfully", "تم إنشاء مجموعة البيانات بنجاح", dataset)
}

func (mc *MetadataController) ListDatasets(c *gin.Context) {
	datasets, err := mc.service.ListDatasets()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Datasets fetched successfully", "تم جلب مجموعات البيانات بنجاح", datasets)
}

func (mc *MetadataController) GetDataset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid dataset id", "رقم مجموعة البيانات غير صحيح", utils.CodeNotFound)
		return
	}
	dataset, err := mc.service.GetDataset(id)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Dataset fetched successfully", "تم جلب مجموعة البيانات بنجاح", dataset)
}

func (mc *MetadataController) UpdateDataset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid dataset id", "رقم مجموعة البيانات غير صحيح", utils.CodeNotFound)
		return
	}
	dataset, err := mc.service.UpdateDataset(id, datasetInputFromForm(c), middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Dataset updated successfully", "تم تحديث مجموعة البيانات بنجاح", dataset)
}

func (mc *MetadataController) DeleteDataset(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid dataset id", "رقم مجموعة البيانات غير صحيح", utils.CodeNotFound)
		return
	}
	if err := mc.service.DeleteDataset(id); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Dataset deleted successfully", "تم حذف مجموعة البيانات بنجاح", nil)
}

func metadataInputFromForm(c *gin.Context) services.MetadataInput {
	datasetID, _ := strconv.Atoi(c.PostForm("DatasetId"))
	input := services.MetadataInput{
		DatasetID:     datasetID,
		Name:          c.PostForm("Name"),
		NameAr:        c.PostForm("NameAr"),
		Title:         c.PostForm("Title"),
		TitleAr:       c.PostForm("TitleAr"),
		Description:   c.PostForm("Description"),
		DescriptionAr: c.PostForm("DescriptionAr"),
		URL:           c.PostForm("URL"),
		WestBound:     formFloat(c, "WestBound"),
		EastBound:     formFloat(c, "EastBound"),
		NorthBound:    formFloat(c, "NorthBound"),
		SouthBound:    formFloat(c, "SouthBound"),
		ContactName:   c.PostForm("ContactName"),
		PositionName:  c.PostForm("PositionName"),
		Organization:  c.PostForm("Organization"),
		Email:         c.PostForm("Email"),
		Phone:         c.PostForm("Phone"),
		Role:          c.PostForm("Role"),
	}
	if raw := strings.TrimSpace(c.PostForm("CreationDate")); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			input.CreationDate = &parsed
		}
	}
	if file, err := c.FormFile("file"); err == nil {
		input.File = file
	}
	return input
}

func formFloat(c *gin.Context, key string) *float64 {
	value := strings.TrimSpace(c.PostForm(key))
	if value == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func (mc *MetadataController) CreateMetadata(c *gin.Context) {
	input := metadataInputFromForm(c)
	if input.Name == "" || input.DatasetID == 0 {
		utils.Fail(c, "Name and DatasetId are required", "الاسم ورقم مجموعة البيانات مطلوبان", utils.CodeInvalidReference)
		return
	}
	record, err := mc.service.CreateMetadata(input, middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Metadata created successfully", "تم إنشاء البيانات الوصفية بنجاح", record)
}

func (mc *MetadataController) ListMetadata(c *gin.Context) {
	datasetID, _ := strconv.Atoi(c.Query("dataset_id"))
	records, err := mc.service.ListMetadata(datasetID)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Metadata fetched successfully", "تم جلب البيانات الوصفية بنجاح", records)
}

func (mc *MetadataController) GetMetadata(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid metadata id", "رقم البيانات الوصفية غير صحيح", utils.CodeNotFound)
		return
	}
	record, err := mc.service.GetMetadata(id)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Metadata fetched successfully", "تم جلب البيانات الوصفية بنجاح", record)
}

func (mc *MetadataController) UpdateMetadata(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid metadata id", "رقم البيانات الوصفية غير صحيح", utils.CodeNotFound)
		return
	}
	record, err := mc.service.UpdateMetadata(id, metadataInputFromForm(c), middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Metadata updated successfully", "تم تحديث البيانات الوصفية بنجاح", record)
}

func (mc *MetadataController) DeleteMetadata(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid metadata id", "رقم البيانات الوصفية غير صحيح", utils.CodeNotFound)
		return
	}
	if err := mc.service.DeleteMetadata(id); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Metadata deleted successfully", "تم حذف البيانات الوصفية بنجاح", nil)
}
