package controllers

import (
	"strconv"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

func productInputFromForm(c *gin.Context) services.ProductInput {
	input := services.ProductInput{
		NameEn:              c.PostForm("NameEn"),
		NameAr:              c.PostForm("NameAr"),
		DescriptionEn:       c.PostForm("DescriptionEn"),
		DescriptionAr:       c.PostForm("DescriptionAr"),
		ServicesName:        c.PostForm("ServicesName"),
		ServicesDescription: c.PostForm("ServicesDescription"),
		ServicesLink:        c.PostForm("ServicesLink"),
	}
	if file, err := c.FormFile("image"); err == nil {
		input.Image = file
	}
	if file, err := c.FormFile("video"); err == nil {
		input.Video = file
	}
	return input
}

func (pc *ProductController) Create(c *gin.Context) {
	input := productInputFromForm(c)
	if input.NameEn == "" {
		utils.Fail(c, "NameEn is required", "الاسم مطلوب", utils.CodeInvalidReference)
		return
	}
	product, err := pc.service.Create(input, middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Product created successfully", "تم إنشاء المنتج بنجاح", product)
}

func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.service.List()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Products fetched successfully", "تم جلب المنتجات بنجاح", products)
}

func (pc *ProductController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid product id", "رقم المنتج غير صحيح", utils.CodeNotFound)
		return
	}
	product, err := pc.service.Get(id)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Product fetched successfully", "تم جلب المنتج بنجاح", product)
}

func (pc *ProductController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid product id", "رقم المنتج غير صحيح", utils.CodeNotFound)
		return
	}
	product, err := pc.service.Update(id, productInputFromForm(c), middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Product updated successfully", "تم تحديث المنتج بنجاح", product)
}

func (pc *ProductController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid product id", "رقم المنتج غير صحيح", utils.CodeNotFound)
		return
	}
	if err := pc.service.Delete(id); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Product deleted successfully", "تم حذف المنتج بنجاح", nil)
}
