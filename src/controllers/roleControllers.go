package controllers

import (
	"strconv"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type RoleController struct {
	service *services.RoleService
}

func NewRoleController(service *services.RoleService) *RoleController {
	return &RoleController{service: service}
}

type rolePayload struct {
	NameEn string `json:"NameEn" binding:"required"`
	NameAr string `json:"NameAr"`
}

func (rc *RoleController) List(c *gin.Context) {
	roles, err := rc.service.List()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Roles fetched successfully", "تم جلب الأدوار بنجاح", roles)
}

func (rc *RoleController) Create(c *gin.Context) {
	var payload rolePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Fail(c, "NameEn is required", "الاسم مطلوب", utils.CodeInvalidReference)
		return
	}
	role, err := rc.service.Create(payload.NameEn, payload.NameAr)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Role created successfully", "تم إنشاء الدور بنجاح", role)
}

func (rc *RoleController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid role id", "رقم الدور غير صحيح", utils.CodeNotFound)
		return
	}
	var payload rolePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Fail(c, "NameEn is required", "الاسم مطلوب", utils.CodeInvalidReference)
		return
	}
	role, err := rc.service.Update(id, payload.NameEn, payload.NameAr)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Role updated successfully", "تم تحديث الدور بنجاح", role)
}

func (rc *RoleController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid role id", "رقم الدور غير صحيح", utils.CodeNotFound)
		return
	}
	if err := rc.service.Delete(id); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Role deleted successfully", "تم حذف الدور بنجاح", nil)
}

func (rc *RoleController) ListFeatures(c *gin.Context) {
	features, err := rc.service.ListFeatures()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Features fetched successfully", "تم جلب الخصائص بنجاح", features)
}

func (rc *RoleController) CreateFeature(c *gin.Context) {
	var payload struct {
		NameEn string `json:"NameEn" binding:"required"`
		NameAr string `json:"NameAr"`
		Route  string `json:"Route"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Fail(c, "NameEn is required", "الاسم مطلوب", utils.CodeInvalidReference)
		return
	}
	feature, err := rc.service.CreateFeature(payload.NameEn, payload.NameAr, payload.Route)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Feature created successfully", "تم إنشاء الخاصية بنجاح", feature)
}

func (rc *RoleController) DeleteFeature(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid feature id", "رقم الخاصية غير صحيح", utils.CodeNotFound)
		return
	}
	if err := rc.service.DeleteFeature(id); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Feature deleted successfully", "تم حذف الخاصية بنجاح", nil)
}

func (rc *RoleController) SetRoleFeatures(c *gin.Context) {
	roleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid role id", "رقم الدور غير صحيح", utils.CodeNotFound)
		return
	}
	var payload struct {
		FeatureIDs []int `json:"FeatureIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.Fail(c, "FeatureIds are required", "الخصائص مطلوبة", utils.CodeInvalidReference)
		return
	}
	if err := rc.service.SetRoleFeatures(roleID, payload.FeatureIDs); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Role features updated successfully", "تم تحديث خصائص الدور بنجاح", nil)
}

func (rc *RoleController) RoleFeatures(c *gin.Context) {
	roleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid role id", "رقم الدور غير صحيح", utils.CodeNotFound)
		return
	}
	features, err := rc.service.RoleFeatures(roleID)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Role features fetched successfully", "تم جلب خصائص الدور بنجاح", features)
}

// MyFeatures lists the caller's own allowed features from their token role.
func (rc *RoleController) MyFeatures(c *gin.Context) {
	features, err := rc.service.RoleFeatures(middleware.RoleID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Features fetched successfully", "تم جلب الخصائص بنجاح", features)
}
