package controllers

import (
	"strconv"
	"strings"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type RequestController struct {
	service *services.RequestService
}

func NewRequestController(service *services.RequestService) *RequestController {
	return &RequestController{service: service}
}

func (rc *RequestController) GetLookups(c *gin.Context) {
	lookups, err := rc.service.Lookups()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Lookups fetched successfully", "تم جلب البيانات بنجاح", lookups)
}

func (rc *RequestController) CreateRequest(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.PostForm("CategoryId"))
	if err != nil {
		utils.Fail(c, "CategoryId is required", "نوع الطلب مطلوب", utils.CodeInvalidReference)
		return
	}

	input := services.CreateRequestInput{
		UserID:                middleware.UserID(c),
		CategoryID:            categoryID,
		ComplaintScreenID:     formInt(c, "ComplaintScreenId"),
		Subject:               formStr(c, "Subject"),
		Body:                  formStr(c, "Body"),
		ProspectiveName:       formStr(c, "ProspectiveName"),
		CoordinateTopLeft:     formStr(c, "CoordinateTopLeft"),
		CoordinateBottomRight: formStr(c, "CoordinateBottomRight"),
		ProjectionID:          formInt(c, "ProjectionId"),
		OtherSpecification:    formStr(c, "OtherSpecification"),
		OtherFormat:           formStr(c, "OtherFormat"),
		IntendedPurpose:       formStr(c, "IntendedPurpose"),
		RequirementsDetails:   formStr(c, "RequirementsDetails"),
		RequestInformationIDs: c.PostForm("RequestInformationIds"),
		FormatIDs:             c.PostForm("FormatIds"),
	}
	if file, err := c.FormFile("attachment"); err == nil {
		input.Attachment = file
	}

	result, err := rc.service.CreateRequest(input)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Request created successfully", "تم إنشاء الطلب بنجاح", result)
}

func (rc *RequestController) ListRequests(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))

	result, err := rc.service.ListRequests(page, limit)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Requests fetched successfully", "تم جلب الطلبات بنجاح", result)
}

func (rc *RequestController) RequestDetails(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Query("request_id"))
	if err != nil {
		utils.Fail(c, "request_id is required", "رقم الطلب مطلوب", utils.CodeRequestNotFound)
		return
	}

	details, err := rc.service.GetRequestDetails(requestID)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Request details fetched successfully", "تم جلب تفاصيل الطلب بنجاح", details)
}

func (rc *RequestController) AssignedRequests(c *gin.Context) {
	rows, err := rc.service.AssignedRequests(middleware.RoleID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Assigned requests fetched successfully", "تم جلب الطلبات المسندة بنجاح", rows)
}

func (rc *RequestController) AssignRole(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Query("request_id"))
	if err != nil {
		utils.Fail(c, "request_id is required", "رقم الطلب مطلوب", utils.CodeRequestNotFound)
		return
	}
	roleID, err := strconv.Atoi(c.Query("role_id"))
	if err != nil {
		utils.Fail(c, "role_id is required", "رقم الدور مطلوب", utils.CodeInvalidReference)
		return
	}

	if err := rc.service.AssignRole(requestID, roleID); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Request assigned successfully", "تم إسناد الطلب بنجاح", gin.H{
		"request_id": requestID,
		"role_id":    roleID,
	})
}

func (rc *RequestController) Reply(c *gin.Context) {
	requestID, err := strconv.Atoi(c.Query("request_id"))
	if err != nil {
		utils.Fail(c, "request_id is required", "رقم الطلب مطلوب", utils.CodeRequestNotFound)
		return
	}
	statusID, err := strconv.Atoi(c.Query("status_id"))
	if err != nil {
		utils.Fail(c, "status_id is required", "رقم الحالة مطلوب", utils.CodeInvalidReference)
		return
	}

	input := services.ReplyInput{
		RequestID: requestID,
		StatusID:  statusID,
		Subject:   formStr(c, "Subject"),
		Body:      formStr(c, "Body"),
		Responder: middleware.UserID(c),
	}
	if file, err := c.FormFile("attachment"); err == nil {
		input.Attachment = file
	}

	result, err := rc.service.Reply(input)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Reply sent successfully", "تم إرسال الرد بنجاح", result)
}

// formStr returns a trimmed form value as a nullable string.
func formStr(c *gin.Context, key string) *string {
	value := strings.TrimSpace(c.PostForm(key))
	if value == "" {
		return nil
	}
	return &value
}

// formInt parses an optional numeric form value; absent or malformed means nil.
func formInt(c *gin.Context, key string) *int {
	value := strings.TrimSpace(c.PostForm(key))
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &parsed
}
