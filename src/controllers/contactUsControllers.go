package controllers

import (
	"strconv"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type ContactUsController struct {
	service *services.ContactUsService
}

func NewContactUsController(service *services.ContactUsService) *ContactUsController {
	return &ContactUsController{service: service}
}

func (cc *ContactUsController) Submit(c *gin.Context) {
	input := services.ContactUsInput{
		FirstName:   c.PostForm("FirstName"),
		LastName:    c.PostForm("LastName"),
		Subject:     c.PostForm("Subject"),
		Body:        c.PostForm("Body"),
		Email:       c.PostForm("Email"),
		PhoneNumber: c.PostForm("PhoneNumber"),
	}
	if input.Subject == "" && input.Body == "" {
		utils.Fail(c, "Subject or Body is required", "الموضوع او الرسالة مطلوبة", utils.CodeInvalidReference)
		return
	}
	if file, err := c.FormFile("attachment"); err == nil {
		input.Attachment = file
	}

	message, err := cc.service.Submit(input)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Message sent successfully", "تم إرسال الرسالة بنجاح", message)
}

func (cc *ContactUsController) List(c *gin.Context) {
	messages, err := cc.service.List()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Messages fetched successfully", "تم جلب الرسائل بنجاح", messages)
}

func (cc *ContactUsController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid message id", "رقم الرسالة غير صحيح", utils.CodeNotFound)
		return
	}
	message, err := cc.service.Get(id)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Message fetched successfully", "تم جلب الرسالة بنجاح", message)
}

func (cc *ContactUsController) Reply(c *gin.Context) {
	contactID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid message id", "رقم الرسالة غير صحيح", utils.CodeNotFound)
		return
	}

	input := services.ContactReplyInput{
		Subject: c.PostForm("Subject"),
		Body:    c.PostForm("Body"),
	}
	if file, err := c.FormFile("attachment"); err == nil {
		input.Attachment = file
	}

	reply, err := cc.service.Reply(contactID, input, middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Reply sent successfully", "تم إرسال الرد بنجاح", reply)
}
