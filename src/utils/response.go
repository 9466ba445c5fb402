package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with this envelope. Clients inspect success and
// error_code rather than the HTTP status.
type Envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	MessageAr string      `json:"message_ar"`
	Data      interface{} `json:"data,omitempty"`
	ErrorCode *string     `json:"error_code,omitempty"`
}

func Success(ctx *gin.Context, messageEn, messageAr string, data interface{}) {
	if messageAr == "" {
		messageAr = messageEn
	}
	ctx.JSON(http.StatusOK, Envelope{
		Success:   true,
		Message:   messageEn,
		MessageAr: messageAr,
		Data:      data,
	})
}

func Fail(ctx *gin.Context, messageEn, messageAr, errorCode string) {
	if messageAr == "" {
		messageAr = messageEn
	}
	var codePtr *string
	if errorCode != "" {
		codePtr = &errorCode
	}
	ctx.JSON(http.StatusOK, Envelope{
		Success:   false,
		Message:   messageEn,
		MessageAr: messageAr,
		ErrorCode: codePtr,
	})
}

// FailFromError maps a service error onto the failure envelope. Anything that
// is not an AppError becomes INTERNAL_ERROR.
func FailFromError(ctx *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		Fail(ctx, appErr.MessageEn, appErr.MessageAr, appErr.Code)
		return
	}
	Fail(ctx, "An error occurred while processing your request.", "حدث خطأ أثناء معالجة طلبك.", CodeInternalError)
}

// BaseURL rebuilds the scheme://host prefix used to resolve stored relative
// paths to absolute URLs at read time.
func BaseURL(ctx *gin.Context) string {
	scheme := "http"
	if ctx.Request.TLS != nil || ctx.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + ctx.Request.Host
}
