package controllers

import (
	"strconv"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

func (uc *UserController) Register(c *gin.Context) {
	var input models.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, "Invalid registration data: "+err.Error(), "بيانات التسجيل غير صحيحة", utils.CodeInvalidReference)
		return
	}

	user, err := uc.service.Register(input, nil)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c,
		"Registration successful. Please check your email to verify your account.",
		"تم التسجيل بنجاح , برجاء التحقق من بريدك الالكترونى لتفعيل الحساب", user)
}

func (uc *UserController) Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, "Email and password are required", "البريد وكلمة المرور مطلوبان", utils.CodeInvalidCredentials)
		return
	}

	token, err := uc.service.Authenticate(input.Email, input.Password)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Login successful", "تم تسجيل الدخول بنجاح", gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (uc *UserController) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.Fail(c, "token is required", "رمز التحقق مطلوب", utils.CodeTokenInvalid)
		return
	}
	if err := uc.service.VerifyEmail(token); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Email verified successfully", "تم التحقق من البريد بنجاح", nil)
}

func (uc *UserController) ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"Email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, "A valid email is required", "برجاء ادخال بريد صحيح", utils.CodeEmailNotFound)
		return
	}
	if err := uc.service.ForgotPassword(input.Email); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Password reset link sent to your email", "تم إرسال رابط إعادة التعيين إلى بريدك", nil)
}

func (uc *UserController) ResetPassword(c *gin.Context) {
	var input struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, "token and password are required", "الرمز وكلمة المرور مطلوبان", utils.CodeTokenInvalid)
		return
	}
	if err := uc.service.ResetPassword(input.Token, input.Password); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Password reset successfully", "تم تغيير كلمة المرور بنجاح", nil)
}

func (uc *UserController) RegistrationLookups(c *gin.Context) {
	lookups, err := uc.service.RegistrationLookups()
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Lookups fetched successfully", "تم جلب البيانات بنجاح", lookups)
}

func (uc *UserController) Me(c *gin.Context) {
	user, err := uc.service.GetUser(middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Profile fetched successfully", "تم جلب الملف الشخصى بنجاح", user)
}

func (uc *UserController) UpdateMe(c *gin.Context) {
	var input models.UserUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, "Invalid profile data: "+err.Error(), "بيانات غير صحيحة", utils.CodeInvalidReference)
		return
	}
	userID := middleware.UserID(c)
	user, err := uc.service.UpdateUser(userID, input, userID)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Profile updated successfully", "تم تحديث الملف الشخصى بنجاح", user)
}

func (uc *UserController) UploadMyPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		utils.Fail(c, "photo file is required", "ملف الصورة مطلوب", utils.CodeStorageError)
		return
	}
	userID := middleware.UserID(c)
	rel, err := uc.service.UploadPhoto(userID, file, userID)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Photo uploaded successfully", "تم رفع الصورة بنجاح", gin.H{
		"photo_url": utils.FileURL(utils.BaseURL(c), rel),
	})
}

func (uc *UserController) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
	roleID, _ := strconv.Atoi(c.Query("role_id"))

	filter := services.UserFilter{
		Page:       page,
		Limit:      limit,
		Search:     c.Query("search"),
		RoleID:     roleID,
		IsActive:   c.Query("is_active"),
		IsApproved: c.Query("is_approved"),
		IsVerified: c.Query("is_verified"),
	}

	users, total, err := uc.service.ListUsers(filter)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "Users fetched successfully", "تم جلب المستخدمين بنجاح", gin.H{
		"page":  filter.Page,
		"limit": filter.Limit,
		"total": total,
		"users": users,
	})
}

func (uc *UserController) GetUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid user id", "رقم المستخدم غير صحيح", utils.CodeUserNotFound)
		return
	}
	user, err := uc.service.GetUser(userID)
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "User fetched successfully", "تم جلب المستخدم بنجاح", user)
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var input models.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, "Invalid user data: "+err.Error(), "بيانات غير صحيحة", utils.CodeInvalidReference)
		return
	}
	user, err := uc.service.AdminCreateUser(input, middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "User created successfully", "تم إنشاء المستخدم بنجاح", user)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid user id", "رقم المستخدم غير صحيح", utils.CodeUserNotFound)
		return
	}
	var input models.UserUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, "Invalid user data: "+err.Error(), "بيانات غير صحيحة", utils.CodeInvalidReference)
		return
	}
	user, err := uc.service.UpdateUser(userID, input, middleware.UserID(c))
	if err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "User updated successfully", "تم تحديث المستخدم بنجاح", user)
}

func (uc *UserController) ApproveUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid user id", "رقم المستخدم غير صحيح", utils.CodeUserNotFound)
		return
	}
	if err := uc.service.Approve(userID, middleware.UserID(c)); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "User approved successfully", "تمت الموافقة على المستخدم بنجاح", nil)
}

func (uc *UserController) RefuseUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid user id", "رقم المستخدم غير صحيح", utils.CodeUserNotFound)
		return
	}
	if err := uc.service.Refuse(userID, middleware.UserID(c)); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "User refused successfully", "تم رفض المستخدم بنجاح", nil)
}

func (uc *UserController) SetUserActive(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid user id", "رقم المستخدم غير صحيح", utils.CodeUserNotFound)
		return
	}
	var input struct {
		IsActive *bool `json:"IsActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, "IsActive is required", "حالة التفعيل مطلوبة", utils.CodeInvalidReference)
		return
	}
	if err := uc.service.SetActive(userID, *input.IsActive, middleware.UserID(c)); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "User status updated successfully", "تم تحديث حالة المستخدم بنجاح", nil)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Fail(c, "Invalid user id", "رقم المستخدم غير صحيح", utils.CodeUserNotFound)
		return
	}
	if err := uc.service.Delete(userID); err != nil {
		utils.FailFromError(c, err)
		return
	}
	utils.Success(c, "User deleted successfully", "تم حذف المستخدم بنجاح", nil)
}
