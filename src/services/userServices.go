package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db              *gorm.DB
	store           *utils.AttachmentStore
	notifier        utils.Notifier
	frontendBaseURL string
}

func NewUserService(db *gorm.DB, store *utils.AttachmentStore, notifier utils.Notifier, frontendBaseURL string) *UserService {
	return &UserService{db: db, store: store, notifier: notifier, frontendBaseURL: frontendBaseURL}
}

// ExtractEmailDomain returns the lowercase domain part of an address, empty
// when the address has no "@".
func ExtractEmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// Register creates a user account. Registration against a refused email
// domain is rejected; an accepted domain auto-approves and activates the
// account. A verification email is queued either way.
func (s *UserService) Register(in models.RegisterRequest, createdBy *int) (*models.UserModel, error) {
	var existing models.UserModel
	if err := s.db.Where("email = ?", in.Email).First(&existing).Error; err == nil {
		return nil, utils.NewAppError(utils.CodeEmailExists, "Email already registered", "هذا البريد مسجل بالفعل")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	autoApprove := false
	domain := ExtractEmailDomain(in.Email)
	if domain != "" {
		var record models.DomainModel
		if err := s.db.Where("LOWER(domain) = ?", domain).First(&record).Error; err == nil {
			switch record.Type {
			case "refused":
				s.notifyDomainRefused(in.Email, domain)
				return nil, utils.NewAppError(utils.CodeDomainRefused,
					"This email domain is not allowed. Please use your company email.",
					"هذا البريد غير مسموح له بالتسجيل , برجاء التسجيل ببريد شركة")
			case "accept":
				autoApprove = true
			}
		}
	}

	// Self-registration can never claim the admin role.
	roleID := in.RoleID
	if roleID == 0 || roleID == middleware.AdminRoleID {
		roleID = 2
	}

	user := models.UserModel{
		TitleID:            in.TitleID,
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		OrganizationTypeID: in.OrganizationTypeID,
		OrganizationName:   in.OrganizationName,
		Department:         in.Department,
		JobTitle:           in.JobTitle,
		CityID:             in.CityID,
		CountryID:          in.CountryID,
		PhoneNumber:        in.PhoneNumber,
		Email:              in.Email,
		PasswordHash:       string(hashed),
		RoleID:             roleID,
		UserType:           in.UserType,
		DateOfBirth:        in.DateOfBirth,
		IsApproved:         autoApprove,
		IsActive:           autoApprove,
		EmailVerified:      false,
		CreatedAt:          time.Now().UTC(),
		CreatedByUserID:    createdBy,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	s.sendVerificationEmail(&user, "Thanks for registering. Please confirm your email so we can activate your account.")

	return &user, nil
}

// AdminCreateUser is the admin-initiated variant: the account starts approved
// and active, with an invitation email for verification.
func (s *UserService) AdminCreateUser(in models.RegisterRequest, adminID int) (*models.UserModel, error) {
	var existing models.UserModel
	if err := s.db.Where("email = ?", in.Email).First(&existing).Error; err == nil {
		return nil, utils.NewAppError(utils.CodeEmailExists, "Email already registered", "هذا البريد مسجل بالفعل")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	roleID := in.RoleID
	if roleID == 0 {
		roleID = 2
	}

	user := models.UserModel{
		TitleID:            in.TitleID,
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		OrganizationTypeID: in.OrganizationTypeID,
		OrganizationName:   in.OrganizationName,
		Department:         in.Department,
		JobTitle:           in.JobTitle,
		CityID:             in.CityID,
		CountryID:          in.CountryID,
		PhoneNumber:        in.PhoneNumber,
		Email:              in.Email,
		PasswordHash:       string(hashed),
		RoleID:             roleID,
		UserType:           in.UserType,
		DateOfBirth:        in.DateOfBirth,
		IsApproved:         true,
		IsActive:           true,
		EmailVerified:      false,
		CreatedAt:          time.Now().UTC(),
		CreatedByUserID:    &adminID,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	s.sendVerificationEmail(&user, "An administrator created an account for you. Please confirm your email to activate your access.")

	return &user, nil
}

func (s *UserService) sendVerificationEmail(user *models.UserModel, intro string) {
	token, err := s.CreateVerificationToken(user.Email, 0)
	if err != nil {
		return
	}
	verifyURL := fmt.Sprintf("%s/auth/verify-email?token=%s", strings.TrimRight(s.frontendBaseURL, "/"), token)

	body := fmt.Sprintf(`
	<div style="font-family:'Segoe UI',Arial,sans-serif;color:#1f2937;max-width:520px;margin:auto;">
		<h2 style="color:#2563eb;margin-bottom:8px;">Welcome to NGD, %s!</h2>
		<p>%s</p>
		<p style="margin:24px 0;">
			<a href="%s" style="background:#2563eb;color:#ffffff;text-decoration:none;padding:12px 28px;border-radius:6px;display:inline-block;">
				Verify my email
			</a>
		</p>
		<p style="font-size:13px;color:#6b7280;">If the button doesn't work, copy and paste this link into your browser:</p>
		<p style="font-size:13px;color:#2563eb;word-break:break-all;">%s</p>
		<p style="margin-top:32px;">Best regards,<br/>NGD Team</p>
	</div>`, user.FirstName, intro, verifyURL, verifyURL)

	s.notifier.Enqueue(utils.Email{To: user.Email, Subject: "Verify your NGD account", HTMLBody: body})
}

func (s *UserService) notifyDomainRefused(email, domain string) {
	body := fmt.Sprintf(`
	<div style="font-family:'Segoe UI',Arial,sans-serif;color:#1f2937;max-width:520px;margin:auto;">
		<h2 style="color:#b91c1c;margin-bottom:8px;">Registration not accepted</h2>
		<p>Registrations from the domain <b>%s</b> are not accepted on the NGD portal.
		Please register with your organization email or contact support.</p>
		<p style="margin-top:32px;">Best regards,<br/>NGD Team</p>
	</div>`, domain)

	s.notifier.Enqueue(utils.Email{To: email, Subject: "NGD registration - domain not accepted", HTMLBody: body})
}

// CreateVerificationToken issues a single-purpose JWT for email verification
// and password reset links. expiresMinutes of 0 means no expiry.
func (s *UserService) CreateVerificationToken(email string, expiresMinutes int) (string, error) {
	claims := jwt.MapClaims{
		"sub":     email,
		"purpose": "verification",
	}
	if expiresMinutes > 0 {
		claims["exp"] = time.Now().Add(time.Duration(expiresMinutes) * time.Minute).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(middleware.GetSecretKey()))
}

// VerifyVerificationToken returns the email the token was issued for, or an
// empty string when the token is invalid or expired.
func (s *UserService) VerifyVerificationToken(tokenString string) string {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(middleware.GetSecretKey()), nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	if purpose, _ := claims["purpose"].(string); purpose != "verification" {
		return ""
	}
	email, _ := claims["sub"].(string)
	return email
}

// VerifyEmail marks the account behind a verification token as verified.
func (s *UserService) VerifyEmail(tokenString string) error {
	email := s.VerifyVerificationToken(tokenString)
	if email == "" {
		return utils.NewAppError(utils.CodeTokenInvalid, "Invalid or expired token", "رمز التحقق غير صالح أو انتهت صلاحيته")
	}

	var user models.UserModel
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return utils.NewAppError(utils.CodeUserNotFound, "User not found", "هذا المستخدم غير موجود")
	}
	if user.EmailVerified {
		return utils.NewAppError(utils.CodeAlreadyVerified, "Email already verified", "هذا البريد تم التحقق منه مسبقاً")
	}

	return s.db.Model(&user).Update("email_verified", true).Error
}

// Authenticate checks credentials and the verified/approved/active gates, in
// that order, and returns a signed access token.
func (s *UserService) Authenticate(email, password string) (string, error) {
	var user models.UserModel
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", invalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", invalidCredentials()
	}
	if !user.EmailVerified {
		return "", utils.NewAppError(utils.CodeEmailNotVerified,
			"Please verify your email address before logging in. Check your inbox for the verification link.",
			"برجاء التحقق من البريد اولا قبل تسجيل الدخول , فضلاً تحقق من بريدك الالكترونى")
	}
	if !user.IsApproved {
		return "", utils.NewAppError(utils.CodeAccountNotApproved,
			"Your account is pending approval by an administrator. Please wait for approval or contact support.",
			"بريدك فى انتظار موافقة مدير النظام , فضلا انتظر الموافقة او تواصل معنا")
	}
	if !user.IsActive {
		return "", utils.NewAppError(utils.CodeAccountInactive,
			"Your account has been deactivated. Please contact support to reactivate your account.",
			"حسابك غير مفعل , من فضلك قم بالتواصل معنا للتفعيل مرة اخرى")
	}

	claims := jwt.MapClaims{
		"sub":        user.Email,
		"user_id":    user.UserID,
		"role_id":    user.RoleID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"exp":        time.Now().Add(12 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(middleware.GetSecretKey()))
}

// ForgotPassword emails a 60-minute reset link.
func (s *UserService) ForgotPassword(email string) error {
	var user models.UserModel
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return utils.NewAppError(utils.CodeEmailNotFound, "Email not found", "هذا البريد غير مسجل")
	}

	token, err := s.CreateVerificationToken(email, 60)
	if err != nil {
		return err
	}
	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s", strings.TrimRight(s.frontendBaseURL, "/"), token)

	body := fmt.Sprintf(`
	<div style="font-family:'Segoe UI',Arial,sans-serif;color:#1f2937;max-width:520px;margin:auto;">
		<h2 style="color:#2563eb;margin-bottom:8px;">Reset your NGD password</h2>
		<p>We received a request to reset the password for your account. Click the button below to choose a new password.</p>
		<p style="margin:24px 0;">
			<a href="%s" style="background:#2563eb;color:#ffffff;text-decoration:none;padding:12px 28px;border-radius:6px;display:inline-block;">
				Reset password
			</a>
		</p>
		<p style="font-size:13px;color:#6b7280;">If you didn't request this, you can safely ignore this email.</p>
		<p style="font-size:13px;color:#6b7280;">Link (valid for 60 minutes): <span style="color:#2563eb;word-break:break-all;">%s</span></p>
		<p style="margin-top:32px;">Best regards,<br/>NGD Team</p>
	</div>`, resetURL, resetURL)

	s.notifier.Enqueue(utils.Email{To: email, Subject: "Password Reset - NGD", HTMLBody: body})
	return nil
}

// ResetPassword replaces the password behind a valid reset token.
func (s *UserService) ResetPassword(tokenString, newPassword string) error {
	email := s.VerifyVerificationToken(tokenString)
	if email == "" {
		return utils.NewAppError(utils.CodeTokenInvalid, "Invalid or expired token", "خطأ او تم انتهاء صلاحية الرابط")
	}

	var user models.UserModel
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return utils.NewAppError(utils.CodeUserNotFound, "User not found", "هذا المستخدم غير موجود")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(&user).Update("password_hash", string(hashed)).Error
}

type UserFilter struct {
	Page       int
	Limit      int
	Search     string
	RoleID     int
	IsActive   string
	IsApproved string
	IsVerified string
}

// ListUsers pages through non-deleted accounts with the admin console's
// search and tri-state boolean filters ("true"/"false"/"null").
func (s *UserService) ListUsers(filter UserFilter) ([]models.UserModel, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 25
	}
	if filter.Limit > 200 {
		filter.Limit = 200
	}

	query := s.db.Model(&models.UserModel{}).Where("is_deleted = ?", false)

	for _, term := range strings.Fields(filter.Search) {
		like := "%" + strings.ToLower(term) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(organization_name) LIKE ?",
			like, like, like, like)
	}

	if filter.RoleID != 0 {
		query = query.Where("role_id = ?", filter.RoleID)
	}
	query = applyBoolFilter(query, "is_active", filter.IsActive)
	query = applyBoolFilter(query, "is_approved", filter.IsApproved)
	query = applyBoolFilter(query, "email_verified", filter.IsVerified)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.UserModel
	err := query.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&users).Error
	return users, total, err
}

func applyBoolFilter(query *gorm.DB, column, value string) *gorm.DB {
	switch strings.ToLower(value) {
	case "true":
		return query.Where(column+" = ?", true)
	case "false":
		return query.Where(column+" = ?", false)
	case "null":
		return query.Where(column + " IS NULL")
	}
	return query
}

func (s *UserService) GetUser(userID int) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userNotFound()
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies the explicit per-field update command; only listed
// fields may change.
func (s *UserService) UpdateUser(userID int, in models.UserUpdateRequest, actorID int) (*models.UserModel, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.TitleID != nil {
		updates["title_id"] = *in.TitleID
	}
	if in.FirstName != nil {
		updates["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		updates["last_name"] = *in.LastName
	}
	if in.OrganizationTypeID != nil {
		updates["organization_type_id"] = *in.OrganizationTypeID
	}
	if in.OrganizationName != nil {
		updates["organization_name"] = *in.OrganizationName
	}
	if in.Department != nil {
		updates["department"] = *in.Department
	}
	if in.JobTitle != nil {
		updates["job_title"] = *in.JobTitle
	}
	if in.CityID != nil {
		updates["city_id"] = *in.CityID
	}
	if in.CountryID != nil {
		updates["country_id"] = *in.CountryID
	}
	if in.PhoneNumber != nil {
		updates["phone_number"] = *in.PhoneNumber
	}
	if in.DateOfBirth != nil {
		updates["date_of_birth"] = *in.DateOfBirth
	}
	if in.UserType != nil {
		updates["user_type"] = *in.UserType
	}
	updates["updated_at"] = time.Now().UTC()
	updates["updated_by_user_id"] = actorID

	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetUser(userID)
}

// SetActive toggles the account's active flag.
func (s *UserService) SetActive(userID int, active bool, actorID int) error {
	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}
	return s.db.Model(user).Updates(map[string]interface{}{
		"is_active":          active,
		"updated_at":         time.Now().UTC(),
		"updated_by_user_id": actorID,
	}).Error
}

// Approve activates the account and records its email domain as accepted so
// future registrations from the same organization auto-approve.
func (s *UserService) Approve(userID, actorID int) error {
	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(user).Updates(map[string]interface{}{
			"is_approved":        true,
			"is_active":          true,
			"updated_at":         time.Now().UTC(),
			"updated_by_user_id": actorID,
		}).Error; err != nil {
			return err
		}
		return upsertDomain(tx, ExtractEmailDomain(user.Email), "accept")
	})
	return err
}

// Refuse deactivates and soft-deletes the account, marks its domain refused
// and notifies the address.
func (s *UserService) Refuse(userID, actorID int) error {
	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}

	domain := ExtractEmailDomain(user.Email)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(user).Updates(map[string]interface{}{
			"is_approved":        false,
			"is_active":          false,
			"is_deleted":         true,
			"updated_at":         time.Now().UTC(),
			"updated_by_user_id": actorID,
		}).Error; err != nil {
			return err
		}
		return upsertDomain(tx, domain, "refused")
	})
	if err != nil {
		return err
	}

	if domain != "" {
		s.notifyDomainRefused(user.Email, domain)
	}
	return nil
}

func upsertDomain(tx *gorm.DB, domain, domainType string) error {
	if domain == "" {
		return nil
	}
	var record models.DomainModel
	if err := tx.Where("LOWER(domain) = ?", domain).First(&record).Error; err == nil {
		return tx.Model(&record).Update("type", domainType).Error
	}
	return tx.Create(&models.DomainModel{Domain: domain, Type: domainType}).Error
}

// Delete soft-deletes the account.
func (s *UserService) Delete(userID int) error {
	var user models.UserModel
	if err := s.db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return userNotFound()
	}
	return s.db.Model(&user).Update("is_deleted", true).Error
}

// UploadPhoto stores a profile photo and records its relative path.
func (s *UserService) UploadPhoto(userID int, file *multipart.FileHeader, actorID int) (string, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return "", err
	}

	rel, err := s.store.Save(file, "profile_images")
	if err != nil {
		return "", err
	}

	err = s.db.Model(user).Updates(map[string]interface{}{
		"photo_path":         rel,
		"updated_at":         time.Now().UTC(),
		"updated_by_user_id": actorID,
	}).Error
	if err != nil {
		return "", err
	}
	return rel, nil
}

// RegistrationLookups returns the dropdown data for the registration form.
func (s *UserService) RegistrationLookups() (map[string]interface{}, error) {
	var roles []models.RoleModel
	if err := s.db.Where("id <> ?", middleware.AdminRoleID).Find(&roles).Error; err != nil {
		return nil, err
	}
	var titles []models.UserTitleModel
	if err := s.db.Find(&titles).Error; err != nil {
		return nil, err
	}
	var organizations []models.OrganizationTypeModel
	if err := s.db.Find(&organizations).Error; err != nil {
		return nil, err
	}
	var countries []models.CountryModel
	if err := s.db.Find(&countries).Error; err != nil {
		return nil, err
	}
	var cities []models.CityModel
	if err := s.db.Find(&cities).Error; err != nil {
		return nil, err
	}
	var domains []models.DomainModel
	if err := s.db.Order("type ASC, domain ASC").Find(&domains).Error; err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"roles":         roles,
		"titles":        titles,
		"Organizations": organizations,
		"countries":     countries,
		"cities":        cities,
		"domains":       domains,
	}, nil
}

func userNotFound() *utils.AppError {
	return utils.NewAppError(utils.CodeUserNotFound, "User not found", "هذا المستخدم غير موجود")
}

func invalidCredentials() *utils.AppError {
	return utils.NewAppError(utils.CodeInvalidCredentials,
		"Invalid email or password", "البريد الإلكتروني أو كلمة المرور غير صحيحة")
}
