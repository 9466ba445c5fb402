package services

import (
	"errors"
	"testing"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *recordingNotifier) {
	t.Helper()

	middleware.SetSecretKey("test-secret")
	notifier := &recordingNotifier{}
	store := utils.NewAttachmentStore(t.TempDir())
	service := NewUserService(setupTestDB(t), store, notifier, "https://portal.example.com/")
	return service, notifier
}

func registration(email string) models.RegisterRequest {
	return models.RegisterRequest{
		FirstName: "Nora",
		LastName:  "Hassan",
		Email:     email,
		Password:  "S3curePass!",
	}
}

func TestExtractEmailDomain(t *testing.T) {
	assert.Equal(t, "moc.gov.sa", ExtractEmailDomain("nora@MOC.gov.sa"))
	assert.Equal(t, "", ExtractEmailDomain("not-an-email"))
	assert.Equal(t, "", ExtractEmailDomain("trailing@"))
}

func TestRegisterSendsVerificationEmail(t *testing.T) {
	service, notifier := newUserService(t)

	user, err := service.Register(registration("nora@example.com"), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, user.RoleID)
	assert.False(t, user.IsApproved)
	assert.False(t, user.EmailVerified)

	emails := notifier.sent()
	require.Len(t, emails, 1)
	assert.Equal(t, "nora@example.com", emails[0].To)
	assert.Contains(t, emails[0].HTMLBody, "https://portal.example.com/auth/verify-email?token=")
}

func TestRegisterCannotClaimAdminRole(t *testing.T) {
	service, _ := newUserService(t)

	in := registration("sneaky@example.com")
	in.RoleID = middleware.AdminRoleID
	user, err := service.Register(in, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, user.RoleID)

	// Other staff roles are still accepted as submitted.
	in = registration("staff@example.com")
	in.RoleID = 3
	user, err = service.Register(in, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, user.RoleID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := newUserService(t)

	_, err := service.Register(registration("nora@example.com"), nil)
	require.NoError(t, err)

	_, err = service.Register(registration("nora@example.com"), nil)
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeEmailExists, appErr.Code)
}

func TestRegisterRefusedDomain(t *testing.T) {
	service, notifier := newUserService(t)
	require.NoError(t, service.db.Create(&models.DomainModel{Domain: "spam.example", Type: "refused"}).Error)

	_, err := service.Register(registration("bot@spam.example"), nil)
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeDomainRefused, appErr.Code)

	// The refusal notice is the only email; no account exists.
	emails := notifier.sent()
	require.Len(t, emails, 1)
	assert.Equal(t, "bot@spam.example", emails[0].To)
	var count int64
	service.db.Model(&models.UserModel{}).Count(&count)
	assert.Zero(t, count)
}

func TestRegisterAcceptedDomainAutoApproves(t *testing.T) {
	service, _ := newUserService(t)
	require.NoError(t, service.db.Create(&models.DomainModel{Domain: "moc.gov.sa", Type: "accept"}).Error)

	user, err := service.Register(registration("nora@MOC.gov.sa"), nil)
	require.NoError(t, err)
	assert.True(t, user.IsApproved)
	assert.True(t, user.IsActive)
}

func TestVerifyEmailTokenRoundTrip(t *testing.T) {
	service, _ := newUserService(t)

	user, err := service.Register(registration("nora@example.com"), nil)
	require.NoError(t, err)

	token, err := service.CreateVerificationToken(user.Email, 0)
	require.NoError(t, err)
	require.NoError(t, service.VerifyEmail(token))

	refreshed, err := service.GetUser(user.UserID)
	require.NoError(t, err)
	assert.True(t, refreshed.EmailVerified)

	// A second verification reports the email as already verified.
	err = service.VerifyEmail(token)
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeAlreadyVerified, appErr.Code)

	err = service.VerifyEmail("garbage")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeTokenInvalid, appErr.Code)
}

func TestAuthenticateGateOrder(t *testing.T) {
	service, _ := newUserService(t)

	user, err := service.Register(registration("nora@example.com"), nil)
	require.NoError(t, err)

	var appErr *utils.AppError

	_, err = service.Authenticate("nora@example.com", "wrong")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeInvalidCredentials, appErr.Code)

	_, err = service.Authenticate("nora@example.com", "S3curePass!")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeEmailNotVerified, appErr.Code)

	require.NoError(t, service.db.Model(user).Update("email_verified", true).Error)
	_, err = service.Authenticate("nora@example.com", "S3curePass!")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeAccountNotApproved, appErr.Code)

	require.NoError(t, service.db.Model(user).Update("is_approved", true).Error)
	_, err = service.Authenticate("nora@example.com", "S3curePass!")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeAccountInactive, appErr.Code)

	require.NoError(t, service.db.Model(user).Update("is_active", true).Error)
	token, err := service.Authenticate("nora@example.com", "S3curePass!")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestApproveRecordsAcceptedDomain(t *testing.T) {
	service, _ := newUserService(t)

	user, err := service.Register(registration("nora@moc.gov.sa"), nil)
	require.NoError(t, err)

	require.NoError(t, service.Approve(user.UserID, 1))

	refreshed, err := service.GetUser(user.UserID)
	require.NoError(t, err)
	assert.True(t, refreshed.IsApproved)
	assert.True(t, refreshed.IsActive)

	var domain models.DomainModel
	require.NoError(t, service.db.Where("domain = ?", "moc.gov.sa").First(&domain).Error)
	assert.Equal(t, "accept", domain.Type)

	// The same domain now auto-approves the next colleague.
	colleague, err := service.Register(registration("sami@moc.gov.sa"), nil)
	require.NoError(t, err)
	assert.True(t, colleague.IsApproved)
}

func TestRefuseSoftDeletesAndBlocksDomain(t *testing.T) {
	service, notifier := newUserService(t)

	user, err := service.Register(registration("bot@shady.example"), nil)
	require.NoError(t, err)

	require.NoError(t, service.Refuse(user.UserID, 1))

	var refreshed models.UserModel
	require.NoError(t, service.db.First(&refreshed, user.UserID).Error)
	assert.True(t, refreshed.IsDeleted)
	assert.False(t, refreshed.IsActive)

	var domain models.DomainModel
	require.NoError(t, service.db.Where("domain = ?", "shady.example").First(&domain).Error)
	assert.Equal(t, "refused", domain.Type)

	// Registration + refusal notice.
	assert.Len(t, notifier.sent(), 2)

	_, err = service.Register(registration("bot2@shady.example"), nil)
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeDomainRefused, appErr.Code)
}

func TestResetPasswordFlow(t *testing.T) {
	service, notifier := newUserService(t)

	user, err := service.Register(registration("nora@example.com"), nil)
	require.NoError(t, err)
	require.NoError(t, service.db.Model(user).Updates(map[string]interface{}{
		"email_verified": true, "is_approved": true, "is_active": true,
	}).Error)

	require.NoError(t, service.ForgotPassword("nora@example.com"))
	emails := notifier.sent()
	assert.Contains(t, emails[len(emails)-1].HTMLBody, "reset-password?token=")

	var appErr *utils.AppError
	err = service.ForgotPassword("nobody@example.com")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeEmailNotFound, appErr.Code)

	token, err := service.CreateVerificationToken("nora@example.com", 60)
	require.NoError(t, err)
	require.NoError(t, service.ResetPassword(token, "NewPass42!"))

	_, err = service.Authenticate("nora@example.com", "S3curePass!")
	require.Error(t, err)
	accessToken, err := service.Authenticate("nora@example.com", "NewPass42!")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
}

func TestListUsersFilters(t *testing.T) {
	service, _ := newUserService(t)

	alice, err := service.Register(registration("alice@example.com"), nil)
	require.NoError(t, err)
	_, err = service.Register(models.RegisterRequest{
		FirstName: "Badr", Email: "badr@example.com", Password: "x", RoleID: 3,
	}, nil)
	require.NoError(t, err)

	require.NoError(t, service.db.Model(alice).Update("is_active", true).Error)

	users, total, err := service.ListUsers(UserFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)

	users, total, err = service.ListUsers(UserFilter{Search: "badr"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "badr@example.com", users[0].Email)

	users, _, err = service.ListUsers(UserFilter{RoleID: 3})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Badr", users[0].FirstName)

	users, _, err = service.ListUsers(UserFilter{IsActive: "true"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice@example.com", users[0].Email)

	// Soft-deleted accounts disappear from every listing.
	require.NoError(t, service.Delete(alice.UserID))
	_, total, err = service.ListUsers(UserFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestUpdateUserChangesOnlyListedFields(t *testing.T) {
	service, _ := newUserService(t)

	user, err := service.Register(registration("nora@example.com"), nil)
	require.NoError(t, err)

	department := "GIS"
	updated, err := service.UpdateUser(user.UserID, models.UserUpdateRequest{Department: &department}, 1)
	require.NoError(t, err)
	require.NotNil(t, updated.Department)
	assert.Equal(t, "GIS", *updated.Department)
	assert.Equal(t, "Nora", updated.FirstName)
}
