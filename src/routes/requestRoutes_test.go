package routes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/middleware"
	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/services"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type discardNotifier struct{}

func (discardNotifier) Enqueue(utils.Email) {}

func setupRequestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	middleware.SetSecretKey("test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.StatusModel{},
		&models.CategoryModel{},
		&models.ProjectionModel{},
		&models.FormatModel{},
		&models.RequestInformationModel{},
		&models.ComplaintScreenModel{},
		&models.RequestModel{},
		&models.RequestDataModel{},
		&models.ReplyModel{},
		&models.RequestRequestInformationModel{},
		&models.RequestFormatModel{},
	))

	store := utils.NewAttachmentStore(t.TempDir())
	service := services.NewRequestService(db, store, discardNotifier{}, "support@ngd.gov.sa")

	router := gin.New()
	SetupRequestRoutes(router, service)
	return router, db
}

func bearer(t *testing.T, userID, roleID int) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id": userID,
		"role_id": roleID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(middleware.GetSecretKey()))
	require.NoError(t, err)
	return "Bearer " + token
}

func perform(router *gin.Engine, method, target, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func seedRequestRow(t *testing.T, db *gorm.DB) *models.RequestModel {
	t.Helper()

	user := models.UserModel{
		FirstName:    "Owner",
		Email:        "owner@example.com",
		PasswordHash: "x",
		RoleID:       2,
	}
	require.NoError(t, db.Create(&user).Error)

	request := models.RequestModel{
		RequestNumber: "RQ-20260829-0001",
		UserID:        user.UserID,
		CategoryID:    1,
		StatusID:      models.StatusSubmittedID,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, db.Create(&request).Error)
	return &request
}

func TestLookupsArePublic(t *testing.T) {
	router, _ := setupRequestRouter(t)

	recorder := perform(router, http.MethodGet, "/requests/lookups", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCreateRequestRequiresAuth(t *testing.T) {
	router, _ := setupRequestRouter(t)

	recorder := perform(router, http.MethodPost, "/requests/", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequestDetailsIsAdminOnly(t *testing.T) {
	router, db := setupRequestRouter(t)
	request := seedRequestRow(t, db)
	target := fmt.Sprintf("/admin/request-details/?request_id=%d", request.ID)

	recorder := perform(router, http.MethodGet, target, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// A logged-in citizen must not see other users' requests.
	recorder = perform(router, http.MethodGet, target, bearer(t, 99, 2))
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = perform(router, http.MethodGet, target, bearer(t, 1, middleware.AdminRoleID))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), request.RequestNumber)
}

func TestListAndAssignAreAdminOnly(t *testing.T) {
	router, _ := setupRequestRouter(t)

	recorder := perform(router, http.MethodGet, "/admin/requests", bearer(t, 99, 3))
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = perform(router, http.MethodPost, "/admin/assign_request?request_id=1&role_id=3", bearer(t, 99, 3))
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestAssignedRequestsAllowsStaffRoles(t *testing.T) {
	router, db := setupRequestRouter(t)
	request := seedRequestRow(t, db)
	staffRole := 3
	require.NoError(t, db.Model(request).Update("assigned_role_id", staffRole).Error)

	recorder := perform(router, http.MethodGet, "/admin/assigned_requests", bearer(t, 50, staffRole))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), request.RequestNumber)
}
