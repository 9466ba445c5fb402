package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRequestService(t *testing.T) (*RequestService, *recordingNotifier, *models.UserModel) {
	t.Helper()

	db := setupTestDB(t)
	seedRequestLookups(t, db)
	user := seedUser(t, db, "requester@example.com")
	notifier := &recordingNotifier{}
	store := utils.NewAttachmentStore(t.TempDir())
	return NewRequestService(db, store, notifier, "support@ngd.gov.sa"), notifier, user
}

func TestCreateRequestDataRequest(t *testing.T) {
	service, notifier, user := newRequestService(t)

	subject := "Riyadh Block A"
	body := "Need parcel boundaries for Riyadh Block A"
	name := "Riyadh Block A"
	topLeft := "24.81,46.60"
	bottomRight := "24.70,46.75"
	projection := 2

	result, err := service.CreateRequest(CreateRequestInput{
		UserID:                user.UserID,
		CategoryID:            models.CategoryDataRequestID,
		Subject:               &subject,
		Body:                  &body,
		ProspectiveName:       &name,
		CoordinateTopLeft:     &topLeft,
		CoordinateBottomRight: &bottomRight,
		ProjectionID:          &projection,
		RequestInformationIDs: "1,2,3",
		FormatIDs:             "4,5",
	})
	require.NoError(t, err)

	expectedNumber := fmt.Sprintf("RQ-%s-0001", time.Now().UTC().Format("20060102"))
	assert.Equal(t, expectedNumber, result.RequestNumber)

	details, err := service.GetRequestDetails(result.RequestID)
	require.NoError(t, err)
	assert.Equal(t, expectedNumber, details.Number)
	assert.Equal(t, "Submitted", details.Status.NameEn)
	assert.Equal(t, "Data Request", details.Type.NameEn)
	require.NotNil(t, details.RequestData)
	assert.Equal(t, "24.81,46.60", details.RequestData.Coordinates["top_left"])
	assert.Equal(t, "24.70,46.75", details.RequestData.Coordinates["bottom_right"])
	require.NotNil(t, details.RequestData.Projection)
	assert.Equal(t, "Web Mercator", *details.RequestData.Projection)
	assert.Len(t, details.RequestInformation, 3)
	assert.Len(t, details.Formats, 2)

	// One summary for the staff inbox, one acknowledgement for the requester.
	emails := notifier.sent()
	require.Len(t, emails, 2)
	assert.Equal(t, "support@ngd.gov.sa", emails[0].To)
	assert.Contains(t, emails[0].HTMLBody, expectedNumber)
	assert.Equal(t, user.Email, emails[1].To)
}

func TestCreateRequestNumberSequence(t *testing.T) {
	service, _, user := newRequestService(t)

	datePart := time.Now().UTC().Format("20060102")
	for i := 1; i <= 3; i++ {
		result, err := service.CreateRequest(CreateRequestInput{
			UserID:     user.UserID,
			CategoryID: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("RQ-%s-%04d", datePart, i), result.RequestNumber)
	}
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKey(errors.New("UNIQUE constraint failed: request_models.request_number")))
	assert.True(t, isDuplicateKey(errors.New("duplicate key value violates unique constraint")))
	assert.False(t, isDuplicateKey(errors.New("connection refused")))
}

func TestCreateRequestNumberCollisionRollsBack(t *testing.T) {
	service, _, user := newRequestService(t)

	// Occupy the number the next creation will derive from max(id)+1. The
	// bounded retry recomputes the same number each attempt, so creation must
	// give up with a duplicate-key error instead of looping.
	taken := models.RequestModel{
		RequestNumber: fmt.Sprintf("RQ-%s-0002", time.Now().UTC().Format("20060102")),
		UserID:        user.UserID,
		CategoryID:    1,
		StatusID:      models.StatusSubmittedID,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, service.db.Create(&taken).Error)

	_, err := service.CreateRequest(CreateRequestInput{
		UserID:                user.UserID,
		CategoryID:            1,
		RequestInformationIDs: "1,2",
	})
	require.Error(t, err)
	assert.True(t, isDuplicateKey(err))

	// The failed attempts leave no partial rows behind.
	var requests int64
	service.db.Model(&models.RequestModel{}).Count(&requests)
	assert.Equal(t, int64(1), requests)
	var links int64
	service.db.Model(&models.RequestRequestInformationModel{}).Count(&links)
	assert.Zero(t, links)
}

func TestCreateRequestInvalidProjection(t *testing.T) {
	service, _, user := newRequestService(t)

	bad := 999
	_, err := service.CreateRequest(CreateRequestInput{
		UserID:       user.UserID,
		CategoryID:   models.CategoryDataRequestID,
		ProjectionID: &bad,
	})
	require.Error(t, err)

	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeInvalidReference, appErr.Code)

	// Validation failure must leave nothing behind.
	var count int64
	service.db.Model(&models.RequestModel{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateRequestProjectionIgnoredOutsideDataRequest(t *testing.T) {
	service, _, user := newRequestService(t)

	bad := 999
	result, err := service.CreateRequest(CreateRequestInput{
		UserID:       user.UserID,
		CategoryID:   1,
		ProjectionID: &bad,
	})
	require.NoError(t, err)

	details, err := service.GetRequestDetails(result.RequestID)
	require.NoError(t, err)
	assert.Nil(t, details.RequestData)
}

func TestCreateRequestZeroProjectionMeansNone(t *testing.T) {
	service, _, user := newRequestService(t)

	zero := 0
	result, err := service.CreateRequest(CreateRequestInput{
		UserID:       user.UserID,
		CategoryID:   models.CategoryDataRequestID,
		ProjectionID: &zero,
	})
	require.NoError(t, err)

	var data models.RequestDataModel
	require.NoError(t, service.db.Where("request_id = ?", result.RequestID).First(&data).Error)
	assert.Nil(t, data.ProjectionID)
}

func TestParseIDListSkipsMalformedTokens(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, ParseIDList("1, 2 ,3"))
	assert.Equal(t, []int{4, 5}, ParseIDList("4,abc,5,,1.5"))
	assert.Nil(t, ParseIDList(""))
	assert.Nil(t, ParseIDList("x,y,z"))
}

func TestCreateRequestKeepsDuplicateTags(t *testing.T) {
	service, _, user := newRequestService(t)

	result, err := service.CreateRequest(CreateRequestInput{
		UserID:                user.UserID,
		CategoryID:            1,
		RequestInformationIDs: "1,1,2",
	})
	require.NoError(t, err)

	var count int64
	service.db.Model(&models.RequestRequestInformationModel{}).
		Where("request_id = ?", result.RequestID).Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestAssignRole(t *testing.T) {
	service, _, user := newRequestService(t)

	result, err := service.CreateRequest(CreateRequestInput{UserID: user.UserID, CategoryID: 1})
	require.NoError(t, err)

	err = service.AssignRole(99999, 3)
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeRequestNotFound, appErr.Code)

	require.NoError(t, service.AssignRole(result.RequestID, 3))

	var request models.RequestModel
	require.NoError(t, service.db.First(&request, result.RequestID).Error)
	require.NotNil(t, request.AssignedRoleID)
	assert.Equal(t, 3, *request.AssignedRoleID)
	firstUpdate := request.UpdatedAt

	// Re-assigning the same role is a no-op and must not touch the row.
	require.NoError(t, service.AssignRole(result.RequestID, 3))
	require.NoError(t, service.db.First(&request, result.RequestID).Error)
	assert.Equal(t, firstUpdate, request.UpdatedAt)
}

func TestReplyMovesStatusAndNotifiesOwner(t *testing.T) {
	service, notifier, user := newRequestService(t)

	created, err := service.CreateRequest(CreateRequestInput{UserID: user.UserID, CategoryID: 1})
	require.NoError(t, err)

	body := "Your data is ready for download"
	result, err := service.Reply(ReplyInput{
		RequestID: created.RequestID,
		StatusID:  4,
		Body:      &body,
		Responder: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.NewStatus)

	var request models.RequestModel
	require.NoError(t, service.db.First(&request, created.RequestID).Error)
	assert.Equal(t, 4, request.StatusID)

	emails := notifier.sent()
	last := emails[len(emails)-1]
	assert.Equal(t, user.Email, last.To)
	assert.Contains(t, last.HTMLBody, body)
}

func TestReplyOwnerEmailMissingKeepsMutation(t *testing.T) {
	service, _, _ := newRequestService(t)

	orphan := seedUser(t, service.db, "")
	created, err := service.CreateRequest(CreateRequestInput{UserID: orphan.UserID, CategoryID: 1})
	require.NoError(t, err)

	body := "Reply that cannot be delivered"
	_, err = service.Reply(ReplyInput{
		RequestID: created.RequestID,
		StatusID:  2,
		Body:      &body,
		Responder: 42,
	})
	require.Error(t, err)

	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.CodeOwnerEmailMissing, appErr.Code)

	// The reply and status move stay committed despite the error.
	details, detailsErr := service.GetRequestDetails(created.RequestID)
	require.NoError(t, detailsErr)
	require.Len(t, details.Replies, 1)
	assert.Equal(t, "Under Review", details.Status.NameEn)
}

func TestListRequestsPagination(t *testing.T) {
	service, _, user := newRequestService(t)

	for i := 0; i < 5; i++ {
		_, err := service.CreateRequest(CreateRequestInput{UserID: user.UserID, CategoryID: 1})
		require.NoError(t, err)
	}

	page, err := service.ListRequests(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 2, page.Count)
	assert.Len(t, page.Requests, 2)
	assert.Equal(t, user.Email, *page.Requests[0].UserEmail)

	page3, err := service.ListRequests(3, 2)
	require.NoError(t, err)
	assert.Len(t, page3.Requests, 1)
}

func TestAssignedRequestsFiltersByRole(t *testing.T) {
	service, _, user := newRequestService(t)

	first, err := service.CreateRequest(CreateRequestInput{UserID: user.UserID, CategoryID: 1})
	require.NoError(t, err)
	second, err := service.CreateRequest(CreateRequestInput{UserID: user.UserID, CategoryID: 1})
	require.NoError(t, err)

	require.NoError(t, service.AssignRole(first.RequestID, 3))
	require.NoError(t, service.AssignRole(second.RequestID, 4))

	rows, err := service.AssignedRequests(3)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, first.RequestNumber, rows[0].Number)
}
