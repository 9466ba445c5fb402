package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/dtos"
	"github.com/NGD-Portal/NGD-Backend/src/models"
	"github.com/NGD-Portal/NGD-Backend/src/utils"
	"gorm.io/gorm"
)

// requestNumberRetries bounds the unique-constraint retry loop for number
// generation under concurrent creations.
const requestNumberRetries = 3

type RequestService struct {
	db          *gorm.DB
	store       *utils.AttachmentStore
	notifier    utils.Notifier
	systemEmail string
}

func NewRequestService(db *gorm.DB, store *utils.AttachmentStore, notifier utils.Notifier, systemEmail string) *RequestService {
	return &RequestService{db: db, store: store, notifier: notifier, systemEmail: systemEmail}
}

// Lookups returns every reference table the request form consumes.
func (s *RequestService) Lookups() (*dtos.RequestLookupsDTO, error) {
	var out dtos.RequestLookupsDTO
	if err := s.db.Where("is_deleted = ?", false).Find(&out.Categories).Error; err != nil {
		return nil, err
	}
	if err := s.db.Find(&out.Projections).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("is_deleted = ?", false).Find(&out.Formats).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("is_deleted = ?", false).Find(&out.RequestInformation).Error; err != nil {
		return nil, err
	}
	if err := s.db.Find(&out.Statuses).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("is_deleted = ?", false).Find(&out.ComplaintScreens).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

type CreateRequestInput struct {
	UserID                int
	CategoryID            int
	ComplaintScreenID     *int
	Subject               *string
	Body                  *string
	ProspectiveName       *string
	CoordinateTopLeft     *string
	CoordinateBottomRight *string
	ProjectionID          *int
	OtherSpecification    *string
	OtherFormat           *string
	IntendedPurpose       *string
	RequirementsDetails   *string
	RequestInformationIDs string
	FormatIDs             string
	Attachment            *multipart.FileHeader
}

// CreateRequest validates the projection reference, persists the attachment,
// then creates the request, its data-request extension and tag associations
// in one transaction. Both notifications are queued only after the commit.
func (s *RequestService) CreateRequest(in CreateRequestInput) (*dtos.CreateRequestResultDTO, error) {
	// Projection only matters for the data-request category. Zero or absent
	// means "no projection"; anything else must resolve.
	projectionID := in.ProjectionID
	if projectionID != nil && *projectionID == 0 {
		projectionID = nil
	}
	if in.CategoryID == models.CategoryDataRequestID && projectionID != nil {
		var projection models.ProjectionModel
		if err := s.db.First(&projection, *projectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, utils.InvalidReferenceError("Invalid ProjectionId", "معرف الإسقاط غير صالح")
			}
			return nil, err
		}
	}

	// The attachment goes to disk first so a storage failure creates nothing.
	var attachPath *string
	if in.Attachment != nil {
		rel, err := s.store.Save(in.Attachment, "requests")
		if err != nil {
			return nil, err
		}
		attachPath = &rel
	}

	now := time.Now().UTC()
	request := models.RequestModel{
		UserID:            in.UserID,
		CategoryID:        in.CategoryID,
		ComplaintScreenID: in.ComplaintScreenID,
		Subject:           in.Subject,
		Body:              in.Body,
		AttachPath:        attachPath,
		StatusID:          models.StatusSubmittedID,
		CreatedAt:         now,
		CreatedByUserID:   &in.UserID,
	}

	var createErr error
	for attempt := 0; attempt < requestNumberRetries; attempt++ {
		request.ID = 0
		createErr = s.db.Transaction(func(tx *gorm.DB) error {
			number, err := nextRequestNumber(tx, now)
			if err != nil {
				return err
			}
			request.RequestNumber = number

			if err := tx.Create(&request).Error; err != nil {
				return err
			}

			if in.CategoryID == models.CategoryDataRequestID {
				data := models.RequestDataModel{
					RequestID:             request.ID,
					ProspectiveName:       in.ProspectiveName,
					CoordinateTopLeft:     in.CoordinateTopLeft,
					CoordinateBottomRight: in.CoordinateBottomRight,
					ProjectionID:          projectionID,
					OtherSpecification:    in.OtherSpecification,
					OtherFormat:           in.OtherFormat,
					IntendedPurpose:       in.IntendedPurpose,
					RequirementsDetails:   in.RequirementsDetails,
					CreatedAt:             now,
				}
				if err := tx.Create(&data).Error; err != nil {
					return err
				}
			}

			for _, infoID := range ParseIDList(in.RequestInformationIDs) {
				link := models.RequestRequestInformationModel{RequestID: request.ID, RequestInformationID: infoID}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
			for _, formatID := range ParseIDList(in.FormatIDs) {
				link := models.RequestFormatModel{RequestID: request.ID, FormatID: formatID}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}

			return nil
		})

		if createErr == nil || !isDuplicateKey(createErr) {
			break
		}
	}
	if createErr != nil {
		// The request never made it to the database; drop the orphaned file.
		if attachPath != nil {
			s.store.Remove(*attachPath)
		}
		return nil, createErr
	}

	s.notifyRequestCreated(&request)

	return &dtos.CreateRequestResultDTO{
		RequestID:     request.ID,
		RequestNumber: request.RequestNumber,
		AttachPath:    attachPath,
	}, nil
}

// nextRequestNumber derives the human-readable number from the highest
// existing id and the creation date. The unique index on request_number plus
// the caller's retry loop serialize concurrent creations.
func nextRequestNumber(tx *gorm.DB, createdAt time.Time) (string, error) {
	var last models.RequestModel
	next := 1
	err := tx.Order("id DESC").Select("id").First(&last).Error
	if err == nil {
		next = last.ID + 1
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	return fmt.Sprintf("RQ-%s-%04d", createdAt.Format("20060102"), next), nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}

// ParseIDList splits a comma-separated id list, silently dropping non-numeric
// tokens. Duplicates are preserved.
func ParseIDList(value string) []int {
	if value == "" {
		return nil
	}
	var ids []int
	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		numeric := true
		for _, r := range token {
			if r < '0' || r > '9' {
				numeric = false
				break
			}
		}
		if !numeric {
			continue
		}
		var id int
		fmt.Sscanf(token, "%d", &id)
		ids = append(ids, id)
	}
	return ids
}

func (s *RequestService) notifyRequestCreated(request *models.RequestModel) {
	var user models.UserModel
	if err := s.db.First(&user, request.UserID).Error; err != nil {
		return
	}

	categoryName := "Unknown Category"
	var category models.CategoryModel
	if err := s.db.First(&category, request.CategoryID).Error; err == nil {
		categoryName = category.Name
	}

	subject := derefOr(request.Subject, "N/A")
	body := derefOr(request.Body, "N/A")

	adminBody := fmt.Sprintf(`
	<div style='font-family:Arial,sans-serif;color:#1f2937;max-width:620px;margin:auto;'>
		<h2 style='color:#2563eb;'>New Request Received</h2>
		<p>A new request has been submitted.</p>
		<div style='background:#f3f4f6;padding:16px;border-radius:8px;'>
			<p><strong>User:</strong> %s (%s)</p>
			<p><strong>Category:</strong> %s</p>
			<p><strong>Request Number:</strong> %s</p>
			<p><strong>Subject:</strong> %s</p>
			<p><strong>Body:</strong> %s</p>
		</div>
	</div>`, user.FirstName, user.Email, categoryName, request.RequestNumber, subject, body)

	adminMail := utils.Email{
		To:       s.systemEmail,
		Subject:  fmt.Sprintf("New Request %s - %s", request.RequestNumber, categoryName),
		HTMLBody: adminBody,
	}
	if request.AttachPath != nil {
		adminMail.AttachmentPath = *request.AttachPath
	}
	s.notifier.Enqueue(adminMail)

	userBody := fmt.Sprintf(`
	<div style='font-family:Arial,sans-serif;color:#1f2937;max-width:520px;margin:auto;'>
		<h2 style='color:#2563eb;'>Your request has been received</h2>
		<p>Hello %s, we received your request and our team will contact you soon.</p>
		<div style='background:#f3f4f6;padding:16px;border-radius:8px;'>
			<p><strong>Request Number:</strong> %s</p>
			<p><strong>Category:</strong> %s</p>
		</div>
	</div>`, user.FirstName, request.RequestNumber, categoryName)

	s.notifier.Enqueue(utils.Email{
		To:       user.Email,
		Subject:  fmt.Sprintf("NGD - Request %s received", request.RequestNumber),
		HTMLBody: userBody,
	})
}

// GetRequestDetails resolves the request with its bilingual labels, tag
// associations, active replies and the data-request extension.
func (s *RequestService) GetRequestDetails(requestID int) (*dtos.RequestDetailsDTO, error) {
	var request models.RequestModel
	if err := s.db.First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, requestNotFound()
		}
		return nil, err
	}

	details := dtos.RequestDetailsDTO{
		ID:                 request.ID,
		Number:             request.RequestNumber,
		Subject:            request.Subject,
		Body:               request.Body,
		AssignedRoleID:     request.AssignedRoleID,
		AttachPath:         request.AttachPath,
		CreatedAt:          request.CreatedAt,
		CreatedByUserID:    request.CreatedByUserID,
		UpdatedAt:          request.UpdatedAt,
		UpdatedByUserID:    request.UpdatedByUserID,
		RequestInformation: []dtos.TagLabelDTO{},
		Formats:            []dtos.TagLabelDTO{},
		Replies:            []dtos.ReplyDTO{},
	}

	var user models.UserModel
	if err := s.db.First(&user, request.UserID).Error; err == nil {
		details.UserEmail = &user.Email
	}

	var status models.StatusModel
	if err := s.db.First(&status, request.StatusID).Error; err == nil {
		details.Status = &dtos.BilingualLabelDTO{NameEn: status.Name, NameAr: status.NameAr}
	}

	var category models.CategoryModel
	if err := s.db.First(&category, request.CategoryID).Error; err == nil {
		details.Type = &dtos.BilingualLabelDTO{NameEn: category.Name, NameAr: category.NameAr}
	}

	if request.ComplaintScreenID != nil {
		var screen models.ComplaintScreenModel
		if err := s.db.First(&screen, *request.ComplaintScreenID).Error; err == nil {
			details.ComplaintScreen = &dtos.BilingualLabelDTO{NameEn: screen.Name, NameAr: screen.NameAr}
		}
	}

	var info []models.RequestInformationModel
	s.db.Joins("JOIN request_request_information_models l ON l.request_information_id = request_information_models.id").
		Where("l.request_id = ?", request.ID).
		Find(&info)
	for _, item := range info {
		details.RequestInformation = append(details.RequestInformation, dtos.TagLabelDTO{Name: item.Name, NameAr: item.NameAr})
	}

	var formats []models.FormatModel
	s.db.Joins("JOIN request_format_models l ON l.format_id = format_models.id").
		Where("l.request_id = ?", request.ID).
		Find(&formats)
	for _, format := range formats {
		details.Formats = append(details.Formats, dtos.TagLabelDTO{Name: format.Name})
	}

	var replies []models.ReplyModel
	s.db.Where("request_id = ? AND is_deleted = ?", request.ID, false).Order("id ASC").Find(&replies)
	for _, reply := range replies {
		details.Replies = append(details.Replies, dtos.ReplyDTO{
			ID:              reply.ID,
			Subject:         reply.Subject,
			Body:            reply.Body,
			AttachmentPath:  reply.AttachmentPath,
			CreatedAt:       reply.CreatedAt,
			CreatedByUserID: reply.CreatedByUserID,
			ResponderUserID: reply.ResponderUserID,
		})
	}

	if request.CategoryID == models.CategoryDataRequestID {
		var data models.RequestDataModel
		if err := s.db.Where("request_id = ?", request.ID).First(&data).Error; err == nil {
			dataDTO := dtos.RequestDataDTO{
				ProspectiveName:     data.ProspectiveName,
				Coordinates:         map[string]string{},
				OtherSpecification:  data.OtherSpecification,
				OtherFormat:         data.OtherFormat,
				IntendedPurpose:     data.IntendedPurpose,
				RequirementsDetails: data.RequirementsDetails,
				CreatedAt:           data.CreatedAt,
			}
			if data.CoordinateTopLeft != nil {
				dataDTO.Coordinates["top_left"] = *data.CoordinateTopLeft
			}
			if data.CoordinateBottomRight != nil {
				dataDTO.Coordinates["bottom_right"] = *data.CoordinateBottomRight
			}
			if data.ProjectionID != nil {
				var projection models.ProjectionModel
				if err := s.db.First(&projection, *data.ProjectionID).Error; err == nil {
					dataDTO.Projection = &projection.Name
				}
			}
			details.RequestData = &dataDTO
		}
	}

	return &details, nil
}

// AssignRole sets the request's handling role. Re-assigning the same role is
// a true no-op: nothing is written and audit fields stay untouched.
func (s *RequestService) AssignRole(requestID, roleID int) error {
	var request models.RequestModel
	if err := s.db.First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return requestNotFound()
		}
		return err
	}

	if request.AssignedRoleID != nil && *request.AssignedRoleID == roleID {
		return nil
	}

	return s.db.Model(&request).Update("assigned_role_id", roleID).Error
}

type ReplyInput struct {
	RequestID  int
	StatusID   int
	Subject    *string
	Body       *string
	Attachment *multipart.FileHeader
	Responder  int
}

// Reply records a staff response and unconditionally moves the request to the
// supplied status; no transition graph is enforced. When the owner has no
// email on file the mutation stays committed and the caller gets the
// partial-success USER_EMAIL_NOT_FOUND error.
func (s *RequestService) Reply(in ReplyInput) (*dtos.ReplyResultDTO, error) {
	var request models.RequestModel
	if err := s.db.First(&request, in.RequestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, requestNotFound()
		}
		return nil, err
	}

	var attachmentPath *string
	if in.Attachment != nil {
		rel, err := s.store.Save(in.Attachment, "requests/reply")
		if err != nil {
			return nil, err
		}
		attachmentPath = &rel
	}

	now := time.Now().UTC()
	reply := models.ReplyModel{
		RequestID:       in.RequestID,
		Subject:         in.Subject,
		Body:            in.Body,
		AttachmentPath:  attachmentPath,
		ResponderUserID: in.Responder,
		CreatedAt:       now,
		CreatedByUserID: &in.Responder,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reply).Error; err != nil {
			return err
		}
		return tx.Model(&models.RequestModel{}).Where("id = ?", request.ID).Updates(map[string]interface{}{
			"status_id":          in.StatusID,
			"updated_at":         now,
			"updated_by_user_id": in.Responder,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	var owner models.UserModel
	if err := s.db.First(&owner, request.UserID).Error; err != nil || owner.Email == "" {
		return nil, utils.NewAppError(utils.CodeOwnerEmailMissing,
			"Request owner email not found", "بريد صاحب الطلب غير موجود")
	}

	mail := utils.Email{
		To:      owner.Email,
		Subject: fmt.Sprintf("NGD - Response to your request %s", request.RequestNumber),
		HTMLBody: fmt.Sprintf(`
	<h4>Dear %s,</h4>
	<p>Your request <b>%s</b> has received a reply:</p>
	<p>%s</p>
	<p>Thank you, NGD Team</p>`, owner.FirstName, request.RequestNumber, derefOr(in.Body, "No message provided")),
	}
	if attachmentPath != nil {
		mail.AttachmentPath = *attachmentPath
	}
	s.notifier.Enqueue(mail)

	return &dtos.ReplyResultDTO{ReplyID: reply.ID, NewStatus: in.StatusID, RequestID: request.ID}, nil
}

// ListRequests pages through every request, newest first.
func (s *RequestService) ListRequests(page, limit int) (*dtos.RequestPageDTO, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 25
	}
	if limit > 200 {
		limit = 200
	}

	rows, err := s.listRows(s.db, page, limit)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.Model(&models.RequestModel{}).Count(&total).Error; err != nil {
		return nil, err
	}

	return &dtos.RequestPageDTO{
		Page:     page,
		Limit:    limit,
		Count:    len(rows),
		Total:    total,
		Requests: rows,
	}, nil
}

// AssignedRequests is the caller's personal queue: every request whose
// assigned role matches their own.
func (s *RequestService) AssignedRequests(roleID int) ([]dtos.RequestListItemDTO, error) {
	return s.listRows(s.db.Where("request_models.assigned_role_id = ?", roleID), 1, 0)
}

func (s *RequestService) listRows(base *gorm.DB, page, limit int) ([]dtos.RequestListItemDTO, error) {
	rows := []dtos.RequestListItemDTO{}
	query := base.Table("request_models").
		Select(`request_models.id, request_models.request_number AS number,
			request_models.created_at, request_models.subject, request_models.body,
			request_models.assigned_role_id,
			status_models.name AS status_name_en, status_models.name_ar AS status_name_ar,
			category_models.name AS type_name_en, category_models.name_ar AS type_name_ar,
			user_models.email AS user_email`).
		Joins("LEFT JOIN status_models ON status_models.id = request_models.status_id").
		Joins("LEFT JOIN category_models ON category_models.id = request_models.category_id").
		Joins("LEFT JOIN user_models ON user_models.user_id = request_models.user_id").
		Order("request_models.created_at DESC")
	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func requestNotFound() *utils.AppError {
	return utils.NewAppError(utils.CodeRequestNotFound, "Request not found", "الطلب غير موجود")
}

func derefOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}
