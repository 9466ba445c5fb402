package dtos

import (
	"time"

	"github.com/NGD-Portal/NGD-Backend/src/models"
)

// RequestLookupsDTO bundles every reference table the request form needs.
type RequestLookupsDTO struct {
	Categories         []models.CategoryModel           `json:"categories"`
	Projections        []models.ProjectionModel         `json:"projections"`
	Formats            []models.FormatModel             `json:"formats"`
	RequestInformation []models.RequestInformationModel `json:"request_information"`
	Statuses           []models.StatusModel             `json:"statuses"`
	ComplaintScreens   []models.ComplaintScreenModel    `json:"complaint_screens"`
}

type CreateRequestResultDTO struct {
	RequestID     int     `json:"request_id"`
	RequestNumber string  `json:"request_number"`
	AttachPath    *string `json:"AttachPath"`
}

// RequestListItemDTO is one row of the admin listing, enriched with resolved
// bilingual labels and the owner's email.
type RequestListItemDTO struct {
	ID             int       `json:"id"`
	Number         string    `json:"number"`
	CreatedAt      time.Time `json:"created_at"`
	StatusNameEn   *string   `json:"status_name_en"`
	StatusNameAr   *string   `json:"status_name_ar"`
	TypeNameEn     *string   `json:"type_name_en"`
	TypeNameAr     *string   `json:"type_name_ar"`
	UserEmail      *string   `json:"user_email"`
	Subject        *string   `json:"subject"`
	Body           *string   `json:"body"`
	AssignedRoleID *int      `json:"AssignedRoleId"`
}

type RequestPageDTO struct {
	Page     int                  `json:"page"`
	Limit    int                  `json:"limit"`
	Count    int                  `json:"count"`
	Total    int64                `json:"total"`
	Requests []RequestListItemDTO `json:"requests"`
}

type BilingualLabelDTO struct {
	NameAr string `json:"Name_ar"`
	NameEn string `json:"Name_En"`
}

type TagLabelDTO struct {
	Name   string `json:"name"`
	NameAr string `json:"Name_Ar,omitempty"`
}

type ReplyDTO struct {
	ID              int       `json:"id"`
	Subject         *string   `json:"subject"`
	Body            *string   `json:"body"`
	AttachmentPath  *string   `json:"attachment_path"`
	CreatedAt       time.Time `json:"created_at"`
	CreatedByUserID *int      `json:"created_by"`
	ResponderUserID int       `json:"responder_user_id"`
}

type RequestDataDTO struct {
	ProspectiveName     *string           `json:"prospective_name"`
	Coordinates         map[string]string `json:"coordinates"`
	Projection          *string           `json:"projection"`
	OtherSpecification  *string           `json:"other_specification"`
	OtherFormat         *string           `json:"other_format"`
	IntendedPurpose     *string           `json:"intended_purpose"`
	RequirementsDetails *string           `json:"requirements_details"`
	CreatedAt           time.Time         `json:"created_at"`
}

type RequestDetailsDTO struct {
	ID                 int                `json:"id"`
	Number             string             `json:"number"`
	Status             *BilingualLabelDTO `json:"status"`
	Type               *BilingualLabelDTO `json:"type"`
	UserEmail          *string            `json:"user_email"`
	Subject            *string            `json:"subject"`
	Body               *string            `json:"body"`
	ComplaintScreen    *BilingualLabelDTO `json:"complaint_screen"`
	AssignedRoleID     *int               `json:"assigned_role_id"`
	AttachPath         *string            `json:"attach_path"`
	CreatedAt          time.Time          `json:"created_at"`
	CreatedByUserID    *int               `json:"created_by"`
	UpdatedAt          *time.Time         `json:"updated_at"`
	UpdatedByUserID    *int               `json:"updated_by"`
	RequestInformation []TagLabelDTO      `json:"request_information"`
	Formats            []TagLabelDTO      `json:"formats"`
	Replies            []ReplyDTO         `json:"replies"`
	RequestData        *RequestDataDTO    `json:"request_data,omitempty"`
}

type ReplyResultDTO struct {
	ReplyID   int `json:"reply_id"`
	NewStatus int `json:"new_status"`
	RequestID int `json:"request_id"`
}
