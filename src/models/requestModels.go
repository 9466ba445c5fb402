package models

import "time"

// Fixed reference ids seeded with the lookup tables.
const (
	StatusSubmittedID     = 7
	CategoryDataRequestID = 8
)

type RequestModel struct {
	ID                int        `json:"id" gorm:"primaryKey;autoIncrement"`
	RequestNumber     string     `json:"number" gorm:"type:varchar(30);uniqueIndex;not null"`
	UserID            int        `json:"user_id" gorm:"column:user_id;not null"`
	CategoryID        int        `json:"category_id" gorm:"column:category_id;not null"`
	ComplaintScreenID *int       `json:"complaint_screen_id" gorm:"column:complaint_screen_id"`
	Subject           *string    `json:"subject" gorm:"type:varchar(500)"`
	Body              *string    `json:"body" gorm:"type:text"`
	AttachPath        *string    `json:"attach_path" gorm:"type:varchar(255)"`
	StatusID          int        `json:"status_id" gorm:"column:status_id;not null"`
	AssignedRoleID    *int       `json:"assigned_role_id" gorm:"column:assigned_role_id"`
	CreatedAt         time.Time  `json:"created_at"`
	CreatedByUserID   *int       `json:"created_by"`
	UpdatedAt         *time.Time `json:"updated_at"`
	UpdatedByUserID   *int       `json:"updated_by"`
}

// RequestDataModel carries the geospatial extension fields, created with its
// parent request in the same transaction when the category is "data request".
type RequestDataModel struct {
	ID                    int       `json:"id" gorm:"primaryKey;autoIncrement"`
	RequestID             int       `json:"request_id" gorm:"column:request_id;uniqueIndex;not null"`
	ProspectiveName       *string   `json:"prospective_name" gorm:"type:varchar(255)"`
	CoordinateTopLeft     *string   `json:"coordinate_top_left" gorm:"type:varchar(100)"`
	CoordinateBottomRight *string   `json:"coordinate_bottom_right" gorm:"type:varchar(100)"`
	ProjectionID          *int      `json:"projection_id" gorm:"column:projection_id"`
	OtherSpecification    *string   `json:"other_specification" gorm:"type:text"`
	OtherFormat           *string   `json:"other_format" gorm:"type:varchar(255)"`
	IntendedPurpose       *string   `json:"intended_purpose" gorm:"type:text"`
	RequirementsDetails   *string   `json:"requirements_details" gorm:"type:text"`
	CreatedAt             time.Time `json:"created_at"`
}

type ReplyModel struct {
	ID              int       `json:"id" gorm:"primaryKey;autoIncrement"`
	RequestID       int       `json:"request_id" gorm:"column:request_id;not null"`
	Subject         *string   `json:"subject" gorm:"type:varchar(500)"`
	Body            *string   `json:"body" gorm:"type:text"`
	AttachmentPath  *string   `json:"attachment_path" gorm:"type:varchar(255)"`
	ResponderUserID int       `json:"responder_user_id" gorm:"column:responder_user_id"`
	IsDeleted       bool      `json:"is_deleted" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`
	CreatedByUserID *int      `json:"created_by"`
}

// Pure association rows: no surrogate id, never updated, duplicate tag ids
// from the submitted list are kept as separate rows.
type RequestRequestInformationModel struct {
	RequestID            int `gorm:"column:request_id;index;not null"`
	RequestInformationID int `gorm:"column:request_information_id;not null"`
}

type RequestFormatModel struct {
	RequestID int `gorm:"column:request_id;index;not null"`
	FormatID  int `gorm:"column:format_id;not null"`
}
