package models

import "time"

type NewsModel struct {
	ID              int        `json:"NewsID" gorm:"primaryKey;autoIncrement"`
	TitleEn         string     `json:"TitleEn" gorm:"type:varchar(255);not null"`
	TitleAr         string     `json:"TitleAr" gorm:"type:varchar(255)"`
	DescriptionEn   *string    `json:"DescriptionEn" gorm:"type:text"`
	DescriptionAr   *string    `json:"DescriptionAr" gorm:"type:text"`
	ImagePath       *string    `json:"ImagePath" gorm:"type:varchar(255)"`
	VideoPath       *string    `json:"VideoPath" gorm:"type:varchar(255)"`
	IsSlide         bool       `json:"Is_slide" gorm:"column:is_slide;default:false"`
	ReadCount       int        `json:"Read_count" gorm:"column:read_count;default:0"`
	IsDeleted       bool       `json:"-" gorm:"default:false"`
	CreatedAt       time.Time  `json:"CreatedAt"`
	CreatedByUserID *int       `json:"CreatedByUserID"`
	UpdatedAt       *time.Time `json:"UpdatedAt"`
	UpdatedByUserID *int       `json:"UpdatedByUserID"`
}

// ProductModel keeps the legacy comma-separated services triple; the service
// layer parses it into a structured list for responses.
type ProductModel struct {
	ID                  int        `json:"ProductID" gorm:"primaryKey;autoIncrement"`
	NameEn              string     `json:"NameEn" gorm:"type:varchar(255);not null"`
	NameAr              *string    `json:"NameAr" gorm:"type:varchar(255)"`
	DescriptionEn       *string    `json:"DescriptionEn" gorm:"type:text"`
	DescriptionAr       *string    `json:"DescriptionAr" gorm:"type:text"`
	ServicesName        *string    `json:"ServicesName,omitempty" gorm:"type:text"`
	ServicesDescription *string    `json:"ServicesDescription,omitempty" gorm:"type:text"`
	ServicesLink        *string    `json:"ServicesLink,omitempty" gorm:"type:text"`
	ImagePath           *string    `json:"ImagePath" gorm:"type:varchar(255)"`
	VideoPath           *string    `json:"VideoPath" gorm:"type:varchar(255)"`
	IsDeleted           bool       `json:"-" gorm:"default:false"`
	CreatedAt           time.Time  `json:"CreatedAt"`
	CreatedByUserID     *int       `json:"CreatedByUserID"`
	UpdatedAt           *time.Time `json:"UpdatedAt"`
	UpdatedByUserID     *int       `json:"UpdatedByUserID"`
}

type ProjectModel struct {
	ID              int        `json:"ProjectID" gorm:"primaryKey;autoIncrement"`
	NameEn          string     `json:"NameEn" gorm:"type:varchar(255);not null"`
	NameAr          string     `json:"NameAr" gorm:"type:varchar(255)"`
	DescriptionEn   *string    `json:"DescriptionEn" gorm:"type:text"`
	DescriptionAr   *string    `json:"DescriptionAr" gorm:"type:text"`
	ServicesName    *string    `json:"ServicesName" gorm:"type:varchar(255)"`
	ServicesLink    *string    `json:"ServicesLink" gorm:"type:varchar(255)"`
	ImagePath       *string    `json:"ImagePath" gorm:"type:varchar(255)"`
	VideoPath       *string    `json:"VideoPath" gorm:"type:varchar(255)"`
	IsDeleted       bool       `json:"-" gorm:"default:false"`
	CreatedAt       time.Time  `json:"CreatedAt"`
	CreatedByUserID *int       `json:"CreatedByUserID"`
	UpdatedAt       *time.Time `json:"UpdatedAt"`
	UpdatedByUserID *int       `json:"UpdatedByUserID"`
}

type ProjectDetailModel struct {
	ID                   int        `json:"ProjectDetailID" gorm:"primaryKey;autoIncrement"`
	ProjectID            int        `json:"ProjectID" gorm:"column:project_id;index;not null"`
	ServiceName          string     `json:"ServiceName" gorm:"type:varchar(255);not null"`
	ServiceNameAr        *string    `json:"ServiceNameAr" gorm:"type:varchar(255)"`
	ServiceDescription   *string    `json:"ServiceDescription" gorm:"type:text"`
	ServiceDescriptionAr *string    `json:"ServiceDescriptionAr" gorm:"type:text"`
	ServiceLink          *string    `json:"ServiceLink" gorm:"type:varchar(255)"`
	ImageURL             *string    `json:"ImageUrl" gorm:"column:image_url;type:varchar(255)"`
	IsDeleted            bool       `json:"-" gorm:"default:false"`
	CreatedAt            time.Time  `json:"CreatedAt"`
	CreatedByUserID      *int       `json:"CreatedByUserID"`
	UpdatedAt            *time.Time `json:"UpdatedAt"`
	UpdatedByUserID      *int       `json:"UpdatedByUserID"`
}

type FAQModel struct {
	ID              int        `json:"FAQID" gorm:"primaryKey;autoIncrement"`
	QuestionEn      string     `json:"QuestionEn" gorm:"type:text;not null"`
	QuestionAr      *string    `json:"QuestionAr" gorm:"type:text"`
	AnswerEn        *string    `json:"AnswerEn" gorm:"type:text"`
	AnswerAr        *string    `json:"AnswerAr" gorm:"type:text"`
	CategoryID      *int       `json:"CategoryID" gorm:"column:category_id"`
	IsDeleted       bool       `json:"-" gorm:"default:false"`
	CreatedAt       time.Time  `json:"CreatedAt"`
	CreatedByUserID *int       `json:"CreatedByUserID"`
	UpdatedAt       *time.Time `json:"UpdatedAt"`
	UpdatedByUserID *int       `json:"UpdatedByUserID"`
}

type VideoModel struct {
	ID              int        `json:"VideoID" gorm:"primaryKey;autoIncrement"`
	TitleEn         string     `json:"TitleEn" gorm:"type:varchar(255);not null"`
	TitleAr         *string    `json:"TitleAr" gorm:"type:varchar(255)"`
	DescriptionEn   *string    `json:"DescriptionEn" gorm:"type:text"`
	DescriptionAr   *string    `json:"DescriptionAr" gorm:"type:text"`
	Link            string     `json:"Link" gorm:"type:varchar(500);not null"`
	ImagePath       *string    `json:"ImagePath" gorm:"type:varchar(255)"`
	IsDeleted       bool       `json:"-" gorm:"default:false"`
	CreatedAt       time.Time  `json:"CreatedAt"`
	CreatedByUserID *int       `json:"CreatedByUserID"`
	UpdatedAt       *time.Time `json:"UpdatedAt"`
	UpdatedByUserID *int       `json:"UpdatedByUserID"`
}

type LogoModel struct {
	ID              int        `json:"LogoID" gorm:"primaryKey;autoIncrement"`
	NameEn          string     `json:"NameEn" gorm:"type:varchar(255);not null"`
	NameAr          *string    `json:"NameAr" gorm:"type:varchar(255)"`
	Link            string     `json:"Link" gorm:"type:varchar(500);not null"`
	Category        string     `json:"Category" gorm:"type:varchar(100);not null"`
	ImagePath       *string    `json:"ImagePath" gorm:"type:varchar(255)"`
	IsDeleted       bool       `json:"-" gorm:"default:false"`
	CreatedAt       time.Time  `json:"CreatedAt"`
	CreatedByUserID *int       `json:"CreatedByUserID"`
	UpdatedAt       *time.Time `json:"UpdatedAt"`
	UpdatedByUserID *int       `json:"UpdatedByUserID"`
}

type ManualGuideModel struct {
	ID              int        `json:"ManualGuideID" gorm:"primaryKey;autoIncrement"`
	NameEn          string     `json:"NameEn" gorm:"type:varchar(255);not null"`
	NameAr          *string    `json:"NameAr" gorm:"type:varchar(255)"`
	DescriptionEn   *string    `json:"DescriptionEn" gorm:"type:text"`
	DescriptionAr   *string    `json:"DescriptionAr" gorm:"type:text"`
	FilePath        *string    `json:"FilePath" gorm:"type:varchar(255)"`
	IsDeleted       bool       `json:"-" gorm:"default:false"`
	CreatedAt       time.Time  `json:"CreatedAt"`
	CreatedByUserID *int       `json:"CreatedByUserID"`
	UpdatedAt       *time.Time `json:"UpdatedAt"`
	UpdatedByUserID *int       `json:"UpdatedByUserID"`
}

type ContactUsModel struct {
	ID          int       `json:"ContactID" gorm:"primaryKey;autoIncrement"`
	FirstName   *string   `json:"FirstName" gorm:"type:varchar(100)"`
	LastName    *string   `json:"LastName" gorm:"type:varchar(100)"`
	Subject     *string   `json:"Subject" gorm:"type:varchar(500)"`
	Body        *string   `json:"Body" gorm:"type:text"`
	Email       *string   `json:"Email" gorm:"type:varchar(255)"`
	PhoneNumber *string   `json:"PhoneNumber" gorm:"type:varchar(50)"`
	AttachPath  *string   `json:"AttachPath" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"CreatedAt"`
}

type ContactUsReplyModel struct {
	ID              int       `json:"id" gorm:"primaryKey;autoIncrement"`
	ContactID       int       `json:"ContactID" gorm:"column:contact_id;index;not null"`
	Subject         *string   `json:"Subject" gorm:"type:varchar(500)"`
	Body            *string   `json:"Body" gorm:"type:text"`
	AttachmentPath  *string   `json:"AttachmentPath" gorm:"type:varchar(255)"`
	IsDeleted       bool      `json:"-" gorm:"default:false"`
	CreatedAt       time.Time `json:"CreatedAt"`
	CreatedByUserID *int      `json:"CreatedByUserID"`
}
