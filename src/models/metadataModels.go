package models

import "time"

type DatasetInfoModel struct {
	ID              int        `json:"DatasetID" gorm:"primaryKey;autoIncrement"`
	Name            string     `json:"Name" gorm:"type:varchar(255);not null"`
	NameAr          string     `json:"NameAr" gorm:"type:varchar(255)"`
	Title           *string    `json:"Title" gorm:"type:varchar(255)"`
	TitleAr         *string    `json:"TitleAr" gorm:"type:varchar(255)"`
	Description     *string    `json:"description" gorm:"type:text"`
	DescriptionAr   *string    `json:"descriptionAr" gorm:"type:text"`
	CRSName         *string    `json:"CRS_Name" gorm:"column:crs_name;type:varchar(100)"`
	EPSG            int        `json:"EPSG" gorm:"default:3857"`
	Keywords        *string    `json:"Keywords" gorm:"type:text"`
	KeywordsAr      *string    `json:"KeywordsAr" gorm:"type:text"`
	ImagePath       *string    `json:"img" gorm:"type:varchar(255)"`
	IsDeleted       bool       `json:"-" gorm:"default:false"`
	CreatedAt       time.Time  `json:"CreatedAt"`
	CreatedByUserID *int       `json:"CreatedByUserID"`
	UpdatedAt       *time.Time `json:"UpdatedAt"`
	UpdatedByUserID *int       `json:"UpdatedByUserID"`
}

// MetadataInfoModel is one catalog record inside a dataset, with its ISO 19115
// contact and bounding-box fields.
type MetadataInfoModel struct {
	ID                      int        `json:"MetadataID" gorm:"primaryKey;autoIncrement"`
	DatasetID               int        `json:"DatasetID" gorm:"column:dataset_id;index;not null"`
	Name                    string     `json:"Name" gorm:"type:varchar(255);not null"`
	NameAr                  string     `json:"NameAr" gorm:"type:varchar(255)"`
	Title                   *string    `json:"Title" gorm:"type:varchar(255)"`
	TitleAr                 *string    `json:"TitleAr" gorm:"type:varchar(255)"`
	Description             *string    `json:"description" gorm:"type:text"`
	DescriptionAr           *string    `json:"descriptionAr" gorm:"type:text"`
	CreationDate            *time.Time `json:"CreationDate"`
	URL                     *string    `json:"URL" gorm:"type:varchar(500)"`
	WestBound               *float64   `json:"WestBound"`
	EastBound               *float64   `json:"EastBound"`
	NorthBound              *float64   `json:"NorthBound"`
	SouthBound              *float64   `json:"SouthBound"`
	MetadataStandardName    string     `json:"MetadataStandardName" gorm:"type:varchar(100);default:ISO19115"`
	MetadataStandardVersion string     `json:"MetadataStandardVersion" gorm:"type:varchar(20);default:1.0"`
	ContactName             *string    `json:"ContactName" gorm:"type:varchar(255)"`
	PositionName            *string    `json:"PositionName" gorm:"type:varchar(255)"`
	Organization            *string    `json:"Organization" gorm:"type:varchar(255)"`
	Email                   *string    `json:"Email" gorm:"type:varchar(255)"`
	Phone                   *string    `json:"Phone" gorm:"type:varchar(50)"`
	Role                    *string    `json:"Role" gorm:"type:varchar(100)"`
	FilePath                *string    `json:"FilePath" gorm:"type:varchar(255)"`
	IsDeleted               bool       `json:"-" gorm:"default:false"`
	CreatedAt               time.Time  `json:"CreatedAt"`
	CreatedByUserID         *int       `json:"CreatedByUserID"`
	UpdatedAt               *time.Time `json:"UpdatedAt"`
	UpdatedByUserID         *int       `json:"UpdatedByUserID"`
}
