package models

// Reference tables curated by admins elsewhere; the request workflow reads
// them and never writes.

type CategoryModel struct {
	ID        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"type:varchar(255);not null"`
	NameAr    string `json:"name_ar" gorm:"type:varchar(255)"`
	IsDeleted bool   `json:"is_deleted" gorm:"default:false"`
}

type StatusModel struct {
	ID     int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name   string `json:"name" gorm:"type:varchar(255);not null"`
	NameAr string `json:"name_ar" gorm:"type:varchar(255)"`
}

type FormatModel struct {
	ID        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"type:varchar(255);not null"`
	IsDeleted bool   `json:"is_deleted" gorm:"default:false"`
}

type ProjectionModel struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"type:varchar(255);not null"`
}

type RequestInformationModel struct {
	ID        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"type:varchar(255);not null"`
	NameAr    string `json:"name_ar" gorm:"type:varchar(255)"`
	IsDeleted bool   `json:"is_deleted" gorm:"default:false"`
}

type ComplaintScreenModel struct {
	ID        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"type:varchar(255);not null"`
	NameAr    string `json:"name_ar" gorm:"type:varchar(255)"`
	IsDeleted bool   `json:"is_deleted" gorm:"default:false"`
}

type UserTitleModel struct {
	ID    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title string `json:"title" gorm:"type:varchar(100);not null"`
}

type OrganizationTypeModel struct {
	ID     int    `json:"id" gorm:"primaryKey;autoIncrement"`
	NameEn string `json:"NameEn" gorm:"type:varchar(255);not null"`
	NameAr string `json:"NameAr" gorm:"type:varchar(255)"`
}

type CountryModel struct {
	ID          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	CountryCode string `json:"code" gorm:"type:varchar(10)"`
	CountryName string `json:"name" gorm:"type:varchar(255);not null"`
}

type CityModel struct {
	ID     int    `json:"id" gorm:"primaryKey;autoIncrement"`
	NameEn string `json:"NameEn" gorm:"type:varchar(255);not null"`
	NameAr string `json:"NameAr" gorm:"type:varchar(255)"`
}

type FAQCategoryModel struct {
	ID       int    `json:"CategoryID" gorm:"primaryKey;autoIncrement"`
	NameEn   string `json:"NameEn" gorm:"type:varchar(255);not null"`
	NameAr   string `json:"NameAr" gorm:"type:varchar(255)"`
	IsDelete bool   `json:"IsDelete" gorm:"default:false"`
}
