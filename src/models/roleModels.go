package models

type RoleModel struct {
	ID     int    `json:"role_id" gorm:"primaryKey;autoIncrement"`
	NameEn string `json:"NameEn" gorm:"type:varchar(255);not null"`
	NameAr string `json:"NameAr" gorm:"type:varchar(255)"`
}

type AppFeatureModel struct {
	ID        int    `json:"feature_id" gorm:"primaryKey;autoIncrement"`
	NameEn    string `json:"NameEn" gorm:"type:varchar(255);not null"`
	NameAr    string `json:"NameAr" gorm:"type:varchar(255)"`
	Route     string `json:"Route" gorm:"type:varchar(255)"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}

// RoleFeatureModel links app features to the roles allowed to use them.
type RoleFeatureModel struct {
	RoleID       int `gorm:"column:role_id;primaryKey"`
	AppFeatureID int `gorm:"column:app_feature_id;primaryKey;autoIncrement:false"`
}
