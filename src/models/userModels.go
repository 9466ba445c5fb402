package models

import "time"

type UserModel struct {
	UserID             int        `json:"UserID" gorm:"primaryKey;autoIncrement"`
	TitleID            *int       `json:"TitleId" gorm:"column:title_id"`
	FirstName          string     `json:"FirstName" gorm:"type:varchar(100);not null"`
	LastName           string     `json:"LastName" gorm:"type:varchar(100)"`
	OrganizationTypeID *int       `json:"OrganizationTypeID" gorm:"column:organization_type_id"`
	OrganizationName   *string    `json:"OrganizationName" gorm:"type:varchar(255)"`
	Department         *string    `json:"Department" gorm:"type:varchar(255)"`
	JobTitle           *string    `json:"JobTitle" gorm:"type:varchar(255)"`
	CityID             *int       `json:"CityID" gorm:"column:city_id"`
	CountryID          *int       `json:"CountryID" gorm:"column:country_id"`
	PhoneNumber        *string    `json:"PhoneNumber" gorm:"type:varchar(50)"`
	Email              string     `json:"Email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash       string     `json:"-" gorm:"type:varchar(255);not null"`
	RoleID             int        `json:"RoleID" gorm:"column:role_id;default:2"`
	UserType           *string    `json:"UserType" gorm:"type:varchar(50)"`
	PhotoPath          *string    `json:"PhotoPath" gorm:"type:varchar(255)"`
	DateOfBirth        *time.Time `json:"DateOfBirth"`
	IsApproved         bool       `json:"IsApproved" gorm:"default:false"`
	IsActive           bool       `json:"IsActive" gorm:"default:false"`
	EmailVerified      bool       `json:"EmailVerified" gorm:"default:false"`
	IsDeleted          bool       `json:"IsDeleted" gorm:"default:false"`
	CreatedAt          time.Time  `json:"CreatedAt"`
	CreatedByUserID    *int       `json:"CreatedByUserID"`
	UpdatedAt          *time.Time `json:"UpdatedAt"`
	UpdatedByUserID    *int       `json:"UpdatedByUserID"`
}

// DomainModel is the email-domain accept/refuse list consulted at registration.
type DomainModel struct {
	ID     int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Domain string `json:"domain" gorm:"type:varchar(255);uniqueIndex;not null"`
	Type   string `json:"type" gorm:"type:varchar(20);not null"` // "accept" or "refused"
}

type LoginRequest struct {
	Email    string `json:"Email" binding:"required"`
	Password string `json:"Password" binding:"required"`
}

type RegisterRequest struct {
	TitleID            *int       `json:"TitleId"`
	FirstName          string     `json:"FirstName" binding:"required"`
	LastName           string     `json:"LastName"`
	OrganizationTypeID *int       `json:"OrganizationTypeID"`
	OrganizationName   *string    `json:"OrganizationName"`
	Department         *string    `json:"Department"`
	JobTitle           *string    `json:"JobTitle"`
	CityID             *int       `json:"CityID"`
	CountryID          *int       `json:"CountryID"`
	PhoneNumber        *string    `json:"PhoneNumber"`
	Email              string     `json:"Email" binding:"required,email"`
	Password           string     `json:"Password" binding:"required"`
	DateOfBirth        *time.Time `json:"DateOfBirth"`
	UserType           *string    `json:"UserType"`
	RoleID             int        `json:"RoleID"`
}

type UserUpdateRequest struct {
	TitleID            *int       `json:"TitleId"`
	FirstName          *string    `json:"FirstName"`
	LastName           *string    `json:"LastName"`
	OrganizationTypeID *int       `json:"OrganizationTypeID"`
	OrganizationName   *string    `json:"OrganizationName"`
	Department         *string    `json:"Department"`
	JobTitle           *string    `json:"JobTitle"`
	CityID             *int       `json:"CityID"`
	CountryID          *int       `json:"CountryID"`
	PhoneNumber        *string    `json:"PhoneNumber"`
	DateOfBirth        *time.Time `json:"DateOfBirth"`
	UserType           *string    `json:"UserType"`
}
