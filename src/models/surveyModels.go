package models

import "time"

// VoteModel records the home-page Yes/No vote from a user or an anonymous
// visitor. SubAnswer is only kept for "No" votes.
type VoteModel struct {
	ID        int       `json:"Id" gorm:"primaryKey;autoIncrement"`
	UserID    *int      `json:"UserId" gorm:"column:user_id"`
	VisitorID *string   `json:"VisitorId" gorm:"column:visitor_id;type:varchar(64)"`
	Answer    string    `json:"Answer" gorm:"type:varchar(10);not null"`
	SubAnswer *string   `json:"SubAnswer" gorm:"type:text"`
	CreatedAt time.Time `json:"CreatedAt"`
}

type FeedbackCategoryModel struct {
	ID         int    `json:"Id" gorm:"primaryKey;autoIncrement"`
	Category   string `json:"Category" gorm:"type:varchar(255);not null"`
	CategoryAr string `json:"Category_Ar" gorm:"type:varchar(255)"`
}

type QuestionTypeModel struct {
	ID             int    `json:"Id" gorm:"primaryKey;autoIncrement"`
	TypeOfQuestion string `json:"TypeOfQuestion" gorm:"type:varchar(100);not null"`
}

type FeedbackQuestionModel struct {
	ID             int     `json:"Id" gorm:"primaryKey;autoIncrement"`
	MainQuestion   string  `json:"MainQuestion" gorm:"type:text;not null"`
	MainQuestionAr *string `json:"MainQuestion_Ar" gorm:"type:text"`
	CategoryID     *int    `json:"CategoryId" gorm:"column:category_id"`
	TypeID         *int    `json:"TypeId" gorm:"column:type_id"`
	IsDeleted      bool    `json:"-" gorm:"default:false"`

	Category *FeedbackCategoryModel `json:"-" gorm:"foreignKey:CategoryID;references:ID"`
	Type     *QuestionTypeModel     `json:"-" gorm:"foreignKey:TypeID;references:ID"`
	Choices  []QuestionChoiceModel  `json:"-" gorm:"foreignKey:QuestionID;references:ID"`
}

type QuestionChoiceModel struct {
	ID         int     `json:"ChoiceId" gorm:"primaryKey;autoIncrement"`
	QuestionID int     `json:"QuestionId" gorm:"column:question_id;index;not null"`
	Choice     string  `json:"Choice" gorm:"type:varchar(500);not null"`
	ChoiceAr   *string `json:"Choice_Ar" gorm:"type:varchar(500)"`
	IsDeleted  bool    `json:"-" gorm:"default:false"`
}

type FeedbackAnswerModel struct {
	ID              int       `json:"Id" gorm:"primaryKey;autoIncrement"`
	QuestionID      int       `json:"QuestionId" gorm:"column:question_id;index;not null"`
	ChoiceID        *int      `json:"ChoiceId" gorm:"column:choice_id"`
	TextAnswer      *string   `json:"TextAnswer" gorm:"column:please_specify;type:text"`
	VisitorID       *string   `json:"VisitorId" gorm:"column:visitor_id;type:varchar(64)"`
	CreatedAt       time.Time `json:"CreatedAt"`
	CreatedByUserID *int      `json:"UserId"`
}

// BulkAnswerItem is one submitted answer: multi-choice ids and/or free text.
type BulkAnswerItem struct {
	QuestionID int    `json:"QuestionId" binding:"required"`
	ChoiceIDs  []int  `json:"ChoiceId"`
	TextAnswer string `json:"TextAnswer"`
}

type BulkAnswerRequest struct {
	Answers []BulkAnswerItem `json:"answers" binding:"required"`
}
