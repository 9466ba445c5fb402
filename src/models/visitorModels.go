package models

import "time"

// VisitorModel is one tracked browsing session. A returning session only gets
// its VisitAt refreshed.
type VisitorModel struct {
	ID        int       `json:"VisitorID" gorm:"primaryKey;autoIncrement"`
	SessionID string    `json:"SessionID" gorm:"column:session_id;type:varchar(64);index;not null"`
	IPAddress string    `json:"IPAddress" gorm:"type:varchar(64)"`
	CountryID *int      `json:"CountryID" gorm:"column:country_id"`
	X         *float64  `json:"X"`
	Y         *float64  `json:"Y"`
	VisitAt   time.Time `json:"VisitAt"`
}

type TrackVisitorRequest struct {
	SessionID string   `json:"SessionID"`
	IPAddress string   `json:"IPAddress"`
	CountryID *int     `json:"CountryID"`
	X         *float64 `json:"X"`
	Y         *float64 `json:"Y"`
}
