package model

import (
	"time"

	"gorm.io/datatypes"
)

// DateFormat is the canonical calendar-day format used across the app.
const DateFormat = "2006-01-02"

type User struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
}

type Activity struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID        string    `gorm:"type:varchar(36);index" json:"user_id"`
	Date          string    `gorm:"type:date;index" json:"date"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Status        Status    `gorm:"type:varchar(20);default:pending" json:"status"`
	ScheduledTime *string   `json:"scheduled_time"` // HH:MM:SS, nil means all-day
	CreatedAt     time.Time `json:"created_at"`
}

// DiaryEntry is one diary record per (user, calendar day). Uniqueness of
// date per user is enforced by existence-check-before-create in the
// reconciliation engine and the create path, not by a DB constraint.
type DiaryEntry struct {
	ID            string                                `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID        string                                `gorm:"type:varchar(36);index:idx_user_date" json:"user_id"`
	Date          string                                `gorm:"type:date;index:idx_user_date" json:"date"`
	Title         string                                `json:"title"`
	Detail        string                                `gorm:"type:text" json:"detail"`
	PositiveScore *int                                  `json:"positive_score"`
	NegativeScore *int                                  `json:"negative_score"`
	OverallScore  *int                                  `json:"overall_score"`
	MoodIcon      string                                `gorm:"type:varchar(10)" json:"mood_icon"`
	MoodTags      datatypes.JSONSlice[string]           `json:"mood_tags"`
	Activities    datatypes.JSONSlice[ActivitySnapshot] `json:"activities"`
	IsDraft       bool                                  `gorm:"-" json:"is_draft"`
	CreatedAt     time.Time                             `json:"created_at"`
	UpdatedAt     time.Time                             `json:"updated_at"`
}

// ActivitySnapshot is a detached copy of an activity captured into a diary
// entry at save time. Immutable once stored.
type ActivitySnapshot struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Category      string  `json:"category"`
	Status        Status  `json:"status"`
	ScheduledTime *string `json:"scheduled_time"`
}

func (User) TableName() string       { return "users" }
func (Activity) TableName() string   { return "activities" }
func (DiaryEntry) TableName() string { return "diaries" }
