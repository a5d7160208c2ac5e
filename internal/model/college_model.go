package model

import (
	"time"

	"github.com/google/uuid"
)

type College struct {
	Id             string    `gorm:"type:varchar(64);primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null;index"`
	State          string    `gorm:"type:varchar(100)"`
	City           string    `gorm:"type:varchar(100)"`
	Type           string    `gorm:"type:varchar(50)"`
	Tuition        *int      `gorm:""`
	AcceptanceRate *float64  `gorm:""`
	EnrollmentSize *int      `gorm:""`
	Website        string    `gorm:"type:text"`
	Description    string    `gorm:"type:text"`
	ImageURL       string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (College) TableName() string {
	return "colleges"
}

type Major struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Category string    `gorm:"type:varchar(100)"`
}

func (Major) TableName() string {
	return "majors"
}

// CollegeMajor carries no uniqueness constraint on (college_id, major_id):
// concurrent upserts of the same college can produce duplicate join rows.
type CollegeMajor struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CollegeId string    `gorm:"type:varchar(64);not null;index"`
	MajorId   uuid.UUID `gorm:"type:uuid;not null;index"`
}

func (CollegeMajor) TableName() string {
	return "college_majors"
}
