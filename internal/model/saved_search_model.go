package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SavedSearch struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID      `gorm:"type:uuid;not null;index"`
	InitialQuery    string         `gorm:"type:text;not null"`
	FollowUpQA      datatypes.JSON `gorm:"type:jsonb"`
	Recommendations datatypes.JSON `gorm:"type:jsonb"`
	SearchSummary   string         `gorm:"type:text"`
	IsFavorite      bool           `gorm:"default:false"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
}

func (SavedSearch) TableName() string {
	return "saved_searches"
}

type Comparison struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name       string         `gorm:"type:varchar(255);not null"`
	CollegeIDs datatypes.JSON `gorm:"type:jsonb;not null"`
	Categories datatypes.JSON `gorm:"type:jsonb;not null"`
	Results    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (Comparison) TableName() string {
	return "comparisons"
}

type Favorite struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_college"`
	CollegeId string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_favorites_user_college"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Favorite) TableName() string {
	return "favorites"
}
