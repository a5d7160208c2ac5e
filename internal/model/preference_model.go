package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Preference struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null"`
	Data      datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Preference) TableName() string {
	return "preferences"
}
