package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Activity struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    *uuid.UUID     `gorm:"type:uuid;index"`
	Kind      string         `gorm:"type:varchar(100);not null;index"`
	Detail    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (Activity) TableName() string {
	return "activities"
}
