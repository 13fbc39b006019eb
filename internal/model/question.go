package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Question struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"_id"`
	QuestionText  string         `json:"questionText" gorm:"type:text;not null"`
	Options       []string       `json:"options" gorm:"serializer:json;type:text;not null"`
	CorrectAnswer string         `json:"correctAnswer" gorm:"type:text;not null"`
	CreatedBy     uuid.UUID      `json:"createdBy" gorm:"type:uuid;not null"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
