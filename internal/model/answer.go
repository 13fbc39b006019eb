package model

import "github.com/google/uuid"

// ResultAnswer is the denormalized per-question outcome frozen into a Result,
// so later edits to a Question never change a historical result.
type ResultAnswer struct {
	ResultID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Position       int       `gorm:"primaryKey;autoIncrement:false" json:"-"`
	QuestionID     uuid.UUID `gorm:"type:uuid;not null" json:"questionId"`
	SelectedOption *string   `gorm:"type:text" json:"selectedOption"`
	IsCorrect      bool      `gorm:"not null" json:"isCorrect"`
}

// SubmittedAnswer is one (questionId, selectedOption) pair as sent by the client.
type SubmittedAnswer struct {
	QuestionID     uuid.UUID
	SelectedOption *string
}
