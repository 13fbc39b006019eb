package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Exam struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey" json:"_id"`
	Title           string           `json:"title" gorm:"not null"`
	Description     string           `json:"description,omitempty"`
	DurationMinutes int              `json:"duration" gorm:"column:duration;not null"`
	StartTime       *time.Time       `json:"startTime,omitempty"`
	EndTime         *time.Time       `json:"endTime,omitempty"`
	CreatedBy       uuid.UUID        `json:"createdBy" gorm:"type:uuid;not null"`
	Questions       []ExamQuestion   `json:"questions,omitempty" gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Assignments     []ExamAssignment `json:"assignedTo,omitempty" gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (e *Exam) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Window returns the submission window derived from the exam's schedule.
func (e *Exam) Window() ExamWindow {
	return NewExamWindow(e.StartTime, e.EndTime, e.DurationMinutes)
}

// ExamQuestion orders question references inside an exam. The exam owns the
// ordering, never the question content.
type ExamQuestion struct {
	ExamID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Position   int       `gorm:"primaryKey;autoIncrement:false" json:"position"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"questionId"`
	Question   *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}

type ExamAssignment struct {
	ExamID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"studentId"`
	CreatedAt time.Time `json:"createdAt"`
}
