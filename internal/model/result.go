package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Result is the persisted outcome of one submission. At most one exists per
// (student, exam), enforced by idx_results_student_exam.
type Result struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"_id"`
	ExamID         uuid.UUID      `json:"examId" gorm:"type:uuid;not null;uniqueIndex:idx_results_student_exam,priority:2"`
	Exam           Exam           `json:"exam,omitempty" gorm:"foreignKey:ExamID"`
	StudentID      uuid.UUID      `json:"studentId" gorm:"type:uuid;not null;uniqueIndex:idx_results_student_exam,priority:1"`
	Answers        []ResultAnswer `json:"answers,omitempty" gorm:"foreignKey:ResultID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Score          int            `json:"score" gorm:"not null;default:0"`
	TotalQuestions int            `json:"totalQuestions" gorm:"not null"`
	Percentage     float64        `json:"percentage" gorm:"not null;default:0"`
	SubmittedAt    time.Time      `json:"submittedAt" gorm:"not null;index"`
}

func (r *Result) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ResultFilter narrows the administrator result listing. Nil fields match everything.
type ResultFilter struct {
	ExamID    *uuid.UUID
	StudentID *uuid.UUID
}
