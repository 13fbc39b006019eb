package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionKey is the part of a question scoring needs. CorrectAnswer is nil
// when the referenced question no longer exists.
type QuestionKey struct {
	ID            uuid.UUID
	CorrectAnswer *string
}

// ExamForSubmission is the read model the submission flow loads for one exam.
type ExamForSubmission struct {
	ID                 uuid.UUID
	AssignedStudentIDs map[uuid.UUID]struct{}
	StartTime          *time.Time
	EndTime            *time.Time
	DurationMinutes    int
	Questions          []QuestionKey
}

func (e *ExamForSubmission) IsAssigned(studentID uuid.UUID) bool {
	_, ok := e.AssignedStudentIDs[studentID]
	return ok
}

func (e *ExamForSubmission) Window() ExamWindow {
	return NewExamWindow(e.StartTime, e.EndTime, e.DurationMinutes)
}
