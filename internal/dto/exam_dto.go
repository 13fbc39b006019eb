package dto

import "time"

// AssignedExamDTO is one entry of a student's exam list.
type AssignedExamDTO struct {
	ID               string     `json:"_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Duration         int        `json:"duration"`
	StartTime        *time.Time `json:"startTime,omitempty"`
	EffectiveEndTime *time.Time `json:"effectiveEndTime,omitempty"`
	Status           string     `json:"status"`
	QuestionCount    int        `json:"questionCount"`
	Submitted        bool       `json:"submitted"`
}

// StudentQuestionDTO never carries the correct answer.
type StudentQuestionDTO struct {
	ID           string   `json:"_id"`
	QuestionText string   `json:"questionText"`
	Options      []string `json:"options"`
}

// ExamForStudentDTO is what a student sees while taking an exam.
type ExamForStudentDTO struct {
	ID               string               `json:"_id"`
	Title            string               `json:"title"`
	Description      string               `json:"description,omitempty"`
	Duration         int                  `json:"duration"`
	StartTime        *time.Time           `json:"startTime,omitempty"`
	EffectiveEndTime *time.Time           `json:"effectiveEndTime,omitempty"`
	Status           string               `json:"status"`
	Questions        []StudentQuestionDTO `json:"questions"`
}
