package dto

import "time"

// CreateQuestionDTO is used by admins to author a multiple-choice question.
type CreateQuestionDTO struct {
	QuestionText  string   `json:"questionText" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectAnswer string   `json:"correctAnswer" binding:"required"`
}

// QuestionResponseDTO is the admin view of a question, correct answer included.
type QuestionResponseDTO struct {
	ID            string    `json:"_id"`
	QuestionText  string    `json:"questionText"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correctAnswer"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateExamDTO is used by admins to author an exam from existing questions.
type CreateExamDTO struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Questions   []string   `json:"questions" binding:"required,min=1"`
	Duration    int        `json:"duration" binding:"required,min=1"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
	AssignedTo  []string   `json:"assignedTo"`
}

// ExamResponseDTO is the admin view of an exam.
type ExamResponseDTO struct {
	ID               string     `json:"_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	Duration         int        `json:"duration"`
	StartTime        *time.Time `json:"startTime,omitempty"`
	EndTime          *time.Time `json:"endTime,omitempty"`
	EffectiveEndTime *time.Time `json:"effectiveEndTime,omitempty"`
	Questions        []string   `json:"questions"`
	AssignedTo       []string   `json:"assignedTo"`
	CreatedBy        string     `json:"createdBy"`
	CreatedAt        time.Time  `json:"createdAt"`
}
