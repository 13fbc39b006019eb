package dto

import "time"

// APIResponse is the success envelope used by every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmitResultData is returned after a successful submission.
type SubmitResultData struct {
	ID             string  `json:"_id"`
	Score          int     `json:"score"`
	TotalQuestions int     `json:"totalQuestions"`
	Percentage     float64 `json:"percentage"`
}

type ExamSummaryDTO struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	Duration    int        `json:"duration,omitempty"`
}

// ResultSummaryDTO is a result without its answers.
type ResultSummaryDTO struct {
	ID             string         `json:"_id"`
	Exam           ExamSummaryDTO `json:"exam"`
	StudentID      string         `json:"student"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"totalQuestions"`
	Percentage     float64        `json:"percentage"`
	SubmittedAt    time.Time      `json:"submittedAt"`
}

type AnswerQuestionDTO struct {
	ID            string   `json:"_id"`
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// AnswerDetailDTO pairs a frozen answer with the current question content.
// Question is nil if the question row is gone.
type AnswerDetailDTO struct {
	QuestionID     string             `json:"questionId"`
	Question       *AnswerQuestionDTO `json:"question"`
	SelectedOption *string            `json:"selectedOption"`
	IsCorrect      bool               `json:"isCorrect"`
}

type ResultDetailDTO struct {
	ResultSummaryDTO
	Answers []AnswerDetailDTO `json:"answers"`
}
