package dto

import (
	"github.com/google/uuid"

	"github.com/lshigami/examportal/internal/apperr"
	"github.com/lshigami/examportal/internal/model"
)

// AnswerDTO is one answer within a submission. A null selectedOption means the
// question was left unanswered.
type AnswerDTO struct {
	QuestionID     string  `json:"questionId" binding:"required"`
	SelectedOption *string `json:"selectedOption"`
}

// SubmitExamRequest is the body of POST /results/submit/{examId}.
type SubmitExamRequest struct {
	Answers []AnswerDTO `json:"answers" binding:"required,dive"`
}

// ToSubmittedAnswers validates every question id and converts the request
// into the domain representation.
func (r SubmitExamRequest) ToSubmittedAnswers() ([]model.SubmittedAnswer, error) {
	answers := make([]model.SubmittedAnswer, 0, len(r.Answers))
	for _, a := range r.Answers {
		id, err := uuid.Parse(a.QuestionID)
		if err != nil {
			return nil, apperr.InvalidInput("Answers array contains invalid items or invalid question IDs.")
		}
		answers = append(answers, model.SubmittedAnswer{QuestionID: id, SelectedOption: a.SelectedOption})
	}
	return answers, nil
}

// ParseID parses a path or query id, returning InvalidInput with message on failure.
func ParseID(raw, message string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.InvalidInput(message)
	}
	return id, nil
}

// ParseOptionalID returns nil for empty or malformed input. Used by list
// filters, where a bad id means "no filter".
func ParseOptionalID(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
