package service

import (
	"math"

	"github.com/google/uuid"

	"github.com/lshigami/examportal/internal/model"
)

// ScoreOutcome is what Score computes for one submission.
type ScoreOutcome struct {
	Answers        []model.ResultAnswer
	Score          int
	TotalQuestions int
	Percentage     float64
	// MissingAnswerKeys lists exam questions without a correct answer. They are
	// scored as incorrect; the caller decides how to report them.
	MissingAnswerKeys []uuid.UUID
}

// Score grades submitted answers against the exam's questions. The exam's
// question list is authoritative for membership and order: answers to unknown
// questions are ignored and unanswered questions are recorded with a nil
// selection. Score is pure.
func Score(questions []model.QuestionKey, answers []model.SubmittedAnswer) ScoreOutcome {
	submitted := make(map[uuid.UUID]*string, len(answers))
	for _, a := range answers {
		submitted[a.QuestionID] = a.SelectedOption
	}

	out := ScoreOutcome{
		Answers:        make([]model.ResultAnswer, 0, len(questions)),
		TotalQuestions: len(questions),
	}
	for i, q := range questions {
		selected := submitted[q.ID]
		if q.CorrectAnswer == nil {
			out.MissingAnswerKeys = append(out.MissingAnswerKeys, q.ID)
		}

		correct := q.CorrectAnswer != nil && selected != nil && *selected == *q.CorrectAnswer
		if correct {
			out.Score++
		}
		out.Answers = append(out.Answers, model.ResultAnswer{
			Position:       i,
			QuestionID:     q.ID,
			SelectedOption: copyString(selected),
			IsCorrect:      correct,
		})
	}
	out.Percentage = percentage(out.Score, out.TotalQuestions)
	return out
}

// percentage is 100*score/total rounded to two decimals, or 0 for an empty exam.
func percentage(score, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(score)*100/float64(total)*100) / 100
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
