package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lshigami/examportal/internal/apperr"
	"github.com/lshigami/examportal/internal/model"
)

func seedResults(t *testing.T) (*fakeResultRepo, *fakeQuestionRepo, *model.Result) {
	t.Helper()
	question := model.Question{
		ID:            uuid.New(),
		QuestionText:  "2 + 2",
		Options:       []string{"3", "4"},
		CorrectAnswer: "4",
	}
	questions := newFakeQuestionRepo(question)
	results := newFakeResultRepo()

	exam := model.Exam{ID: uuid.New(), Title: "Midterm", DurationMinutes: 45}
	owned := &model.Result{
		ExamID:    exam.ID,
		Exam:      exam,
		StudentID: uuid.New(),
		Answers: []model.ResultAnswer{
			{Position: 0, QuestionID: question.ID, SelectedOption: strPtr("4"), IsCorrect: true},
			{Position: 1, QuestionID: uuid.New()},
		},
		Score:          1,
		TotalQuestions: 2,
		Percentage:     50,
		SubmittedAt:    examStart,
	}
	if err := results.CreateResult(context.Background(), owned); err != nil {
		t.Fatalf("seed: %v", err)
	}
	other := &model.Result{
		ExamID:      exam.ID,
		Exam:        exam,
		StudentID:   uuid.New(),
		SubmittedAt: examStart.Add(time.Minute),
	}
	if err := results.CreateResult(context.Background(), other); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return results, questions, owned
}

func TestGetResultDetailsAuthorization(t *testing.T) {
	results, questions, owned := seedResults(t)
	svc := NewResultService(results, questions)
	ctx := context.Background()

	tests := []struct {
		name    string
		viewer  uuid.UUID
		isAdmin bool
		want    apperr.Kind
	}{
		{name: "owner", viewer: owned.StudentID},
		{name: "admin", viewer: uuid.New(), isAdmin: true},
		{name: "another student", viewer: uuid.New(), want: apperr.KindForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetResultDetails(ctx, owned.ID, tt.viewer, tt.isAdmin)
			if tt.want != "" {
				if apperr.KindOf(err) != tt.want {
					t.Fatalf("expected %v, got %v", tt.want, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetResultDetails: %v", err)
			}
			if got.ID != owned.ID.String() || got.StudentID != owned.StudentID.String() || got.Exam.Title != "Midterm" {
				t.Errorf("unexpected summary: %+v", got.ResultSummaryDTO)
			}
		})
	}

	if _, err := svc.GetResultDetails(ctx, uuid.New(), owned.StudentID, false); apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected NotFound for unknown result, got %v", err)
	}
}

func TestGetResultDetailsAnswers(t *testing.T) {
	results, questions, owned := seedResults(t)
	got, err := NewResultService(results, questions).GetResultDetails(context.Background(), owned.ID, owned.StudentID, false)
	if err != nil {
		t.Fatalf("GetResultDetails: %v", err)
	}
	if len(got.Answers) != 2 {
		t.Fatalf("got %d answers, want 2", len(got.Answers))
	}

	first := got.Answers[0]
	if first.Question == nil || first.Question.CorrectAnswer != "4" || first.Question.QuestionText != "2 + 2" {
		t.Errorf("question details not attached: %+v", first.Question)
	}
	if first.SelectedOption == nil || *first.SelectedOption != "4" || !first.IsCorrect {
		t.Errorf("unexpected first answer: %+v", first)
	}

	second := got.Answers[1]
	if second.Question != nil {
		t.Error("missing question must be reported as null")
	}
	if second.SelectedOption != nil || second.IsCorrect {
		t.Errorf("unexpected second answer: %+v", second)
	}
}

func TestGetMyResultsAndFilter(t *testing.T) {
	results, questions, owned := seedResults(t)
	svc := NewResultService(results, questions)
	ctx := context.Background()

	mine, err := svc.GetMyResults(ctx, owned.StudentID)
	if err != nil {
		t.Fatalf("GetMyResults: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != owned.ID.String() {
		t.Fatalf("unexpected results: %+v", mine)
	}
	if mine[0].Exam.Duration != 45 || mine[0].Percentage != 50 {
		t.Errorf("summary fields not mapped: %+v", mine[0])
	}

	all, err := svc.GetAllResults(ctx, model.ResultFilter{ExamID: &owned.ExamID})
	if err != nil {
		t.Fatalf("GetAllResults: %v", err)
	}
	if len(all) != 2 || all[1].ID != owned.ID.String() {
		t.Errorf("expected both results newest first, got %+v", all)
	}

	none, err := svc.GetAllResults(ctx, model.ResultFilter{StudentID: ptrUUID(uuid.New())})
	if err != nil || len(none) != 0 {
		t.Errorf("expected no results for an unknown student, got %d (%v)", len(none), err)
	}
}

func ptrUUID(id uuid.UUID) *uuid.UUID { return &id }
