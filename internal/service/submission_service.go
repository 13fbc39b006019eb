package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/lshigami/examportal/internal/apperr"
	"github.com/lshigami/examportal/internal/model"
	"github.com/lshigami/examportal/internal/monitoring"
	"github.com/lshigami/examportal/internal/repository"
	"github.com/lshigami/examportal/internal/tracing"
)

// SubmissionService accepts a student's answers for an exam, scores them and
// stores exactly one Result per (student, exam).
type SubmissionService interface {
	SubmitExam(ctx context.Context, examID, studentID uuid.UUID, answers []model.SubmittedAnswer) (*model.Result, error)
}

type submissionService struct {
	examRepo   repository.ExamRepository
	resultRepo repository.ResultRepository
	clock      Clock
}

func NewSubmissionService(examRepo repository.ExamRepository, resultRepo repository.ResultRepository, clock Clock) SubmissionService {
	return &submissionService{
		examRepo:   examRepo,
		resultRepo: resultRepo,
		clock:      clock,
	}
}

func (s *submissionService) SubmitExam(ctx context.Context, examID, studentID uuid.UUID, answers []model.SubmittedAnswer) (*model.Result, error) {
	ctx, span := tracing.Start(ctx, "SubmissionService.SubmitExam")
	defer span.End()
	span.SetAttributes(
		attribute.String("exam.id", examID.String()),
		attribute.String("student.id", studentID.String()),
		attribute.Int("answers.count", len(answers)),
	)

	result, err := s.submit(ctx, examID, studentID, answers)
	if err != nil {
		kind := apperr.KindOf(err)
		span.SetStatus(codes.Error, string(kind))
		monitoring.ObserveSubmission(string(kind))
		return nil, err
	}
	monitoring.ObserveSubmission("success")
	return result, nil
}

func (s *submissionService) submit(ctx context.Context, examID, studentID uuid.UUID, answers []model.SubmittedAnswer) (*model.Result, error) {
	logger := log.With().Str("examID", examID.String()).Str("studentID", studentID.String()).Logger()
	logger.Info().Int("answerCount", len(answers)).Msg("SubmitExam: begin")

	exam, err := s.examRepo.GetExamForSubmission(ctx, examID)
	if err != nil {
		logger.Warn().Err(err).Msg("SubmitExam: could not load exam")
		return nil, err
	}

	if !exam.IsAssigned(studentID) {
		logger.Warn().Msg("SubmitExam: student is not assigned to the exam")
		return nil, apperr.Forbidden("You are not assigned to take this exam.")
	}

	now := s.clock.Now()
	window := exam.Window()
	switch window.StateAt(now) {
	case model.WindowUnscheduled:
		// Unscheduled exams can never be submitted; the student only sees "not started".
		logger.Warn().Msg("SubmitExam: exam has no start time")
		return nil, apperr.NotStarted("Exam has not started yet.")
	case model.WindowUpcoming:
		logger.Warn().Time("startTime", *window.Start).Time("now", now).Msg("SubmitExam: exam has not started")
		return nil, apperr.NotStarted("Exam has not started yet.")
	case model.WindowClosed:
		logger.Warn().Time("endTime", *window.End).Time("now", now).Msg("SubmitExam: exam already ended")
		return nil, apperr.Expired("The submission deadline for this exam has passed.")
	}

	exists, err := s.resultRepo.HasExistingResult(ctx, studentID, examID)
	if err != nil {
		logger.Error().Err(err).Msg("SubmitExam: could not check for an existing result")
		return nil, err
	}
	if exists {
		logger.Warn().Msg("SubmitExam: duplicate attempt rejected by pre-check")
		return nil, alreadySubmitted()
	}

	if len(exam.Questions) == 0 {
		logger.Warn().Msg("SubmitExam: exam has no questions, result will be 0/0")
	}
	outcome := Score(exam.Questions, answers)
	for _, qID := range outcome.MissingAnswerKeys {
		monitoring.ScoringAnomalies.Inc()
		logger.Error().
			Str("kind", string(apperr.KindDataIntegrity)).
			Str("questionID", qID.String()).
			Msg("SubmitExam: exam question has no correct answer, scoring it as incorrect")
	}
	logger.Info().
		Int("score", outcome.Score).
		Int("totalQuestions", outcome.TotalQuestions).
		Float64("percentage", outcome.Percentage).
		Msg("SubmitExam: score calculated")

	result := &model.Result{
		ExamID:         examID,
		StudentID:      studentID,
		Answers:        outcome.Answers,
		Score:          outcome.Score,
		TotalQuestions: outcome.TotalQuestions,
		Percentage:     outcome.Percentage,
		SubmittedAt:    now,
	}

	// Once scored, the write runs to completion even if the client goes away.
	err = s.resultRepo.CreateResult(context.WithoutCancel(ctx), result)
	if errors.Is(err, repository.ErrDuplicateKey) {
		logger.Warn().Msg("SubmitExam: concurrent duplicate rejected by unique constraint")
		return nil, alreadySubmitted()
	}
	if err != nil {
		logger.Error().Err(err).Msg("SubmitExam: failed to persist result")
		return nil, err
	}

	logger.Info().Str("resultID", result.ID.String()).Msg("SubmitExam: result created")
	return result, nil
}

func alreadySubmitted() error {
	return apperr.AlreadySubmitted("You have already submitted result for this exam.")
}
