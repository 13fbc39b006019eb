package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/examportal/internal/apperr"
	"github.com/lshigami/examportal/internal/dto"
	"github.com/lshigami/examportal/internal/repository"
)

// UserExamService serves the exams a student can see. Correct answers never
// leave this service.
type UserExamService interface {
	GetMyExams(ctx context.Context, studentID uuid.UUID) ([]dto.AssignedExamDTO, error)
	GetExamForStudent(ctx context.Context, examID, studentID uuid.UUID) (*dto.ExamForStudentDTO, error)
}

type userExamService struct {
	examRepo   repository.ExamRepository
	resultRepo repository.ResultRepository
	clock      Clock
}

func NewUserExamService(examRepo repository.ExamRepository, resultRepo repository.ResultRepository, clock Clock) UserExamService {
	return &userExamService{examRepo: examRepo, resultRepo: resultRepo, clock: clock}
}

func (s *userExamService) GetMyExams(ctx context.Context, studentID uuid.UUID) ([]dto.AssignedExamDTO, error) {
	exams, err := s.examRepo.FindAssignedTo(ctx, studentID)
	if err != nil {
		log.Error().Err(err).Str("studentID", studentID.String()).Msg("Failed to get assigned exams from repository")
		return nil, err
	}
	results, err := s.resultRepo.GetResultsForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	submitted := make(map[uuid.UUID]bool, len(results))
	for _, r := range results {
		submitted[r.ExamID] = true
	}

	now := s.clock.Now()
	out := make([]dto.AssignedExamDTO, 0, len(exams))
	for _, exam := range exams {
		window := exam.Window()
		out = append(out, dto.AssignedExamDTO{
			ID:               exam.ID.String(),
			Title:            exam.Title,
			Description:      exam.Description,
			Duration:         exam.DurationMinutes,
			StartTime:        exam.StartTime,
			EffectiveEndTime: window.End,
			Status:           window.StateAt(now).String(),
			QuestionCount:    len(exam.Questions),
			Submitted:        submitted[exam.ID],
		})
	}
	return out, nil
}

func (s *userExamService) GetExamForStudent(ctx context.Context, examID, studentID uuid.UUID) (*dto.ExamForStudentDTO, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(ctx, examID)
	if err != nil {
		return nil, err
	}
	assigned, err := s.examRepo.IsAssigned(ctx, examID, studentID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		log.Warn().Str("examID", examID.String()).Str("studentID", studentID.String()).Msg("Student requested an exam they are not assigned to")
		return nil, apperr.Forbidden("Forbidden: You are not assigned to this exam.")
	}

	window := exam.Window()
	resp := &dto.ExamForStudentDTO{
		ID:               exam.ID.String(),
		Title:            exam.Title,
		Description:      exam.Description,
		Duration:         exam.DurationMinutes,
		StartTime:        exam.StartTime,
		EffectiveEndTime: window.End,
		Status:           window.StateAt(s.clock.Now()).String(),
		Questions:        make([]dto.StudentQuestionDTO, 0, len(exam.Questions)),
	}
	for _, eq := range exam.Questions {
		// Deleted questions cannot be answered; they still count as incorrect when scored.
		if eq.Question == nil {
			continue
		}
		resp.Questions = append(resp.Questions, dto.StudentQuestionDTO{
			ID:           eq.Question.ID.String(),
			QuestionText: eq.Question.QuestionText,
			Options:      eq.Question.Options,
		})
	}
	return resp, nil
}
