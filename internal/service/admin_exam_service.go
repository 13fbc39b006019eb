package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/examportal/internal/apperr"
	"github.com/lshigami/examportal/internal/dto"
	"github.com/lshigami/examportal/internal/model"
	"github.com/lshigami/examportal/internal/repository"
)

// AdminExamService covers question and exam authoring plus student assignment.
type AdminExamService interface {
	CreateQuestion(ctx context.Context, adminID uuid.UUID, req dto.CreateQuestionDTO) (*dto.QuestionResponseDTO, error)
	CreateExam(ctx context.Context, adminID uuid.UUID, req dto.CreateExamDTO) (*dto.ExamResponseDTO, error)
	AssignStudent(ctx context.Context, examID, studentID uuid.UUID) error
}

type adminExamService struct {
	examRepo     repository.ExamRepository
	questionRepo repository.QuestionRepository
}

func NewAdminExamService(examRepo repository.ExamRepository, questionRepo repository.QuestionRepository) AdminExamService {
	return &adminExamService{examRepo: examRepo, questionRepo: questionRepo}
}

func (s *adminExamService) CreateQuestion(ctx context.Context, adminID uuid.UUID, req dto.CreateQuestionDTO) (*dto.QuestionResponseDTO, error) {
	text := strings.TrimSpace(req.QuestionText)
	correct := strings.TrimSpace(req.CorrectAnswer)
	options := make([]string, 0, len(req.Options))
	for _, opt := range req.Options {
		trimmed := strings.TrimSpace(opt)
		if trimmed == "" {
			return nil, apperr.InvalidInput("Options must not be empty.")
		}
		options = append(options, trimmed)
	}
	if text == "" || len(options) < 2 || correct == "" {
		return nil, apperr.InvalidInput("Please provide question text, at least two options, and a correct answer.")
	}
	if !slices.Contains(options, correct) {
		return nil, apperr.InvalidInput("Correct answer must be one of the provided options.")
	}

	question := model.Question{
		QuestionText:  text,
		Options:       options,
		CorrectAnswer: correct,
		CreatedBy:     adminID,
	}
	if err := s.questionRepo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Msg("Failed to create question in database")
		return nil, err
	}
	log.Info().Str("questionID", question.ID.String()).Str("adminID", adminID.String()).Msg("Question created")

	var resp dto.QuestionResponseDTO
	if err := copier.CopyWithOption(&resp, &question, dtoCopyOption); err != nil {
		log.Error().Err(err).Msg("Failed to copy Question model to QuestionResponseDTO")
		return nil, apperr.StorageFailure("Server error adding question.", err)
	}
	return &resp, nil
}

func (s *adminExamService) CreateExam(ctx context.Context, adminID uuid.UUID, req dto.CreateExamDTO) (*dto.ExamResponseDTO, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || len(req.Questions) == 0 {
		return nil, apperr.InvalidInput("Title, non-empty questions array, and duration are required.")
	}
	if req.Duration < 1 {
		return nil, apperr.InvalidInput("Duration must be a positive number.")
	}
	if req.StartTime != nil && req.EndTime != nil && !req.EndTime.After(*req.StartTime) {
		return nil, apperr.InvalidInput("End time must be after start time.")
	}

	questionIDs, err := parseIDs(req.Questions, "Invalid question ID format.")
	if err != nil {
		return nil, err
	}
	if hasDuplicates(questionIDs) {
		return nil, apperr.InvalidInput("Duplicate question IDs are not allowed.")
	}
	existing, err := s.questionRepo.CountExisting(ctx, questionIDs)
	if err != nil {
		return nil, err
	}
	if existing != int64(len(questionIDs)) {
		return nil, apperr.InvalidInput("One or more question IDs do not exist.")
	}

	studentIDs, err := parseIDs(req.AssignedTo, "Invalid assigned student ID format.")
	if err != nil {
		return nil, err
	}

	exam := model.Exam{
		Title:           title,
		Description:     strings.TrimSpace(req.Description),
		DurationMinutes: req.Duration,
		StartTime:       utcPtr(req.StartTime),
		EndTime:         utcPtr(req.EndTime),
		CreatedBy:       adminID,
	}
	for i, id := range questionIDs {
		exam.Questions = append(exam.Questions, model.ExamQuestion{Position: i, QuestionID: id})
	}
	seen := make(map[uuid.UUID]struct{}, len(studentIDs))
	for _, id := range studentIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		exam.Assignments = append(exam.Assignments, model.ExamAssignment{StudentID: id})
	}

	if err := s.examRepo.Create(ctx, &exam); err != nil {
		log.Error().Err(err).Msg("Failed to create exam in database")
		return nil, err
	}
	log.Info().Str("examID", exam.ID.String()).Int("questionCount", len(questionIDs)).Msg("Exam created")

	resp := toExamResponse(&exam)
	return &resp, nil
}

func (s *adminExamService) AssignStudent(ctx context.Context, examID, studentID uuid.UUID) error {
	if err := s.examRepo.AssignStudent(ctx, examID, studentID); err != nil {
		log.Warn().Err(err).Str("examID", examID.String()).Str("studentID", studentID.String()).Msg("Failed to assign student")
		return err
	}
	log.Info().Str("examID", examID.String()).Str("studentID", studentID.String()).Msg("Student assigned to exam")
	return nil
}

func toExamResponse(exam *model.Exam) dto.ExamResponseDTO {
	questionIDs := make([]uuid.UUID, 0, len(exam.Questions))
	for _, q := range exam.Questions {
		questionIDs = append(questionIDs, q.QuestionID)
	}
	studentIDs := make([]uuid.UUID, 0, len(exam.Assignments))
	for _, a := range exam.Assignments {
		studentIDs = append(studentIDs, a.StudentID)
	}
	return dto.ExamResponseDTO{
		ID:               exam.ID.String(),
		Title:            exam.Title,
		Description:      exam.Description,
		Duration:         exam.DurationMinutes,
		StartTime:        exam.StartTime,
		EndTime:          exam.EndTime,
		EffectiveEndTime: exam.Window().End,
		Questions:        idStrings(questionIDs),
		AssignedTo:       idStrings(studentIDs),
		CreatedBy:        exam.CreatedBy.String(),
		CreatedAt:        exam.CreatedAt,
	}
}

func parseIDs(raw []string, message string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := dto.ParseID(r, message)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func hasDuplicates(ids []uuid.UUID) bool {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
