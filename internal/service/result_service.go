package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/examportal/internal/apperr"
	"github.com/lshigami/examportal/internal/dto"
	"github.com/lshigami/examportal/internal/model"
	"github.com/lshigami/examportal/internal/repository"
)

type ResultService interface {
	GetMyResults(ctx context.Context, studentID uuid.UUID) ([]dto.ResultSummaryDTO, error)
	// GetResultDetails is allowed for the result's owner and for admins.
	GetResultDetails(ctx context.Context, resultID, viewerID uuid.UUID, viewerIsAdmin bool) (*dto.ResultDetailDTO, error)
	GetAllResults(ctx context.Context, filter model.ResultFilter) ([]dto.ResultSummaryDTO, error)
}

type resultService struct {
	resultRepo   repository.ResultRepository
	questionRepo repository.QuestionRepository
}

func NewResultService(resultRepo repository.ResultRepository, questionRepo repository.QuestionRepository) ResultService {
	return &resultService{resultRepo: resultRepo, questionRepo: questionRepo}
}

func (s *resultService) GetMyResults(ctx context.Context, studentID uuid.UUID) ([]dto.ResultSummaryDTO, error) {
	results, err := s.resultRepo.GetResultsForStudent(ctx, studentID)
	if err != nil {
		log.Error().Err(err).Str("studentID", studentID.String()).Msg("Failed to get results for student")
		return nil, err
	}
	out, err := toResultSummaries(results)
	if err != nil {
		log.Error().Err(err).Msg("Failed to copy results to ResultSummaryDTO")
		return nil, apperr.StorageFailure("Server error fetching results.", err)
	}
	return out, nil
}

func (s *resultService) GetResultDetails(ctx context.Context, resultID, viewerID uuid.UUID, viewerIsAdmin bool) (*dto.ResultDetailDTO, error) {
	result, err := s.resultRepo.GetResultByID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	if result.StudentID != viewerID && !viewerIsAdmin {
		log.Warn().
			Str("viewerID", viewerID.String()).
			Str("resultID", resultID.String()).
			Str("ownerID", result.StudentID.String()).
			Msg("Denied access to another student's result")
		return nil, apperr.Forbidden("Not authorized to view this result.")
	}

	questionIDs := make([]uuid.UUID, 0, len(result.Answers))
	for _, a := range result.Answers {
		questionIDs = append(questionIDs, a.QuestionID)
	}
	questions, err := s.questionRepo.FindByIDs(ctx, questionIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	summary, err := toResultSummary(result)
	if err != nil {
		log.Error().Err(err).Msg("Failed to copy result to ResultSummaryDTO")
		return nil, apperr.StorageFailure("Server error fetching result details.", err)
	}
	resp := &dto.ResultDetailDTO{
		ResultSummaryDTO: summary,
		Answers:          make([]dto.AnswerDetailDTO, 0, len(result.Answers)),
	}
	for _, a := range result.Answers {
		detail := dto.AnswerDetailDTO{
			QuestionID:     a.QuestionID.String(),
			SelectedOption: a.SelectedOption,
			IsCorrect:      a.IsCorrect,
		}
		if q, ok := byID[a.QuestionID]; ok {
			detail.Question = &dto.AnswerQuestionDTO{
				ID:            q.ID.String(),
				QuestionText:  q.QuestionText,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
			}
		}
		resp.Answers = append(resp.Answers, detail)
	}
	return resp, nil
}

func (s *resultService) GetAllResults(ctx context.Context, filter model.ResultFilter) ([]dto.ResultSummaryDTO, error) {
	results, err := s.resultRepo.GetResultsByFilter(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get filtered results")
		return nil, err
	}
	out, err := toResultSummaries(results)
	if err != nil {
		log.Error().Err(err).Msg("Failed to copy results to ResultSummaryDTO")
		return nil, apperr.StorageFailure("Server error fetching results.", err)
	}
	return out, nil
}
