package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lshigami/examportal/internal/apperr"
	"github.com/lshigami/examportal/internal/model"
)

type ResultRepository interface {
	HasExistingResult(ctx context.Context, studentID, examID uuid.UUID) (bool, error)
	// CreateResult inserts the result and its answers atomically. A concurrent
	// insert for the same (student, exam) fails with ErrDuplicateKey.
	CreateResult(ctx context.Context, result *model.Result) error
	GetResultsForStudent(ctx context.Context, studentID uuid.UUID) ([]model.Result, error)
	GetResultByID(ctx context.Context, resultID uuid.UUID) (*model.Result, error)
	GetResultsByFilter(ctx context.Context, filter model.ResultFilter) ([]model.Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) HasExistingResult(ctx context.Context, studentID, examID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Result{}).
		Where("student_id = ? AND exam_id = ?", studentID, examID).
		Count(&count).Error
	if err != nil {
		return false, storageFailure("checking for an existing result", err)
	}
	return count > 0, nil
}

func (r *resultRepository) CreateResult(ctx context.Context, result *model.Result) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Exam").Create(result).Error
	})
	if err == nil {
		return nil
	}
	if isDuplicateKey(err) {
		return ErrDuplicateKey
	}
	return storageFailure("saving the result", err)
}

func summaryExam(columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Unscoped().Select(columns)
	}
}

func (r *resultRepository) GetResultsForStudent(ctx context.Context, studentID uuid.UUID) ([]model.Result, error) {
	var results []model.Result
	err := r.db.WithContext(ctx).
		Preload("Exam", summaryExam("id", "title", "description", "start_time", "duration")).
		Where("student_id = ?", studentID).
		Order("submitted_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, storageFailure("fetching results", err)
	}
	return results, nil
}

func (r *resultRepository) GetResultByID(ctx context.Context, resultID uuid.UUID) (*model.Result, error) {
	var result model.Result
	err := r.db.WithContext(ctx).
		Preload("Exam", summaryExam("id", "title")).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("result_answers.position ASC")
		}).
		First(&result, "id = ?", resultID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Result not found.")
	}
	if err != nil {
		return nil, storageFailure("fetching result details", err)
	}
	return &result, nil
}

func (r *resultRepository) GetResultsByFilter(ctx context.Context, filter model.ResultFilter) ([]model.Result, error) {
	query := r.db.WithContext(ctx).Preload("Exam", summaryExam("id", "title"))
	if filter.ExamID != nil {
		query = query.Where("exam_id = ?", *filter.ExamID)
	}
	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	}
	var results []model.Result
	if err := query.Order("submitted_at DESC").Find(&results).Error; err != nil {
		return nil, storageFailure("fetching results", err)
	}
	return results, nil
}
