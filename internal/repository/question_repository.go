package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lshigami/examportal/internal/model"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	CountExisting(ctx context.Context, ids []uuid.UUID) (int64, error)
	// FindByIDs includes soft-deleted questions so historical results stay reviewable.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		return storageFailure("creating the question", err)
	}
	return nil
}

func (r *questionRepository) CountExisting(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Question{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return 0, storageFailure("checking questions", err)
	}
	return count, nil
}

func (r *questionRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var questions []model.Question
	if err := r.db.WithContext(ctx).Unscoped().Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, storageFailure("loading questions", err)
	}
	return questions, nil
}
