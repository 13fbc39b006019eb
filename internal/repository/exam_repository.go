package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lshigami/examportal/internal/apperr"
	"github.com/lshigami/examportal/internal/model"
)

type ExamRepository interface {
	GetExamForSubmission(ctx context.Context, examID uuid.UUID) (*model.ExamForSubmission, error)
	Create(ctx context.Context, exam *model.Exam) error
	FindByIDWithQuestions(ctx context.Context, examID uuid.UUID) (*model.Exam, error)
	FindAssignedTo(ctx context.Context, studentID uuid.UUID) ([]model.Exam, error)
	IsAssigned(ctx context.Context, examID, studentID uuid.UUID) (bool, error)
	AssignStudent(ctx context.Context, examID, studentID uuid.UUID) error
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

type questionKeyRow struct {
	QuestionID    uuid.UUID
	CorrectAnswer *string
}

func (r *examRepository) GetExamForSubmission(ctx context.Context, examID uuid.UUID) (*model.ExamForSubmission, error) {
	db := r.db.WithContext(ctx)

	var exam model.Exam
	err := db.Select("id", "start_time", "end_time", "duration").First(&exam, "id = ?", examID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Exam not found.")
	}
	if err != nil {
		return nil, storageFailure("loading the exam", err)
	}

	var studentIDs []uuid.UUID
	if err := db.Model(&model.ExamAssignment{}).Where("exam_id = ?", examID).Pluck("student_id", &studentIDs).Error; err != nil {
		return nil, storageFailure("loading exam assignments", err)
	}

	// Questions deleted after the exam was authored come back with a NULL answer key.
	var rows []questionKeyRow
	err = db.Table("exam_questions").
		Select("exam_questions.question_id, questions.correct_answer").
		Joins("LEFT JOIN questions ON questions.id = exam_questions.question_id AND questions.deleted_at IS NULL").
		Where("exam_questions.exam_id = ?", examID).
		Order("exam_questions.position ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, storageFailure("loading exam questions", err)
	}

	out := &model.ExamForSubmission{
		ID:                 exam.ID,
		AssignedStudentIDs: make(map[uuid.UUID]struct{}, len(studentIDs)),
		StartTime:          exam.StartTime,
		EndTime:            exam.EndTime,
		DurationMinutes:    exam.DurationMinutes,
		Questions:          make([]model.QuestionKey, 0, len(rows)),
	}
	for _, id := range studentIDs {
		out.AssignedStudentIDs[id] = struct{}{}
	}
	for _, row := range rows {
		out.Questions = append(out.Questions, model.QuestionKey{ID: row.QuestionID, CorrectAnswer: row.CorrectAnswer})
	}
	return out, nil
}

func (r *examRepository) Create(ctx context.Context, exam *model.Exam) error {
	// GORM creates the ExamQuestion and ExamAssignment rows in the same transaction.
	if err := r.db.WithContext(ctx).Create(exam).Error; err != nil {
		return storageFailure("creating the exam", err)
	}
	return nil
}

func (r *examRepository) FindByIDWithQuestions(ctx context.Context, examID uuid.UUID) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("exam_questions.position ASC")
		}).
		Preload("Questions.Question").
		First(&exam, "id = ?", examID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Exam not found.")
	}
	if err != nil {
		return nil, storageFailure("loading the exam", err)
	}
	return &exam, nil
}

func (r *examRepository) FindAssignedTo(ctx context.Context, studentID uuid.UUID) ([]model.Exam, error) {
	var exams []model.Exam
	err := r.db.WithContext(ctx).
		Joins("JOIN exam_assignments ON exam_assignments.exam_id = exams.id").
		Where("exam_assignments.student_id = ?", studentID).
		Preload("Questions").
		Order("exams.start_time ASC").
		Find(&exams).Error
	if err != nil {
		return nil, storageFailure("fetching assigned exams", err)
	}
	return exams, nil
}

func (r *examRepository) IsAssigned(ctx context.Context, examID, studentID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ExamAssignment{}).
		Where("exam_id = ? AND student_id = ?", examID, studentID).
		Count(&count).Error
	if err != nil {
		return false, storageFailure("checking the exam assignment", err)
	}
	return count > 0, nil
}

func (r *examRepository) AssignStudent(ctx context.Context, examID, studentID uuid.UUID) error {
	db := r.db.WithContext(ctx)
	var count int64
	if err := db.Model(&model.Exam{}).Where("id = ?", examID).Count(&count).Error; err != nil {
		return storageFailure("loading the exam", err)
	}
	if count == 0 {
		return apperr.NotFound("Exam not found.")
	}
	assignment := model.ExamAssignment{ExamID: examID, StudentID: studentID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&assignment).Error; err != nil {
		return storageFailure("assigning the student", err)
	}
	return nil
}
