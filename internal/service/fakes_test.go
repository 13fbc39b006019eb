package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lshigami/examportal/internal/apperr"
	"github.com/lshigami/examportal/internal/model"
	"github.com/lshigami/examportal/internal/repository"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func strPtr(s string) *string { return &s }

// fakeExamRepo serves exams from memory. Only the methods a test needs are populated.
type fakeExamRepo struct {
	mu          sync.Mutex
	submissions map[uuid.UUID]*model.ExamForSubmission
	exams       map[uuid.UUID]*model.Exam
	created     []*model.Exam
	assigned    map[uuid.UUID]map[uuid.UUID]bool
	err         error
}

func newFakeExamRepo() *fakeExamRepo {
	return &fakeExamRepo{
		submissions: map[uuid.UUID]*model.ExamForSubmission{},
		exams:       map[uuid.UUID]*model.Exam{},
		assigned:    map[uuid.UUID]map[uuid.UUID]bool{},
	}
}

func (f *fakeExamRepo) GetExamForSubmission(_ context.Context, examID uuid.UUID) (*model.ExamForSubmission, error) {
	if f.err != nil {
		return nil, f.err
	}
	exam, ok := f.submissions[examID]
	if !ok {
		return nil, apperr.NotFound("Exam not found.")
	}
	return exam, nil
}

func (f *fakeExamRepo) Create(_ context.Context, exam *model.Exam) error {
	if f.err != nil {
		return f.err
	}
	if exam.ID == uuid.Nil {
		exam.ID = uuid.New()
	}
	f.created = append(f.created, exam)
	f.exams[exam.ID] = exam
	return nil
}

func (f *fakeExamRepo) FindByIDWithQuestions(_ context.Context, examID uuid.UUID) (*model.Exam, error) {
	exam, ok := f.exams[examID]
	if !ok {
		return nil, apperr.NotFound("Exam not found.")
	}
	return exam, nil
}

func (f *fakeExamRepo) FindAssignedTo(_ context.Context, studentID uuid.UUID) ([]model.Exam, error) {
	var out []model.Exam
	for id, exam := range f.exams {
		if f.assigned[id][studentID] {
			out = append(out, *exam)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (f *fakeExamRepo) IsAssigned(_ context.Context, examID, studentID uuid.UUID) (bool, error) {
	return f.assigned[examID][studentID], nil
}

func (f *fakeExamRepo) AssignStudent(_ context.Context, examID, studentID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.exams[examID]; !ok {
		return apperr.NotFound("Exam not found.")
	}
	if f.assigned[examID] == nil {
		f.assigned[examID] = map[uuid.UUID]bool{}
	}
	f.assigned[examID][studentID] = true
	return nil
}

type resultKey struct{ student, exam uuid.UUID }

// fakeResultRepo enforces the (student, exam) uniqueness the database would.
type fakeResultRepo struct {
	mu      sync.Mutex
	results map[resultKey]*model.Result
	order   []*model.Result
	writes  int

	// hideExisting makes HasExistingResult always report false, simulating a
	// concurrent submitter that passed the pre-check.
	hideExisting bool
	createErr    error
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{results: map[resultKey]*model.Result{}}
}

func (f *fakeResultRepo) HasExistingResult(_ context.Context, studentID, examID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hideExisting {
		return false, nil
	}
	_, ok := f.results[resultKey{studentID, examID}]
	return ok, nil
}

func (f *fakeResultRepo) CreateResult(ctx context.Context, result *model.Result) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	key := resultKey{result.StudentID, result.ExamID}
	if _, ok := f.results[key]; ok {
		return repository.ErrDuplicateKey
	}
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}
	f.results[key] = result
	f.order = append(f.order, result)
	f.writes++
	return nil
}

func (f *fakeResultRepo) GetResultsForStudent(_ context.Context, studentID uuid.UUID) ([]model.Result, error) {
	var out []model.Result
	for i := len(f.order) - 1; i >= 0; i-- {
		if f.order[i].StudentID == studentID {
			out = append(out, *f.order[i])
		}
	}
	return out, nil
}

func (f *fakeResultRepo) GetResultByID(_ context.Context, resultID uuid.UUID) (*model.Result, error) {
	for _, r := range f.order {
		if r.ID == resultID {
			return r, nil
		}
	}
	return nil, apperr.NotFound("Result not found.")
}

func (f *fakeResultRepo) GetResultsByFilter(_ context.Context, filter model.ResultFilter) ([]model.Result, error) {
	var out []model.Result
	for i := len(f.order) - 1; i >= 0; i-- {
		r := f.order[i]
		if filter.ExamID != nil && r.ExamID != *filter.ExamID {
			continue
		}
		if filter.StudentID != nil && r.StudentID != *filter.StudentID {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

type fakeQuestionRepo struct {
	questions map[uuid.UUID]model.Question
	created   []model.Question
}

func newFakeQuestionRepo(questions ...model.Question) *fakeQuestionRepo {
	f := &fakeQuestionRepo{questions: map[uuid.UUID]model.Question{}}
	for _, q := range questions {
		f.questions[q.ID] = q
	}
	return f
}

func (f *fakeQuestionRepo) Create(_ context.Context, q *model.Question) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	f.questions[q.ID] = *q
	f.created = append(f.created, *q)
	return nil
}

func (f *fakeQuestionRepo) CountExisting(_ context.Context, ids []uuid.UUID) (int64, error) {
	seen := map[uuid.UUID]bool{}
	for _, id := range ids {
		if _, ok := f.questions[id]; ok {
			seen[id] = true
		}
	}
	return int64(len(seen)), nil
}

func (f *fakeQuestionRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Question, error) {
	var out []model.Question
	for _, id := range ids {
		if q, ok := f.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

var errConnectionReset = errors.New("connection reset by peer")
