package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lshigami/examportal/config"
	"github.com/lshigami/examportal/internal/apperr"
	"github.com/lshigami/examportal/internal/controller/admin"
	"github.com/lshigami/examportal/internal/controller/user"
	"github.com/lshigami/examportal/internal/dto"
	"github.com/lshigami/examportal/internal/middleware"
	"github.com/lshigami/examportal/internal/model"
)

const testSecret = "controller-test-secret"

type stubSubmission struct {
	err      error
	gotExam  uuid.UUID
	gotUser  uuid.UUID
	answers  []model.SubmittedAnswer
	returned *model.Result
}

func (s *stubSubmission) SubmitExam(_ context.Context, examID, studentID uuid.UUID, answers []model.SubmittedAnswer) (*model.Result, error) {
	s.gotExam, s.gotUser, s.answers = examID, studentID, answers
	if s.err != nil {
		return nil, s.err
	}
	s.returned = &model.Result{ID: uuid.New(), Score: 1, TotalQuestions: 3, Percentage: 33.33}
	return s.returned, nil
}

type stubResults struct {
	filter    model.ResultFilter
	detailErr error
	gotAdmin  bool
}

func (s *stubResults) GetMyResults(context.Context, uuid.UUID) ([]dto.ResultSummaryDTO, error) {
	return []dto.ResultSummaryDTO{{ID: "r1"}, {ID: "r2"}}, nil
}

func (s *stubResults) GetResultDetails(_ context.Context, resultID, _ uuid.UUID, isAdmin bool) (*dto.ResultDetailDTO, error) {
	s.gotAdmin = isAdmin
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	return &dto.ResultDetailDTO{ResultSummaryDTO: dto.ResultSummaryDTO{ID: resultID.String()}}, nil
}

func (s *stubResults) GetAllResults(_ context.Context, filter model.ResultFilter) ([]dto.ResultSummaryDTO, error) {
	s.filter = filter
	return nil, nil
}

type stubUserExams struct{}

func (stubUserExams) GetMyExams(context.Context, uuid.UUID) ([]dto.AssignedExamDTO, error) {
	return []dto.AssignedExamDTO{{ID: "e1", Status: "open"}}, nil
}

func (stubUserExams) GetExamForStudent(_ context.Context, examID, _ uuid.UUID) (*dto.ExamForStudentDTO, error) {
	return &dto.ExamForStudentDTO{ID: examID.String()}, nil
}

type stubAdminExams struct{ assigned int }

func (s *stubAdminExams) CreateQuestion(context.Context, uuid.UUID, dto.CreateQuestionDTO) (*dto.QuestionResponseDTO, error) {
	return &dto.QuestionResponseDTO{ID: "q1"}, nil
}

func (s *stubAdminExams) CreateExam(context.Context, uuid.UUID, dto.CreateExamDTO) (*dto.ExamResponseDTO, error) {
	return nil, apperr.InvalidInput("One or more question IDs do not exist.")
}

func (s *stubAdminExams) AssignStudent(context.Context, uuid.UUID, uuid.UUID) error {
	s.assigned++
	return nil
}

type harness struct {
	router     *gin.Engine
	submission *stubSubmission
	results    *stubResults
	adminExams *stubAdminExams
	student    middleware.Identity
	admin      middleware.Identity
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := &harness{
		submission: &stubSubmission{},
		results:    &stubResults{},
		adminExams: &stubAdminExams{},
		student:    middleware.Identity{ID: uuid.New(), Role: middleware.RoleStudent},
		admin:      middleware.Identity{ID: uuid.New(), Role: middleware.RoleAdmin},
	}
	cfg := &config.Config{JWT: config.JWT{Secret: testSecret}}
	ctrl := NewController(
		user.NewResultController(h.submission, h.results),
		user.NewExamController(stubUserExams{}),
		admin.NewAdminExamController(h.adminExams),
		admin.NewAdminResultController(h.results),
		cfg,
	)
	h.router = gin.New()
	ctrl.RegisterRoutes(h.router)
	return h
}

func (h *harness) do(t *testing.T, who middleware.Identity, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if who.ID != uuid.Nil {
		token, err := middleware.GenerateToken(who, testSecret, time.Hour)
		if err != nil {
			t.Fatal(err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	var payload map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %q", w.Body.String())
	}
	return w, payload
}

func TestSubmitExamEndpoint(t *testing.T) {
	h := newHarness(t)
	examID, q1 := uuid.New(), uuid.New()
	body := `{"answers":[{"questionId":"` + q1.String() + `","selectedOption":"4"},{"questionId":"` + uuid.NewString() + `","selectedOption":null}]}`

	w, payload := h.do(t, h.student, http.MethodPost, "/api/v1/results/submit/"+examID.String(), body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if payload["success"] != true || payload["message"] != "Exam submitted successfully!" {
		t.Errorf("unexpected envelope: %v", payload)
	}
	data := payload["data"].(map[string]interface{})
	if data["_id"] != h.submission.returned.ID.String() || data["score"] != float64(1) ||
		data["totalQuestions"] != float64(3) || data["percentage"] != 33.33 {
		t.Errorf("unexpected data: %v", data)
	}
	if h.submission.gotExam != examID || h.submission.gotUser != h.student.ID {
		t.Error("exam or caller identity not passed through")
	}
	if len(h.submission.answers) != 2 || h.submission.answers[1].SelectedOption != nil {
		t.Errorf("answers not converted: %+v", h.submission.answers)
	}
}

func TestSubmitExamEndpointErrors(t *testing.T) {
	validBody := `{"answers":[]}`
	tests := []struct {
		name       string
		path       string
		body       string
		serviceErr error
		who        func(h *harness) middleware.Identity
		wantStatus int
		wantMsg    string
	}{
		{name: "bad exam id", path: "not-a-uuid", body: validBody, wantStatus: http.StatusBadRequest, wantMsg: "Invalid Exam ID format provided."},
		{name: "answers not an array", body: `{"answers":"x"}`, wantStatus: http.StatusBadRequest, wantMsg: "Answers must be submitted as an array."},
		{name: "answers missing", body: `{}`, wantStatus: http.StatusBadRequest, wantMsg: "Answers must be submitted as an array."},
		{name: "bad question id", body: `{"answers":[{"questionId":"nope"}]}`, wantStatus: http.StatusBadRequest, wantMsg: "Answers array contains invalid items or invalid question IDs."},
		{name: "not started", body: validBody, serviceErr: apperr.NotStarted("Exam has not started yet."), wantStatus: http.StatusBadRequest, wantMsg: "Exam has not started yet."},
		{name: "expired", body: validBody, serviceErr: apperr.Expired("The submission deadline for this exam has passed."), wantStatus: http.StatusBadRequest},
		{name: "forbidden", body: validBody, serviceErr: apperr.Forbidden("You are not assigned to take this exam."), wantStatus: http.StatusForbidden},
		{name: "not found", body: validBody, serviceErr: apperr.NotFound("Exam not found."), wantStatus: http.StatusNotFound},
		{name: "already submitted", body: validBody, serviceErr: apperr.AlreadySubmitted("You have already submitted result for this exam."), wantStatus: http.StatusConflict},
		{name: "storage failure", body: validBody, serviceErr: apperr.StorageFailure("Server error while saving the result.", context.DeadlineExceeded), wantStatus: http.StatusInternalServerError},
		{name: "admin cannot submit", body: validBody, who: func(h *harness) middleware.Identity { return h.admin }, wantStatus: http.StatusForbidden},
		{name: "anonymous", body: validBody, who: func(*harness) middleware.Identity { return middleware.Identity{} }, wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.submission.err = tt.serviceErr
			path := tt.path
			if path == "" {
				path = uuid.NewString()
			}
			who := h.student
			if tt.who != nil {
				who = tt.who(h)
			}

			w, payload := h.do(t, who, http.MethodPost, "/api/v1/results/submit/"+path, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if payload["success"] != false {
				t.Errorf("success = %v, want false", payload["success"])
			}
			if tt.wantMsg != "" && payload["message"] != tt.wantMsg {
				t.Errorf("message = %v, want %q", payload["message"], tt.wantMsg)
			}
		})
	}
}

func TestResultReadEndpoints(t *testing.T) {
	h := newHarness(t)

	w, payload := h.do(t, h.student, http.MethodGet, "/api/v1/results/my-results", "")
	if w.Code != http.StatusOK || payload["count"] != float64(2) {
		t.Errorf("my-results: %d %v", w.Code, payload)
	}

	resultID := uuid.New()
	w, payload = h.do(t, h.admin, http.MethodGet, "/api/v1/results/"+resultID.String(), "")
	if w.Code != http.StatusOK || !h.results.gotAdmin {
		t.Errorf("admin detail: %d %v", w.Code, payload)
	}

	h.results.detailErr = apperr.Forbidden("Not authorized to view this result.")
	if w, _ := h.do(t, h.student, http.MethodGet, "/api/v1/results/"+resultID.String(), ""); w.Code != http.StatusForbidden {
		t.Errorf("foreign detail: status = %d, want 403", w.Code)
	}
	if w, _ := h.do(t, h.student, http.MethodGet, "/api/v1/results/bad-id", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad id: status = %d, want 400", w.Code)
	}
}

func TestAdminResultsListIgnoresMalformedFilters(t *testing.T) {
	h := newHarness(t)
	examID := uuid.New()

	w, payload := h.do(t, h.admin, http.MethodGet, "/api/v1/results?examId="+examID.String()+"&studentId=garbage", "")
	if w.Code != http.StatusOK || payload["count"] != float64(0) {
		t.Fatalf("list: %d %v", w.Code, payload)
	}
	if h.results.filter.ExamID == nil || *h.results.filter.ExamID != examID {
		t.Errorf("exam filter = %v, want %v", h.results.filter.ExamID, examID)
	}
	if h.results.filter.StudentID != nil {
		t.Error("malformed student filter must be ignored")
	}

	if w, _ := h.do(t, h.student, http.MethodGet, "/api/v1/results", ""); w.Code != http.StatusForbidden {
		t.Errorf("student listing all results: status = %d, want 403", w.Code)
	}
}

func TestExamAndAdminEndpoints(t *testing.T) {
	h := newHarness(t)

	if w, payload := h.do(t, h.student, http.MethodGet, "/api/v1/exams/my-exams", ""); w.Code != http.StatusOK || payload["count"] != float64(1) {
		t.Errorf("my-exams: %d %v", w.Code, payload)
	}
	if w, _ := h.do(t, h.student, http.MethodGet, "/api/v1/exams/"+uuid.NewString(), ""); w.Code != http.StatusOK {
		t.Errorf("exam detail: status = %d", w.Code)
	}

	body := `{"questionText":"2 + 2","options":["3","4"],"correctAnswer":"4"}`
	if w, _ := h.do(t, h.admin, http.MethodPost, "/api/v1/admin/questions", body); w.Code != http.StatusCreated {
		t.Errorf("create question: status = %d", w.Code)
	}
	if w, _ := h.do(t, h.student, http.MethodPost, "/api/v1/admin/questions", body); w.Code != http.StatusForbidden {
		t.Errorf("student creating question: status = %d, want 403", w.Code)
	}

	examBody := `{"title":"Final","questions":["` + uuid.NewString() + `"],"duration":30}`
	if w, payload := h.do(t, h.admin, http.MethodPost, "/api/v1/admin/exams", examBody); w.Code != http.StatusBadRequest || payload["message"] != "One or more question IDs do not exist." {
		t.Errorf("create exam: %d %v", w.Code, payload)
	}

	path := "/api/v1/admin/exams/" + uuid.NewString() + "/assign/" + uuid.NewString()
	if w, _ := h.do(t, h.admin, http.MethodPut, path, ""); w.Code != http.StatusOK || h.adminExams.assigned != 1 {
		t.Errorf("assign: status = %d, calls = %d", w.Code, h.adminExams.assigned)
	}
}
