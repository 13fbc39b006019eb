package user

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/examportal/internal/controller/response"
	"github.com/lshigami/examportal/internal/dto"
	"github.com/lshigami/examportal/internal/middleware"
	"github.com/lshigami/examportal/internal/service"
)

type ResultController struct {
	submissionService service.SubmissionService
	resultService     service.ResultService
}

func NewResultController(submissionService service.SubmissionService, resultService service.ResultService) *ResultController {
	return &ResultController{
		submissionService: submissionService,
		resultService:     resultService,
	}
}

// SubmitExam godoc
// @Summary (Student) Submit answers for an exam
// @Description Scores the submitted answers against the exam's answer key and stores the result. Each student can submit an exam once, inside its time window.
// @Tags Student - Results
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param examId path string true "Exam ID"
// @Param submission body dto.SubmitExamRequest true "Answers, one per question. selectedOption may be null."
// @Success 201 {object} dto.APIResponse{data=dto.SubmitResultData} "Exam submitted successfully!"
// @Failure 400 {object} dto.ErrorResponse "Invalid input, exam not started or deadline passed"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Not assigned to this exam"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Already submitted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results/submit/{examId} [post]
func (c *ResultController) SubmitExam(ctx *gin.Context) {
	caller, _ := middleware.CurrentUser(ctx)
	examID, err := dto.ParseID(ctx.Param("examId"), "Invalid Exam ID format provided.")
	if err != nil {
		response.Error(ctx, err)
		return
	}

	var req dto.SubmitExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("examID", examID.String()).Msg("SubmitExam: Failed to bind JSON")
		response.BadRequest(ctx, "Answers must be submitted as an array.")
		return
	}
	answers, err := req.ToSubmittedAnswers()
	if err != nil {
		response.Error(ctx, err)
		return
	}

	result, err := c.submissionService.SubmitExam(ctx.Request.Context(), examID, caller.ID, answers)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.Created(ctx, "Exam submitted successfully!", dto.SubmitResultData{
		ID:             result.ID.String(),
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
	})
}

// GetMyResults godoc
// @Summary (Student) List my results
// @Description Results of the calling student, newest first, without per-question answers.
// @Tags Student - Results
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ResultSummaryDTO}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /results/my-results [get]
func (c *ResultController) GetMyResults(ctx *gin.Context) {
	caller, _ := middleware.CurrentUser(ctx)
	results, err := c.resultService.GetMyResults(ctx.Request.Context(), caller.ID)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.List(ctx, len(results), results)
}

// GetResultDetails godoc
// @Summary Get a result with per-question review
// @Description Available to the student who owns the result and to admins.
// @Tags Student - Results
// @Produce json
// @Security BearerAuth
// @Param resultId path string true "Result ID"
// @Success 200 {object} dto.APIResponse{data=dto.ResultDetailDTO}
// @Failure 400 {object} dto.ErrorResponse "Invalid Result ID format"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /results/{resultId} [get]
func (c *ResultController) GetResultDetails(ctx *gin.Context) {
	caller, _ := middleware.CurrentUser(ctx)
	resultID, err := dto.ParseID(ctx.Param("resultId"), "Invalid Result ID format.")
	if err != nil {
		response.Error(ctx, err)
		return
	}
	detail, err := c.resultService.GetResultDetails(ctx.Request.Context(), resultID, caller.ID, caller.IsAdmin())
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, detail)
}
