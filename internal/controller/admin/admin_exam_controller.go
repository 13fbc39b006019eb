package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/examportal/internal/controller/response"
	"github.com/lshigami/examportal/internal/dto"
	"github.com/lshigami/examportal/internal/middleware"
	"github.com/lshigami/examportal/internal/service"
)

type AdminExamController struct {
	adminExamService service.AdminExamService
}

func NewAdminExamController(adminExamService service.AdminExamService) *AdminExamController {
	return &AdminExamController{adminExamService: adminExamService}
}

// CreateQuestion godoc
// @Summary (Admin) Create a multiple-choice question
// @Description Options and correct answer are trimmed. The correct answer must be one of at least two non-empty options.
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.CreateQuestionDTO true "Question data"
// @Success 201 {object} dto.APIResponse{data=dto.QuestionResponseDTO}
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 403 {object} dto.ErrorResponse "Admins only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [post]
func (c *AdminExamController) CreateQuestion(ctx *gin.Context) {
	caller, _ := middleware.CurrentUser(ctx)
	var req dto.CreateQuestionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: Failed to bind JSON")
		response.BadRequest(ctx, "Please provide question text, at least two options, and a correct answer.")
		return
	}
	question, err := c.adminExamService.CreateQuestion(ctx.Request.Context(), caller.ID, req)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.Created(ctx, "Question created successfully", question)
}

// CreateExam godoc
// @Summary (Admin) Create an exam
// @Description Builds an exam from existing questions, in the given order. End time, if set, must be after start time.
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exam body dto.CreateExamDTO true "Exam data"
// @Success 201 {object} dto.APIResponse{data=dto.ExamResponseDTO}
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 403 {object} dto.ErrorResponse "Admins only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/exams [post]
func (c *AdminExamController) CreateExam(ctx *gin.Context) {
	caller, _ := middleware.CurrentUser(ctx)
	var req dto.CreateExamDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateExam: Failed to bind JSON")
		response.BadRequest(ctx, "Title, non-empty questions array, and duration are required.")
		return
	}
	exam, err := c.adminExamService.CreateExam(ctx.Request.Context(), caller.ID, req)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.Created(ctx, "Exam created successfully", exam)
}

// AssignStudent godoc
// @Summary (Admin) Assign a student to an exam
// @Description Idempotent.
// @Tags Admin - Exams
// @Produce json
// @Security BearerAuth
// @Param examId path string true "Exam ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid Exam or Student ID format"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /admin/exams/{examId}/assign/{studentId} [put]
func (c *AdminExamController) AssignStudent(ctx *gin.Context) {
	examID, err := dto.ParseID(ctx.Param("examId"), "Invalid Exam or Student ID format")
	if err != nil {
		response.Error(ctx, err)
		return
	}
	studentID, err := dto.ParseID(ctx.Param("studentId"), "Invalid Exam or Student ID format")
	if err != nil {
		response.Error(ctx, err)
		return
	}
	if err := c.adminExamService.AssignStudent(ctx.Request.Context(), examID, studentID); err != nil {
		response.Error(ctx, err)
		return
	}
	response.Message(ctx, "Student assigned successfully")
}
