package user

import (
	"github.com/gin-gonic/gin"

	"github.com/lshigami/examportal/internal/controller/response"
	"github.com/lshigami/examportal/internal/dto"
	"github.com/lshigami/examportal/internal/middleware"
	"github.com/lshigami/examportal/internal/service"
)

type ExamController struct {
	userExamService service.UserExamService
}

func NewExamController(userExamService service.UserExamService) *ExamController {
	return &ExamController{userExamService: userExamService}
}

// GetMyExams godoc
// @Summary (Student) List exams assigned to me
// @Description Ordered by start time. Each entry carries its window status and whether it was already submitted.
// @Tags Student - Exams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AssignedExamDTO}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams/my-exams [get]
func (c *ExamController) GetMyExams(ctx *gin.Context) {
	caller, _ := middleware.CurrentUser(ctx)
	exams, err := c.userExamService.GetMyExams(ctx.Request.Context(), caller.ID)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.List(ctx, len(exams), exams)
}

// GetExam godoc
// @Summary (Student) Get an exam to take
// @Description Questions in exam order with their options. Correct answers are never included.
// @Tags Student - Exams
// @Produce json
// @Security BearerAuth
// @Param examId path string true "Exam ID"
// @Success 200 {object} dto.APIResponse{data=dto.ExamForStudentDTO}
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID format"
// @Failure 403 {object} dto.ErrorResponse "Not assigned"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{examId} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	caller, _ := middleware.CurrentUser(ctx)
	examID, err := dto.ParseID(ctx.Param("examId"), "Invalid exam ID format")
	if err != nil {
		response.Error(ctx, err)
		return
	}
	exam, err := c.userExamService.GetExamForStudent(ctx.Request.Context(), examID, caller.ID)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.OK(ctx, exam)
}
