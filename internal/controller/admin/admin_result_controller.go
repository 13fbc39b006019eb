package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/lshigami/examportal/internal/controller/response"
	"github.com/lshigami/examportal/internal/dto"
	"github.com/lshigami/examportal/internal/model"
	"github.com/lshigami/examportal/internal/service"
)

type AdminResultController struct {
	resultService service.ResultService
}

func NewAdminResultController(resultService service.ResultService) *AdminResultController {
	return &AdminResultController{resultService: resultService}
}

// GetAllResults godoc
// @Summary (Admin) List results
// @Description Newest first. Malformed filter IDs are ignored.
// @Tags Admin - Results
// @Produce json
// @Security BearerAuth
// @Param examId query string false "Filter by exam"
// @Param studentId query string false "Filter by student"
// @Success 200 {object} dto.APIResponse{data=[]dto.ResultSummaryDTO}
// @Failure 403 {object} dto.ErrorResponse "Admins only"
// @Failure 500 {object} dto.ErrorResponse
// @Router /results [get]
func (c *AdminResultController) GetAllResults(ctx *gin.Context) {
	filter := model.ResultFilter{
		ExamID:    dto.ParseOptionalID(ctx.Query("examId")),
		StudentID: dto.ParseOptionalID(ctx.Query("studentId")),
	}
	results, err := c.resultService.GetAllResults(ctx.Request.Context(), filter)
	if err != nil {
		response.Error(ctx, err)
		return
	}
	response.List(ctx, len(results), results)
}
