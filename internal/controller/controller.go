package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/lshigami/examportal/config"
	"github.com/lshigami/examportal/internal/controller/admin"
	"github.com/lshigami/examportal/internal/controller/user"
	"github.com/lshigami/examportal/internal/middleware"
)

type Controller struct {
	results      *user.ResultController
	exams        *user.ExamController
	adminExams   *admin.AdminExamController
	adminResults *admin.AdminResultController
	cfg          *config.Config
}

func NewController(
	results *user.ResultController,
	exams *user.ExamController,
	adminExams *admin.AdminExamController,
	adminResults *admin.AdminResultController,
	cfg *config.Config,
) *Controller {
	return &Controller{
		results:      results,
		exams:        exams,
		adminExams:   adminExams,
		adminResults: adminResults,
		cfg:          cfg,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	apiV1 := router.Group("/api/v1", middleware.Authenticate(ctrl.cfg.JWT.Secret))
	{
		studentOnly := middleware.RequireRole(middleware.RoleStudent)
		adminOnly := middleware.RequireRole(middleware.RoleAdmin)

		results := apiV1.Group("/results")
		results.POST("/submit/:examId", studentOnly, middleware.RateLimit(ctrl.cfg.RateLimit.RPS, ctrl.cfg.RateLimit.Burst), ctrl.results.SubmitExam)
		results.GET("/my-results", studentOnly, ctrl.results.GetMyResults)
		results.GET("/:resultId", ctrl.results.GetResultDetails) // owner or admin, checked in the service
		results.GET("", adminOnly, ctrl.adminResults.GetAllResults)

		exams := apiV1.Group("/exams", studentOnly)
		exams.GET("/my-exams", ctrl.exams.GetMyExams)
		exams.GET("/:examId", ctrl.exams.GetExam)

		adminGroup := apiV1.Group("/admin", adminOnly)
		adminGroup.POST("/questions", ctrl.adminExams.CreateQuestion)
		adminGroup.POST("/exams", ctrl.adminExams.CreateExam)
		adminGroup.PUT("/exams/:examId/assign/:studentId", ctrl.adminExams.AssignStudent)
	}
}
