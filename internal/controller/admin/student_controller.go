package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examdesk/internal/controller"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/service"
	"github.com/rs/zerolog/log"
)

type StudentController struct {
	studentService service.StudentService
}

func NewStudentController(studentService service.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// RegisterStudent godoc
// @Summary (Admin) Register a student
// @Description Creates a student record that tests and submissions are scoped to.
// @Tags Admin - Students
// @Accept json
// @Produce json
// @Param student_data body dto.StudentCreateDTO true "Student details"
// @Success 201 {object} dto.DataResponse{data=dto.StudentResponseDTO} "Student registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or duplicate email"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/students [post]
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var req dto.StudentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin RegisterStudent: Failed to bind JSON")
		controller.BindError(ctx, err)
		return
	}

	student, err := c.studentService.RegisterStudent(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to register student")
		return
	}
	ctx.JSON(http.StatusCreated, dto.DataResponse{Success: true, Message: "Student registered successfully", Data: student})
}

// GetStudent godoc
// @Summary (Admin) Get a student
// @Tags Admin - Students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.DataResponse{data=dto.StudentResponseDTO}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /admin/students/{student_id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id", "Student")
	if !ok {
		return
	}
	student, err := c.studentService.GetStudent(ctx.Request.Context(), studentID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch student")
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Success: true, Data: student})
}
