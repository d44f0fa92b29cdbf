package student

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examdesk/internal/controller"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/service"
	"github.com/rs/zerolog/log"
)

type TestController struct {
	testService service.TestService
}

func NewTestController(testService service.TestService) *TestController {
	return &TestController{testService: testService}
}

// ListTests godoc
// @Summary List a student's tests
// @Description Active tests authored by the student, newest first.
// @Tags Student - Tests
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.DataResponse{data=[]dto.TestResponseDTO}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{student_id}/tests [get]
func (c *TestController) ListTests(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id", "Student")
	if !ok {
		return
	}
	tests, err := c.testService.ListTests(ctx.Request.Context(), studentID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch tests")
		return
	}
	count := len(tests)
	ctx.JSON(http.StatusOK, dto.DataResponse{Success: true, Message: "Tests retrieved successfully", Count: &count, Data: tests})
}

// GetStats godoc
// @Summary Test statistics for a student
// @Tags Student - Tests
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.DataResponse{data=dto.TestStatsDTO}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{student_id}/tests/stats [get]
func (c *TestController) GetStats(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id", "Student")
	if !ok {
		return
	}
	stats, err := c.testService.GetStats(ctx.Request.Context(), studentID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch test statistics")
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Success: true, Message: "Test statistics retrieved successfully", Data: stats})
}

// CreateTest godoc
// @Summary Create a test
// @Description A student authors a test with its questions. Total marks must cover the sum of question marks.
// @Tags Student - Tests
// @Accept json
// @Produce json
// @Param student_id path int true "Student ID"
// @Param test_data body dto.TestCreateDTO true "Test and questions"
// @Success 201 {object} dto.DataResponse{data=dto.TestResponseDTO}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{student_id}/tests [post]
func (c *TestController) CreateTest(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id", "Student")
	if !ok {
		return
	}
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateTest: Failed to bind JSON")
		controller.BindError(ctx, err)
		return
	}
	test, err := c.testService.CreateTest(ctx.Request.Context(), studentID, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create test")
		return
	}
	ctx.JSON(http.StatusCreated, dto.DataResponse{Success: true, Message: "Test created successfully", Data: test})
}

// GetTest godoc
// @Summary Get one of a student's tests
// @Tags Student - Tests
// @Produce json
// @Param student_id path int true "Student ID"
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.DataResponse{data=dto.TestResponseDTO}
// @Failure 404 {object} dto.ErrorResponse "Student or test not found"
// @Router /students/{student_id}/tests/{test_id} [get]
func (c *TestController) GetTest(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id", "Student")
	if !ok {
		return
	}
	testID, ok := controller.ParseID(ctx, "test_id", "Test")
	if !ok {
		return
	}
	test, err := c.testService.GetTest(ctx.Request.Context(), studentID, testID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch test")
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Success: true, Message: "Test retrieved successfully", Data: test})
}

// UpdateTest godoc
// @Summary Update a test
// @Description Partial update. Supplying questions replaces the whole list and assigns new question keys.
// @Tags Student - Tests
// @Accept json
// @Produce json
// @Param student_id path int true "Student ID"
// @Param test_id path int true "Test ID"
// @Param test_data body dto.TestUpdateDTO true "Fields to change"
// @Success 200 {object} dto.DataResponse{data=dto.TestResponseDTO}
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Student or test not found"
// @Router /students/{student_id}/tests/{test_id} [put]
func (c *TestController) UpdateTest(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id", "Student")
	if !ok {
		return
	}
	testID, ok := controller.ParseID(ctx, "test_id", "Test")
	if !ok {
		return
	}
	var req dto.TestUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateTest: Failed to bind JSON")
		controller.BindError(ctx, err)
		return
	}
	test, err := c.testService.UpdateTest(ctx.Request.Context(), studentID, testID, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update test")
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Success: true, Message: "Test updated successfully", Data: test})
}

// DeleteTest godoc
// @Summary Delete a test
// @Description Soft delete; existing submissions keep their test.
// @Tags Student - Tests
// @Produce json
// @Param student_id path int true "Student ID"
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Student or test not found"
// @Router /students/{student_id}/tests/{test_id} [delete]
func (c *TestController) DeleteTest(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id", "Student")
	if !ok {
		return
	}
	testID, ok := controller.ParseID(ctx, "test_id", "Test")
	if !ok {
		return
	}
	if err := c.testService.DeleteTest(ctx.Request.Context(), studentID, testID); err != nil {
		controller.RespondError(ctx, err, "Failed to delete test")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Test deleted successfully"})
}

// TogglePublish godoc
// @Summary Publish or unpublish a test
// @Tags Student - Tests
// @Produce json
// @Param student_id path int true "Student ID"
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.DataResponse{data=dto.TestResponseDTO}
// @Failure 404 {object} dto.ErrorResponse "Student or test not found"
// @Router /students/{student_id}/tests/{test_id}/publish [patch]
func (c *TestController) TogglePublish(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id", "Student")
	if !ok {
		return
	}
	testID, ok := controller.ParseID(ctx, "test_id", "Test")
	if !ok {
		return
	}
	test, err := c.testService.TogglePublish(ctx.Request.Context(), studentID, testID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update test status")
		return
	}
	msg := "Test unpublished successfully"
	if test.IsPublished {
		msg = "Test published successfully"
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Success: true, Message: msg, Data: test})
}
