package student

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examdesk/internal/controller"
	"github.com/lshigami/examdesk/internal/dto"
	"github.com/lshigami/examdesk/internal/service"
	"github.com/rs/zerolog/log"
)

type SubmissionController struct {
	submissionService service.SubmissionService
}

func NewSubmissionController(submissionService service.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// SubmitTest godoc
// @Summary Submit answers for a test
// @Description Grades multiple-choice and true-false answers and records the one allowed submission for this test.
// @Description Answer keys are 0-based question positions or question keys.
// @Description Values that are not JSON strings are recorded and graded as wrong; null means unanswered.
// @Tags Student - Submissions
// @Accept json
// @Produce json
// @Param student_id path int true "Student ID"
// @Param test_id path int true "Test ID"
// @Param submission_data body dto.SubmitTestDTO true "Answers and time taken in seconds"
// @Success 200 {object} dto.SubmitResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input, or already submitted (submissionId included)"
// @Failure 404 {object} dto.ErrorResponse "Student or test not found"
// @Failure 422 {object} dto.ErrorResponse "Test cannot be graded (zero total marks)"
// @Failure 500 {object} dto.ErrorResponse "Error saving submission"
// @Router /students/{student_id}/tests/{test_id}/submissions [post]
func (c *SubmissionController) SubmitTest(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id", "Student")
	if !ok {
		return
	}
	testID, ok := controller.ParseID(ctx, "test_id", "Test")
	if !ok {
		return
	}

	var req dto.SubmitTestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitTest: Failed to bind JSON")
		controller.BindError(ctx, err)
		return
	}

	log.Info().Uint("testID", testID).Uint("studentID", studentID).Int("answerCount", len(req.Answers)).Msg("Received test submission")

	result, err := c.submissionService.Submit(ctx.Request.Context(), testID, studentID, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to submit test")
		return
	}
	ctx.JSON(http.StatusOK, dto.SubmitResponse{
		Success:      true,
		Message:      "Test submitted successfully",
		SubmissionID: result.SubmissionID,
		Result:       result.Result,
	})
}

// ListSubmissions godoc
// @Summary List a student's submissions
// @Description Newest first, each with the test's title, subject and total marks.
// @Tags Student - Submissions
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.DataResponse{data=[]dto.SubmissionSummaryDTO}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{student_id}/submissions [get]
func (c *SubmissionController) ListSubmissions(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id", "Student")
	if !ok {
		return
	}
	submissions, err := c.submissionService.ListStudentSubmissions(ctx.Request.Context(), studentID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch submissions")
		return
	}
	count := len(submissions)
	ctx.JSON(http.StatusOK, dto.DataResponse{Success: true, Count: &count, Data: submissions})
}

// GetSubmission godoc
// @Summary Get a submission
// @Description Full submission detail joined with the test it was graded against.
// @Tags Student - Submissions
// @Produce json
// @Param student_id path int true "Student ID"
// @Param submission_id path int true "Submission ID"
// @Success 200 {object} dto.DataResponse{data=dto.SubmissionDetailDTO}
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /students/{student_id}/submissions/{submission_id} [get]
func (c *SubmissionController) GetSubmission(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id", "Student")
	if !ok {
		return
	}
	submissionID, ok := controller.ParseID(ctx, "submission_id", "Submission")
	if !ok {
		return
	}
	detail, err := c.submissionService.GetSubmissionDetails(ctx.Request.Context(), studentID, submissionID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to fetch submission")
		return
	}
	ctx.JSON(http.StatusOK, dto.DataResponse{Success: true, Data: detail})
}
