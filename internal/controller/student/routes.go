package student

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the student-scoped endpoints on the /api/v1 group.
func RegisterRoutes(api *gin.RouterGroup, tests *TestController, submissions *SubmissionController) {
	student := api.Group("/students/:student_id")
	{
		student.GET("/tests", tests.ListTests)
		student.GET("/tests/stats", tests.GetStats)
		student.POST("/tests", tests.CreateTest)
		student.GET("/tests/:test_id", tests.GetTest)
		student.PUT("/tests/:test_id", tests.UpdateTest)
		student.DELETE("/tests/:test_id", tests.DeleteTest)
		student.PATCH("/tests/:test_id/publish", tests.TogglePublish)
		student.POST("/tests/:test_id/submissions", submissions.SubmitTest)

		student.GET("/submissions", submissions.ListSubmissions)
		student.GET("/submissions/:submission_id", submissions.GetSubmission)
	}
}
