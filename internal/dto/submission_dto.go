package dto

import (
	"encoding/json"
	"time"
)

// SubmitTestDTO is the request body for submitting a test.
// Answer keys are either 0-based question positions ("0", "1", ...) or question keys.
// Values are kept raw: a value that is not a JSON string is graded as wrong, not rejected.
type SubmitTestDTO struct {
	Answers   map[string]json.RawMessage `json:"answers" binding:"required" swaggertype:"object"`
	TimeTaken int                        `json:"timeTaken" binding:"gte=0"` // seconds
}

type SubmitResultDTO struct {
	SubmissionID uint          `json:"submissionId"`
	Result       ResultSummary `json:"result"`
}

type ResultSummary struct {
	TestTitle      string  `json:"testTitle"`
	ObtainedMarks  int     `json:"obtainedMarks"`
	TotalMarks     int     `json:"totalMarks"`
	Percentage     float64 `json:"percentage"`
	CorrectAnswers int     `json:"correctAnswers"`
	WrongAnswers   int     `json:"wrongAnswers"`
	Unanswered     int     `json:"unanswered"`
	PendingReview  int     `json:"pendingReview"`
	TimeTaken      string  `json:"timeTaken"`
}

// SubmissionTestDTO is the slice of test metadata joined onto a submission listing.
type SubmissionTestDTO struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Subject    string `json:"subject"`
	TotalMarks int    `json:"total_marks"`
}

type SubmissionSummaryDTO struct {
	ID             uint              `json:"id"`
	TestID         uint              `json:"test_id"`
	Test           SubmissionTestDTO `json:"test" copier:"-"`
	StudentID      uint              `json:"student_id"`
	ObtainedMarks  int               `json:"obtained_marks"`
	TotalMarks     int               `json:"total_marks"`
	Percentage     float64           `json:"percentage"`
	CorrectAnswers int               `json:"correct_answers"`
	WrongAnswers   int               `json:"wrong_answers"`
	Unanswered     int               `json:"unanswered"`
	PendingReview  int               `json:"pending_review"`
	TimeTaken      int               `json:"time_taken"`
	SubmittedAt    time.Time         `json:"submitted_at"`
	IsEvaluated    bool              `json:"is_evaluated"`
}

// SubmissionDetailDTO is a submission joined with the full test it was graded against.
type SubmissionDetailDTO struct {
	ID             uint              `json:"id"`
	TestID         uint              `json:"test_id"`
	Test           TestResponseDTO   `json:"test" copier:"-"`
	StudentID      uint              `json:"student_id"`
	Answers        map[string]string `json:"answers" copier:"-"`
	ObtainedMarks  int               `json:"obtained_marks"`
	TotalMarks     int               `json:"total_marks"`
	Percentage     float64           `json:"percentage"`
	CorrectAnswers int               `json:"correct_answers"`
	WrongAnswers   int               `json:"wrong_answers"`
	Unanswered     int               `json:"unanswered"`
	PendingReview  int               `json:"pending_review"`
	TimeTaken      int               `json:"time_taken"`
	SubmittedAt    time.Time         `json:"submitted_at"`
	IsEvaluated    bool              `json:"is_evaluated"`
	TeacherRemarks string            `json:"teacher_remarks"`
}
