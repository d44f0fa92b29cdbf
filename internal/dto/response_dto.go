package dto

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	Details      []string `json:"details,omitempty"`
	SubmissionID *uint    `json:"submissionId,omitempty"`
}

// SubmitResponse is the body returned after a successful submission.
type SubmitResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	SubmissionID uint          `json:"submissionId"`
	Result       ResultSummary `json:"result"`
}

// DataResponse wraps a successful payload.
type DataResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
