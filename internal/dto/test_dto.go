package dto

import "time"

// QuestionCreateDTO is used within TestCreateDTO and TestUpdateDTO.
type QuestionCreateDTO struct {
	Type                 string   `json:"type" binding:"required,oneof=multiple-choice true-false short-answer essay"`
	Prompt               string   `json:"prompt" binding:"required"`
	Options              []string `json:"options"`
	CorrectAnswer        string   `json:"correct_answer"`
	CorrectAnswers       []string `json:"correct_answers"`
	AllowMultipleAnswers bool     `json:"allow_multiple_answers"`
	Marks                int      `json:"marks" binding:"gte=0"` // 0 means default of 1
	Explanation          string   `json:"explanation"`
}

// TestCreateDTO is for a student authoring a new test with its questions.
type TestCreateDTO struct {
	Title        string              `json:"title" binding:"required"`
	Subject      string              `json:"subject" binding:"required"`
	Instructions string              `json:"instructions"`
	TotalMarks   int                 `json:"total_marks" binding:"required,gt=0"`
	TimeLimit    int                 `json:"time_limit" binding:"required,gt=0"`
	Questions    []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// TestUpdateDTO carries a partial update; nil fields are left untouched.
type TestUpdateDTO struct {
	Title        *string             `json:"title"`
	Subject      *string             `json:"subject"`
	Instructions *string             `json:"instructions"`
	TotalMarks   *int                `json:"total_marks" binding:"omitempty,gt=0"`
	TimeLimit    *int                `json:"time_limit" binding:"omitempty,gt=0"`
	Questions    []QuestionCreateDTO `json:"questions" binding:"omitempty,min=1,dive"`
}

type QuestionResponseDTO struct {
	ID                   uint     `json:"id"`
	Key                  string   `json:"key"`
	Position             int      `json:"position"`
	Type                 string   `json:"type"`
	Prompt               string   `json:"prompt"`
	Options              []string `json:"options,omitempty"`
	CorrectAnswer        string   `json:"correct_answer,omitempty"`
	CorrectAnswers       []string `json:"correct_answers,omitempty"`
	AllowMultipleAnswers bool     `json:"allow_multiple_answers"`
	Marks                int      `json:"marks"`
	Explanation          string   `json:"explanation,omitempty"`
}

// TestResponseDTO is the full test, questions included.
type TestResponseDTO struct {
	ID             uint                  `json:"id"`
	StudentID      uint                  `json:"student_id"`
	Title          string                `json:"title"`
	Subject        string                `json:"subject"`
	Instructions   string                `json:"instructions"`
	TotalMarks     int                   `json:"total_marks"`
	TimeLimit      int                   `json:"time_limit"`
	QuestionsCount int                   `json:"questions_count"`
	IsActive       bool                  `json:"is_active"`
	IsPublished    bool                  `json:"is_published"`
	Questions      []QuestionResponseDTO `json:"questions,omitempty" copier:"-"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type SubjectCountDTO struct {
	Subject string `json:"subject"`
	Count   int    `json:"count"`
}

type TestStatsDTO struct {
	TotalTests       int               `json:"total_tests"`
	PublishedTests   int               `json:"published_tests"`
	DraftTests       int               `json:"draft_tests"`
	TotalQuestions   int               `json:"total_questions"`
	SubjectBreakdown []SubjectCountDTO `json:"subject_breakdown"`
}
