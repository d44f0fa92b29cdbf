package model

import (
	"time"

	"gorm.io/datatypes"
)

// Submission is the single, immutable ledger record of one student's attempt at one test.
// The (test_id, student_id) pair is unique at the storage layer.
type Submission struct {
	ID             uint                                  `gorm:"primarykey" json:"id"`
	TestID         uint                                  `json:"test_id" gorm:"not null;uniqueIndex:idx_submissions_test_student,priority:1"`
	Test           Test                                  `json:"test,omitempty" gorm:"foreignKey:TestID"`
	StudentID      uint                                  `json:"student_id" gorm:"not null;uniqueIndex:idx_submissions_test_student,priority:2;index"`
	Answers        datatypes.JSONType[map[string]string] `json:"answers" gorm:"not null"` // question key -> answer text
	ObtainedMarks  int                                   `json:"obtained_marks" gorm:"default:0"`
	TotalMarks     int                                   `json:"total_marks" gorm:"not null"`
	Percentage     float64                               `json:"percentage" gorm:"default:0"`
	CorrectAnswers int                                   `json:"correct_answers" gorm:"default:0"`
	WrongAnswers   int                                   `json:"wrong_answers" gorm:"default:0"`
	Unanswered     int                                   `json:"unanswered" gorm:"default:0"`
	PendingReview  int                                   `json:"pending_review" gorm:"default:0"`
	TimeTaken      int                                   `json:"time_taken" gorm:"not null"` // seconds
	SubmittedAt    time.Time                             `json:"submitted_at" gorm:"not null;index"`
	IsEvaluated    bool                                  `json:"is_evaluated" gorm:"default:false"`
	TeacherRemarks string                                `json:"teacher_remarks" gorm:"type:text;default:''"`
	CreatedAt      time.Time                             `json:"created_at"`
	UpdatedAt      time.Time                             `json:"updated_at"`
}
