package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	QuestionTypeMultipleChoice = "multiple-choice"
	QuestionTypeTrueFalse      = "true-false"
	QuestionTypeShortAnswer    = "short-answer"
	QuestionTypeEssay          = "essay"
)

type Question struct {
	ID                   uint                        `gorm:"primarykey" json:"id"`
	TestID               uint                        `json:"test_id" gorm:"not null;index"`
	Key                  uuid.UUID                   `json:"key" gorm:"type:uuid;not null;uniqueIndex"`
	Position             int                         `json:"position" gorm:"not null"` // 0-based
	Type                 string                      `json:"type" gorm:"not null"`     // "multiple-choice", "true-false", "short-answer", "essay"
	Prompt               string                      `json:"prompt" gorm:"type:text;not null"`
	Options              datatypes.JSONSlice[string] `json:"options,omitempty"`
	CorrectAnswer        string                      `json:"correct_answer,omitempty"`
	CorrectAnswers       datatypes.JSONSlice[string] `json:"correct_answers,omitempty"`
	AllowMultipleAnswers bool                        `json:"allow_multiple_answers" gorm:"default:false"`
	Marks                int                         `json:"marks" gorm:"not null;default:1"`
	Explanation          string                      `json:"explanation,omitempty" gorm:"type:text"`
	CreatedAt            time.Time                   `json:"created_at"`
	UpdatedAt            time.Time                   `json:"updated_at"`
}

// BeforeCreate assigns the stable key answers are recorded against.
func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.Key == uuid.Nil {
		q.Key = uuid.New()
	}
	return nil
}

// IsAutoGradable reports whether the answer can be checked by exact comparison.
func (q *Question) IsAutoGradable() bool {
	return q.Type == QuestionTypeMultipleChoice || q.Type == QuestionTypeTrueFalse
}

// Accepts reports whether answer exactly matches the correct answer or one of the alternatives.
func (q *Question) Accepts(answer string) bool {
	if q.CorrectAnswer != "" && answer == q.CorrectAnswer {
		return true
	}
	for _, alt := range q.CorrectAnswers {
		if answer == alt {
			return true
		}
	}
	return false
}
