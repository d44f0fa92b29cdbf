package model

import (
	"time"
)

// Test is authored by, and scoped to, a single student.
type Test struct {
	ID             uint       `gorm:"primarykey" json:"id"`
	StudentID      uint       `json:"student_id" gorm:"not null;index"`
	Student        Student    `json:"-" gorm:"foreignKey:StudentID"`
	Title          string     `json:"title" gorm:"not null"`
	Subject        string     `json:"subject" gorm:"not null;index"`
	Instructions   string     `json:"instructions" gorm:"type:text"`
	TotalMarks     int        `json:"total_marks" gorm:"not null"`
	TimeLimit      int        `json:"time_limit" gorm:"not null"` // minutes
	QuestionsCount int        `json:"questions_count" gorm:"default:0"`
	IsActive       bool       `json:"is_active" gorm:"not null;default:true;index"`
	IsPublished    bool       `json:"is_published" gorm:"not null;default:false"`
	Questions      []Question `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

