package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	StudentStatusActive   = "active"
	StudentStatusInactive = "inactive"
	StudentStatusPending  = "pending"
)

type Student struct {
	ID                 uint    `gorm:"primarykey" json:"id"`
	Name               string  `json:"name" gorm:"not null"`
	Email              string  `json:"email" gorm:"not null;uniqueIndex"`
	Phone              string  `json:"phone"`
	RegistrationNumber *string `json:"registration_number,omitempty" gorm:"uniqueIndex"`
	Course             string  `json:"course"`
	Status             string  `json:"status" gorm:"default:'active'"` // "active", "inactive", "pending"

	// Maintained by the auth layer; read-only here.
	LoginAttempts   int        `json:"-" gorm:"default:0"`
	LockUntil       *time.Time `json:"-"`
	IsAccountLocked bool       `json:"-" gorm:"default:false"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
