package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an application account. Password-reset OTP codes are not persisted
// here: they live in Redis with a TTL (see service.PasswordResetService).
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Firstname    string    `gorm:"not null"`
	Lastname     string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Phone        string
	PasswordHash string `gorm:"not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
