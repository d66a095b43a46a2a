package model

import (
	"time"

	"github.com/google/uuid"
)

// Process is a manufacturing process (identity: Nom). Ref follows the same
// optional-unique rule as Client.Ref.
type Process struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Ref       *string   `gorm:"uniqueIndex"`
	Nom       string    `gorm:"uniqueIndex;not null;size:100"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Process) TableName() string { return "process" }
