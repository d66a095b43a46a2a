package model

import (
	"time"

	"github.com/google/uuid"
)

// Production records a manufacturing run. Creating one increments the
// article's stock by Quantite; deleting one decrements it (floor-checked).
// At most one active production per (ArticleRef, DateProduction).
type Production struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ArticleID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ArticleRef     string    `gorm:"index"`
	Quantite       int       `gorm:"not null"`
	DateProduction time.Time `gorm:"type:date;index"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
