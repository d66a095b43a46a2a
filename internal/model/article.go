package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Article is a sellable product. Stock is never written directly by CRUD
// operations on the article itself: only Production and Livraison operations
// mutate it, always through atomic SQL increments (see ArticleRepository).
type Article struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Ref         string    `gorm:"uniqueIndex;not null"`
	Article     string    `gorm:"index;not null"` // product name
	Famille     string
	SousFamille string
	TypeProcess string
	TypeProduit string
	PrixUnitaire decimal.Decimal `gorm:"type:decimal(12,3)"`
	MPQ         int             // minimum packaging quantity
	Stock       int             `gorm:"not null;default:0"`
	ImageRef    *string
	IsActive    bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Clients   []Client         `gorm:"many2many:article_clients"`
	Processes []ArticleProcess `gorm:"foreignKey:ArticleID"`
}

// ArticleProcess links an article to a manufacturing process with its
// per-article parameters.
type ArticleProcess struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ArticleID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ProcessID  uuid.UUID `gorm:"type:uuid;not null;index"`
	TempsParPF float64   // seconds per finished piece
	CadenceMax int       // max pieces per machine per hour
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Process *Process `gorm:"foreignKey:ProcessID"`
}

func (ArticleProcess) TableName() string { return "article_processes" }
