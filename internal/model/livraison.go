package model

import (
	"time"

	"github.com/google/uuid"
)

// Livraison records a delivery against a commande. Creating one decrements the
// article's stock by QuantiteLivree; deleting one restores it.
//
// NumeroBL is the delivery-note number, "<seq>/<year>", allocated from the
// per-year CompteurBL sequence inside the creating transaction. It is kept
// unchanged on update.
type Livraison struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NumeroBL             string    `gorm:"uniqueIndex;not null"`
	ArticleID            uuid.UUID `gorm:"type:uuid;not null;index"`
	ArticleRef           string    `gorm:"index"`
	ArticleNom           string
	ClientID             uuid.UUID `gorm:"type:uuid;not null;index"`
	ClientNom            string    `gorm:"index"`
	CommandeID           uuid.UUID `gorm:"type:uuid;not null;index"`
	NumeroCommandeClient string    `gorm:"index"`
	QuantiteLivree       int       `gorm:"not null"`
	DateLivraison        time.Time `gorm:"type:date"`
	IsActive             bool      `gorm:"not null;default:true"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// CompteurBL is the per-year delivery-note sequence. One row per calendar
// year, incremented under a row lock so two concurrent livraisons can never
// be handed the same number. Gap-tolerant: a rolled-back transaction leaves a
// hole in the sequence, which is fine.
type CompteurBL struct {
	Annee         int `gorm:"primaryKey;autoIncrement:false"`
	DernierNumero int `gorm:"not null"`
}

func (CompteurBL) TableName() string { return "compteurs_bl" }
