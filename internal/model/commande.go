package model

import (
	"time"

	"github.com/google/uuid"
)

// Order types.
const (
	CommandeFerme     = "FERME"
	CommandePlanifiee = "PLANIFIEE"
)

// Commande is a client order for a quantity of an article.
//
// ArticleID and ClientID are the authoritative references; ArticleRef,
// ArticleNom and ClientNom are display/search snapshots refreshed whenever the
// referenced row is re-resolved on update. Readers filter on the IDs and show
// the snapshots.
//
// IsActive doubles as the fulfillment flag: it flips to false once the sum of
// active livraisons reaches Quantite, and back to true when a deletion brings
// the sum under again.
type Commande struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ArticleID            uuid.UUID `gorm:"type:uuid;not null;index"`
	ArticleRef           string    `gorm:"index"`
	ArticleNom           string
	ClientID             uuid.UUID `gorm:"type:uuid;not null;index"`
	ClientNom            string    `gorm:"index"`
	NumeroCommandeClient string    `gorm:"index"`
	TypeCommande         string    `gorm:"not null"` // FERME | PLANIFIEE
	Quantite             int       `gorm:"not null"`
	DateSouhaitee        time.Time `gorm:"type:date;index"`
	IsActive             bool      `gorm:"not null;default:true"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
