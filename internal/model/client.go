package model

import (
	"time"

	"github.com/google/uuid"
)

// Client identity is NomComplet. Ref is optional: NULL when the client has no
// reference, unique when set (an empty string in a request is normalized to
// NULL before it gets here, so many clients without a ref can coexist).
type Client struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Ref                *string   `gorm:"uniqueIndex"`
	NomComplet         string    `gorm:"uniqueIndex;not null"`
	AdresseLivraison   string    `gorm:"size:500"`
	AdresseFacturation string    `gorm:"size:500"`
	Devise             string    `gorm:"size:50"` // USD, EUR, TND
	ModeTransport      string    `gorm:"size:50"` // Terrestre, Aérien, Maritime
	IncoTerme          string    `gorm:"size:50"` // EXW, EDDU, DAP, DDP, FSA
	IsActive           bool      `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
