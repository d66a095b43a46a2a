package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ProcessEntryRequest struct {
	ProcessID  string  `json:"processId"  validate:"required,uuid"`
	TempsParPF float64 `json:"tempsParPF" validate:"min=0"`
	CadenceMax int     `json:"cadenceMax" validate:"min=0"`
}

type CreerArticleRequest struct {
	Ref          string                `json:"ref"          validate:"required,min=1,max=100"`
	Article      string                `json:"article"      validate:"required,min=1,max=200"`
	Famille      string                `json:"famille"`
	SousFamille  string                `json:"sousFamille"`
	TypeProcess  string                `json:"typeProcess"`
	TypeProduit  string                `json:"typeProduit"`
	PrixUnitaire decimal.Decimal       `json:"prixUnitaire"`
	MPQ          int                   `json:"mpq"          validate:"min=0"`
	Stock        int                   `json:"stock"        validate:"min=0"`
	ClientIDs    []string              `json:"clientIds"    validate:"dive,uuid"`
	Processes    []ProcessEntryRequest `json:"processes"    validate:"dive"`
}

// MettreAJourArticleRequest replaces every field of the article. Stock is
// deliberately absent: it only moves through productions and livraisons.
type MettreAJourArticleRequest struct {
	Ref          string                `json:"ref"          validate:"required,min=1,max=100"`
	Article      string                `json:"article"      validate:"required,min=1,max=200"`
	Famille      string                `json:"famille"`
	SousFamille  string                `json:"sousFamille"`
	TypeProcess  string                `json:"typeProcess"`
	TypeProduit  string                `json:"typeProduit"`
	PrixUnitaire decimal.Decimal       `json:"prixUnitaire"`
	MPQ          int                   `json:"mpq"          validate:"min=0"`
	ClientIDs    []string              `json:"clientIds"    validate:"dive,uuid"`
	Processes    []ProcessEntryRequest `json:"processes"    validate:"dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProcessEntryResponse struct {
	ProcessID  string  `json:"processId"`
	ProcessNom string  `json:"processNom"`
	TempsParPF float64 `json:"tempsParPF"`
	CadenceMax int     `json:"cadenceMax"`
}

type ArticleResponse struct {
	ID           string                 `json:"id"`
	Ref          string                 `json:"ref"`
	Article      string                 `json:"article"`
	Famille      string                 `json:"famille"`
	SousFamille  string                 `json:"sousFamille"`
	TypeProcess  string                 `json:"typeProcess"`
	TypeProduit  string                 `json:"typeProduit"`
	PrixUnitaire decimal.Decimal        `json:"prixUnitaire"`
	MPQ          int                    `json:"mpq"`
	Stock        int                    `json:"stock"`
	ImageRef     *string                `json:"imageRef"`
	IsActive     bool                   `json:"isActive"`
	Clients      []ClientSimpleResponse `json:"clients"`
	Processes    []ProcessEntryResponse `json:"processes"`
	CreatedAt    string                 `json:"createdAt"`
}
