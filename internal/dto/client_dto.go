package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreerClientRequest: ref is optional — an empty string means "no reference"
// and is stored as NULL, so uniqueness only applies to real refs.
type CreerClientRequest struct {
	Ref                string `json:"ref"`
	NomComplet         string `json:"nomComplet"         validate:"required,min=1,max=200"`
	AdresseLivraison   string `json:"adresseLivraison"   validate:"max=500"`
	AdresseFacturation string `json:"adresseFacturation" validate:"max=500"`
	Devise             string `json:"devise"             validate:"max=50"`
	ModeTransport      string `json:"modeTransport"      validate:"max=50"`
	IncoTerme          string `json:"incoTerme"          validate:"max=50"`
}

type MettreAJourClientRequest struct {
	Ref                string `json:"ref"`
	NomComplet         string `json:"nomComplet"         validate:"required,min=1,max=200"`
	AdresseLivraison   string `json:"adresseLivraison"   validate:"max=500"`
	AdresseFacturation string `json:"adresseFacturation" validate:"max=500"`
	Devise             string `json:"devise"             validate:"max=50"`
	ModeTransport      string `json:"modeTransport"      validate:"max=50"`
	IncoTerme          string `json:"incoTerme"          validate:"max=50"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClientResponse struct {
	ID                 string  `json:"id"`
	Ref                *string `json:"ref"`
	NomComplet         string  `json:"nomComplet"`
	AdresseLivraison   string  `json:"adresseLivraison"`
	AdresseFacturation string  `json:"adresseFacturation"`
	Devise             string  `json:"devise"`
	ModeTransport      string  `json:"modeTransport"`
	IncoTerme          string  `json:"incoTerme"`
	IsActive           bool    `json:"isActive"`
	CreatedAt          string  `json:"createdAt"`
}

// ClientSimpleResponse is the projection used by dropdowns and by the client
// list embedded in an article.
type ClientSimpleResponse struct {
	ID         string `json:"id"`
	NomComplet string `json:"nomComplet"`
}
