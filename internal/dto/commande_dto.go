package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreerCommandeRequest struct {
	ArticleRef           string `json:"articleRef"           validate:"required"`
	ClientNom            string `json:"clientNom"            validate:"required"`
	NumeroCommandeClient string `json:"numeroCommandeClient" validate:"required"`
	TypeCommande         string `json:"typeCommande"         validate:"required,oneof=FERME PLANIFIEE"`
	Quantite             int    `json:"quantite"             validate:"required,gt=0"`
	DateSouhaitee        string `json:"dateSouhaitee"        validate:"required,datetime=2006-01-02"`
}

type MettreAJourCommandeRequest struct {
	ArticleRef           string `json:"articleRef"           validate:"required"`
	ClientNom            string `json:"clientNom"            validate:"required"`
	NumeroCommandeClient string `json:"numeroCommandeClient" validate:"required"`
	TypeCommande         string `json:"typeCommande"         validate:"required,oneof=FERME PLANIFIEE"`
	Quantite             int    `json:"quantite"             validate:"required,gt=0"`
	DateSouhaitee        string `json:"dateSouhaitee"        validate:"required,datetime=2006-01-02"`
}

// ─── Search query ────────────────────────────────────────────────────────────

// RechercheCommandeQuery carries the search/summary/export filters. Dates use
// 2006-01-02. dateAjout filters on the creation day; debut/fin bound an
// inclusive range. articleRef combines with either date kind.
type RechercheCommandeQuery struct {
	ArticleRef         string `form:"articleRef"`
	ClientNom          string `form:"clientNom"`
	DateSouhaitee      string `form:"dateSouhaitee"      validate:"omitempty,datetime=2006-01-02"`
	DateAjout          string `form:"dateAjout"          validate:"omitempty,datetime=2006-01-02"`
	DebutSouhaitee     string `form:"debutSouhaitee"     validate:"omitempty,datetime=2006-01-02"`
	FinSouhaitee       string `form:"finSouhaitee"       validate:"omitempty,datetime=2006-01-02"`
	DebutAjout         string `form:"debutAjout"         validate:"omitempty,datetime=2006-01-02"`
	FinAjout           string `form:"finAjout"           validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// QuantiteLivree and QuantiteNonLivree are derived at read time from the
// commande's active livraisons, never stored.
type CommandeResponse struct {
	ID                   string `json:"id"`
	ArticleRef           string `json:"articleRef"`
	ArticleNom           string `json:"articleNom"`
	ClientNom            string `json:"clientNom"`
	NumeroCommandeClient string `json:"numeroCommandeClient"`
	TypeCommande         string `json:"typeCommande"`
	Quantite             int    `json:"quantite"`
	QuantiteLivree       int    `json:"quantiteLivree"`
	QuantiteNonLivree    int    `json:"quantiteNonLivree"`
	DateSouhaitee        string `json:"dateSouhaitee"`
	DateAjout            string `json:"dateAjout"`
	IsActive             bool   `json:"isActive"`
}

// CommandeSummaryResponse aggregates a filtered set of commandes.
type CommandeSummaryResponse struct {
	TotalQuantite   int `json:"totalQuantite"`
	NombreCommandes int `json:"nombreCommandes"`
}
