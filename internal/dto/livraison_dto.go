package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// The commande is addressed by its business key (articleRef,
// numeroCommandeClient, clientNom); numeroBL is allocated server-side.
type CreerLivraisonRequest struct {
	ArticleRef           string `json:"articleRef"           validate:"required"`
	ClientNom            string `json:"clientNom"            validate:"required"`
	NumeroCommandeClient string `json:"numeroCommandeClient" validate:"required"`
	QuantiteLivree       int    `json:"quantiteLivree"       validate:"required,gt=0"`
	DateLivraison        string `json:"dateLivraison"        validate:"required,datetime=2006-01-02"`
}

type MettreAJourLivraisonRequest struct {
	ArticleRef           string `json:"articleRef"           validate:"required"`
	ClientNom            string `json:"clientNom"            validate:"required"`
	NumeroCommandeClient string `json:"numeroCommandeClient" validate:"required"`
	QuantiteLivree       int    `json:"quantiteLivree"       validate:"required,gt=0"`
	DateLivraison        string `json:"dateLivraison"        validate:"required,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LivraisonResponse struct {
	ID                   string `json:"id"`
	NumeroBL             string `json:"numeroBL"`
	ArticleRef           string `json:"articleRef"`
	ArticleNom           string `json:"articleNom"`
	ClientNom            string `json:"clientNom"`
	NumeroCommandeClient string `json:"numeroCommandeClient"`
	QuantiteLivree       int    `json:"quantiteLivree"`
	DateLivraison        string `json:"dateLivraison"`
	IsActive             bool   `json:"isActive"`
	CreatedAt            string `json:"createdAt"`
}
