package dto

type CreerProductionRequest struct {
	ArticleRef     string `json:"articleRef"     validate:"required"`
	Quantite       int    `json:"quantite"       validate:"required,gt=0"`
	DateProduction string `json:"dateProduction" validate:"required,datetime=2006-01-02"`
}

type MettreAJourProductionRequest struct {
	ArticleRef     string `json:"articleRef"     validate:"required"`
	Quantite       int    `json:"quantite"       validate:"required,gt=0"`
	DateProduction string `json:"dateProduction" validate:"required,datetime=2006-01-02"`
}

type ProductionResponse struct {
	ID             string `json:"id"`
	ArticleRef     string `json:"articleRef"`
	Quantite       int    `json:"quantite"`
	DateProduction string `json:"dateProduction"`
	IsActive       bool   `json:"isActive"`
	CreatedAt      string `json:"createdAt"`
}
