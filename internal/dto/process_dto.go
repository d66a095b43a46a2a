package dto

type CreerProcessRequest struct {
	Ref string `json:"ref"`
	Nom string `json:"nom" validate:"required,min=1,max=100"`
}

type MettreAJourProcessRequest struct {
	Ref string `json:"ref"`
	Nom string `json:"nom" validate:"required,min=1,max=100"`
}

type ProcessResponse struct {
	ID        string  `json:"id"`
	Ref       *string `json:"ref"`
	Nom       string  `json:"nom"`
	IsActive  bool    `json:"isActive"`
	CreatedAt string  `json:"createdAt"`
}

type ProcessSimpleResponse struct {
	ID  string `json:"id"`
	Nom string `json:"nom"`
}
