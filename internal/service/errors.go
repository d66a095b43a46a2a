package service

import "errors"

// Error kinds returned by the service layer. Services wrap them with a
// human-readable message (fmt.Errorf("%w: …")); handlers map the kind to an
// HTTP status with errors.Is.
var (
	// ErrNotFound: a referenced entity does not exist or is inactive.
	ErrNotFound = errors.New("introuvable")

	// ErrDuplicate: a natural key (ref, nomComplet, nom, email…) collides
	// with an existing record.
	ErrDuplicate = errors.New("existe déjà")

	// ErrStockInsuffisant: a stock decrement would take the article below zero.
	ErrStockInsuffisant = errors.New("stock insuffisant")

	// ErrSurLivraison: the total delivered would exceed the ordered quantity.
	ErrSurLivraison = errors.New("sur-livraison")

	// ErrDoublon: a business-key duplicate (same commande and date, same
	// article and date) that is not a schema-level unique constraint.
	ErrDoublon = errors.New("doublon")

	// ErrValidation: the request is well-formed but semantically invalid.
	ErrValidation = errors.New("requête invalide")

	// ErrConflit: the record cannot be deleted because active records still
	// reference it.
	ErrConflit = errors.New("conflit")
)
