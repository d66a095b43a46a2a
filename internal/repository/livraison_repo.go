package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"eleostock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LivraisonRepository defines the data access contract for deliveries,
// including the per-year numeroBL sequence.
type LivraisonRepository interface {
	CreateTx(tx *gorm.DB, l *model.Livraison) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Livraison, error)
	ListActive(ctx context.Context) ([]model.Livraison, error)
	FindByArticleRef(ctx context.Context, articleRef string) ([]model.Livraison, error)
	FindByClientNom(ctx context.Context, clientNom string) ([]model.Livraison, error)
	FindByNumeroCommande(ctx context.Context, numeroCommande string) ([]model.Livraison, error)
	// SumQuantiteLivreeTx sums quantiteLivree over active livraisons of a
	// commande, optionally excluding one record (its own row on update).
	SumQuantiteLivreeTx(tx *gorm.DB, commandeID uuid.UUID, excludeID *uuid.UUID) (int, error)
	// ExistsActiveForCommandeDate reports whether an active livraison already
	// covers (numeroCommandeClient, dateLivraison), excluding excludeID.
	ExistsActiveForCommandeDate(ctx context.Context, numeroCommandeClient string, date time.Time, excludeID *uuid.UUID) (bool, error)
	UpdateTx(tx *gorm.DB, l *model.Livraison) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	CountActiveByArticleID(ctx context.Context, articleID uuid.UUID) (int64, error)
	CountActiveByCommandeID(ctx context.Context, commandeID uuid.UUID) (int64, error)
	// ProchainNumeroBL allocates the next delivery-note number for a year.
	// Must run inside the creating transaction: the counter row is locked so
	// concurrent creations serialize on it.
	ProchainNumeroBL(tx *gorm.DB, annee int) (string, error)
	DB() *gorm.DB
}

type livraisonRepo struct{ db *gorm.DB }

func NewLivraisonRepository(db *gorm.DB) LivraisonRepository { return &livraisonRepo{db: db} }

func (r *livraisonRepo) CreateTx(tx *gorm.DB, l *model.Livraison) error {
	return tx.Create(l).Error
}

func (r *livraisonRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Livraison, error) {
	var l model.Livraison
	if err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *livraisonRepo) ListActive(ctx context.Context) ([]model.Livraison, error) {
	return r.findActive(ctx, "", nil)
}

func (r *livraisonRepo) FindByArticleRef(ctx context.Context, articleRef string) ([]model.Livraison, error) {
	return r.findActive(ctx, "article_ref = ?", articleRef)
}

func (r *livraisonRepo) FindByClientNom(ctx context.Context, clientNom string) ([]model.Livraison, error) {
	return r.findActive(ctx, "client_nom = ?", clientNom)
}

func (r *livraisonRepo) FindByNumeroCommande(ctx context.Context, numeroCommande string) ([]model.Livraison, error) {
	return r.findActive(ctx, "numero_commande_client = ?", numeroCommande)
}

func (r *livraisonRepo) findActive(ctx context.Context, query string, arg interface{}) ([]model.Livraison, error) {
	var livraisons []model.Livraison
	q := r.db.WithContext(ctx).Where("is_active = true")
	if query != "" {
		q = q.Where(query, arg)
	}
	err := q.Order("date_livraison DESC, numero_bl DESC").Find(&livraisons).Error
	return livraisons, err
}

func (r *livraisonRepo) SumQuantiteLivreeTx(tx *gorm.DB, commandeID uuid.UUID, excludeID *uuid.UUID) (int, error) {
	var total int64
	q := tx.Model(&model.Livraison{}).
		Where("is_active = true AND commande_id = ?", commandeID)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	err := q.Select("COALESCE(SUM(quantite_livree), 0)").Scan(&total).Error
	return int(total), err
}

func (r *livraisonRepo) ExistsActiveForCommandeDate(ctx context.Context, numeroCommandeClient string, date time.Time, excludeID *uuid.UUID) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Livraison{}).
		Where("is_active = true AND numero_commande_client = ? AND date_livraison = ?", numeroCommandeClient, date)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *livraisonRepo) UpdateTx(tx *gorm.DB, l *model.Livraison) error {
	return tx.Save(l).Error
}

func (r *livraisonRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Livraison{}, "id = ?", id).Error
}

func (r *livraisonRepo) CountActiveByArticleID(ctx context.Context, articleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Livraison{}).
		Where("is_active = true AND article_id = ?", articleID).Count(&count).Error
	return count, err
}

func (r *livraisonRepo) CountActiveByCommandeID(ctx context.Context, commandeID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Livraison{}).
		Where("is_active = true AND commande_id = ?", commandeID).Count(&count).Error
	return count, err
}

func (r *livraisonRepo) ProchainNumeroBL(tx *gorm.DB, annee int) (string, error) {
	var compteur model.CompteurBL
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("annee = ?", annee).First(&compteur).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// First allocation for this year: seed the counter from whatever
		// numeroBL values already exist, so legacy data keeps its sequence.
		seed, seedErr := r.maxNumeroForYear(tx, annee)
		if seedErr != nil {
			return "", seedErr
		}
		compteur = model.CompteurBL{Annee: annee, DernierNumero: seed}
		if err := tx.Create(&compteur).Error; err != nil {
			return "", err
		}
		// Re-lock: another transaction may have created the row first.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("annee = ?", annee).First(&compteur).Error; err != nil {
			return "", err
		}
	case err != nil:
		return "", err
	}

	compteur.DernierNumero++
	if err := tx.Save(&compteur).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%d/%d", compteur.DernierNumero, annee), nil
}

// maxNumeroForYear scans existing numeroBL values ("<seq>/<year>") for a year
// and returns the highest sequence number. Unparseable prefixes count as 0.
func (r *livraisonRepo) maxNumeroForYear(tx *gorm.DB, annee int) (int, error) {
	var numeros []string
	err := tx.Model(&model.Livraison{}).
		Where("numero_bl LIKE ?", "%/"+strconv.Itoa(annee)).
		Pluck("numero_bl", &numeros).Error
	if err != nil {
		return 0, err
	}
	max := 0
	for _, numero := range numeros {
		prefix, _, ok := strings.Cut(numero, "/")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}

func (r *livraisonRepo) DB() *gorm.DB { return r.db }
