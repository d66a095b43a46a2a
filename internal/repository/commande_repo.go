package repository

import (
	"context"
	"time"

	"eleostock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommandeRepository defines the data access contract for orders.
// Date filters come in two kinds throughout: "souhaitee" (the requested
// delivery date) and "ajout" (the creation date).
type CommandeRepository interface {
	Create(ctx context.Context, c *model.Commande) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Commande, error)
	// FindActiveByRefCommande resolves the commande a livraison targets:
	// active, same article ref, same client order number, same client name.
	FindActiveByRefCommande(ctx context.Context, articleRef, numeroCommandeClient, clientNom string) (*model.Commande, error)
	ListActive(ctx context.Context) ([]model.Commande, error)
	FindByArticleRef(ctx context.Context, articleRef string) ([]model.Commande, error)
	FindByClientNom(ctx context.Context, clientNom string) ([]model.Commande, error)
	FindByDateSouhaitee(ctx context.Context, date time.Time) ([]model.Commande, error)
	FindByDateAjout(ctx context.Context, date time.Time) ([]model.Commande, error)
	FindByArticleRefAndDateSouhaitee(ctx context.Context, articleRef string, date time.Time) ([]model.Commande, error)
	FindByArticleRefAndDateAjout(ctx context.Context, articleRef string, date time.Time) ([]model.Commande, error)
	FindByArticleRefAndPeriodeSouhaitee(ctx context.Context, articleRef string, debut, fin time.Time) ([]model.Commande, error)
	FindByArticleRefAndPeriodeAjout(ctx context.Context, articleRef string, debut, fin time.Time) ([]model.Commande, error)
	Update(ctx context.Context, c *model.Commande) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActiveByArticleID(ctx context.Context, articleID uuid.UUID) (int64, error)
	CountActiveByClientID(ctx context.Context, clientID uuid.UUID) (int64, error)
	// SetActiveTx flips the fulfillment flag inside the caller's transaction.
	SetActiveTx(tx *gorm.DB, id uuid.UUID, active bool) error
	DB() *gorm.DB
}

type commandeRepo struct{ db *gorm.DB }

func NewCommandeRepository(db *gorm.DB) CommandeRepository { return &commandeRepo{db: db} }

func (r *commandeRepo) Create(ctx context.Context, c *model.Commande) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *commandeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Commande, error) {
	var c model.Commande
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commandeRepo) FindActiveByRefCommande(ctx context.Context, articleRef, numeroCommandeClient, clientNom string) (*model.Commande, error) {
	var c model.Commande
	err := r.db.WithContext(ctx).
		Where("is_active = true AND article_ref = ? AND numero_commande_client = ? AND client_nom = ?",
			articleRef, numeroCommandeClient, clientNom).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commandeRepo) ListActive(ctx context.Context) ([]model.Commande, error) {
	return r.findActive(ctx, nil)
}

func (r *commandeRepo) FindByArticleRef(ctx context.Context, articleRef string) ([]model.Commande, error) {
	return r.findActive(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("article_ref = ?", articleRef)
	})
}

func (r *commandeRepo) FindByClientNom(ctx context.Context, clientNom string) ([]model.Commande, error) {
	return r.findActive(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("client_nom = ?", clientNom)
	})
}

func (r *commandeRepo) FindByDateSouhaitee(ctx context.Context, date time.Time) ([]model.Commande, error) {
	return r.findActive(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("date_souhaitee = ?", date)
	})
}

func (r *commandeRepo) FindByDateAjout(ctx context.Context, date time.Time) ([]model.Commande, error) {
	return r.findActive(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("created_at >= ? AND created_at < ?", date, date.AddDate(0, 0, 1))
	})
}

func (r *commandeRepo) FindByArticleRefAndDateSouhaitee(ctx context.Context, articleRef string, date time.Time) ([]model.Commande, error) {
	return r.findActive(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("article_ref = ? AND date_souhaitee = ?", articleRef, date)
	})
}

func (r *commandeRepo) FindByArticleRefAndDateAjout(ctx context.Context, articleRef string, date time.Time) ([]model.Commande, error) {
	return r.findActive(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("article_ref = ? AND created_at >= ? AND created_at < ?",
			articleRef, date, date.AddDate(0, 0, 1))
	})
}

func (r *commandeRepo) FindByArticleRefAndPeriodeSouhaitee(ctx context.Context, articleRef string, debut, fin time.Time) ([]model.Commande, error) {
	return r.findActive(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("article_ref = ? AND date_souhaitee BETWEEN ? AND ?", articleRef, debut, fin)
	})
}

func (r *commandeRepo) FindByArticleRefAndPeriodeAjout(ctx context.Context, articleRef string, debut, fin time.Time) ([]model.Commande, error) {
	return r.findActive(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("article_ref = ? AND created_at >= ? AND created_at < ?",
			articleRef, debut, fin.AddDate(0, 0, 1))
	})
}

func (r *commandeRepo) findActive(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]model.Commande, error) {
	var commandes []model.Commande
	q := r.db.WithContext(ctx).Where("is_active = true")
	if scope != nil {
		q = scope(q)
	}
	err := q.Order("date_souhaitee ASC").Find(&commandes).Error
	return commandes, err
}

func (r *commandeRepo) Update(ctx context.Context, c *model.Commande) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *commandeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Commande{}, "id = ?", id).Error
}

func (r *commandeRepo) CountActiveByArticleID(ctx context.Context, articleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Commande{}).
		Where("is_active = true AND article_id = ?", articleID).Count(&count).Error
	return count, err
}

func (r *commandeRepo) CountActiveByClientID(ctx context.Context, clientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Commande{}).
		Where("is_active = true AND client_id = ?", clientID).Count(&count).Error
	return count, err
}

func (r *commandeRepo) SetActiveTx(tx *gorm.DB, id uuid.UUID, active bool) error {
	return tx.Model(&model.Commande{}).Where("id = ?", id).Update("is_active", active).Error
}

func (r *commandeRepo) DB() *gorm.DB { return r.db }
