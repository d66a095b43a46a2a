package repository

import (
	"context"
	"time"

	"eleostock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductionRepository defines the data access contract for production runs.
type ProductionRepository interface {
	CreateTx(tx *gorm.DB, p *model.Production) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Production, error)
	ListActive(ctx context.Context) ([]model.Production, error)
	FindByArticleRef(ctx context.Context, articleRef string) ([]model.Production, error)
	FindByDate(ctx context.Context, date time.Time) ([]model.Production, error)
	FindByArticleRefAndDate(ctx context.Context, articleRef string, date time.Time) ([]model.Production, error)
	FindByMois(ctx context.Context, annee int, mois time.Month) ([]model.Production, error)
	FindByArticleRefAndMois(ctx context.Context, articleRef string, annee int, mois time.Month) ([]model.Production, error)
	// ExistsActiveForArticleDate reports whether a production run is already
	// recorded for (articleRef, dateProduction), excluding excludeID.
	ExistsActiveForArticleDate(ctx context.Context, articleRef string, date time.Time, excludeID *uuid.UUID) (bool, error)
	UpdateTx(tx *gorm.DB, p *model.Production) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	CountActiveByArticleID(ctx context.Context, articleID uuid.UUID) (int64, error)
	DB() *gorm.DB
}

type productionRepo struct{ db *gorm.DB }

func NewProductionRepository(db *gorm.DB) ProductionRepository { return &productionRepo{db: db} }

func (r *productionRepo) CreateTx(tx *gorm.DB, p *model.Production) error {
	return tx.Create(p).Error
}

func (r *productionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Production, error) {
	var p model.Production
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productionRepo) ListActive(ctx context.Context) ([]model.Production, error) {
	return r.findActive(ctx, nil)
}

func (r *productionRepo) FindByArticleRef(ctx context.Context, articleRef string) ([]model.Production, error) {
	return r.findActive(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("article_ref = ?", articleRef)
	})
}

func (r *productionRepo) FindByDate(ctx context.Context, date time.Time) ([]model.Production, error) {
	return r.findActive(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("date_production = ?", date)
	})
}

func (r *productionRepo) FindByArticleRefAndDate(ctx context.Context, articleRef string, date time.Time) ([]model.Production, error) {
	return r.findActive(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("article_ref = ? AND date_production = ?", articleRef, date)
	})
}

func (r *productionRepo) FindByMois(ctx context.Context, annee int, mois time.Month) ([]model.Production, error) {
	debut, fin := boundsMois(annee, mois)
	return r.findActive(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("date_production >= ? AND date_production < ?", debut, fin)
	})
}

func (r *productionRepo) FindByArticleRefAndMois(ctx context.Context, articleRef string, annee int, mois time.Month) ([]model.Production, error) {
	debut, fin := boundsMois(annee, mois)
	return r.findActive(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("article_ref = ? AND date_production >= ? AND date_production < ?", articleRef, debut, fin)
	})
}

func boundsMois(annee int, mois time.Month) (time.Time, time.Time) {
	debut := time.Date(annee, mois, 1, 0, 0, 0, 0, time.UTC)
	return debut, debut.AddDate(0, 1, 0)
}

func (r *productionRepo) findActive(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]model.Production, error) {
	var productions []model.Production
	q := r.db.WithContext(ctx).Where("is_active = true")
	if scope != nil {
		q = scope(q)
	}
	err := q.Order("date_production DESC").Find(&productions).Error
	return productions, err
}

func (r *productionRepo) ExistsActiveForArticleDate(ctx context.Context, articleRef string, date time.Time, excludeID *uuid.UUID) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Production{}).
		Where("is_active = true AND article_ref = ? AND date_production = ?", articleRef, date)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *productionRepo) UpdateTx(tx *gorm.DB, p *model.Production) error {
	return tx.Save(p).Error
}

func (r *productionRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Production{}, "id = ?", id).Error
}

func (r *productionRepo) CountActiveByArticleID(ctx context.Context, articleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Production{}).
		Where("is_active = true AND article_id = ?", articleID).Count(&count).Error
	return count, err
}

func (r *productionRepo) DB() *gorm.DB { return r.db }
