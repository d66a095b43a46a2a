package repository

import (
	"context"

	"eleostock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientRepository defines the data access contract for clients.
type ClientRepository interface {
	Create(ctx context.Context, c *model.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error)
	FindByNomComplet(ctx context.Context, nomComplet string) (*model.Client, error)
	ExistsByRef(ctx context.Context, ref string) (bool, error)
	ExistsByNomComplet(ctx context.Context, nomComplet string) (bool, error)
	ListActive(ctx context.Context) ([]model.Client, error)
	SearchByNomComplet(ctx context.Context, nomComplet string) ([]model.Client, error)
	FindByModeTransport(ctx context.Context, modeTransport string) ([]model.Client, error)
	FindByIncoTerme(ctx context.Context, incoTerme string) ([]model.Client, error)
	DistinctNomComplets(ctx context.Context) ([]string, error)
	FindByNoms(ctx context.Context, noms []string) ([]model.Client, error)
	Update(ctx context.Context, c *model.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) ClientRepository { return &clientRepo{db: db} }

func (r *clientRepo) Create(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clientRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	var c model.Client
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepo) FindByNomComplet(ctx context.Context, nomComplet string) (*model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).Where("nom_complet = ?", nomComplet).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepo) ExistsByRef(ctx context.Context, ref string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Client{}).Where("ref = ?", ref).Count(&count).Error
	return count > 0, err
}

func (r *clientRepo) ExistsByNomComplet(ctx context.Context, nomComplet string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Client{}).Where("nom_complet = ?", nomComplet).Count(&count).Error
	return count > 0, err
}

func (r *clientRepo) ListActive(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.WithContext(ctx).Where("is_active = true").
		Order("ref ASC NULLS LAST, nom_complet ASC").Find(&clients).Error
	return clients, err
}

func (r *clientRepo) SearchByNomComplet(ctx context.Context, nomComplet string) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.WithContext(ctx).
		Where("is_active = true AND nom_complet ILIKE ?", "%"+nomComplet+"%").
		Order("nom_complet ASC").Find(&clients).Error
	return clients, err
}

func (r *clientRepo) FindByModeTransport(ctx context.Context, modeTransport string) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.WithContext(ctx).
		Where("is_active = true AND mode_transport = ?", modeTransport).
		Order("nom_complet ASC").Find(&clients).Error
	return clients, err
}

func (r *clientRepo) FindByIncoTerme(ctx context.Context, incoTerme string) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.WithContext(ctx).
		Where("is_active = true AND inco_terme = ?", incoTerme).
		Order("nom_complet ASC").Find(&clients).Error
	return clients, err
}

func (r *clientRepo) DistinctNomComplets(ctx context.Context) ([]string, error) {
	var noms []string
	err := r.db.WithContext(ctx).Model(&model.Client{}).
		Where("is_active = true").Distinct("nom_complet").Order("nom_complet").
		Pluck("nom_complet", &noms).Error
	return noms, err
}

func (r *clientRepo) FindByNoms(ctx context.Context, noms []string) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.WithContext(ctx).Where("nom_complet IN ?", noms).Find(&clients).Error
	return clients, err
}

func (r *clientRepo) Update(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Client{}, "id = ?", id).Error
}
