package repository

import (
	"context"

	"eleostock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProcessRepository defines the data access contract for manufacturing processes.
type ProcessRepository interface {
	Create(ctx context.Context, p *model.Process) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Process, error)
	FindByNom(ctx context.Context, nom string) (*model.Process, error)
	ExistsByRef(ctx context.Context, ref string) (bool, error)
	ExistsByNom(ctx context.Context, nom string) (bool, error)
	ListActive(ctx context.Context) ([]model.Process, error)
	Update(ctx context.Context, p *model.Process) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type processRepo struct{ db *gorm.DB }

func NewProcessRepository(db *gorm.DB) ProcessRepository { return &processRepo{db: db} }

func (r *processRepo) Create(ctx context.Context, p *model.Process) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *processRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Process, error) {
	var p model.Process
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *processRepo) FindByNom(ctx context.Context, nom string) (*model.Process, error) {
	var p model.Process
	if err := r.db.WithContext(ctx).Where("nom = ?", nom).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *processRepo) ExistsByRef(ctx context.Context, ref string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Process{}).Where("ref = ?", ref).Count(&count).Error
	return count > 0, err
}

func (r *processRepo) ExistsByNom(ctx context.Context, nom string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Process{}).Where("nom = ?", nom).Count(&count).Error
	return count > 0, err
}

func (r *processRepo) ListActive(ctx context.Context) ([]model.Process, error) {
	var processes []model.Process
	err := r.db.WithContext(ctx).Where("is_active = true").
		Order("ref ASC NULLS LAST, nom ASC").Find(&processes).Error
	return processes, err
}

func (r *processRepo) Update(ctx context.Context, p *model.Process) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *processRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Process{}, "id = ?", id).Error
}
