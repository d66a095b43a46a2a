package repository

import (
	"context"

	"eleostock/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticleRepository defines the data access contract for articles.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type ArticleRepository interface {
	Create(ctx context.Context, a *model.Article) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Article, error)
	FindByRef(ctx context.Context, ref string) (*model.Article, error)
	ExistsByRef(ctx context.Context, ref string) (bool, error)
	ListActive(ctx context.Context) ([]model.Article, error)
	SearchByNom(ctx context.Context, nom string) ([]model.Article, error)
	FindByFamille(ctx context.Context, famille string) ([]model.Article, error)
	FindByTypeProcess(ctx context.Context, typeProcess string) ([]model.Article, error)
	FindByTypeProduit(ctx context.Context, typeProduit string) ([]model.Article, error)
	Distinct(ctx context.Context, column string) ([]string, error)
	Update(ctx context.Context, a *model.Article) error
	ReplaceClients(ctx context.Context, a *model.Article, clients []model.Client) error
	ReplaceProcesses(ctx context.Context, a *model.Article, processes []model.ArticleProcess) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Stock mutations — tx-scoped, single atomic UPDATE each. Callers pass the
	// live transaction so the stock write commits or rolls back with the rest
	// of the operation.
	AjusterStock(tx *gorm.DB, id uuid.UUID, delta int) error
	// DecrementerStock subtracts qte only when the resulting stock stays >= 0.
	// Returns false when the floor check rejected the write.
	DecrementerStock(tx *gorm.DB, id uuid.UUID, qte int) (bool, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type articleRepo struct{ db *gorm.DB }

func NewArticleRepository(db *gorm.DB) ArticleRepository { return &articleRepo{db: db} }

func (r *articleRepo) Create(ctx context.Context, a *model.Article) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *articleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	var a model.Article
	err := r.db.WithContext(ctx).
		Preload("Clients").Preload("Processes.Process").
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) FindByRef(ctx context.Context, ref string) (*model.Article, error) {
	var a model.Article
	err := r.db.WithContext(ctx).
		Preload("Clients").Preload("Processes.Process").
		Where("ref = ?", ref).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) ExistsByRef(ctx context.Context, ref string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Article{}).Where("ref = ?", ref).Count(&count).Error
	return count > 0, err
}

func (r *articleRepo) ListActive(ctx context.Context) ([]model.Article, error) {
	var articles []model.Article
	err := r.db.WithContext(ctx).
		Preload("Clients").Preload("Processes.Process").
		Where("is_active = true").Order("ref ASC").Find(&articles).Error
	return articles, err
}

func (r *articleRepo) SearchByNom(ctx context.Context, nom string) ([]model.Article, error) {
	return r.findActiveWhere(ctx, "article ILIKE ?", "%"+nom+"%")
}

func (r *articleRepo) FindByFamille(ctx context.Context, famille string) ([]model.Article, error) {
	return r.findActiveWhere(ctx, "famille = ?", famille)
}

func (r *articleRepo) FindByTypeProcess(ctx context.Context, typeProcess string) ([]model.Article, error) {
	return r.findActiveWhere(ctx, "type_process = ?", typeProcess)
}

func (r *articleRepo) FindByTypeProduit(ctx context.Context, typeProduit string) ([]model.Article, error) {
	return r.findActiveWhere(ctx, "type_produit = ?", typeProduit)
}

func (r *articleRepo) findActiveWhere(ctx context.Context, query string, arg interface{}) ([]model.Article, error) {
	var articles []model.Article
	err := r.db.WithContext(ctx).
		Preload("Clients").Preload("Processes.Process").
		Where("is_active = true").Where(query, arg).
		Order("ref ASC").Find(&articles).Error
	return articles, err
}

// Distinct returns the distinct non-empty values of one column among active
// articles. The column name is always a compile-time constant in callers.
func (r *articleRepo) Distinct(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).Model(&model.Article{}).
		Where("is_active = true").Where(column+" <> ''").
		Distinct(column).Order(column).Pluck(column, &values).Error
	return values, err
}

func (r *articleRepo) Update(ctx context.Context, a *model.Article) error {
	return r.db.WithContext(ctx).Omit("Clients", "Processes").Save(a).Error
}

func (r *articleRepo) ReplaceClients(ctx context.Context, a *model.Article, clients []model.Client) error {
	return r.db.WithContext(ctx).Model(a).Association("Clients").Replace(clients)
}

func (r *articleRepo) ReplaceProcesses(ctx context.Context, a *model.Article, processes []model.ArticleProcess) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", a.ID).Delete(&model.ArticleProcess{}).Error; err != nil {
			return err
		}
		for i := range processes {
			processes[i].ArticleID = a.ID
			if err := tx.Create(&processes[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *articleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Clients", "Processes").Delete(&model.Article{ID: id}).Error
}

func (r *articleRepo) AjusterStock(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Article{}).Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
}

func (r *articleRepo) DecrementerStock(tx *gorm.DB, id uuid.UUID, qte int) (bool, error) {
	res := tx.Model(&model.Article{}).
		Where("id = ? AND stock >= ?", id, qte).
		Update("stock", gorm.Expr("stock - ?", qte))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *articleRepo) DB() *gorm.DB { return r.db }
