package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eleostock/internal/dto"
	"eleostock/internal/model"
	"eleostock/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductionService interface {
	Creer(ctx context.Context, req dto.CreerProductionRequest) (*dto.ProductionResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductionResponse, error)
	Lister(ctx context.Context) ([]dto.ProductionResponse, error)
	RechercherParArticleRef(ctx context.Context, articleRef string) ([]dto.ProductionResponse, error)
	RechercherParDate(ctx context.Context, date string) ([]dto.ProductionResponse, error)
	RechercherParArticleRefEtDate(ctx context.Context, articleRef, date string) ([]dto.ProductionResponse, error)
	RechercherParMois(ctx context.Context, annee, mois int) ([]dto.ProductionResponse, error)
	RechercherParArticleRefEtMois(ctx context.Context, articleRef string, annee, mois int) ([]dto.ProductionResponse, error)
	MettreAJour(ctx context.Context, id uuid.UUID, req dto.MettreAJourProductionRequest) (*dto.ProductionResponse, error)
	Supprimer(ctx context.Context, id uuid.UUID) error
}

type productionService struct {
	repo        repository.ProductionRepository
	articleRepo repository.ArticleRepository
}

func NewProductionService(repo repository.ProductionRepository, articleRepo repository.ArticleRepository) ProductionService {
	return &productionService{repo: repo, articleRepo: articleRepo}
}

// Creer records a manufacturing run and credits the article's stock. One
// active production per (articleRef, dateProduction).
func (s *productionService) Creer(ctx context.Context, req dto.CreerProductionRequest) (*dto.ProductionResponse, error) {
	article, err := s.findArticleByRef(ctx, req.ArticleRef)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.DateProduction)
	if err != nil {
		return nil, fmt.Errorf("%w: dateProduction %q", ErrValidation, req.DateProduction)
	}

	dup, err := s.repo.ExistsActiveForArticleDate(ctx, article.Ref, date, nil)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, fmt.Errorf("%w: une production existe déjà pour %s le %s",
			ErrDoublon, article.Ref, req.DateProduction)
	}

	production := model.Production{
		ArticleID:      article.ID,
		ArticleRef:     article.Ref,
		Quantite:       req.Quantite,
		DateProduction: date,
		IsActive:       true,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &production); err != nil {
			return err
		}
		return s.articleRepo.AjusterStock(tx, article.ID, req.Quantite)
	})
	if txErr != nil {
		return nil, txErr
	}
	return productionToResponse(&production), nil
}

func (s *productionService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductionResponse, error) {
	production, err := s.findProduction(ctx, id)
	if err != nil {
		return nil, err
	}
	return productionToResponse(production), nil
}

func (s *productionService) Lister(ctx context.Context) ([]dto.ProductionResponse, error) {
	productions, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return productionsToResponses(productions), nil
}

func (s *productionService) RechercherParArticleRef(ctx context.Context, articleRef string) ([]dto.ProductionResponse, error) {
	productions, err := s.repo.FindByArticleRef(ctx, articleRef)
	if err != nil {
		return nil, err
	}
	return productionsToResponses(productions), nil
}

func (s *productionService) RechercherParDate(ctx context.Context, date string) ([]dto.ProductionResponse, error) {
	d, err := parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q", ErrValidation, date)
	}
	productions, err := s.repo.FindByDate(ctx, d)
	if err != nil {
		return nil, err
	}
	return productionsToResponses(productions), nil
}

func (s *productionService) RechercherParArticleRefEtDate(ctx context.Context, articleRef, date string) ([]dto.ProductionResponse, error) {
	d, err := parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q", ErrValidation, date)
	}
	productions, err := s.repo.FindByArticleRefAndDate(ctx, articleRef, d)
	if err != nil {
		return nil, err
	}
	return productionsToResponses(productions), nil
}

func (s *productionService) RechercherParMois(ctx context.Context, annee, mois int) ([]dto.ProductionResponse, error) {
	if mois < 1 || mois > 12 {
		return nil, fmt.Errorf("%w: mois %d", ErrValidation, mois)
	}
	productions, err := s.repo.FindByMois(ctx, annee, time.Month(mois))
	if err != nil {
		return nil, err
	}
	return productionsToResponses(productions), nil
}

func (s *productionService) RechercherParArticleRefEtMois(ctx context.Context, articleRef string, annee, mois int) ([]dto.ProductionResponse, error) {
	if mois < 1 || mois > 12 {
		return nil, fmt.Errorf("%w: mois %d", ErrValidation, mois)
	}
	productions, err := s.repo.FindByArticleRefAndMois(ctx, articleRef, annee, time.Month(mois))
	if err != nil {
		return nil, err
	}
	return productionsToResponses(productions), nil
}

// MettreAJour adjusts stock by the signed difference when the article stays
// the same, and does a full reverse-then-apply when it changes. Decrements
// are floor-checked either way.
func (s *productionService) MettreAJour(ctx context.Context, id uuid.UUID, req dto.MettreAJourProductionRequest) (*dto.ProductionResponse, error) {
	production, err := s.findProduction(ctx, id)
	if err != nil {
		return nil, err
	}
	article, err := s.findArticleByRef(ctx, req.ArticleRef)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.DateProduction)
	if err != nil {
		return nil, fmt.Errorf("%w: dateProduction %q", ErrValidation, req.DateProduction)
	}

	dup, err := s.repo.ExistsActiveForArticleDate(ctx, article.Ref, date, &production.ID)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, fmt.Errorf("%w: une production existe déjà pour %s le %s",
			ErrDoublon, article.Ref, req.DateProduction)
	}

	ancienArticleID := production.ArticleID
	ancienneQuantite := production.Quantite

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if ancienArticleID == article.ID {
			delta := req.Quantite - ancienneQuantite
			if delta > 0 {
				if err := s.articleRepo.AjusterStock(tx, article.ID, delta); err != nil {
					return err
				}
			} else if delta < 0 {
				ok, err := s.articleRepo.DecrementerStock(tx, article.ID, -delta)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%w: réduire la production de %s ferait passer le stock sous zéro",
						ErrStockInsuffisant, article.Ref)
				}
			}
		} else {
			ok, err := s.articleRepo.DecrementerStock(tx, ancienArticleID, ancienneQuantite)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: retirer la production ferait passer le stock de l'ancien article sous zéro",
					ErrStockInsuffisant)
			}
			if err := s.articleRepo.AjusterStock(tx, article.ID, req.Quantite); err != nil {
				return err
			}
		}

		production.ArticleID = article.ID
		production.ArticleRef = article.Ref
		production.Quantite = req.Quantite
		production.DateProduction = date
		return s.repo.UpdateTx(tx, production)
	})
	if txErr != nil {
		return nil, txErr
	}
	return productionToResponse(production), nil
}

// Supprimer removes the run and debits the stock it had credited. The debit
// is floor-checked: a run whose output has already been delivered cannot be
// deleted without driving the stock negative, so it is refused.
func (s *productionService) Supprimer(ctx context.Context, id uuid.UUID) error {
	production, err := s.findProduction(ctx, id)
	if err != nil {
		return err
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		ok, err := s.articleRepo.DecrementerStock(tx, production.ArticleID, production.Quantite)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: supprimer la production %s ferait passer le stock sous zéro",
				ErrStockInsuffisant, production.ArticleRef)
		}
		return s.repo.DeleteTx(tx, production.ID)
	})
}

func (s *productionService) findArticleByRef(ctx context.Context, ref string) (*model.Article, error) {
	article, err := s.articleRepo.FindByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: article %s", ErrNotFound, ref)
		}
		return nil, err
	}
	return article, nil
}

func (s *productionService) findProduction(ctx context.Context, id uuid.UUID) (*model.Production, error) {
	production, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: production %s", ErrNotFound, id)
		}
		return nil, err
	}
	return production, nil
}

func productionsToResponses(productions []model.Production) []dto.ProductionResponse {
	resp := make([]dto.ProductionResponse, len(productions))
	for i := range productions {
		resp[i] = *productionToResponse(&productions[i])
	}
	return resp
}

func productionToResponse(p *model.Production) *dto.ProductionResponse {
	return &dto.ProductionResponse{
		ID:             p.ID.String(),
		ArticleRef:     p.ArticleRef,
		Quantite:       p.Quantite,
		DateProduction: p.DateProduction.Format(dateFormat),
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt.Format(dateTimeFormat),
	}
}
