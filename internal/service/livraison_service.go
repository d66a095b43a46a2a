package service

import (
	"context"
	"errors"
	"fmt"

	"eleostock/internal/dto"
	"eleostock/internal/model"
	"eleostock/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type LivraisonService interface {
	Creer(ctx context.Context, req dto.CreerLivraisonRequest) (*dto.LivraisonResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.LivraisonResponse, error)
	Lister(ctx context.Context) ([]dto.LivraisonResponse, error)
	RechercherParArticleRef(ctx context.Context, articleRef string) ([]dto.LivraisonResponse, error)
	RechercherParClientNom(ctx context.Context, clientNom string) ([]dto.LivraisonResponse, error)
	RechercherParNumeroCommande(ctx context.Context, numeroCommande string) ([]dto.LivraisonResponse, error)
	MettreAJour(ctx context.Context, id uuid.UUID, req dto.MettreAJourLivraisonRequest) (*dto.LivraisonResponse, error)
	Supprimer(ctx context.Context, id uuid.UUID) error
}

type livraisonService struct {
	repo         repository.LivraisonRepository
	articleRepo  repository.ArticleRepository
	clientRepo   repository.ClientRepository
	commandeRepo repository.CommandeRepository
}

func NewLivraisonService(
	repo repository.LivraisonRepository,
	articleRepo repository.ArticleRepository,
	clientRepo repository.ClientRepository,
	commandeRepo repository.CommandeRepository,
) LivraisonService {
	return &livraisonService{
		repo:         repo,
		articleRepo:  articleRepo,
		clientRepo:   clientRepo,
		commandeRepo: commandeRepo,
	}
}

// Creer records a delivery. Inside one transaction: over-delivery check
// against the other active livraisons of the commande, atomic floor-checked
// stock decrement, numeroBL allocation, insert, and the fulfillment flip when
// the commande is now fully delivered. Any failure rolls the whole thing back.
func (s *livraisonService) Creer(ctx context.Context, req dto.CreerLivraisonRequest) (*dto.LivraisonResponse, error) {
	article, commande, err := s.resolveCible(ctx, req.ArticleRef, req.NumeroCommandeClient, req.ClientNom, nil)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.DateLivraison)
	if err != nil {
		return nil, fmt.Errorf("%w: dateLivraison %q", ErrValidation, req.DateLivraison)
	}

	dup, err := s.repo.ExistsActiveForCommandeDate(ctx, req.NumeroCommandeClient, date, nil)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, fmt.Errorf("%w: une livraison existe déjà pour la commande %s le %s",
			ErrDoublon, req.NumeroCommandeClient, req.DateLivraison)
	}

	var livraison model.Livraison
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		dejaLivree, err := s.repo.SumQuantiteLivreeTx(tx, commande.ID, nil)
		if err != nil {
			return err
		}
		if dejaLivree+req.QuantiteLivree > commande.Quantite {
			return fmt.Errorf("%w: %d déjà livrée(s) + %d dépasse la quantité commandée %d",
				ErrSurLivraison, dejaLivree, req.QuantiteLivree, commande.Quantite)
		}

		ok, err := s.articleRepo.DecrementerStock(tx, article.ID, req.QuantiteLivree)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: article %s, stock %d, demandé %d",
				ErrStockInsuffisant, article.Ref, article.Stock, req.QuantiteLivree)
		}

		numeroBL, err := s.repo.ProchainNumeroBL(tx, date.Year())
		if err != nil {
			return err
		}

		livraison = model.Livraison{
			NumeroBL:             numeroBL,
			ArticleID:            article.ID,
			ArticleRef:           article.Ref,
			ArticleNom:           article.Article,
			ClientID:             commande.ClientID,
			ClientNom:            commande.ClientNom,
			CommandeID:           commande.ID,
			NumeroCommandeClient: commande.NumeroCommandeClient,
			QuantiteLivree:       req.QuantiteLivree,
			DateLivraison:        date,
			IsActive:             true,
		}
		if err := s.repo.CreateTx(tx, &livraison); err != nil {
			return err
		}

		if dejaLivree+req.QuantiteLivree >= commande.Quantite {
			if err := s.commandeRepo.SetActiveTx(tx, commande.ID, false); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Info().
		Str("numero_bl", livraison.NumeroBL).
		Str("article_ref", livraison.ArticleRef).
		Int("quantite", livraison.QuantiteLivree).
		Msg("livraison enregistrée")
	return livraisonToResponse(&livraison), nil
}

func (s *livraisonService) GetByID(ctx context.Context, id uuid.UUID) (*dto.LivraisonResponse, error) {
	livraison, err := s.findLivraison(ctx, id)
	if err != nil {
		return nil, err
	}
	return livraisonToResponse(livraison), nil
}

func (s *livraisonService) Lister(ctx context.Context) ([]dto.LivraisonResponse, error) {
	livraisons, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return livraisonsToResponses(livraisons), nil
}

func (s *livraisonService) RechercherParArticleRef(ctx context.Context, articleRef string) ([]dto.LivraisonResponse, error) {
	livraisons, err := s.repo.FindByArticleRef(ctx, articleRef)
	if err != nil {
		return nil, err
	}
	return livraisonsToResponses(livraisons), nil
}

func (s *livraisonService) RechercherParClientNom(ctx context.Context, clientNom string) ([]dto.LivraisonResponse, error) {
	livraisons, err := s.repo.FindByClientNom(ctx, clientNom)
	if err != nil {
		return nil, err
	}
	return livraisonsToResponses(livraisons), nil
}

func (s *livraisonService) RechercherParNumeroCommande(ctx context.Context, numeroCommande string) ([]dto.LivraisonResponse, error) {
	livraisons, err := s.repo.FindByNumeroCommande(ctx, numeroCommande)
	if err != nil {
		return nil, err
	}
	return livraisonsToResponses(livraisons), nil
}

// MettreAJour re-targets a delivery. The old quantity goes back to the old
// article first, then the over-delivery and stock checks run fresh against the
// new target — the stock floor applies whether or not the article changed.
// NumeroBL never changes.
func (s *livraisonService) MettreAJour(ctx context.Context, id uuid.UUID, req dto.MettreAJourLivraisonRequest) (*dto.LivraisonResponse, error) {
	livraison, err := s.findLivraison(ctx, id)
	if err != nil {
		return nil, err
	}
	article, commande, err := s.resolveCible(ctx, req.ArticleRef, req.NumeroCommandeClient, req.ClientNom, livraison)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.DateLivraison)
	if err != nil {
		return nil, fmt.Errorf("%w: dateLivraison %q", ErrValidation, req.DateLivraison)
	}

	dup, err := s.repo.ExistsActiveForCommandeDate(ctx, req.NumeroCommandeClient, date, &livraison.ID)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, fmt.Errorf("%w: une livraison existe déjà pour la commande %s le %s",
			ErrDoublon, req.NumeroCommandeClient, req.DateLivraison)
	}

	ancienArticleID := livraison.ArticleID
	ancienneCommandeID := livraison.CommandeID
	ancienneQuantite := livraison.QuantiteLivree

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.articleRepo.AjusterStock(tx, ancienArticleID, ancienneQuantite); err != nil {
			return err
		}

		autresLivrees, err := s.repo.SumQuantiteLivreeTx(tx, commande.ID, &livraison.ID)
		if err != nil {
			return err
		}
		if autresLivrees+req.QuantiteLivree > commande.Quantite {
			return fmt.Errorf("%w: %d déjà livrée(s) + %d dépasse la quantité commandée %d",
				ErrSurLivraison, autresLivrees, req.QuantiteLivree, commande.Quantite)
		}

		ok, err := s.articleRepo.DecrementerStock(tx, article.ID, req.QuantiteLivree)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: article %s, demandé %d", ErrStockInsuffisant, article.Ref, req.QuantiteLivree)
		}

		livraison.ArticleID = article.ID
		livraison.ArticleRef = article.Ref
		livraison.ArticleNom = article.Article
		livraison.ClientID = commande.ClientID
		livraison.ClientNom = commande.ClientNom
		livraison.CommandeID = commande.ID
		livraison.NumeroCommandeClient = commande.NumeroCommandeClient
		livraison.QuantiteLivree = req.QuantiteLivree
		livraison.DateLivraison = date
		if err := s.repo.UpdateTx(tx, livraison); err != nil {
			return err
		}

		if err := s.recalculerCommande(ctx, tx, commande.ID); err != nil {
			return err
		}
		if ancienneCommandeID != commande.ID {
			if err := s.recalculerCommande(ctx, tx, ancienneCommandeID); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return livraisonToResponse(livraison), nil
}

// Supprimer restores the article's stock and recomputes the commande's
// fulfillment: it reactivates only when the remaining delivered total drops
// under the ordered quantity.
func (s *livraisonService) Supprimer(ctx context.Context, id uuid.UUID) error {
	livraison, err := s.findLivraison(ctx, id)
	if err != nil {
		return err
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.articleRepo.AjusterStock(tx, livraison.ArticleID, livraison.QuantiteLivree); err != nil {
			return err
		}
		if err := s.repo.DeleteTx(tx, livraison.ID); err != nil {
			return err
		}
		return s.recalculerCommande(ctx, tx, livraison.CommandeID)
	})
}

// recalculerCommande re-derives a commande's fulfillment flag from its active
// livraisons, in the current transaction.
func (s *livraisonService) recalculerCommande(ctx context.Context, tx *gorm.DB, commandeID uuid.UUID) error {
	commande, err := s.commandeRepo.FindByID(ctx, commandeID)
	if err != nil {
		return err
	}
	livree, err := s.repo.SumQuantiteLivreeTx(tx, commandeID, nil)
	if err != nil {
		return err
	}
	return s.commandeRepo.SetActiveTx(tx, commandeID, livree < commande.Quantite)
}

// resolveCible resolves the article and the commande addressed by the request
// business key. An inactive (fulfilled) commande is still a valid target when
// it is the one the livraison being updated already belongs to.
func (s *livraisonService) resolveCible(ctx context.Context, articleRef, numeroCommandeClient, clientNom string, courante *model.Livraison) (*model.Article, *model.Commande, error) {
	article, err := s.articleRepo.FindByRef(ctx, articleRef)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: article %s", ErrNotFound, articleRef)
		}
		return nil, nil, err
	}

	commande, err := s.commandeRepo.FindActiveByRefCommande(ctx, articleRef, numeroCommandeClient, clientNom)
	if err == nil {
		return article, commande, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	if courante != nil {
		own, ownErr := s.commandeRepo.FindByID(ctx, courante.CommandeID)
		if ownErr == nil &&
			own.ArticleRef == articleRef &&
			own.NumeroCommandeClient == numeroCommandeClient &&
			own.ClientNom == clientNom {
			return article, own, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: commande active (%s, %s, %s)", ErrNotFound, articleRef, numeroCommandeClient, clientNom)
}

func (s *livraisonService) findLivraison(ctx context.Context, id uuid.UUID) (*model.Livraison, error) {
	livraison, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: livraison %s", ErrNotFound, id)
		}
		return nil, err
	}
	return livraison, nil
}

func livraisonsToResponses(livraisons []model.Livraison) []dto.LivraisonResponse {
	resp := make([]dto.LivraisonResponse, len(livraisons))
	for i := range livraisons {
		resp[i] = *livraisonToResponse(&livraisons[i])
	}
	return resp
}

func livraisonToResponse(l *model.Livraison) *dto.LivraisonResponse {
	return &dto.LivraisonResponse{
		ID:                   l.ID.String(),
		NumeroBL:             l.NumeroBL,
		ArticleRef:           l.ArticleRef,
		ArticleNom:           l.ArticleNom,
		ClientNom:            l.ClientNom,
		NumeroCommandeClient: l.NumeroCommandeClient,
		QuantiteLivree:       l.QuantiteLivree,
		DateLivraison:        l.DateLivraison.Format(dateFormat),
		IsActive:             l.IsActive,
		CreatedAt:            l.CreatedAt.Format(dateTimeFormat),
	}
}
