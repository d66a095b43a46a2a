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

type CommandeService interface {
	Creer(ctx context.Context, req dto.CreerCommandeRequest) (*dto.CommandeResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.CommandeResponse, error)
	Lister(ctx context.Context) ([]dto.CommandeResponse, error)
	Rechercher(ctx context.Context, q dto.RechercheCommandeQuery) ([]dto.CommandeResponse, error)
	Resumer(ctx context.Context, q dto.RechercheCommandeQuery) (*dto.CommandeSummaryResponse, error)
	MettreAJour(ctx context.Context, id uuid.UUID, req dto.MettreAJourCommandeRequest) (*dto.CommandeResponse, error)
	Supprimer(ctx context.Context, id uuid.UUID) error
}

type commandeService struct {
	repo          repository.CommandeRepository
	articleRepo   repository.ArticleRepository
	clientRepo    repository.ClientRepository
	livraisonRepo repository.LivraisonRepository
}

func NewCommandeService(
	repo repository.CommandeRepository,
	articleRepo repository.ArticleRepository,
	clientRepo repository.ClientRepository,
	livraisonRepo repository.LivraisonRepository,
) CommandeService {
	return &commandeService{
		repo:          repo,
		articleRepo:   articleRepo,
		clientRepo:    clientRepo,
		livraisonRepo: livraisonRepo,
	}
}

func (s *commandeService) Creer(ctx context.Context, req dto.CreerCommandeRequest) (*dto.CommandeResponse, error) {
	article, client, err := s.resolveRefs(ctx, req.ArticleRef, req.ClientNom)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.DateSouhaitee)
	if err != nil {
		return nil, fmt.Errorf("%w: dateSouhaitee %q", ErrValidation, req.DateSouhaitee)
	}

	commande := &model.Commande{
		ArticleID:            article.ID,
		ArticleRef:           article.Ref,
		ArticleNom:           article.Article,
		ClientID:             client.ID,
		ClientNom:            client.NomComplet,
		NumeroCommandeClient: req.NumeroCommandeClient,
		TypeCommande:         req.TypeCommande,
		Quantite:             req.Quantite,
		DateSouhaitee:        date,
		IsActive:             true,
	}
	if err := s.repo.Create(ctx, commande); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, commande)
}

func (s *commandeService) GetByID(ctx context.Context, id uuid.UUID) (*dto.CommandeResponse, error) {
	commande, err := s.findCommande(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, commande)
}

func (s *commandeService) Lister(ctx context.Context) ([]dto.CommandeResponse, error) {
	commandes, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, commandes)
}

func (s *commandeService) Rechercher(ctx context.Context, q dto.RechercheCommandeQuery) ([]dto.CommandeResponse, error) {
	commandes, err := s.fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, commandes)
}

// Resumer aggregates the same filtered set the search returns.
func (s *commandeService) Resumer(ctx context.Context, q dto.RechercheCommandeQuery) (*dto.CommandeSummaryResponse, error) {
	commandes, err := s.fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, c := range commandes {
		total += c.Quantite
	}
	return &dto.CommandeSummaryResponse{
		TotalQuantite:   total,
		NombreCommandes: len(commandes),
	}, nil
}

// fetch dispatches the query to the matching repository lookup. The most
// specific combination wins; an empty query lists everything active.
func (s *commandeService) fetch(ctx context.Context, q dto.RechercheCommandeQuery) ([]model.Commande, error) {
	switch {
	case q.ArticleRef != "" && q.DebutSouhaitee != "" && q.FinSouhaitee != "":
		debut, fin, err := parsePeriode(q.DebutSouhaitee, q.FinSouhaitee)
		if err != nil {
			return nil, err
		}
		return s.repo.FindByArticleRefAndPeriodeSouhaitee(ctx, q.ArticleRef, debut, fin)
	case q.ArticleRef != "" && q.DebutAjout != "" && q.FinAjout != "":
		debut, fin, err := parsePeriode(q.DebutAjout, q.FinAjout)
		if err != nil {
			return nil, err
		}
		return s.repo.FindByArticleRefAndPeriodeAjout(ctx, q.ArticleRef, debut, fin)
	case q.ArticleRef != "" && q.DateSouhaitee != "":
		date, err := parseDate(q.DateSouhaitee)
		if err != nil {
			return nil, fmt.Errorf("%w: dateSouhaitee %q", ErrValidation, q.DateSouhaitee)
		}
		return s.repo.FindByArticleRefAndDateSouhaitee(ctx, q.ArticleRef, date)
	case q.ArticleRef != "" && q.DateAjout != "":
		date, err := parseDate(q.DateAjout)
		if err != nil {
			return nil, fmt.Errorf("%w: dateAjout %q", ErrValidation, q.DateAjout)
		}
		return s.repo.FindByArticleRefAndDateAjout(ctx, q.ArticleRef, date)
	case q.ArticleRef != "":
		return s.repo.FindByArticleRef(ctx, q.ArticleRef)
	case q.ClientNom != "":
		return s.repo.FindByClientNom(ctx, q.ClientNom)
	case q.DateSouhaitee != "":
		date, err := parseDate(q.DateSouhaitee)
		if err != nil {
			return nil, fmt.Errorf("%w: dateSouhaitee %q", ErrValidation, q.DateSouhaitee)
		}
		return s.repo.FindByDateSouhaitee(ctx, date)
	case q.DateAjout != "":
		date, err := parseDate(q.DateAjout)
		if err != nil {
			return nil, fmt.Errorf("%w: dateAjout %q", ErrValidation, q.DateAjout)
		}
		return s.repo.FindByDateAjout(ctx, date)
	default:
		return s.repo.ListActive(ctx)
	}
}

func (s *commandeService) MettreAJour(ctx context.Context, id uuid.UUID, req dto.MettreAJourCommandeRequest) (*dto.CommandeResponse, error) {
	commande, err := s.findCommande(ctx, id)
	if err != nil {
		return nil, err
	}
	article, client, err := s.resolveRefs(ctx, req.ArticleRef, req.ClientNom)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.DateSouhaitee)
	if err != nil {
		return nil, fmt.Errorf("%w: dateSouhaitee %q", ErrValidation, req.DateSouhaitee)
	}

	commande.ArticleID = article.ID
	commande.ArticleRef = article.Ref
	commande.ArticleNom = article.Article
	commande.ClientID = client.ID
	commande.ClientNom = client.NomComplet
	commande.NumeroCommandeClient = req.NumeroCommandeClient
	commande.TypeCommande = req.TypeCommande
	commande.Quantite = req.Quantite
	commande.DateSouhaitee = date

	// A quantity change can move the commande across the fulfillment line in
	// either direction.
	livree, err := s.livraisonRepo.SumQuantiteLivreeTx(s.livraisonRepo.DB(), commande.ID, nil)
	if err != nil {
		return nil, err
	}
	commande.IsActive = livree < commande.Quantite

	if err := s.repo.Update(ctx, commande); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, commande)
}

func (s *commandeService) Supprimer(ctx context.Context, id uuid.UUID) error {
	commande, err := s.findCommande(ctx, id)
	if err != nil {
		return err
	}
	count, err := s.livraisonRepo.CountActiveByCommandeID(ctx, commande.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: la commande %s a %d livraison(s) active(s)", ErrConflit, commande.NumeroCommandeClient, count)
	}
	return s.repo.Delete(ctx, commande.ID)
}

func (s *commandeService) resolveRefs(ctx context.Context, articleRef, clientNom string) (*model.Article, *model.Client, error) {
	article, err := s.articleRepo.FindByRef(ctx, articleRef)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: article %s", ErrNotFound, articleRef)
		}
		return nil, nil, err
	}
	client, err := s.clientRepo.FindByNomComplet(ctx, clientNom)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: client %s", ErrNotFound, clientNom)
		}
		return nil, nil, err
	}
	return article, client, nil
}

func (s *commandeService) findCommande(ctx context.Context, id uuid.UUID) (*model.Commande, error) {
	commande, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: commande %s", ErrNotFound, id)
		}
		return nil, err
	}
	return commande, nil
}

func parsePeriode(debut, fin string) (time.Time, time.Time, error) {
	d, err := parseDate(debut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: debut %q", ErrValidation, debut)
	}
	f, err := parseDate(fin)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: fin %q", ErrValidation, fin)
	}
	if f.Before(d) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: la période finit avant de commencer", ErrValidation)
	}
	return d, f, nil
}

func (s *commandeService) toResponses(ctx context.Context, commandes []model.Commande) ([]dto.CommandeResponse, error) {
	resp := make([]dto.CommandeResponse, len(commandes))
	for i := range commandes {
		r, err := s.toResponse(ctx, &commandes[i])
		if err != nil {
			return nil, err
		}
		resp[i] = *r
	}
	return resp, nil
}

func (s *commandeService) toResponse(ctx context.Context, c *model.Commande) (*dto.CommandeResponse, error) {
	livree, err := s.livraisonRepo.SumQuantiteLivreeTx(s.livraisonRepo.DB(), c.ID, nil)
	if err != nil {
		return nil, err
	}
	restante := c.Quantite - livree
	if restante < 0 {
		restante = 0
	}
	return &dto.CommandeResponse{
		ID:                   c.ID.String(),
		ArticleRef:           c.ArticleRef,
		ArticleNom:           c.ArticleNom,
		ClientNom:            c.ClientNom,
		NumeroCommandeClient: c.NumeroCommandeClient,
		TypeCommande:         c.TypeCommande,
		Quantite:             c.Quantite,
		QuantiteLivree:       livree,
		QuantiteNonLivree:    restante,
		DateSouhaitee:        c.DateSouhaitee.Format(dateFormat),
		DateAjout:            c.CreatedAt.Format(dateTimeFormat),
		IsActive:             c.IsActive,
	}, nil
}
