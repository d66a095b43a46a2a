package service

import (
	"context"
	"errors"
	"fmt"

	"eleostock/internal/dto"
	"eleostock/internal/model"
	"eleostock/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleService interface {
	Creer(ctx context.Context, req dto.CreerArticleRequest) (*dto.ArticleResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ArticleResponse, error)
	GetByRef(ctx context.Context, ref string) (*dto.ArticleResponse, error)
	Lister(ctx context.Context) ([]dto.ArticleResponse, error)
	RechercherParNom(ctx context.Context, nom string) ([]dto.ArticleResponse, error)
	RechercherParFamille(ctx context.Context, famille string) ([]dto.ArticleResponse, error)
	RechercherParTypeProcess(ctx context.Context, typeProcess string) ([]dto.ArticleResponse, error)
	RechercherParTypeProduit(ctx context.Context, typeProduit string) ([]dto.ArticleResponse, error)
	ValeursDistinctes(ctx context.Context, champ string) ([]string, error)
	MettreAJour(ctx context.Context, id uuid.UUID, req dto.MettreAJourArticleRequest) (*dto.ArticleResponse, error)
	Supprimer(ctx context.Context, id uuid.UUID) error
	DefinirImage(ctx context.Context, id uuid.UUID, imageRef *string) error
}

type articleService struct {
	repo           repository.ArticleRepository
	clientRepo     repository.ClientRepository
	processRepo    repository.ProcessRepository
	commandeRepo   repository.CommandeRepository
	livraisonRepo  repository.LivraisonRepository
	productionRepo repository.ProductionRepository
}

func NewArticleService(
	repo repository.ArticleRepository,
	clientRepo repository.ClientRepository,
	processRepo repository.ProcessRepository,
	commandeRepo repository.CommandeRepository,
	livraisonRepo repository.LivraisonRepository,
	productionRepo repository.ProductionRepository,
) ArticleService {
	return &articleService{
		repo:           repo,
		clientRepo:     clientRepo,
		processRepo:    processRepo,
		commandeRepo:   commandeRepo,
		livraisonRepo:  livraisonRepo,
		productionRepo: productionRepo,
	}
}

// Columns exposed by the distinct-values endpoint. Keys are the URL segment,
// values the underlying column.
var distinctColumns = map[string]string{
	"refs":         "ref",
	"noms":         "article",
	"familles":     "famille",
	"typeProcess":  "type_process",
	"typeProduits": "type_produit",
}

func (s *articleService) Creer(ctx context.Context, req dto.CreerArticleRequest) (*dto.ArticleResponse, error) {
	taken, err := s.repo.ExistsByRef(ctx, req.Ref)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: un article avec la référence %s", ErrDuplicate, req.Ref)
	}

	clients, err := s.resolveClients(ctx, req.ClientIDs)
	if err != nil {
		return nil, err
	}
	processes, err := s.resolveProcesses(ctx, req.Processes)
	if err != nil {
		return nil, err
	}

	article := &model.Article{
		Ref:          req.Ref,
		Article:      req.Article,
		Famille:      req.Famille,
		SousFamille:  req.SousFamille,
		TypeProcess:  req.TypeProcess,
		TypeProduit:  req.TypeProduit,
		PrixUnitaire: req.PrixUnitaire,
		MPQ:          req.MPQ,
		Stock:        req.Stock,
		IsActive:     true,
		Clients:      clients,
		Processes:    processes,
	}
	if err := s.repo.Create(ctx, article); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, article.ID)
}

func (s *articleService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ArticleResponse, error) {
	article, err := s.findArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	return articleToResponse(article), nil
}

func (s *articleService) GetByRef(ctx context.Context, ref string) (*dto.ArticleResponse, error) {
	article, err := s.repo.FindByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: article %s", ErrNotFound, ref)
		}
		return nil, err
	}
	return articleToResponse(article), nil
}

func (s *articleService) Lister(ctx context.Context) ([]dto.ArticleResponse, error) {
	articles, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return articlesToResponses(articles), nil
}

func (s *articleService) RechercherParNom(ctx context.Context, nom string) ([]dto.ArticleResponse, error) {
	articles, err := s.repo.SearchByNom(ctx, nom)
	if err != nil {
		return nil, err
	}
	return articlesToResponses(articles), nil
}

func (s *articleService) RechercherParFamille(ctx context.Context, famille string) ([]dto.ArticleResponse, error) {
	articles, err := s.repo.FindByFamille(ctx, famille)
	if err != nil {
		return nil, err
	}
	return articlesToResponses(articles), nil
}

func (s *articleService) RechercherParTypeProcess(ctx context.Context, typeProcess string) ([]dto.ArticleResponse, error) {
	articles, err := s.repo.FindByTypeProcess(ctx, typeProcess)
	if err != nil {
		return nil, err
	}
	return articlesToResponses(articles), nil
}

func (s *articleService) RechercherParTypeProduit(ctx context.Context, typeProduit string) ([]dto.ArticleResponse, error) {
	articles, err := s.repo.FindByTypeProduit(ctx, typeProduit)
	if err != nil {
		return nil, err
	}
	return articlesToResponses(articles), nil
}

func (s *articleService) ValeursDistinctes(ctx context.Context, champ string) ([]string, error) {
	column, ok := distinctColumns[champ]
	if !ok {
		return nil, fmt.Errorf("%w: champ %q inconnu", ErrValidation, champ)
	}
	return s.repo.Distinct(ctx, column)
}

func (s *articleService) MettreAJour(ctx context.Context, id uuid.UUID, req dto.MettreAJourArticleRequest) (*dto.ArticleResponse, error) {
	article, err := s.findArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Ref != article.Ref {
		taken, err := s.repo.ExistsByRef(ctx, req.Ref)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: un article avec la référence %s", ErrDuplicate, req.Ref)
		}
	}

	clients, err := s.resolveClients(ctx, req.ClientIDs)
	if err != nil {
		return nil, err
	}
	processes, err := s.resolveProcesses(ctx, req.Processes)
	if err != nil {
		return nil, err
	}

	article.Ref = req.Ref
	article.Article = req.Article
	article.Famille = req.Famille
	article.SousFamille = req.SousFamille
	article.TypeProcess = req.TypeProcess
	article.TypeProduit = req.TypeProduit
	article.PrixUnitaire = req.PrixUnitaire
	article.MPQ = req.MPQ
	// Stock untouched: it only moves through productions and livraisons.

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceClients(ctx, article, clients); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceProcesses(ctx, article, processes); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, article.ID)
}

func (s *articleService) Supprimer(ctx context.Context, id uuid.UUID) error {
	article, err := s.findArticle(ctx, id)
	if err != nil {
		return err
	}
	commandes, err := s.commandeRepo.CountActiveByArticleID(ctx, article.ID)
	if err != nil {
		return err
	}
	livraisons, err := s.livraisonRepo.CountActiveByArticleID(ctx, article.ID)
	if err != nil {
		return err
	}
	productions, err := s.productionRepo.CountActiveByArticleID(ctx, article.ID)
	if err != nil {
		return err
	}
	if commandes > 0 || livraisons > 0 || productions > 0 {
		return fmt.Errorf("%w: l'article %s est référencé par %d commande(s), %d livraison(s), %d production(s) active(s)",
			ErrConflit, article.Ref, commandes, livraisons, productions)
	}
	return s.repo.Delete(ctx, article.ID)
}

func (s *articleService) DefinirImage(ctx context.Context, id uuid.UUID, imageRef *string) error {
	article, err := s.findArticle(ctx, id)
	if err != nil {
		return err
	}
	article.ImageRef = imageRef
	return s.repo.Update(ctx, article)
}

func (s *articleService) resolveClients(ctx context.Context, ids []string) ([]model.Client, error) {
	clients := make([]model.Client, 0, len(ids))
	for _, raw := range ids {
		cid, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: clientId %q", ErrValidation, raw)
		}
		client, err := s.clientRepo.FindByID(ctx, cid)
		if err != nil {
			return nil, fmt.Errorf("%w: client %s", ErrNotFound, raw)
		}
		clients = append(clients, *client)
	}
	return clients, nil
}

func (s *articleService) resolveProcesses(ctx context.Context, entries []dto.ProcessEntryRequest) ([]model.ArticleProcess, error) {
	processes := make([]model.ArticleProcess, 0, len(entries))
	for _, e := range entries {
		pid, err := uuid.Parse(e.ProcessID)
		if err != nil {
			return nil, fmt.Errorf("%w: processId %q", ErrValidation, e.ProcessID)
		}
		if _, err := s.processRepo.FindByID(ctx, pid); err != nil {
			return nil, fmt.Errorf("%w: process %s", ErrNotFound, e.ProcessID)
		}
		processes = append(processes, model.ArticleProcess{
			ProcessID:  pid,
			TempsParPF: e.TempsParPF,
			CadenceMax: e.CadenceMax,
		})
	}
	return processes, nil
}

func (s *articleService) findArticle(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: article %s", ErrNotFound, id)
		}
		return nil, err
	}
	return article, nil
}

func articlesToResponses(articles []model.Article) []dto.ArticleResponse {
	resp := make([]dto.ArticleResponse, len(articles))
	for i := range articles {
		resp[i] = *articleToResponse(&articles[i])
	}
	return resp
}

func articleToResponse(a *model.Article) *dto.ArticleResponse {
	clients := make([]dto.ClientSimpleResponse, len(a.Clients))
	for i, c := range a.Clients {
		clients[i] = dto.ClientSimpleResponse{ID: c.ID.String(), NomComplet: c.NomComplet}
	}
	processes := make([]dto.ProcessEntryResponse, len(a.Processes))
	for i, p := range a.Processes {
		nom := ""
		if p.Process != nil {
			nom = p.Process.Nom
		}
		processes[i] = dto.ProcessEntryResponse{
			ProcessID:  p.ProcessID.String(),
			ProcessNom: nom,
			TempsParPF: p.TempsParPF,
			CadenceMax: p.CadenceMax,
		}
	}
	return &dto.ArticleResponse{
		ID:           a.ID.String(),
		Ref:          a.Ref,
		Article:      a.Article,
		Famille:      a.Famille,
		SousFamille:  a.SousFamille,
		TypeProcess:  a.TypeProcess,
		TypeProduit:  a.TypeProduit,
		PrixUnitaire: a.PrixUnitaire,
		MPQ:          a.MPQ,
		Stock:        a.Stock,
		ImageRef:     a.ImageRef,
		IsActive:     a.IsActive,
		Clients:      clients,
		Processes:    processes,
		CreatedAt:    a.CreatedAt.Format(dateTimeFormat),
	}
}
