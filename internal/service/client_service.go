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

type ClientService interface {
	Creer(ctx context.Context, req dto.CreerClientRequest) (*dto.ClientResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error)
	Lister(ctx context.Context) ([]dto.ClientResponse, error)
	ListerSimple(ctx context.Context) ([]dto.ClientSimpleResponse, error)
	RechercherParNom(ctx context.Context, nomComplet string) ([]dto.ClientResponse, error)
	RechercherParModeTransport(ctx context.Context, modeTransport string) ([]dto.ClientResponse, error)
	RechercherParIncoTerme(ctx context.Context, incoTerme string) ([]dto.ClientResponse, error)
	NomsDistincts(ctx context.Context) ([]string, error)
	MettreAJour(ctx context.Context, id uuid.UUID, req dto.MettreAJourClientRequest) (*dto.ClientResponse, error)
	Supprimer(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	repo         repository.ClientRepository
	commandeRepo repository.CommandeRepository
}

func NewClientService(repo repository.ClientRepository, commandeRepo repository.CommandeRepository) ClientService {
	return &clientService{repo: repo, commandeRepo: commandeRepo}
}

func (s *clientService) Creer(ctx context.Context, req dto.CreerClientRequest) (*dto.ClientResponse, error) {
	if req.Ref != "" {
		taken, err := s.repo.ExistsByRef(ctx, req.Ref)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: un client avec la référence %s", ErrDuplicate, req.Ref)
		}
	}
	taken, err := s.repo.ExistsByNomComplet(ctx, req.NomComplet)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: un client nommé %s", ErrDuplicate, req.NomComplet)
	}

	client := &model.Client{
		Ref:                nilIfEmpty(req.Ref),
		NomComplet:         req.NomComplet,
		AdresseLivraison:   req.AdresseLivraison,
		AdresseFacturation: req.AdresseFacturation,
		Devise:             req.Devise,
		ModeTransport:      req.ModeTransport,
		IncoTerme:          req.IncoTerme,
		IsActive:           true,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ClientResponse, error) {
	client, err := s.findClient(ctx, id)
	if err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

func (s *clientService) Lister(ctx context.Context) ([]dto.ClientResponse, error) {
	clients, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return clientsToResponses(clients), nil
}

func (s *clientService) ListerSimple(ctx context.Context) ([]dto.ClientSimpleResponse, error) {
	clients, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClientSimpleResponse, len(clients))
	for i, c := range clients {
		resp[i] = dto.ClientSimpleResponse{ID: c.ID.String(), NomComplet: c.NomComplet}
	}
	return resp, nil
}

func (s *clientService) RechercherParNom(ctx context.Context, nomComplet string) ([]dto.ClientResponse, error) {
	clients, err := s.repo.SearchByNomComplet(ctx, nomComplet)
	if err != nil {
		return nil, err
	}
	return clientsToResponses(clients), nil
}

func (s *clientService) RechercherParModeTransport(ctx context.Context, modeTransport string) ([]dto.ClientResponse, error) {
	clients, err := s.repo.FindByModeTransport(ctx, modeTransport)
	if err != nil {
		return nil, err
	}
	return clientsToResponses(clients), nil
}

func (s *clientService) RechercherParIncoTerme(ctx context.Context, incoTerme string) ([]dto.ClientResponse, error) {
	clients, err := s.repo.FindByIncoTerme(ctx, incoTerme)
	if err != nil {
		return nil, err
	}
	return clientsToResponses(clients), nil
}

func (s *clientService) NomsDistincts(ctx context.Context) ([]string, error) {
	return s.repo.DistinctNomComplets(ctx)
}

func (s *clientService) MettreAJour(ctx context.Context, id uuid.UUID, req dto.MettreAJourClientRequest) (*dto.ClientResponse, error) {
	client, err := s.findClient(ctx, id)
	if err != nil {
		return nil, err
	}

	// Uniqueness only matters when the value actually changes: keeping the
	// same ref or nom on update is not a collision with itself.
	if req.Ref != "" && (client.Ref == nil || *client.Ref != req.Ref) {
		taken, err := s.repo.ExistsByRef(ctx, req.Ref)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: un client avec la référence %s", ErrDuplicate, req.Ref)
		}
	}
	if req.NomComplet != client.NomComplet {
		taken, err := s.repo.ExistsByNomComplet(ctx, req.NomComplet)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: un client nommé %s", ErrDuplicate, req.NomComplet)
		}
	}

	client.Ref = nilIfEmpty(req.Ref)
	client.NomComplet = req.NomComplet
	client.AdresseLivraison = req.AdresseLivraison
	client.AdresseFacturation = req.AdresseFacturation
	client.Devise = req.Devise
	client.ModeTransport = req.ModeTransport
	client.IncoTerme = req.IncoTerme

	if err := s.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return clientToResponse(client), nil
}

func (s *clientService) Supprimer(ctx context.Context, id uuid.UUID) error {
	client, err := s.findClient(ctx, id)
	if err != nil {
		return err
	}
	count, err := s.commandeRepo.CountActiveByClientID(ctx, client.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: le client %s a %d commande(s) active(s)", ErrConflit, client.NomComplet, count)
	}
	return s.repo.Delete(ctx, client.ID)
}

func (s *clientService) findClient(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: client %s", ErrNotFound, id)
		}
		return nil, err
	}
	return client, nil
}

func clientsToResponses(clients []model.Client) []dto.ClientResponse {
	resp := make([]dto.ClientResponse, len(clients))
	for i := range clients {
		resp[i] = *clientToResponse(&clients[i])
	}
	return resp
}

func clientToResponse(c *model.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:                 c.ID.String(),
		Ref:                c.Ref,
		NomComplet:         c.NomComplet,
		AdresseLivraison:   c.AdresseLivraison,
		AdresseFacturation: c.AdresseFacturation,
		Devise:             c.Devise,
		ModeTransport:      c.ModeTransport,
		IncoTerme:          c.IncoTerme,
		IsActive:           c.IsActive,
		CreatedAt:          c.CreatedAt.Format(dateTimeFormat),
	}
}
