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

type ProcessService interface {
	Creer(ctx context.Context, req dto.CreerProcessRequest) (*dto.ProcessResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProcessResponse, error)
	Lister(ctx context.Context) ([]dto.ProcessResponse, error)
	ListerSimple(ctx context.Context) ([]dto.ProcessSimpleResponse, error)
	MettreAJour(ctx context.Context, id uuid.UUID, req dto.MettreAJourProcessRequest) (*dto.ProcessResponse, error)
	Supprimer(ctx context.Context, id uuid.UUID) error
}

type processService struct {
	repo repository.ProcessRepository
}

func NewProcessService(repo repository.ProcessRepository) ProcessService {
	return &processService{repo: repo}
}

func (s *processService) Creer(ctx context.Context, req dto.CreerProcessRequest) (*dto.ProcessResponse, error) {
	if req.Ref != "" {
		taken, err := s.repo.ExistsByRef(ctx, req.Ref)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: un process avec la référence %s", ErrDuplicate, req.Ref)
		}
	}
	taken, err := s.repo.ExistsByNom(ctx, req.Nom)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: un process nommé %s", ErrDuplicate, req.Nom)
	}

	process := &model.Process{
		Ref:      nilIfEmpty(req.Ref),
		Nom:      req.Nom,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, process); err != nil {
		return nil, err
	}
	return processToResponse(process), nil
}

func (s *processService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProcessResponse, error) {
	process, err := s.findProcess(ctx, id)
	if err != nil {
		return nil, err
	}
	return processToResponse(process), nil
}

func (s *processService) Lister(ctx context.Context) ([]dto.ProcessResponse, error) {
	processes, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProcessResponse, len(processes))
	for i := range processes {
		resp[i] = *processToResponse(&processes[i])
	}
	return resp, nil
}

func (s *processService) ListerSimple(ctx context.Context) ([]dto.ProcessSimpleResponse, error) {
	processes, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProcessSimpleResponse, len(processes))
	for i, p := range processes {
		resp[i] = dto.ProcessSimpleResponse{ID: p.ID.String(), Nom: p.Nom}
	}
	return resp, nil
}

func (s *processService) MettreAJour(ctx context.Context, id uuid.UUID, req dto.MettreAJourProcessRequest) (*dto.ProcessResponse, error) {
	process, err := s.findProcess(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Ref != "" && (process.Ref == nil || *process.Ref != req.Ref) {
		taken, err := s.repo.ExistsByRef(ctx, req.Ref)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: un process avec la référence %s", ErrDuplicate, req.Ref)
		}
	}
	if req.Nom != process.Nom {
		taken, err := s.repo.ExistsByNom(ctx, req.Nom)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: un process nommé %s", ErrDuplicate, req.Nom)
		}
	}

	process.Ref = nilIfEmpty(req.Ref)
	process.Nom = req.Nom
	if err := s.repo.Update(ctx, process); err != nil {
		return nil, err
	}
	return processToResponse(process), nil
}

func (s *processService) Supprimer(ctx context.Context, id uuid.UUID) error {
	process, err := s.findProcess(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, process.ID)
}

func (s *processService) findProcess(ctx context.Context, id uuid.UUID) (*model.Process, error) {
	process, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: process %s", ErrNotFound, id)
		}
		return nil, err
	}
	return process, nil
}

func processToResponse(p *model.Process) *dto.ProcessResponse {
	return &dto.ProcessResponse{
		ID:        p.ID.String(),
		Ref:       p.Ref,
		Nom:       p.Nom,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt.Format(dateTimeFormat),
	}
}
