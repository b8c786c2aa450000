package servico

import (
	"context"
	"errors"

	"github.com/igrejamossoro/servicos-lambda/internal/config"
	util "github.com/igrejamossoro/servicos-lambda/internal/utils"
)

var ErrServicoNotFound = errors.New("Serviço não encontrado")

type Service interface {
	List(ctx context.Context) ([]Servico, error)
	GetByID(ctx context.Context, id int) (*Servico, error)
	Create(ctx context.Context, dto ServicoDTO) (*Servico, error)
	Update(ctx context.Context, id int, dto ServicoDTO) (*Servico, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Servico, error) {
	servicos, err := s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list servicos")
		return nil, err
	}
	return servicos, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Servico, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, dto ServicoDTO) (*Servico, error) {
	log := config.WithContext(ctx)

	sv := &Servico{
		Numero:      int(dto.Numero),
		Nome:        dto.Nome,
		Supervisor:  dto.Supervisor,
		Coordenador: dto.Coordenador,
		CreatedAt:   util.NowISO(),
	}

	if err := s.repo.Create(ctx, sv); err != nil {
		log.WithError(err).Error("Failed to create servico")
		return nil, err
	}

	log.WithField("servico_id", sv.ID).Info("Servico created successfully")
	return sv, nil
}

func (s *service) Update(ctx context.Context, id int, dto ServicoDTO) (*Servico, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Numero = int(dto.Numero)
	existing.Nome = dto.Nome
	existing.Supervisor = dto.Supervisor
	existing.Coordenador = dto.Coordenador

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update servico")
		return nil, err
	}
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, ErrServicoNotFound) {
			log.WithError(err).Error("Failed to delete servico")
		}
		return err
	}

	log.WithField("servico_id", id).Info("Servico deleted with its acoes and reunioes")
	return nil
}
