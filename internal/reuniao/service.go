package reuniao

import (
	"context"
	"errors"

	"github.com/igrejamossoro/servicos-lambda/internal/config"
	util "github.com/igrejamossoro/servicos-lambda/internal/utils"
)

var ErrReuniaoNotFound = errors.New("Reunião não encontrada")

type Service interface {
	List(ctx context.Context, f Filters) ([]ReuniaoComServico, error)
	ListByServico(ctx context.Context, servicoID int) ([]ReuniaoDoServico, error)
	Create(ctx context.Context, dto ReuniaoDTO) (*Reuniao, error)
	Update(ctx context.Context, id int, dto ReuniaoDTO) (*Reuniao, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, f Filters) ([]ReuniaoComServico, error) {
	reunioes, err := s.repo.FindAll(ctx, f)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list reunioes")
		return nil, err
	}
	return reunioes, nil
}

func (s *service) ListByServico(ctx context.Context, servicoID int) ([]ReuniaoDoServico, error) {
	reunioes, err := s.repo.FindByServico(ctx, servicoID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list reunioes by servico")
		return nil, err
	}
	return reunioes, nil
}

func (s *service) Create(ctx context.Context, dto ReuniaoDTO) (*Reuniao, error) {
	log := config.WithContext(ctx)

	re := &Reuniao{
		ServicoID:     int(dto.ServicoID),
		Data:          dto.Data,
		Mes:           dto.Mes,
		Resumo:        dto.Resumo,
		Participantes: dto.Participantes,
		Decisoes:      dto.Decisoes,
		CreatedAt:     util.NowISO(),
	}

	if err := s.repo.Create(ctx, re); err != nil {
		log.WithError(err).Error("Failed to create reuniao")
		return nil, err
	}

	log.WithField("reuniao_id", re.ID).Info("Reuniao created successfully")
	return re, nil
}

func (s *service) Update(ctx context.Context, id int, dto ReuniaoDTO) (*Reuniao, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ServicoID = int(dto.ServicoID)
	existing.Data = dto.Data
	existing.Mes = dto.Mes
	existing.Resumo = dto.Resumo
	existing.Participantes = dto.Participantes
	existing.Decisoes = dto.Decisoes

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update reuniao")
		return nil, err
	}
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, ErrReuniaoNotFound) {
			config.WithContext(ctx).WithError(err).Error("Failed to delete reuniao")
		}
		return err
	}
	return nil
}
