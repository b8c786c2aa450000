package acao

import (
	"context"
	"errors"

	"github.com/igrejamossoro/servicos-lambda/internal/config"
	util "github.com/igrejamossoro/servicos-lambda/internal/utils"
)

var ErrAcaoNotFound = errors.New("Ação não encontrada")

type Service interface {
	List(ctx context.Context, f Filters) ([]AcaoComServico, error)
	ListByServico(ctx context.Context, servicoID int) ([]AcaoDoServico, error)
	Create(ctx context.Context, dto AcaoDTO) (*Acao, error)
	Update(ctx context.Context, id int, dto AcaoDTO) (*Acao, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, f Filters) ([]AcaoComServico, error) {
	acoes, err := s.repo.FindAll(ctx, f)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list acoes")
		return nil, err
	}
	return acoes, nil
}

func (s *service) ListByServico(ctx context.Context, servicoID int) ([]AcaoDoServico, error) {
	acoes, err := s.repo.FindByServico(ctx, servicoID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list acoes by servico")
		return nil, err
	}
	return acoes, nil
}

func (s *service) Create(ctx context.Context, dto AcaoDTO) (*Acao, error) {
	log := config.WithContext(ctx)

	status := dto.Status
	if status == "" {
		status = StatusPendente
	}

	a := &Acao{
		ServicoID:    int(dto.ServicoID),
		Mes:          dto.Mes,
		Descricao:    dto.Descricao,
		Motivo:       dto.Motivo,
		Local:        dto.Local,
		DataPrevista: dto.DataPrevista,
		Responsavel:  dto.Responsavel,
		Metodo:       dto.Metodo,
		Custo:        dto.Custo,
		Status:       status,
		CreatedAt:    util.NowISO(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		log.WithError(err).Error("Failed to create acao")
		return nil, err
	}

	log.WithField("acao_id", a.ID).Info("Acao created successfully")
	return a, nil
}

func (s *service) Update(ctx context.Context, id int, dto AcaoDTO) (*Acao, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ServicoID = int(dto.ServicoID)
	existing.Mes = dto.Mes
	existing.Descricao = dto.Descricao
	existing.Motivo = dto.Motivo
	existing.Local = dto.Local
	existing.DataPrevista = dto.DataPrevista
	existing.Responsavel = dto.Responsavel
	existing.Metodo = dto.Metodo
	existing.Custo = dto.Custo
	existing.Status = dto.Status

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update acao")
		return nil, err
	}
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, ErrAcaoNotFound) {
			config.WithContext(ctx).WithError(err).Error("Failed to delete acao")
		}
		return err
	}
	return nil
}
