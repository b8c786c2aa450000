package meta

import (
	"context"
	"errors"

	"github.com/igrejamossoro/servicos-lambda/internal/config"
	util "github.com/igrejamossoro/servicos-lambda/internal/utils"
)

var (
	ErrMetaNotFound    = errors.New("Meta não encontrada")
	ErrSubmetaNotFound = errors.New("Submeta não encontrada")
)

type Service interface {
	List(ctx context.Context, f Filters) ([]MetaComSubmetas, error)
	GetByID(ctx context.Context, id int) (*MetaDetalhada, error)
	Create(ctx context.Context, dto CreateMetaDTO) (*Meta, error)
	Update(ctx context.Context, id int, dto UpdateMetaDTO) (*Meta, error)
	UpdateProgresso(ctx context.Context, id int, dto ProgressoDTO) (*Meta, error)
	Delete(ctx context.Context, id int) error

	ListSubmetas(ctx context.Context, metaID int) ([]Submeta, error)
	CreateSubmeta(ctx context.Context, metaID int, dto CreateSubmetaDTO) (*Submeta, error)
	UpdateSubmeta(ctx context.Context, id int, dto UpdateSubmetaDTO) (*Submeta, error)
	ToggleSubmeta(ctx context.Context, id int) (*Submeta, error)
	DeleteSubmeta(ctx context.Context, id int) error

	ListAtualizacoes(ctx context.Context, metaID int) ([]Atualizacao, error)

	Stats(ctx context.Context, ano int) (*MetasStats, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, f Filters) ([]MetaComSubmetas, error) {
	metas, err := s.repo.FindAll(ctx, f)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list metas")
		return nil, err
	}
	return metas, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*MetaDetalhada, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, dto CreateMetaDTO) (*Meta, error) {
	log := config.WithContext(ctx)

	ano := int(dto.Ano)
	if ano == 0 {
		ano = AnoPadrao
	}
	status := dto.Status
	if status == "" {
		status = StatusNaoIniciada
	}
	prioridade := dto.Prioridade
	if prioridade == "" {
		prioridade = PrioridadeMedia
	}

	now := util.NowISO()
	m := &Meta{
		Titulo:              dto.Titulo,
		Descricao:           dto.Descricao,
		Categoria:           dto.Categoria,
		Ano:                 ano,
		Prazo:               dto.Prazo,
		Responsaveis:        dto.Responsaveis,
		MetaNumerica:        metaNumerica(dto.MetaNumerica),
		ValorAtual:          float64(dto.ValorAtual),
		Unidade:             dto.Unidade,
		Status:              status,
		PercentualConclusao: int(dto.PercentualConclusao),
		Prioridade:          prioridade,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		log.WithError(err).Error("Failed to create meta")
		return nil, err
	}

	log.WithField("meta_id", m.ID).Info("Meta created successfully")
	return m, nil
}

func (s *service) Update(ctx context.Context, id int, dto UpdateMetaDTO) (*Meta, error) {
	log := config.WithContext(ctx)

	det, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m := det.Meta

	ano := int(dto.Ano)
	if ano == 0 {
		ano = AnoPadrao
	}

	m.Titulo = dto.Titulo
	m.Descricao = dto.Descricao
	m.Categoria = dto.Categoria
	m.Ano = ano
	m.Prazo = dto.Prazo
	m.Responsaveis = dto.Responsaveis
	m.MetaNumerica = metaNumerica(dto.MetaNumerica)
	m.Unidade = dto.Unidade
	if dto.ValorAtual != nil {
		m.ValorAtual = float64(*dto.ValorAtual)
	}
	if dto.Status != "" {
		m.Status = dto.Status
	}
	if dto.PercentualConclusao != nil {
		m.PercentualConclusao = int(*dto.PercentualConclusao)
	}
	if dto.Prioridade != "" {
		m.Prioridade = dto.Prioridade
	}
	m.UpdatedAt = util.NowISO()

	if err := s.repo.Update(ctx, &m); err != nil {
		log.WithError(err).Error("Failed to update meta")
		return nil, err
	}
	return &m, nil
}

// UpdateProgresso is the one operation that owns the percentual→status rule:
// it overwrites the reported value and percentage, derives the status and
// appends the audit row holding the before/after pair.
func (s *service) UpdateProgresso(ctx context.Context, id int, dto ProgressoDTO) (*Meta, error) {
	log := config.WithContext(ctx)

	det, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m := det.Meta

	valorAnterior := m.ValorAtual
	percentualAnterior := m.PercentualConclusao

	now := util.NowISO()
	m.ValorAtual = float64(dto.ValorAtual)
	m.PercentualConclusao = int(dto.Percentual)
	m.Status = StatusFromPercentual(int(dto.Percentual))
	m.UpdatedAt = now

	at := &Atualizacao{
		MetaID:             m.ID,
		Data:               now,
		ValorAnterior:      valorAnterior,
		ValorNovo:          m.ValorAtual,
		PercentualAnterior: percentualAnterior,
		PercentualNovo:     m.PercentualConclusao,
		Observacao:         dto.Observacao,
		CreatedAt:          now,
	}

	if err := s.repo.SaveProgresso(ctx, &m, at); err != nil {
		log.WithError(err).Error("Failed to update meta progress")
		return nil, err
	}

	log.WithField("meta_id", m.ID).Info("Meta progress updated")
	return &m, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, ErrMetaNotFound) {
			log.WithError(err).Error("Failed to delete meta")
		}
		return err
	}

	log.WithField("meta_id", id).Info("Meta deleted with its submetas and atualizacoes")
	return nil
}

func (s *service) ListSubmetas(ctx context.Context, metaID int) ([]Submeta, error) {
	return s.repo.FindSubmetasByMeta(ctx, metaID)
}

func (s *service) CreateSubmeta(ctx context.Context, metaID int, dto CreateSubmetaDTO) (*Submeta, error) {
	log := config.WithContext(ctx)

	sub := &Submeta{
		MetaID:    metaID,
		Titulo:    dto.Titulo,
		Descricao: dto.Descricao,
		Prazo:     dto.Prazo,
		Concluida: bool(dto.Concluida),
		CreatedAt: util.NowISO(),
	}
	if sub.Concluida {
		sub.DataConclusao = util.NowISO()
	}

	if err := s.repo.CreateSubmeta(ctx, sub); err != nil {
		log.WithError(err).Error("Failed to create submeta")
		return nil, err
	}
	return sub, nil
}

// UpdateSubmeta recomputes dataConclusao from the request's concluida field,
// not the merged one: omitting concluida clears the timestamp even when the
// stored flag stays true. The frontend always re-sends the flag.
func (s *service) UpdateSubmeta(ctx context.Context, id int, dto UpdateSubmetaDTO) (*Submeta, error) {
	log := config.WithContext(ctx)

	sub, err := s.repo.FindSubmetaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sub.Titulo = dto.Titulo
	sub.Descricao = dto.Descricao
	sub.Prazo = dto.Prazo
	if dto.Concluida != nil {
		sub.Concluida = bool(*dto.Concluida)
	}
	if dto.Concluida != nil && bool(*dto.Concluida) {
		sub.DataConclusao = util.NowISO()
	} else {
		sub.DataConclusao = ""
	}

	if err := s.repo.UpdateSubmeta(ctx, sub); err != nil {
		log.WithError(err).Error("Failed to update submeta")
		return nil, err
	}
	return sub, nil
}

func (s *service) ToggleSubmeta(ctx context.Context, id int) (*Submeta, error) {
	log := config.WithContext(ctx)

	sub, err := s.repo.FindSubmetaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sub.Concluida = !sub.Concluida
	if sub.Concluida {
		sub.DataConclusao = util.NowISO()
	} else {
		sub.DataConclusao = ""
	}

	if err := s.repo.UpdateSubmeta(ctx, sub); err != nil {
		log.WithError(err).Error("Failed to toggle submeta")
		return nil, err
	}
	return sub, nil
}

func (s *service) DeleteSubmeta(ctx context.Context, id int) error {
	if err := s.repo.DeleteSubmeta(ctx, id); err != nil {
		if !errors.Is(err, ErrSubmetaNotFound) {
			config.WithContext(ctx).WithError(err).Error("Failed to delete submeta")
		}
		return err
	}
	return nil
}

func (s *service) ListAtualizacoes(ctx context.Context, metaID int) ([]Atualizacao, error) {
	return s.repo.FindAtualizacoesByMeta(ctx, metaID)
}

func (s *service) Stats(ctx context.Context, ano int) (*MetasStats, error) {
	stats, err := s.repo.Stats(ctx, ano)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to compute metas stats")
		return nil, err
	}
	return stats, nil
}

// metaNumerica keeps the loose truthiness of the original storage: zero and
// absent both mean "no numeric target".
func metaNumerica(v util.FlexFloat) *float64 {
	if float64(v) == 0 {
		return nil
	}
	f := float64(v)
	return &f
}
