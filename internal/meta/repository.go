package meta

import "context"

type Repository interface {
	FindAll(ctx context.Context, f Filters) ([]MetaComSubmetas, error)
	FindByID(ctx context.Context, id int) (*MetaDetalhada, error)
	Create(ctx context.Context, m *Meta) error
	Update(ctx context.Context, m *Meta) error
	// SaveProgresso writes the mutated meta and appends its audit row in the
	// same store operation, persisting both collections together.
	SaveProgresso(ctx context.Context, m *Meta, a *Atualizacao) error
	// Delete also removes every submeta and atualização of the meta.
	Delete(ctx context.Context, id int) error

	FindSubmetasByMeta(ctx context.Context, metaID int) ([]Submeta, error)
	FindSubmetaByID(ctx context.Context, id int) (*Submeta, error)
	CreateSubmeta(ctx context.Context, s *Submeta) error
	UpdateSubmeta(ctx context.Context, s *Submeta) error
	DeleteSubmeta(ctx context.Context, id int) error

	FindAtualizacoesByMeta(ctx context.Context, metaID int) ([]Atualizacao, error)

	Stats(ctx context.Context, ano int) (*MetasStats, error)
}
