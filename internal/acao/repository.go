package acao

import "context"

type Repository interface {
	FindAll(ctx context.Context, f Filters) ([]AcaoComServico, error)
	FindByServico(ctx context.Context, servicoID int) ([]AcaoDoServico, error)
	FindByID(ctx context.Context, id int) (*Acao, error)
	Create(ctx context.Context, a *Acao) error
	Update(ctx context.Context, a *Acao) error
	Delete(ctx context.Context, id int) error
}
