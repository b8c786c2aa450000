package servico

import "context"

// Repository is implemented by the storage layer over the shared snapshot.
type Repository interface {
	FindAll(ctx context.Context) ([]Servico, error)
	FindByID(ctx context.Context, id int) (*Servico, error)
	Create(ctx context.Context, s *Servico) error
	Update(ctx context.Context, s *Servico) error
	// Delete also removes every ação and reunião owned by the serviço.
	Delete(ctx context.Context, id int) error
}
