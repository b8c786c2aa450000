package reuniao

import "context"

type Repository interface {
	// Both list operations return the most recent meeting first.
	FindAll(ctx context.Context, f Filters) ([]ReuniaoComServico, error)
	FindByServico(ctx context.Context, servicoID int) ([]ReuniaoDoServico, error)
	FindByID(ctx context.Context, id int) (*Reuniao, error)
	Create(ctx context.Context, r *Reuniao) error
	Update(ctx context.Context, r *Reuniao) error
	Delete(ctx context.Context, id int) error
}
