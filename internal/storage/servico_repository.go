package storage

import (
	"context"
	"sort"

	"github.com/igrejamossoro/servicos-lambda/internal/servico"
)

type servicoRepository struct {
	store *Store
}

func NewServicoRepository(store *Store) servico.Repository {
	return &servicoRepository{store: store}
}

func (r *servicoRepository) FindAll(ctx context.Context) ([]servico.Servico, error) {
	var out []servico.Servico
	err := r.store.view(ctx, func(snap *Snapshot) error {
		out = append([]servico.Servico{}, snap.Servicos...)
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Numero < out[j].Numero
		})
		return nil
	})
	return out, err
}

func (r *servicoRepository) FindByID(ctx context.Context, id int) (*servico.Servico, error) {
	var out *servico.Servico
	err := r.store.view(ctx, func(snap *Snapshot) error {
		for _, sv := range snap.Servicos {
			if sv.ID == id {
				found := sv
				out = &found
				return nil
			}
		}
		return servico.ErrServicoNotFound
	})
	return out, err
}

func (r *servicoRepository) Create(ctx context.Context, sv *servico.Servico) error {
	return r.store.update(ctx, func(snap *Snapshot) ([]Collection, error) {
		sv.ID = snap.TakeID(ColServicos)
		snap.Servicos = append(snap.Servicos, *sv)
		return []Collection{ColServicos}, nil
	})
}

func (r *servicoRepository) Update(ctx context.Context, sv *servico.Servico) error {
	return r.store.update(ctx, func(snap *Snapshot) ([]Collection, error) {
		for i := range snap.Servicos {
			if snap.Servicos[i].ID == sv.ID {
				sv.CreatedAt = snap.Servicos[i].CreatedAt
				snap.Servicos[i] = *sv
				return []Collection{ColServicos}, nil
			}
		}
		return nil, servico.ErrServicoNotFound
	})
}

func (r *servicoRepository) Delete(ctx context.Context, id int) error {
	return r.store.update(ctx, func(snap *Snapshot) ([]Collection, error) {
		idx := -1
		for i := range snap.Servicos {
			if snap.Servicos[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, servico.ErrServicoNotFound
		}

		snap.Servicos = append(snap.Servicos[:idx], snap.Servicos[idx+1:]...)

		acoes := snap.Acoes[:0]
		for _, a := range snap.Acoes {
			if a.ServicoID != id {
				acoes = append(acoes, a)
			}
		}
		snap.Acoes = acoes

		reunioes := snap.Reunioes[:0]
		for _, re := range snap.Reunioes {
			if re.ServicoID != id {
				reunioes = append(reunioes, re)
			}
		}
		snap.Reunioes = reunioes

		return []Collection{ColServicos, ColAcoes, ColReunioes}, nil
	})
}
