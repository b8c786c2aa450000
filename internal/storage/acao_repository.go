package storage

import (
	"context"

	"github.com/igrejamossoro/servicos-lambda/internal/acao"
)

type acaoRepository struct {
	store *Store
}

func NewAcaoRepository(store *Store) acao.Repository {
	return &acaoRepository{store: store}
}

func (r *acaoRepository) FindAll(ctx context.Context, f acao.Filters) ([]acao.AcaoComServico, error) {
	var out []acao.AcaoComServico
	err := r.store.view(ctx, func(snap *Snapshot) error {
		servicos := snap.servicosPorID()
		out = []acao.AcaoComServico{}
		for _, a := range snap.Acoes {
			if f.ServicoID != 0 && a.ServicoID != f.ServicoID {
				continue
			}
			if f.Mes != "" && a.Mes != f.Mes {
				continue
			}
			sv := servicos[a.ServicoID]
			out = append(out, acao.AcaoComServico{
				Acao:          a,
				ServicoNome:   sv.Nome,
				ServicoNumero: sv.Numero,
			})
		}
		return nil
	})
	return out, err
}

func (r *acaoRepository) FindByServico(ctx context.Context, servicoID int) ([]acao.AcaoDoServico, error) {
	var out []acao.AcaoDoServico
	err := r.store.view(ctx, func(snap *Snapshot) error {
		nome := snap.servicosPorID()[servicoID].Nome
		out = []acao.AcaoDoServico{}
		for _, a := range snap.Acoes {
			if a.ServicoID != servicoID {
				continue
			}
			out = append(out, acao.AcaoDoServico{Acao: a, ServicoNome: nome})
		}
		return nil
	})
	return out, err
}

func (r *acaoRepository) FindByID(ctx context.Context, id int) (*acao.Acao, error) {
	var out *acao.Acao
	err := r.store.view(ctx, func(snap *Snapshot) error {
		for _, a := range snap.Acoes {
			if a.ID == id {
				found := a
				out = &found
				return nil
			}
		}
		return acao.ErrAcaoNotFound
	})
	return out, err
}

func (r *acaoRepository) Create(ctx context.Context, a *acao.Acao) error {
	return r.store.update(ctx, func(snap *Snapshot) ([]Collection, error) {
		a.ID = snap.TakeID(ColAcoes)
		snap.Acoes = append(snap.Acoes, *a)
		return []Collection{ColAcoes}, nil
	})
}

func (r *acaoRepository) Update(ctx context.Context, a *acao.Acao) error {
	return r.store.update(ctx, func(snap *Snapshot) ([]Collection, error) {
		for i := range snap.Acoes {
			if snap.Acoes[i].ID == a.ID {
				a.CreatedAt = snap.Acoes[i].CreatedAt
				snap.Acoes[i] = *a
				return []Collection{ColAcoes}, nil
			}
		}
		return nil, acao.ErrAcaoNotFound
	})
}

func (r *acaoRepository) Delete(ctx context.Context, id int) error {
	return r.store.update(ctx, func(snap *Snapshot) ([]Collection, error) {
		for i := range snap.Acoes {
			if snap.Acoes[i].ID == id {
				snap.Acoes = append(snap.Acoes[:i], snap.Acoes[i+1:]...)
				return []Collection{ColAcoes}, nil
			}
		}
		return nil, acao.ErrAcaoNotFound
	})
}
