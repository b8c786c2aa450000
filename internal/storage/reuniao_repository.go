package storage

import (
	"context"
	"sort"

	"github.com/igrejamossoro/servicos-lambda/internal/reuniao"
	util "github.com/igrejamossoro/servicos-lambda/internal/utils"
)

type reuniaoRepository struct {
	store *Store
}

func NewReuniaoRepository(store *Store) reuniao.Repository {
	return &reuniaoRepository{store: store}
}

func (r *reuniaoRepository) FindAll(ctx context.Context, f reuniao.Filters) ([]reuniao.ReuniaoComServico, error) {
	var out []reuniao.ReuniaoComServico
	err := r.store.view(ctx, func(snap *Snapshot) error {
		servicos := snap.servicosPorID()
		out = []reuniao.ReuniaoComServico{}
		for _, re := range snap.Reunioes {
			if f.ServicoID != 0 && re.ServicoID != f.ServicoID {
				continue
			}
			if f.Mes != "" && re.Mes != f.Mes {
				continue
			}
			sv := servicos[re.ServicoID]
			out = append(out, reuniao.ReuniaoComServico{
				Reuniao:       re,
				ServicoNome:   sv.Nome,
				ServicoNumero: sv.Numero,
			})
		}
		sort.SliceStable(out, func(i, j int) bool {
			return util.ParseDate(out[i].Data).After(util.ParseDate(out[j].Data))
		})
		return nil
	})
	return out, err
}

func (r *reuniaoRepository) FindByServico(ctx context.Context, servicoID int) ([]reuniao.ReuniaoDoServico, error) {
	var out []reuniao.ReuniaoDoServico
	err := r.store.view(ctx, func(snap *Snapshot) error {
		nome := snap.servicosPorID()[servicoID].Nome
		out = []reuniao.ReuniaoDoServico{}
		for _, re := range snap.Reunioes {
			if re.ServicoID != servicoID {
				continue
			}
			out = append(out, reuniao.ReuniaoDoServico{Reuniao: re, ServicoNome: nome})
		}
		sort.SliceStable(out, func(i, j int) bool {
			return util.ParseDate(out[i].Data).After(util.ParseDate(out[j].Data))
		})
		return nil
	})
	return out, err
}

func (r *reuniaoRepository) FindByID(ctx context.Context, id int) (*reuniao.Reuniao, error) {
	var out *reuniao.Reuniao
	err := r.store.view(ctx, func(snap *Snapshot) error {
		for _, re := range snap.Reunioes {
			if re.ID == id {
				found := re
				out = &found
				return nil
			}
		}
		return reuniao.ErrReuniaoNotFound
	})
	return out, err
}

func (r *reuniaoRepository) Create(ctx context.Context, re *reuniao.Reuniao) error {
	return r.store.update(ctx, func(snap *Snapshot) ([]Collection, error) {
		re.ID = snap.TakeID(ColReunioes)
		snap.Reunioes = append(snap.Reunioes, *re)
		return []Collection{ColReunioes}, nil
	})
}

func (r *reuniaoRepository) Update(ctx context.Context, re *reuniao.Reuniao) error {
	return r.store.update(ctx, func(snap *Snapshot) ([]Collection, error) {
		for i := range snap.Reunioes {
			if snap.Reunioes[i].ID == re.ID {
				re.CreatedAt = snap.Reunioes[i].CreatedAt
				snap.Reunioes[i] = *re
				return []Collection{ColReunioes}, nil
			}
		}
		return nil, reuniao.ErrReuniaoNotFound
	})
}

func (r *reuniaoRepository) Delete(ctx context.Context, id int) error {
	return r.store.update(ctx, func(snap *Snapshot) ([]Collection, error) {
		for i := range snap.Reunioes {
			if snap.Reunioes[i].ID == id {
				snap.Reunioes = append(snap.Reunioes[:i], snap.Reunioes[i+1:]...)
				return []Collection{ColReunioes}, nil
			}
		}
		return nil, reuniao.ErrReuniaoNotFound
	})
}
