package storage

import (
	"context"
	"math"
	"sort"

	"github.com/igrejamossoro/servicos-lambda/internal/meta"
	util "github.com/igrejamossoro/servicos-lambda/internal/utils"
)

type metaRepository struct {
	store *Store
}

func NewMetaRepository(store *Store) meta.Repository {
	return &metaRepository{store: store}
}

func (r *metaRepository) FindAll(ctx context.Context, f meta.Filters) ([]meta.MetaComSubmetas, error) {
	var out []meta.MetaComSubmetas
	err := r.store.view(ctx, func(snap *Snapshot) error {
		total := map[int]int{}
		concluidas := map[int]int{}
		for _, sub := range snap.Submetas {
			total[sub.MetaID]++
			if sub.Concluida {
				concluidas[sub.MetaID]++
			}
		}

		out = []meta.MetaComSubmetas{}
		for _, m := range snap.Metas {
			if f.Categoria != "" && m.Categoria != f.Categoria {
				continue
			}
			if f.Status != "" && string(m.Status) != f.Status {
				continue
			}
			if f.Ano != 0 && m.Ano != f.Ano {
				continue
			}
			out = append(out, meta.MetaComSubmetas{
				Meta:               m,
				TotalSubmetas:      total[m.ID],
				SubmetasConcluidas: concluidas[m.ID],
				PercentualSubmetas: percentual(concluidas[m.ID], total[m.ID]),
			})
		}
		sort.SliceStable(out, func(i, j int) bool {
			return util.ParseDate(out[i].Prazo).Before(util.ParseDate(out[j].Prazo))
		})
		return nil
	})
	return out, err
}

func (r *metaRepository) FindByID(ctx context.Context, id int) (*meta.MetaDetalhada, error) {
	var out *meta.MetaDetalhada
	err := r.store.view(ctx, func(snap *Snapshot) error {
		var found *meta.Meta
		for _, m := range snap.Metas {
			if m.ID == id {
				cp := m
				found = &cp
				break
			}
		}
		if found == nil {
			return meta.ErrMetaNotFound
		}

		det := &meta.MetaDetalhada{
			Meta:         *found,
			Submetas:     []meta.Submeta{},
			Atualizacoes: []meta.Atualizacao{},
		}
		for _, sub := range snap.Submetas {
			if sub.MetaID == id {
				det.Submetas = append(det.Submetas, sub)
			}
		}
		for _, at := range snap.AtualizacoesMetas {
			if at.MetaID == id {
				det.Atualizacoes = append(det.Atualizacoes, at)
			}
		}
		sort.SliceStable(det.Atualizacoes, func(i, j int) bool {
			return util.ParseDate(det.Atualizacoes[i].Data).After(util.ParseDate(det.Atualizacoes[j].Data))
		})
		out = det
		return nil
	})
	return out, err
}

func (r *metaRepository) Create(ctx context.Context, m *meta.Meta) error {
	return r.store.update(ctx, func(snap *Snapshot) ([]Collection, error) {
		m.ID = snap.TakeID(ColMetas)
		snap.Metas = append(snap.Metas, *m)
		return []Collection{ColMetas}, nil
	})
}

func (r *metaRepository) Update(ctx context.Context, m *meta.Meta) error {
	return r.store.update(ctx, func(snap *Snapshot) ([]Collection, error) {
		for i := range snap.Metas {
			if snap.Metas[i].ID == m.ID {
				m.CreatedAt = snap.Metas[i].CreatedAt
				snap.Metas[i] = *m
				return []Collection{ColMetas}, nil
			}
		}
		return nil, meta.ErrMetaNotFound
	})
}

func (r *metaRepository) SaveProgresso(ctx context.Context, m *meta.Meta, a *meta.Atualizacao) error {
	return r.store.update(ctx, func(snap *Snapshot) ([]Collection, error) {
		idx := -1
		for i := range snap.Metas {
			if snap.Metas[i].ID == m.ID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, meta.ErrMetaNotFound
		}

		m.CreatedAt = snap.Metas[idx].CreatedAt
		snap.Metas[idx] = *m

		a.ID = snap.TakeID(ColAtualizacoesMetas)
		snap.AtualizacoesMetas = append(snap.AtualizacoesMetas, *a)

		return []Collection{ColMetas, ColAtualizacoesMetas}, nil
	})
}

func (r *metaRepository) Delete(ctx context.Context, id int) error {
	return r.store.update(ctx, func(snap *Snapshot) ([]Collection, error) {
		idx := -1
		for i := range snap.Metas {
			if snap.Metas[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, meta.ErrMetaNotFound
		}

		snap.Metas = append(snap.Metas[:idx], snap.Metas[idx+1:]...)

		submetas := snap.Submetas[:0]
		for _, sub := range snap.Submetas {
			if sub.MetaID != id {
				submetas = append(submetas, sub)
			}
		}
		snap.Submetas = submetas

		atualizacoes := snap.AtualizacoesMetas[:0]
		for _, at := range snap.AtualizacoesMetas {
			if at.MetaID != id {
				atualizacoes = append(atualizacoes, at)
			}
		}
		snap.AtualizacoesMetas = atualizacoes

		return []Collection{ColMetas, ColSubmetas, ColAtualizacoesMetas}, nil
	})
}

func (r *metaRepository) FindSubmetasByMeta(ctx context.Context, metaID int) ([]meta.Submeta, error) {
	var out []meta.Submeta
	err := r.store.view(ctx, func(snap *Snapshot) error {
		out = []meta.Submeta{}
		for _, sub := range snap.Submetas {
			if sub.MetaID == metaID {
				out = append(out, sub)
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			return util.ParseDate(out[i].Prazo).Before(util.ParseDate(out[j].Prazo))
		})
		return nil
	})
	return out, err
}

func (r *metaRepository) FindSubmetaByID(ctx context.Context, id int) (*meta.Submeta, error) {
	var out *meta.Submeta
	err := r.store.view(ctx, func(snap *Snapshot) error {
		for _, sub := range snap.Submetas {
			if sub.ID == id {
				found := sub
				out = &found
				return nil
			}
		}
		return meta.ErrSubmetaNotFound
	})
	return out, err
}

func (r *metaRepository) CreateSubmeta(ctx context.Context, sub *meta.Submeta) error {
	return r.store.update(ctx, func(snap *Snapshot) ([]Collection, error) {
		sub.ID = snap.TakeID(ColSubmetas)
		snap.Submetas = append(snap.Submetas, *sub)
		return []Collection{ColSubmetas}, nil
	})
}

func (r *metaRepository) UpdateSubmeta(ctx context.Context, sub *meta.Submeta) error {
	return r.store.update(ctx, func(snap *Snapshot) ([]Collection, error) {
		for i := range snap.Submetas {
			if snap.Submetas[i].ID == sub.ID {
				sub.CreatedAt = snap.Submetas[i].CreatedAt
				snap.Submetas[i] = *sub
				return []Collection{ColSubmetas}, nil
			}
		}
		return nil, meta.ErrSubmetaNotFound
	})
}

func (r *metaRepository) DeleteSubmeta(ctx context.Context, id int) error {
	return r.store.update(ctx, func(snap *Snapshot) ([]Collection, error) {
		for i := range snap.Submetas {
			if snap.Submetas[i].ID == id {
				snap.Submetas = append(snap.Submetas[:i], snap.Submetas[i+1:]...)
				return []Collection{ColSubmetas}, nil
			}
		}
		return nil, meta.ErrSubmetaNotFound
	})
}

func (r *metaRepository) FindAtualizacoesByMeta(ctx context.Context, metaID int) ([]meta.Atualizacao, error) {
	var out []meta.Atualizacao
	err := r.store.view(ctx, func(snap *Snapshot) error {
		out = []meta.Atualizacao{}
		for _, at := range snap.AtualizacoesMetas {
			if at.MetaID == metaID {
				out = append(out, at)
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			return util.ParseDate(out[i].Data).After(util.ParseDate(out[j].Data))
		})
		return nil
	})
	return out, err
}

// Stats builds the per-year drill-down: categories without metas are left
// out, each remaining category carries its average progress and a summary of
// every meta for the year.
func (r *metaRepository) Stats(ctx context.Context, ano int) (*meta.MetasStats, error) {
	var out *meta.MetasStats
	err := r.store.view(ctx, func(snap *Snapshot) error {
		total := map[int]int{}
		concluidas := map[int]int{}
		for _, sub := range snap.Submetas {
			total[sub.MetaID]++
			if sub.Concluida {
				concluidas[sub.MetaID]++
			}
		}

		var metasAno []meta.Meta
		for _, m := range snap.Metas {
			if m.Ano == ano {
				metasAno = append(metasAno, m)
			}
		}

		stats := &meta.MetasStats{Ano: ano, Categorias: []meta.CategoriaStats{}}
		somaGeral := 0
		for _, m := range metasAno {
			stats.TotalGeral++
			somaGeral += m.PercentualConclusao
			switch m.Status {
			case meta.StatusConcluida:
				stats.ConcluidasGeral++
			case meta.StatusEmAndamento:
				stats.EmAndamentoGeral++
			case meta.StatusNaoIniciada:
				stats.NaoIniciadasGeral++
			}
		}
		if stats.TotalGeral > 0 {
			stats.ProgressoGeralMedio = int(math.Round(float64(somaGeral) / float64(stats.TotalGeral)))
		}

		for _, categoria := range meta.Categorias {
			cs := meta.CategoriaStats{Categoria: categoria, Metas: []meta.MetaResumo{}}
			somaProgresso := 0
			for _, m := range metasAno {
				if m.Categoria != categoria {
					continue
				}
				cs.Total++
				somaProgresso += m.PercentualConclusao
				switch m.Status {
				case meta.StatusConcluida:
					cs.Concluidas++
				case meta.StatusEmAndamento:
					cs.EmAndamento++
				case meta.StatusNaoIniciada:
					cs.NaoIniciadas++
				}
				cs.Metas = append(cs.Metas, meta.MetaResumo{
					ID:                  m.ID,
					Titulo:              m.Titulo,
					Prazo:               m.Prazo,
					Status:              m.Status,
					PercentualConclusao: m.PercentualConclusao,
					Responsaveis:        m.Responsaveis,
					TotalSubmetas:       total[m.ID],
					SubmetasConcluidas:  concluidas[m.ID],
				})
			}
			if cs.Total == 0 {
				continue
			}
			cs.PercentualConclusao = percentual(cs.Concluidas, cs.Total)
			cs.ProgressoMedio = int(math.Round(float64(somaProgresso) / float64(cs.Total)))
			stats.Categorias = append(stats.Categorias, cs)
		}

		out = stats
		return nil
	})
	return out, err
}

func percentual(parte, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(parte) / float64(total) * 100))
}
