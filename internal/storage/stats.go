package storage

import (
	"context"
	"sort"

	"github.com/igrejamossoro/servicos-lambda/internal/acao"
	"github.com/igrejamossoro/servicos-lambda/internal/dashboard"
	"github.com/igrejamossoro/servicos-lambda/internal/meta"
)

type dashboardRepository struct {
	store *Store
}

func NewDashboardRepository(store *Store) dashboard.Repository {
	return &dashboardRepository{store: store}
}

func (r *dashboardRepository) Stats(ctx context.Context) (*dashboard.Stats, error) {
	var out *dashboard.Stats
	err := r.store.view(ctx, func(snap *Snapshot) error {
		stats := &dashboard.Stats{
			AcoesPorMes:       []dashboard.AcoesPorMes{},
			ServicosTop:       []dashboard.ServicoTop{},
			MetasPorCategoria: []dashboard.MetasPorCategoria{},
		}

		stats.Stats.TotalServicos = len(snap.Servicos)
		stats.Stats.TotalAcoes = len(snap.Acoes)
		stats.Stats.TotalReunioes = len(snap.Reunioes)
		stats.Stats.TotalMetas = len(snap.Metas)
		for _, a := range snap.Acoes {
			switch a.Status {
			case acao.StatusPendente:
				stats.Stats.AcoesPendentes++
			case acao.StatusConcluida:
				stats.Stats.AcoesConcluidas++
			}
		}
		for _, m := range snap.Metas {
			switch m.Status {
			case meta.StatusConcluida:
				stats.Stats.MetasConcluidas++
			case meta.StatusEmAndamento:
				stats.Stats.MetasEmAndamento++
			case meta.StatusNaoIniciada:
				stats.Stats.MetasNaoIniciadas++
			}
		}

		for _, mes := range acao.Meses {
			linha := dashboard.AcoesPorMes{Mes: mes}
			for _, a := range snap.Acoes {
				if a.Mes != mes {
					continue
				}
				linha.Total++
				switch a.Status {
				case acao.StatusConcluida:
					linha.Concluidas++
				case acao.StatusPendente:
					linha.Pendentes++
				}
			}
			stats.AcoesPorMes = append(stats.AcoesPorMes, linha)
		}

		porServico := map[int]int{}
		for _, a := range snap.Acoes {
			porServico[a.ServicoID]++
		}
		for _, sv := range snap.Servicos {
			stats.ServicosTop = append(stats.ServicosTop, dashboard.ServicoTop{
				Nome:        sv.Nome,
				Supervisor:  sv.Supervisor,
				Coordenador: sv.Coordenador,
				TotalAcoes:  porServico[sv.ID],
			})
		}
		sort.SliceStable(stats.ServicosTop, func(i, j int) bool {
			return stats.ServicosTop[i].TotalAcoes > stats.ServicosTop[j].TotalAcoes
		})

		for _, categoria := range meta.Categorias {
			linha := dashboard.MetasPorCategoria{Categoria: categoria}
			for _, m := range snap.Metas {
				if m.Categoria != categoria {
					continue
				}
				linha.Total++
				switch m.Status {
				case meta.StatusConcluida:
					linha.Concluidas++
				case meta.StatusEmAndamento:
					linha.EmAndamento++
				case meta.StatusNaoIniciada:
					linha.NaoIniciadas++
				}
			}
			if linha.Total == 0 {
				continue
			}
			linha.PercentualConclusao = percentual(linha.Concluidas, linha.Total)
			stats.MetasPorCategoria = append(stats.MetasPorCategoria, linha)
		}

		out = stats
		return nil
	})
	return out, err
}
