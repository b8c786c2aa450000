package storage_test

import (
	"context"
	"testing"

	"github.com/igrejamossoro/servicos-lambda/internal/acao"
	"github.com/igrejamossoro/servicos-lambda/internal/dashboard"
	"github.com/igrejamossoro/servicos-lambda/internal/meta"
	"github.com/igrejamossoro/servicos-lambda/internal/reuniao"
	"github.com/igrejamossoro/servicos-lambda/internal/servico"
	"github.com/igrejamossoro/servicos-lambda/internal/storage"
)

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	servicos := storage.NewServicoRepository(store)
	acoes := storage.NewAcaoRepository(store)
	reunioes := storage.NewReuniaoRepository(store)
	metas := storage.NewMetaRepository(store)
	dash := storage.NewDashboardRepository(store)

	som := &servico.Servico{Numero: 1, Nome: "Som", Supervisor: "Ana", Coordenador: "Beto"}
	midia := &servico.Servico{Numero: 2, Nome: "Mídia"}
	for _, sv := range []*servico.Servico{som, midia} {
		if err := servicos.Create(ctx, sv); err != nil {
			t.Fatal(err)
		}
	}

	for _, a := range []*acao.Acao{
		{ServicoID: som.ID, Mes: "Janeiro", Status: acao.StatusConcluida},
		{ServicoID: som.ID, Mes: "Janeiro", Status: acao.StatusPendente},
		{ServicoID: som.ID, Mes: "Fevereiro", Status: acao.StatusNaoRealizada},
		{ServicoID: midia.ID, Mes: "Março", Status: acao.StatusPendente},
	} {
		if err := acoes.Create(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	if err := reunioes.Create(ctx, &reuniao.Reuniao{ServicoID: som.ID, Data: "2026-01-15"}); err != nil {
		t.Fatal(err)
	}

	for _, m := range []*meta.Meta{
		{Titulo: "A", Categoria: "Jovens", Ano: 2026, Status: meta.StatusConcluida},
		{Titulo: "B", Categoria: "Jovens", Ano: 2026, Status: meta.StatusEmAndamento},
		{Titulo: "C", Categoria: "Música", Ano: 2026, Status: meta.StatusNaoIniciada},
	} {
		if err := metas.Create(ctx, m); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := dash.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats falhou: %v", err)
	}

	t.Run("Totais", func(t *testing.T) {
		s := stats.Stats
		if s.TotalServicos != 2 || s.TotalAcoes != 4 || s.TotalReunioes != 1 || s.TotalMetas != 3 {
			t.Errorf("Totais incorretos: %+v", s)
		}
		if s.AcoesPendentes != 2 || s.AcoesConcluidas != 1 {
			t.Errorf("Contadores de ações incorretos: %+v", s)
		}
		if s.MetasConcluidas != 1 || s.MetasEmAndamento != 1 || s.MetasNaoIniciadas != 1 {
			t.Errorf("Contadores de metas incorretos: %+v", s)
		}
	})

	t.Run("AcoesPorMes", func(t *testing.T) {
		if len(stats.AcoesPorMes) != 12 {
			t.Fatalf("Esperado 12 meses, recebido %d", len(stats.AcoesPorMes))
		}
		janeiro := stats.AcoesPorMes[0]
		if janeiro.Mes != "Janeiro" || janeiro.Total != 2 || janeiro.Concluidas != 1 || janeiro.Pendentes != 1 {
			t.Errorf("Janeiro incorreto: %+v", janeiro)
		}
		// Mês sem ações aparece zerado, nunca some da série.
		dezembro := stats.AcoesPorMes[11]
		if dezembro.Mes != "Dezembro" || dezembro.Total != 0 {
			t.Errorf("Dezembro incorreto: %+v", dezembro)
		}
	})

	t.Run("ServicosTop", func(t *testing.T) {
		if len(stats.ServicosTop) != 2 {
			t.Fatalf("Esperado 2 serviços no ranking, recebido %d", len(stats.ServicosTop))
		}
		if stats.ServicosTop[0].Nome != "Som" || stats.ServicosTop[0].TotalAcoes != 3 {
			t.Errorf("Ranking incorreto: %+v", stats.ServicosTop)
		}
		if stats.ServicosTop[0].Supervisor != "Ana" {
			t.Errorf("Supervisor deveria acompanhar o ranking: %+v", stats.ServicosTop[0])
		}
	})

	t.Run("MetasPorCategoria", func(t *testing.T) {
		if len(stats.MetasPorCategoria) != 2 {
			t.Fatalf("Somente categorias com metas deveriam aparecer, recebido %d", len(stats.MetasPorCategoria))
		}
		var jovens *dashboard.MetasPorCategoria
		for i := range stats.MetasPorCategoria {
			if stats.MetasPorCategoria[i].Categoria == "Jovens" {
				jovens = &stats.MetasPorCategoria[i]
			}
		}
		if jovens == nil {
			t.Fatal("Categoria Jovens deveria estar no resumo")
		}
		if jovens.Total != 2 || jovens.Concluidas != 1 || jovens.PercentualConclusao != 50 {
			t.Errorf("Categoria Jovens incorreta: %+v", jovens)
		}
	})
}
