package meta_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/igrejamossoro/servicos-lambda/internal/meta"
	"github.com/igrejamossoro/servicos-lambda/internal/storage"
	util "github.com/igrejamossoro/servicos-lambda/internal/utils"
)

func newService(t *testing.T) meta.Service {
	t.Helper()
	store := storage.New(storage.NewFileBackend(filepath.Join(t.TempDir(), "db.json")))
	return meta.NewService(storage.NewMetaRepository(store))
}

func pinClock(t *testing.T, instante time.Time) {
	t.Helper()
	original := util.Now
	util.Now = func() time.Time { return instante }
	t.Cleanup(func() { util.Now = original })
}

func TestCreateMetaPadroes(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	pinClock(t, time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC))

	t.Run("SemAnoNemStatus", func(t *testing.T) {
		m, err := svc.Create(ctx, meta.CreateMetaDTO{Titulo: "Discipulado", Categoria: "Jovens"})
		if err != nil {
			t.Fatalf("Create falhou: %v", err)
		}
		if m.Ano != meta.AnoPadrao {
			t.Errorf("Ano padrão incorreto. Esperado: %d, Recebido: %d", meta.AnoPadrao, m.Ano)
		}
		if m.Status != meta.StatusNaoIniciada {
			t.Errorf("Status padrão incorreto: %s", m.Status)
		}
		if m.Prioridade != meta.PrioridadeMedia {
			t.Errorf("Prioridade padrão incorreta: %s", m.Prioridade)
		}
		if m.CreatedAt != "2026-01-10T12:00:00.000Z" {
			t.Errorf("CreatedAt incorreto: %s", m.CreatedAt)
		}
	})

	t.Run("MetaNumericaZeroViraNula", func(t *testing.T) {
		m, err := svc.Create(ctx, meta.CreateMetaDTO{Titulo: "Sem alvo", MetaNumerica: 0})
		if err != nil {
			t.Fatal(err)
		}
		if m.MetaNumerica != nil {
			t.Errorf("MetaNumerica zero deveria ser armazenada como nula: %v", *m.MetaNumerica)
		}
	})

	t.Run("MetaNumericaPresente", func(t *testing.T) {
		m, err := svc.Create(ctx, meta.CreateMetaDTO{Titulo: "Com alvo", MetaNumerica: 120})
		if err != nil {
			t.Fatal(err)
		}
		if m.MetaNumerica == nil || *m.MetaNumerica != 120 {
			t.Errorf("MetaNumerica incorreta: %v", m.MetaNumerica)
		}
	})
}

func TestUpdateMetaRetencao(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	pinClock(t, time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC))

	valor := util.FlexFloat(80)
	criada, err := svc.Create(ctx, meta.CreateMetaDTO{
		Titulo: "Batismos", Categoria: "Igreja Geral", Ano: 2026,
		ValorAtual: valor, Status: meta.StatusEmAndamento,
		PercentualConclusao: 40, Prioridade: meta.PrioridadeAlta,
	})
	if err != nil {
		t.Fatal(err)
	}

	// Campos de progresso omitidos mantêm o valor armazenado.
	alterada, err := svc.Update(ctx, criada.ID, meta.UpdateMetaDTO{
		Titulo: "Batismos no ano", Categoria: "Igreja Geral", Ano: 2026,
	})
	if err != nil {
		t.Fatalf("Update falhou: %v", err)
	}
	if alterada.Titulo != "Batismos no ano" {
		t.Errorf("Título não foi atualizado: %s", alterada.Titulo)
	}
	if alterada.ValorAtual != 80 {
		t.Errorf("ValorAtual deveria ser mantido. Esperado: 80, Recebido: %v", alterada.ValorAtual)
	}
	if alterada.Status != meta.StatusEmAndamento {
		t.Errorf("Status deveria ser mantido: %s", alterada.Status)
	}
	if alterada.PercentualConclusao != 40 {
		t.Errorf("PercentualConclusao deveria ser mantido: %d", alterada.PercentualConclusao)
	}
	if alterada.Prioridade != meta.PrioridadeAlta {
		t.Errorf("Prioridade deveria ser mantida: %s", alterada.Prioridade)
	}
}

func TestUpdateProgresso(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	pinClock(t, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	criada, err := svc.Create(ctx, meta.CreateMetaDTO{Titulo: "Células", Ano: 2026})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("ParaEmAndamento", func(t *testing.T) {
		m, err := svc.UpdateProgresso(ctx, criada.ID, meta.ProgressoDTO{
			ValorAtual: 10, Percentual: 40, Observacao: "primeiro trimestre",
		})
		if err != nil {
			t.Fatalf("UpdateProgresso falhou: %v", err)
		}
		if m.Status != meta.StatusEmAndamento {
			t.Errorf("Status incorreto para 40%%: %s", m.Status)
		}
		if m.ValorAtual != 10 || m.PercentualConclusao != 40 {
			t.Errorf("Progresso incorreto: %+v", m)
		}
	})

	t.Run("RegistroDeAuditoria", func(t *testing.T) {
		ats, err := svc.ListAtualizacoes(ctx, criada.ID)
		if err != nil {
			t.Fatal(err)
		}
		if len(ats) != 1 {
			t.Fatalf("Esperado 1 atualização, recebido %d", len(ats))
		}
		at := ats[0]
		if at.ValorAnterior != 0 || at.ValorNovo != 10 {
			t.Errorf("Valores da auditoria incorretos: %+v", at)
		}
		if at.PercentualAnterior != 0 || at.PercentualNovo != 40 {
			t.Errorf("Percentuais da auditoria incorretos: %+v", at)
		}
		if at.Observacao != "primeiro trimestre" {
			t.Errorf("Observação incorreta: %s", at.Observacao)
		}
	})

	t.Run("ParaConcluida", func(t *testing.T) {
		m, err := svc.UpdateProgresso(ctx, criada.ID, meta.ProgressoDTO{ValorAtual: 25, Percentual: 100})
		if err != nil {
			t.Fatal(err)
		}
		if m.Status != meta.StatusConcluida {
			t.Errorf("Status incorreto para 100%%: %s", m.Status)
		}

		ats, err := svc.ListAtualizacoes(ctx, criada.ID)
		if err != nil {
			t.Fatal(err)
		}
		if len(ats) != 2 {
			t.Fatalf("Esperado 2 atualizações, recebido %d", len(ats))
		}
		// O registro novo carrega o estado anterior à gravação.
		var recente *meta.Atualizacao
		for i := range ats {
			if ats[i].PercentualNovo == 100 {
				recente = &ats[i]
			}
		}
		if recente == nil {
			t.Fatal("Atualização de 100% não encontrada")
		}
		if recente.ValorAnterior != 10 || recente.PercentualAnterior != 40 {
			t.Errorf("Estado anterior incorreto na auditoria: %+v", recente)
		}
	})

	t.Run("DeVoltaParaZero", func(t *testing.T) {
		m, err := svc.UpdateProgresso(ctx, criada.ID, meta.ProgressoDTO{ValorAtual: 0, Percentual: 0})
		if err != nil {
			t.Fatal(err)
		}
		if m.Status != meta.StatusNaoIniciada {
			t.Errorf("Percentual zero deveria voltar para nao_iniciada: %s", m.Status)
		}
	})
}

func TestStatusFromPercentual(t *testing.T) {
	cases := []struct {
		percentual int
		esperado   meta.Status
	}{
		{0, meta.StatusNaoIniciada},
		{1, meta.StatusEmAndamento},
		{99, meta.StatusEmAndamento},
		{100, meta.StatusConcluida},
		{150, meta.StatusConcluida},
		{-10, meta.StatusEmAndamento},
	}

	for _, c := range cases {
		if got := meta.StatusFromPercentual(c.percentual); got != c.esperado {
			t.Errorf("StatusFromPercentual(%d) incorreto. Esperado: %s, Recebido: %s", c.percentual, c.esperado, got)
		}
	}
}

func TestSubmetas(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	agora := time.Date(2026, 4, 1, 14, 0, 0, 0, time.UTC)
	pinClock(t, agora)

	criada, err := svc.Create(ctx, meta.CreateMetaDTO{Titulo: "Eventos", Ano: 2026})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("CriacaoConcluidaGanhaData", func(t *testing.T) {
		sub, err := svc.CreateSubmeta(ctx, criada.ID, meta.CreateSubmetaDTO{
			Titulo: "Reservar local", Concluida: true,
		})
		if err != nil {
			t.Fatal(err)
		}
		if sub.DataConclusao != "2026-04-01T14:00:00.000Z" {
			t.Errorf("DataConclusao incorreta: %s", sub.DataConclusao)
		}
	})

	t.Run("CriacaoPendenteSemData", func(t *testing.T) {
		sub, err := svc.CreateSubmeta(ctx, criada.ID, meta.CreateSubmetaDTO{Titulo: "Divulgar"})
		if err != nil {
			t.Fatal(err)
		}
		if sub.DataConclusao != "" {
			t.Errorf("DataConclusao deveria ser vazia: %s", sub.DataConclusao)
		}
	})

	t.Run("ToggleIdaEVolta", func(t *testing.T) {
		sub, err := svc.CreateSubmeta(ctx, criada.ID, meta.CreateSubmetaDTO{Titulo: "Ensaiar"})
		if err != nil {
			t.Fatal(err)
		}

		ligada, err := svc.ToggleSubmeta(ctx, sub.ID)
		if err != nil {
			t.Fatalf("ToggleSubmeta falhou: %v", err)
		}
		if !ligada.Concluida || ligada.DataConclusao == "" {
			t.Errorf("Toggle deveria concluir e datar: %+v", ligada)
		}

		desligada, err := svc.ToggleSubmeta(ctx, sub.ID)
		if err != nil {
			t.Fatal(err)
		}
		if desligada.Concluida || desligada.DataConclusao != "" {
			t.Errorf("Segundo toggle deveria reabrir e limpar a data: %+v", desligada)
		}
	})

	t.Run("UpdateSemConcluidaLimpaData", func(t *testing.T) {
		sub, err := svc.CreateSubmeta(ctx, criada.ID, meta.CreateSubmetaDTO{
			Titulo: "Contratar som", Concluida: true,
		})
		if err != nil {
			t.Fatal(err)
		}

		// A data de conclusão segue o campo concluida da requisição; quando
		// ele não vem, a data é limpa mesmo com a flag armazenada verdadeira.
		alterada, err := svc.UpdateSubmeta(ctx, sub.ID, meta.UpdateSubmetaDTO{
			Titulo: "Contratar sonorização",
		})
		if err != nil {
			t.Fatal(err)
		}
		if !alterada.Concluida {
			t.Error("Flag armazenada deveria permanecer verdadeira")
		}
		if alterada.DataConclusao != "" {
			t.Errorf("DataConclusao deveria ser limpa: %s", alterada.DataConclusao)
		}
	})
}
