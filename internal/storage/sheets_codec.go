package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/igrejamossoro/servicos-lambda/internal/acao"
	"github.com/igrejamossoro/servicos-lambda/internal/meta"
	"github.com/igrejamossoro/servicos-lambda/internal/reuniao"
	"github.com/igrejamossoro/servicos-lambda/internal/servico"
)

// tabHeaders fixes the column order of every tab. The first row of a tab is
// always this header; data rows follow in the same order.
var tabHeaders = map[Collection][]string{
	ColServicos: {"id", "numero", "nome", "supervisor", "coordenador", "created_at"},
	ColAcoes: {"id", "servico_id", "mes", "descricao", "motivo", "local",
		"data_prevista", "responsavel", "metodo", "custo", "status", "created_at"},
	ColReunioes: {"id", "servico_id", "data", "mes", "resumo", "participantes",
		"decisoes", "created_at"},
	ColMetas: {"id", "titulo", "descricao", "categoria", "ano", "prazo",
		"responsaveis", "metaNumerica", "valorAtual", "unidade", "status",
		"percentualConclusao", "prioridade", "created_at", "updated_at"},
	ColSubmetas: {"id", "meta_id", "titulo", "descricao", "prazo", "concluida",
		"dataConclusao", "created_at"},
	ColAtualizacoesMetas: {"id", "meta_id", "data", "valorAnterior", "valorNovo",
		"percentualAnterior", "percentualNovo", "observacao", "created_at"},
}

// row is one data row keyed by header name. Every cell arrives as a string;
// the typed accessors below do the coercion.
type row map[string]string

func rowsToMaps(values [][]interface{}) []row {
	if len(values) < 2 {
		return nil
	}
	headers := make([]string, len(values[0]))
	for i, h := range values[0] {
		headers[i] = fmt.Sprint(h)
	}

	out := make([]row, 0, len(values)-1)
	for _, raw := range values[1:] {
		r := row{}
		for i, h := range headers {
			if i < len(raw) {
				r[h] = fmt.Sprint(raw[i])
			}
		}
		out = append(out, r)
	}
	return out
}

func (r row) str(key string) string { return r[key] }

func (r row) int(key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(r[key]))
	if err != nil {
		return 0
	}
	return n
}

func (r row) float(key string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(r[key]), 64)
	if err != nil {
		return 0
	}
	return f
}

func (r row) bool(key string) bool { return r[key] == "true" }

// floatPtr keeps the distinction between an absent numeric target and an
// explicit zero: an empty cell decodes to nil.
func (r row) floatPtr(key string) *float64 {
	s := strings.TrimSpace(r[key])
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func cell(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case *float64:
		if t == nil {
			return ""
		}
		return strconv.FormatFloat(*t, 'f', -1, 64)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

func headerRow(col Collection) []interface{} {
	headers := tabHeaders[col]
	out := make([]interface{}, len(headers))
	for i, h := range headers {
		out[i] = h
	}
	return out
}

func dataRow(cells ...interface{}) []interface{} {
	out := make([]interface{}, len(cells))
	for i, c := range cells {
		out[i] = cell(c)
	}
	return out
}

// encodeRows renders one collection of the snapshot as the full cell grid of
// its tab, header row included. An empty collection yields only the header.
func encodeRows(col Collection, snap *Snapshot) [][]interface{} {
	rows := [][]interface{}{headerRow(col)}

	switch col {
	case ColServicos:
		for _, v := range snap.Servicos {
			rows = append(rows, dataRow(v.ID, v.Numero, v.Nome, v.Supervisor,
				v.Coordenador, v.CreatedAt))
		}
	case ColAcoes:
		for _, v := range snap.Acoes {
			rows = append(rows, dataRow(v.ID, v.ServicoID, v.Mes, v.Descricao,
				v.Motivo, v.Local, v.DataPrevista, v.Responsavel, v.Metodo,
				v.Custo, string(v.Status), v.CreatedAt))
		}
	case ColReunioes:
		for _, v := range snap.Reunioes {
			rows = append(rows, dataRow(v.ID, v.ServicoID, v.Data, v.Mes,
				v.Resumo, v.Participantes, v.Decisoes, v.CreatedAt))
		}
	case ColMetas:
		for _, v := range snap.Metas {
			rows = append(rows, dataRow(v.ID, v.Titulo, v.Descricao, v.Categoria,
				v.Ano, v.Prazo, v.Responsaveis, v.MetaNumerica, v.ValorAtual,
				v.Unidade, string(v.Status), v.PercentualConclusao,
				string(v.Prioridade), v.CreatedAt, v.UpdatedAt))
		}
	case ColSubmetas:
		for _, v := range snap.Submetas {
			rows = append(rows, dataRow(v.ID, v.MetaID, v.Titulo, v.Descricao,
				v.Prazo, v.Concluida, v.DataConclusao, v.CreatedAt))
		}
	case ColAtualizacoesMetas:
		for _, v := range snap.AtualizacoesMetas {
			rows = append(rows, dataRow(v.ID, v.MetaID, v.Data, v.ValorAnterior,
				v.ValorNovo, v.PercentualAnterior, v.PercentualNovo,
				v.Observacao, v.CreatedAt))
		}
	}
	return rows
}

// decodeRows fills one collection of the snapshot from the cell grid of its
// tab.
func decodeRows(col Collection, values [][]interface{}, snap *Snapshot) {
	switch col {
	case ColServicos:
		for _, r := range rowsToMaps(values) {
			snap.Servicos = append(snap.Servicos, servico.Servico{
				ID:          r.int("id"),
				Numero:      r.int("numero"),
				Nome:        r.str("nome"),
				Supervisor:  r.str("supervisor"),
				Coordenador: r.str("coordenador"),
				CreatedAt:   r.str("created_at"),
			})
		}
	case ColAcoes:
		for _, r := range rowsToMaps(values) {
			snap.Acoes = append(snap.Acoes, acao.Acao{
				ID:           r.int("id"),
				ServicoID:    r.int("servico_id"),
				Mes:          r.str("mes"),
				Descricao:    r.str("descricao"),
				Motivo:       r.str("motivo"),
				Local:        r.str("local"),
				DataPrevista: r.str("data_prevista"),
				Responsavel:  r.str("responsavel"),
				Metodo:       r.str("metodo"),
				Custo:        r.str("custo"),
				Status:       acao.Status(r.str("status")),
				CreatedAt:    r.str("created_at"),
			})
		}
	case ColReunioes:
		for _, r := range rowsToMaps(values) {
			snap.Reunioes = append(snap.Reunioes, reuniao.Reuniao{
				ID:            r.int("id"),
				ServicoID:     r.int("servico_id"),
				Data:          r.str("data"),
				Mes:           r.str("mes"),
				Resumo:        r.str("resumo"),
				Participantes: r.str("participantes"),
				Decisoes:      r.str("decisoes"),
				CreatedAt:     r.str("created_at"),
			})
		}
	case ColMetas:
		for _, r := range rowsToMaps(values) {
			snap.Metas = append(snap.Metas, meta.Meta{
				ID:                  r.int("id"),
				Titulo:              r.str("titulo"),
				Descricao:           r.str("descricao"),
				Categoria:           r.str("categoria"),
				Ano:                 r.int("ano"),
				Prazo:               r.str("prazo"),
				Responsaveis:        r.str("responsaveis"),
				MetaNumerica:        r.floatPtr("metaNumerica"),
				ValorAtual:          r.float("valorAtual"),
				Unidade:             r.str("unidade"),
				Status:              meta.Status(r.str("status")),
				PercentualConclusao: r.int("percentualConclusao"),
				Prioridade:          meta.Prioridade(r.str("prioridade")),
				CreatedAt:           r.str("created_at"),
				UpdatedAt:           r.str("updated_at"),
			})
		}
	case ColSubmetas:
		for _, r := range rowsToMaps(values) {
			snap.Submetas = append(snap.Submetas, meta.Submeta{
				ID:            r.int("id"),
				MetaID:        r.int("meta_id"),
				Titulo:        r.str("titulo"),
				Descricao:     r.str("descricao"),
				Prazo:         r.str("prazo"),
				Concluida:     r.bool("concluida"),
				DataConclusao: r.str("dataConclusao"),
				CreatedAt:     r.str("created_at"),
			})
		}
	case ColAtualizacoesMetas:
		for _, r := range rowsToMaps(values) {
			snap.AtualizacoesMetas = append(snap.AtualizacoesMetas, meta.Atualizacao{
				ID:                 r.int("id"),
				MetaID:             r.int("meta_id"),
				Data:               r.str("data"),
				ValorAnterior:      r.float("valorAnterior"),
				ValorNovo:          r.float("valorNovo"),
				PercentualAnterior: r.int("percentualAnterior"),
				PercentualNovo:     r.int("percentualNovo"),
				Observacao:         r.str("observacao"),
				CreatedAt:          r.str("created_at"),
			})
		}
	}
}
