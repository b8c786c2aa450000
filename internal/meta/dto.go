package meta

import util "github.com/igrejamossoro/servicos-lambda/internal/utils"

type CreateMetaDTO struct {
	Titulo              string         `json:"titulo"`
	Descricao           string         `json:"descricao"`
	Categoria           string         `json:"categoria"`
	Ano                 util.FlexInt   `json:"ano"`
	Prazo               string         `json:"prazo"`
	Responsaveis        string         `json:"responsaveis"`
	MetaNumerica        util.FlexFloat `json:"metaNumerica"`
	ValorAtual          util.FlexFloat `json:"valorAtual"`
	Unidade             string         `json:"unidade"`
	Status              Status         `json:"status"`
	PercentualConclusao util.FlexInt   `json:"percentualConclusao"`
	Prioridade          Prioridade     `json:"prioridade"`
}

// UpdateMetaDTO replaces every descriptive field; valorAtual, status,
// percentualConclusao and prioridade keep their stored values when omitted.
type UpdateMetaDTO struct {
	Titulo              string          `json:"titulo"`
	Descricao           string          `json:"descricao"`
	Categoria           string          `json:"categoria"`
	Ano                 util.FlexInt    `json:"ano"`
	Prazo               string          `json:"prazo"`
	Responsaveis        string          `json:"responsaveis"`
	MetaNumerica        util.FlexFloat  `json:"metaNumerica"`
	ValorAtual          *util.FlexFloat `json:"valorAtual"`
	Unidade             string          `json:"unidade"`
	Status              Status          `json:"status"`
	PercentualConclusao *util.FlexInt   `json:"percentualConclusao"`
	Prioridade          Prioridade      `json:"prioridade"`
}

type ProgressoDTO struct {
	ValorAtual util.FlexFloat `json:"valorAtual"`
	Percentual util.FlexInt   `json:"percentual"`
	Observacao string         `json:"observacao"`
}

type CreateSubmetaDTO struct {
	Titulo    string        `json:"titulo"`
	Descricao string        `json:"descricao"`
	Prazo     string        `json:"prazo"`
	Concluida util.FlexBool `json:"concluida"`
}

type UpdateSubmetaDTO struct {
	Titulo    string         `json:"titulo"`
	Descricao string         `json:"descricao"`
	Prazo     string         `json:"prazo"`
	Concluida *util.FlexBool `json:"concluida"`
}

// Filters mirrors the metas list query string; zero values mean "no filter".
type Filters struct {
	Categoria string
	Status    string
	Ano       int
}

// Stats shapes for the per-year drill-down endpoint.

type MetaResumo struct {
	ID                  int    `json:"id"`
	Titulo              string `json:"titulo"`
	Prazo               string `json:"prazo"`
	Status              Status `json:"status"`
	PercentualConclusao int    `json:"percentualConclusao"`
	Responsaveis        string `json:"responsaveis"`
	TotalSubmetas       int    `json:"totalSubmetas"`
	SubmetasConcluidas  int    `json:"submetasConcluidas"`
}

type CategoriaStats struct {
	Categoria           string       `json:"categoria"`
	Total               int          `json:"total"`
	Concluidas          int          `json:"concluidas"`
	EmAndamento         int          `json:"emAndamento"`
	NaoIniciadas        int          `json:"naoIniciadas"`
	PercentualConclusao int          `json:"percentualConclusao"`
	ProgressoMedio      int          `json:"progressoMedio"`
	Metas               []MetaResumo `json:"metas"`
}

type MetasStats struct {
	Ano                 int              `json:"ano"`
	TotalGeral          int              `json:"totalGeral"`
	ConcluidasGeral     int              `json:"concluidasGeral"`
	EmAndamentoGeral    int              `json:"emAndamentoGeral"`
	NaoIniciadasGeral   int              `json:"naoIniciadasGeral"`
	ProgressoGeralMedio int              `json:"progressoGeralMedio"`
	Categorias          []CategoriaStats `json:"categorias"`
}
