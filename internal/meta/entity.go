package meta

// Meta is an annual objective, optionally tracking a numeric target alongside
// a manually reported completion percentage.
type Meta struct {
	ID                  int        `json:"id"`
	Titulo              string     `json:"titulo"`
	Descricao           string     `json:"descricao"`
	Categoria           string     `json:"categoria"`
	Ano                 int        `json:"ano"`
	Prazo               string     `json:"prazo"`
	Responsaveis        string     `json:"responsaveis"`
	MetaNumerica        *float64   `json:"metaNumerica"`
	ValorAtual          float64    `json:"valorAtual"`
	Unidade             string     `json:"unidade"`
	Status              Status     `json:"status"`
	PercentualConclusao int        `json:"percentualConclusao"`
	Prioridade          Prioridade `json:"prioridade"`
	CreatedAt           string     `json:"created_at"`
	UpdatedAt           string     `json:"updated_at"`
}

// Submeta is a milestone checklist item under a meta.
type Submeta struct {
	ID            int    `json:"id"`
	MetaID        int    `json:"meta_id"`
	Titulo        string `json:"titulo"`
	Descricao     string `json:"descricao"`
	Prazo         string `json:"prazo"`
	Concluida     bool   `json:"concluida"`
	DataConclusao string `json:"dataConclusao"`
	CreatedAt     string `json:"created_at"`
}

// Atualizacao is an immutable audit row appended whenever a meta's progress
// is reported; it is never written any other way.
type Atualizacao struct {
	ID                 int     `json:"id"`
	MetaID             int     `json:"meta_id"`
	Data               string  `json:"data"`
	ValorAnterior      float64 `json:"valorAnterior"`
	ValorNovo          float64 `json:"valorNovo"`
	PercentualAnterior int     `json:"percentualAnterior"`
	PercentualNovo     int     `json:"percentualNovo"`
	Observacao         string  `json:"observacao"`
	CreatedAt          string  `json:"created_at"`
}

// MetaComSubmetas is the list shape: submeta counters are derived at read
// time from the submetas collection.
type MetaComSubmetas struct {
	Meta
	TotalSubmetas      int `json:"totalSubmetas"`
	SubmetasConcluidas int `json:"submetasConcluidas"`
	PercentualSubmetas int `json:"percentualSubmetas"`
}

// MetaDetalhada is the detail shape returned by GetByID.
type MetaDetalhada struct {
	Meta
	Submetas     []Submeta     `json:"submetas"`
	Atualizacoes []Atualizacao `json:"atualizacoes"`
}
