package dashboard

// Totais carries the scalar counters shown on the dashboard cards.
type Totais struct {
	TotalServicos     int `json:"totalServicos"`
	TotalAcoes        int `json:"totalAcoes"`
	AcoesPendentes    int `json:"acoesPendentes"`
	AcoesConcluidas   int `json:"acoesConcluidas"`
	TotalReunioes     int `json:"totalReunioes"`
	TotalMetas        int `json:"totalMetas"`
	MetasConcluidas   int `json:"metasConcluidas"`
	MetasEmAndamento  int `json:"metasEmAndamento"`
	MetasNaoIniciadas int `json:"metasNaoIniciadas"`
}

type AcoesPorMes struct {
	Mes        string `json:"mes"`
	Total      int    `json:"total"`
	Concluidas int    `json:"concluidas"`
	Pendentes  int    `json:"pendentes"`
}

// ServicoTop ranks a serviço by how many ações it owns. The full ranking is
// returned; trimming to a top-N is up to the frontend.
type ServicoTop struct {
	Nome        string `json:"nome"`
	Supervisor  string `json:"supervisor"`
	Coordenador string `json:"coordenador"`
	TotalAcoes  int    `json:"total_acoes"`
}

type MetasPorCategoria struct {
	Categoria           string `json:"categoria"`
	Total               int    `json:"total"`
	Concluidas          int    `json:"concluidas"`
	EmAndamento         int    `json:"emAndamento"`
	NaoIniciadas        int    `json:"naoIniciadas"`
	PercentualConclusao int    `json:"percentualConclusao"`
}

type Stats struct {
	Stats             Totais              `json:"stats"`
	AcoesPorMes       []AcoesPorMes       `json:"acoesPorMes"`
	ServicosTop       []ServicoTop        `json:"servicosTop"`
	MetasPorCategoria []MetasPorCategoria `json:"metasPorCategoria"`
}
