package acao

type Status string

const (
	StatusPendente     Status = "pendente"
	StatusConcluida    Status = "concluida"
	StatusNaoRealizada Status = "nao_realizada"
)

// Meses lists the planning months in calendar order; ações reference them by
// the literal Portuguese name, never by date.
var Meses = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Acao is a planned or executed activity of a serviço for a given month,
// described with the 5W2H fields of the planning template.
type Acao struct {
	ID           int    `json:"id"`
	ServicoID    int    `json:"servico_id"`
	Mes          string `json:"mes"`
	Descricao    string `json:"descricao"`
	Motivo       string `json:"motivo"`
	Local        string `json:"local"`
	DataPrevista string `json:"data_prevista"`
	Responsavel  string `json:"responsavel"`
	Metodo       string `json:"metodo"`
	Custo        string `json:"custo"`
	Status       Status `json:"status"`
	CreatedAt    string `json:"created_at"`
}

// AcaoComServico is the list shape: the owning serviço's name and numero are
// joined in at read time and never persisted.
type AcaoComServico struct {
	Acao
	ServicoNome   string `json:"servico_nome"`
	ServicoNumero int    `json:"servico_numero"`
}

// AcaoDoServico is the per-serviço listing shape, which only carries the name.
type AcaoDoServico struct {
	Acao
	ServicoNome string `json:"servico_nome"`
}
