package reuniao

// Reuniao records a meeting held by a serviço.
type Reuniao struct {
	ID            int    `json:"id"`
	ServicoID     int    `json:"servico_id"`
	Data          string `json:"data"`
	Mes           string `json:"mes"`
	Resumo        string `json:"resumo"`
	Participantes string `json:"participantes"`
	Decisoes      string `json:"decisoes"`
	CreatedAt     string `json:"created_at"`
}

type ReuniaoComServico struct {
	Reuniao
	ServicoNome   string `json:"servico_nome"`
	ServicoNumero int    `json:"servico_numero"`
}

type ReuniaoDoServico struct {
	Reuniao
	ServicoNome string `json:"servico_nome"`
}
