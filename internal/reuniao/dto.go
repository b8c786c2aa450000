package reuniao

import util "github.com/igrejamossoro/servicos-lambda/internal/utils"

type ReuniaoDTO struct {
	ServicoID     util.FlexInt `json:"servico_id"`
	Data          string       `json:"data"`
	Mes           string       `json:"mes"`
	Resumo        string       `json:"resumo"`
	Participantes string       `json:"participantes"`
	Decisoes      string       `json:"decisoes"`
}

type Filters struct {
	ServicoID int
	Mes       string
}
