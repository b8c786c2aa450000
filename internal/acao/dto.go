package acao

import util "github.com/igrejamossoro/servicos-lambda/internal/utils"

type AcaoDTO struct {
	ServicoID    util.FlexInt `json:"servico_id"`
	Mes          string       `json:"mes"`
	Descricao    string       `json:"descricao"`
	Motivo       string       `json:"motivo"`
	Local        string       `json:"local"`
	DataPrevista string       `json:"data_prevista"`
	Responsavel  string       `json:"responsavel"`
	Metodo       string       `json:"metodo"`
	Custo        string       `json:"custo"`
	Status       Status       `json:"status"`
}

// Filters mirrors the list query string; zero values mean "no filter".
type Filters struct {
	ServicoID int
	Mes       string
}
