package servico

import util "github.com/igrejamossoro/servicos-lambda/internal/utils"

type ServicoDTO struct {
	Numero      util.FlexInt `json:"numero"`
	Nome        string       `json:"nome"`
	Supervisor  string       `json:"supervisor"`
	Coordenador string       `json:"coordenador"`
}
