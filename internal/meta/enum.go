package meta

type Status string

const (
	StatusNaoIniciada Status = "nao_iniciada"
	StatusEmAndamento Status = "em_andamento"
	StatusConcluida   Status = "concluida"
)

type Prioridade string

const (
	PrioridadeBaixa Prioridade = "baixa"
	PrioridadeMedia Prioridade = "media"
	PrioridadeAlta  Prioridade = "alta"
)

// AnoPadrao is assumed when a meta arrives without a year.
const AnoPadrao = 2026

// Categorias lists the fixed goal categories used across listings and stats.
var Categorias = []string{
	"Igreja Geral",
	"Valentes de Davi",
	"Serviços",
	"Presbíteros",
	"Evangelização",
	"Jovens",
	"Crianças",
	"Música",
	"Outros",
}

// StatusFromPercentual derives the status a reported percentage implies.
// Values above 100 count as concluded; negatives land in em_andamento, which
// matches the behavior the frontend has always depended on.
func StatusFromPercentual(percentual int) Status {
	if percentual == 0 {
		return StatusNaoIniciada
	}
	if percentual < 100 {
		return StatusEmAndamento
	}
	return StatusConcluida
}
