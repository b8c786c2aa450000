package servico

// Servico is a named ministry team of the church, identified for display by
// its numero on the annual planning sheet.
type Servico struct {
	ID          int    `json:"id"`
	Numero      int    `json:"numero"`
	Nome        string `json:"nome"`
	Supervisor  string `json:"supervisor"`
	Coordenador string `json:"coordenador"`
	CreatedAt   string `json:"created_at"`
}
