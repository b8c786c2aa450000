package storage

import (
	"github.com/igrejamossoro/servicos-lambda/internal/acao"
	"github.com/igrejamossoro/servicos-lambda/internal/meta"
	"github.com/igrejamossoro/servicos-lambda/internal/reuniao"
	"github.com/igrejamossoro/servicos-lambda/internal/servico"
)

type Collection string

const (
	ColServicos          Collection = "servicos"
	ColAcoes             Collection = "acoes"
	ColReunioes          Collection = "reunioes"
	ColMetas             Collection = "metas"
	ColSubmetas          Collection = "submetas"
	ColAtualizacoesMetas Collection = "atualizacoesMetas"
)

// Collections lists every collection in persistence order.
var Collections = []Collection{
	ColServicos, ColAcoes, ColReunioes, ColMetas, ColSubmetas, ColAtualizacoesMetas,
}

// Snapshot is the entire store: six collections plus the per-collection id
// counters. The file backend persists it verbatim as db.json; the sheets
// backend materializes it from the spreadsheet tabs.
type Snapshot struct {
	Servicos          []servico.Servico  `json:"servicos"`
	Acoes             []acao.Acao        `json:"acoes"`
	Reunioes          []reuniao.Reuniao  `json:"reunioes"`
	Metas             []meta.Meta        `json:"metas"`
	Submetas          []meta.Submeta     `json:"submetas"`
	AtualizacoesMetas []meta.Atualizacao `json:"atualizacoesMetas"`
	NextID            map[Collection]int `json:"nextId"`
}

func NewSnapshot() *Snapshot {
	s := &Snapshot{
		Servicos:          []servico.Servico{},
		Acoes:             []acao.Acao{},
		Reunioes:          []reuniao.Reuniao{},
		Metas:             []meta.Meta{},
		Submetas:          []meta.Submeta{},
		AtualizacoesMetas: []meta.Atualizacao{},
		NextID:            map[Collection]int{},
	}
	for _, col := range Collections {
		s.NextID[col] = 1
	}
	return s
}

// TakeID hands out the next id of a collection and advances the counter.
// Counters start at 1 and never go backwards, so ids are not reused after a
// delete.
func (s *Snapshot) TakeID(col Collection) int {
	if s.NextID == nil {
		s.NextID = map[Collection]int{}
	}
	id := s.NextID[col]
	if id < 1 {
		id = 1
	}
	s.NextID[col] = id + 1
	return id
}

// deriveNextIDs rebuilds the counters as max(id)+1 per collection, used by
// the sheets backend where no counter row exists.
func (s *Snapshot) deriveNextIDs() {
	next := map[Collection]int{}
	for _, col := range Collections {
		next[col] = 1
	}
	for _, v := range s.Servicos {
		if v.ID >= next[ColServicos] {
			next[ColServicos] = v.ID + 1
		}
	}
	for _, v := range s.Acoes {
		if v.ID >= next[ColAcoes] {
			next[ColAcoes] = v.ID + 1
		}
	}
	for _, v := range s.Reunioes {
		if v.ID >= next[ColReunioes] {
			next[ColReunioes] = v.ID + 1
		}
	}
	for _, v := range s.Metas {
		if v.ID >= next[ColMetas] {
			next[ColMetas] = v.ID + 1
		}
	}
	for _, v := range s.Submetas {
		if v.ID >= next[ColSubmetas] {
			next[ColSubmetas] = v.ID + 1
		}
	}
	for _, v := range s.AtualizacoesMetas {
		if v.ID >= next[ColAtualizacoesMetas] {
			next[ColAtualizacoesMetas] = v.ID + 1
		}
	}
	s.NextID = next
}

// servicosPorID builds the lookup map the read-time joins use, once per call.
func (s *Snapshot) servicosPorID() map[int]servico.Servico {
	m := make(map[int]servico.Servico, len(s.Servicos))
	for _, sv := range s.Servicos {
		m[sv.ID] = sv
	}
	return m
}
