// Command importar-csv seeds the store from the annual planning spreadsheet
// exported as CSV: one row per serviço, followed by one ação column per month.
package main

import (
	"context"
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/igrejamossoro/servicos-lambda/internal/acao"
	"github.com/igrejamossoro/servicos-lambda/internal/container"
	"github.com/igrejamossoro/servicos-lambda/internal/servico"
	util "github.com/igrejamossoro/servicos-lambda/internal/utils"
)

// headerLines is how many rows of sheet chrome precede the data.
const headerLines = 3

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, relying on the environment")
	}

	if len(os.Args) < 2 {
		logrus.Fatal("Usage: importar-csv <arquivo.csv>")
	}
	path := os.Args[1]

	f, err := os.Open(path)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open CSV file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to parse CSV file")
	}
	if len(records) > headerLines {
		records = records[headerLines:]
	} else {
		records = nil
	}

	c := container.New()
	ctx := context.Background()

	servicosImportados := 0
	acoesImportadas := 0

	for _, record := range records {
		if len(record) < 4 {
			continue
		}
		nome := strings.TrimSpace(record[3])
		if nome == "" || nome == "Principais ações:" {
			continue
		}
		numero, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			continue
		}

		sv, err := c.ServicoContainer.Service.Create(ctx, servico.ServicoDTO{
			Numero:      util.FlexInt(numero),
			Nome:        nome,
			Supervisor:  strings.TrimSpace(record[1]),
			Coordenador: strings.TrimSpace(record[2]),
		})
		if err != nil {
			logrus.WithError(err).WithField("numero", numero).Error("Failed to import serviço")
			continue
		}
		servicosImportados++

		for i, cell := range record[4:] {
			if i >= len(acao.Meses) {
				break
			}
			descricao := strings.TrimSpace(cell)
			if descricao == "" {
				continue
			}

			_, err := c.AcaoContainer.Service.Create(ctx, acao.AcaoDTO{
				ServicoID: util.FlexInt(sv.ID),
				Mes:       acao.Meses[i],
				Descricao: descricao,
				Status:    statusFromDescricao(descricao, i),
			})
			if err != nil {
				logrus.WithError(err).WithField("servico_id", sv.ID).Error("Failed to import ação")
				continue
			}
			acoesImportadas++
		}
	}

	logrus.WithFields(logrus.Fields{
		"servicos": servicosImportados,
		"acoes":    acoesImportadas,
	}).Info("Import finished")
}

// statusFromDescricao guesses the status of an imported ação from its text.
// Anything in the first three months is assumed already done.
func statusFromDescricao(descricao string, mesIndex int) acao.Status {
	lower := strings.ToLower(descricao)
	if strings.Contains(lower, "não teve reunião") {
		return acao.StatusNaoRealizada
	}
	if strings.Contains(lower, "realizado") || strings.Contains(lower, "concluído") || mesIndex < 3 {
		return acao.StatusConcluida
	}
	return acao.StatusPendente
}
