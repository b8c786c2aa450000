package container

import (
	"context"
	"log"

	"github.com/igrejamossoro/servicos-lambda/internal/acao"
	"github.com/igrejamossoro/servicos-lambda/internal/auth"
	"github.com/igrejamossoro/servicos-lambda/internal/config"
	"github.com/igrejamossoro/servicos-lambda/internal/dashboard"
	"github.com/igrejamossoro/servicos-lambda/internal/meta"
	"github.com/igrejamossoro/servicos-lambda/internal/reuniao"
	"github.com/igrejamossoro/servicos-lambda/internal/servico"
	"github.com/igrejamossoro/servicos-lambda/internal/storage"
)

type Container struct {
	AuthHandler        *auth.Handler
	ServicoContainer   *servico.Container
	AcaoContainer      *acao.Container
	ReuniaoContainer   *reuniao.Container
	MetaContainer      *meta.Container
	DashboardContainer *dashboard.Container
}

func New() *Container {
	config.Init()
	auth.Init()

	store := storage.New(newBackend(context.Background()))

	return &Container{
		AuthHandler:        auth.NewHandler(),
		ServicoContainer:   servico.NewContainer(storage.NewServicoRepository(store)),
		AcaoContainer:      acao.NewContainer(storage.NewAcaoRepository(store)),
		ReuniaoContainer:   reuniao.NewContainer(storage.NewReuniaoRepository(store)),
		MetaContainer:      meta.NewContainer(storage.NewMetaRepository(store)),
		DashboardContainer: dashboard.NewContainer(storage.NewDashboardRepository(store)),
	}
}

func newBackend(ctx context.Context) storage.Backend {
	if config.GetEnv("USE_GOOGLE_SHEETS", "") != "true" {
		return storage.NewFileBackend(config.GetEnv("DB_FILE", "db.json"))
	}

	backend, err := storage.NewSheetsBackend(ctx,
		config.GetEnv("GOOGLE_SHEET_ID", ""),
		config.GetEnv("GOOGLE_SERVICE_ACCOUNT_KEY", ""))
	if err != nil {
		log.Fatalf("failed to connect to Google Sheets: %v", err)
	}
	if err := backend.SetupSheets(ctx); err != nil {
		log.Fatalf("failed to set up sheet tabs: %v", err)
	}
	return backend
}
