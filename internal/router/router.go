package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/igrejamossoro/servicos-lambda/internal/acao"
	"github.com/igrejamossoro/servicos-lambda/internal/auth"
	"github.com/igrejamossoro/servicos-lambda/internal/config"
	"github.com/igrejamossoro/servicos-lambda/internal/dashboard"
	"github.com/igrejamossoro/servicos-lambda/internal/meta"
	"github.com/igrejamossoro/servicos-lambda/internal/middlewares"
	"github.com/igrejamossoro/servicos-lambda/internal/reuniao"
	"github.com/igrejamossoro/servicos-lambda/internal/servico"
)

type RouterConfig struct {
	AuthHandler      *auth.Handler
	ServicoHandler   *servico.Handler
	AcaoHandler      *acao.Handler
	ReuniaoHandler   *reuniao.Handler
	MetaHandler      *meta.Handler
	DashboardHandler *dashboard.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/", describeAPI)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", describeAPI)
		r.Mount("/auth", auth.Routes(cfg.AuthHandler))

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Mount("/servicos", servico.Routes(cfg.ServicoHandler))
			r.Mount("/acoes", acao.Routes(cfg.AcaoHandler))
			r.Mount("/reunioes", reuniao.Routes(cfg.ReuniaoHandler))
			r.Mount("/metas", meta.Routes(cfg.MetaHandler))
			r.Get("/dashboard", cfg.DashboardHandler.Stats)
		})
	})

	return r
}

func describeAPI(w http.ResponseWriter, _ *http.Request) {
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "API do Sistema de Gerenciamento de Serviços - Igreja em Mossoró",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"dashboard": "/api/dashboard",
			"servicos":  "/api/servicos",
			"acoes":     "/api/acoes",
			"reunioes":  "/api/reunioes",
			"metas":     "/api/metas",
		},
	})
}
