package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/igrejamossoro/servicos-lambda/internal/config"
	"github.com/igrejamossoro/servicos-lambda/internal/container"
	"github.com/igrejamossoro/servicos-lambda/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, relying on the environment")
	}

	c := container.New()

	r := router.New(router.RouterConfig{
		AuthHandler:      c.AuthHandler,
		ServicoHandler:   c.ServicoContainer.Handler,
		AcaoHandler:      c.AcaoContainer.Handler,
		ReuniaoHandler:   c.ReuniaoContainer.Handler,
		MetaHandler:      c.MetaContainer.Handler,
		DashboardHandler: c.DashboardContainer.Handler,
	})

	addr := ":" + config.GetEnv("PORT", "3001")
	logrus.WithField("addr", addr).Info("Server listening")
	if err := http.ListenAndServe(addr, r); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
