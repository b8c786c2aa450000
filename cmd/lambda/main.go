package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/igrejamossoro/servicos-lambda/internal/container"
	"github.com/igrejamossoro/servicos-lambda/internal/router"
)

var adapter *chiadapter.ChiLambda

func init() {
	c := container.New()

	r := router.New(router.RouterConfig{
		AuthHandler:      c.AuthHandler,
		ServicoHandler:   c.ServicoContainer.Handler,
		AcaoHandler:      c.AcaoContainer.Handler,
		ReuniaoHandler:   c.ReuniaoContainer.Handler,
		MetaHandler:      c.MetaContainer.Handler,
		DashboardHandler: c.DashboardContainer.Handler,
	})

	adapter = chiadapter.New(r)
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
