package acao

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(repo Repository) *Container {
	service := NewService(repo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
