package dashboard

import (
	"context"

	"github.com/igrejamossoro/servicos-lambda/internal/config"
)

type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to compute dashboard stats")
		return nil, err
	}
	return stats, nil
}
