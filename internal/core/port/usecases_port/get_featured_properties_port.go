package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type GetFeaturedPropertiesUseCase interface {
	Execute(ctx context.Context) ([]domain.Property, error)
}
