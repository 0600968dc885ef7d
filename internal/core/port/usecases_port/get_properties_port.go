package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type GetPropertiesUseCase interface {
	Execute(ctx context.Context) ([]domain.Property, error)
}
