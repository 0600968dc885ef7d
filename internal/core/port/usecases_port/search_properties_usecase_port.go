package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type SearchPropertiesUseCase interface {
	Execute(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error)
}
