package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type GetPropertyDetailsUseCase interface {
	Execute(ctx context.Context, propertyID string) (*domain.Property, error)
}
