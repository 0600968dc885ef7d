package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, input domain.NewProperty) (*domain.Property, error)
}
