package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type GetInquiriesUseCase interface {
	Execute(ctx context.Context) ([]domain.Inquiry, error)
}
