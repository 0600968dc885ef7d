package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type CreateInquiryUseCase interface {
	Execute(ctx context.Context, input domain.NewInquiry) (*domain.Inquiry, error)
}
