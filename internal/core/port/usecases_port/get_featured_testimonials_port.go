package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type GetFeaturedTestimonialsUseCase interface {
	Execute(ctx context.Context) ([]domain.Testimonial, error)
}
