package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type CreateTestimonialUseCase interface {
	Execute(ctx context.Context, input domain.NewTestimonial) (*domain.Testimonial, error)
}
