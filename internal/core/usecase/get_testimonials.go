package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// GetTestimonialsUseCase возвращает все отзывы в порядке вставки.
type GetTestimonialsUseCase struct {
	repo port.CatalogRepositoryPort
}

func NewGetTestimonialsUseCase(repo port.CatalogRepositoryPort) *GetTestimonialsUseCase {
	return &GetTestimonialsUseCase{repo: repo}
}

func (uc *GetTestimonialsUseCase) Execute(ctx context.Context) ([]domain.Testimonial, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetTestimonials"})

	testimonials, err := uc.repo.ListTestimonials(ctx)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"count": len(testimonials)})
	return testimonials, nil
}
