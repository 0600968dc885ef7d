package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// GetFeaturedTestimonialsUseCase возвращает отзывы, продвинутые на витрину.
type GetFeaturedTestimonialsUseCase struct {
	repo port.CatalogRepositoryPort
}

func NewGetFeaturedTestimonialsUseCase(repo port.CatalogRepositoryPort) *GetFeaturedTestimonialsUseCase {
	return &GetFeaturedTestimonialsUseCase{repo: repo}
}

func (uc *GetFeaturedTestimonialsUseCase) Execute(ctx context.Context) ([]domain.Testimonial, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetFeaturedTestimonials"})

	testimonials, err := uc.repo.ListFeaturedTestimonials(ctx)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, fmt.Errorf("failed to list featured testimonials: %w", err)
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"count": len(testimonials)})
	return testimonials, nil
}
