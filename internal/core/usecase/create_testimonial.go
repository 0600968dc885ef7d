package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// CreateTestimonialUseCase добавляет отзыв (админская операция).
type CreateTestimonialUseCase struct {
	repo port.CatalogRepositoryPort
}

func NewCreateTestimonialUseCase(repo port.CatalogRepositoryPort) *CreateTestimonialUseCase {
	return &CreateTestimonialUseCase{repo: repo}
}

func (uc *CreateTestimonialUseCase) Execute(ctx context.Context, input domain.NewTestimonial) (*domain.Testimonial, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateTestimonial",
		"name":     input.Name,
	})

	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		ucLogger.Warn("Rejected testimonial with out-of-range rating", port.Fields{"rating": *input.Rating})
		return nil, domain.ErrInvalidRating
	}

	ucLogger.Info("Use case started: creating testimonial", nil)

	testimonial, err := uc.repo.CreateTestimonial(ctx, input)
	if err != nil {
		ucLogger.Error("Repository returned an error during create", err, nil)
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	ucLogger.Info("Use case finished: testimonial created", port.Fields{"testimonial_id": testimonial.ID})
	return testimonial, nil
}
