package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// GetFeaturedPropertiesUseCase возвращает подмножество каталога с флагом
// featured, сохраняя относительный порядок полного списка.
type GetFeaturedPropertiesUseCase struct {
	repo port.CatalogRepositoryPort
}

func NewGetFeaturedPropertiesUseCase(repo port.CatalogRepositoryPort) *GetFeaturedPropertiesUseCase {
	return &GetFeaturedPropertiesUseCase{repo: repo}
}

func (uc *GetFeaturedPropertiesUseCase) Execute(ctx context.Context) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetFeaturedProperties"})

	properties, err := uc.repo.ListFeaturedProperties(ctx)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, fmt.Errorf("failed to list featured properties: %w", err)
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"count": len(properties)})
	return properties, nil
}
