package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// GetPropertiesUseCase возвращает полный каталог в порядке вставки.
type GetPropertiesUseCase struct {
	repo port.CatalogRepositoryPort
}

func NewGetPropertiesUseCase(repo port.CatalogRepositoryPort) *GetPropertiesUseCase {
	return &GetPropertiesUseCase{repo: repo}
}

func (uc *GetPropertiesUseCase) Execute(ctx context.Context) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetProperties"})

	properties, err := uc.repo.ListProperties(ctx)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"count": len(properties)})
	return properties, nil
}
