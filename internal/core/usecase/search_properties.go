package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// SearchPropertiesUseCase инкапсулирует поиск по каталогу с набором
// опциональных фильтров. Вся логика сопоставления живет в domain.PropertyFilters,
// хранилище лишь выполняет линейный проход по коллекции.
type SearchPropertiesUseCase struct {
	repo port.CatalogRepositoryPort
}

func NewSearchPropertiesUseCase(repo port.CatalogRepositoryPort) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{repo: repo}
}

func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchProperties",
		"filters":  filters,
	})

	ucLogger.Debug("Use case started", nil)

	properties, err := uc.repo.SearchProperties(ctx, filters)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"found": len(properties)})
	return properties, nil
}
