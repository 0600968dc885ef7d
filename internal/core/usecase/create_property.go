package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// CreatePropertyUseCase добавляет объект в каталог (админская операция).
// Схемная валидация выполняется на REST-границе; здесь остается только
// доменная проверка перечисления типов - защита от вызова мимо хендлера.
type CreatePropertyUseCase struct {
	repo port.CatalogRepositoryPort
}

func NewCreatePropertyUseCase(repo port.CatalogRepositoryPort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{repo: repo}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, input domain.NewProperty) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":      "CreateProperty",
		"title":         input.Title,
		"property_type": input.PropertyType,
	})

	if !domain.ValidPropertyType(input.PropertyType) {
		ucLogger.Warn("Rejected property with unknown type", nil)
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPropertyType, input.PropertyType)
	}

	ucLogger.Info("Use case started: creating property", nil)

	property, err := uc.repo.CreateProperty(ctx, input)
	if err != nil {
		ucLogger.Error("Repository returned an error during create", err, nil)
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	ucLogger.Info("Use case finished: property created", port.Fields{"property_id": property.ID})
	return property, nil
}
