package usecase

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// GetPropertyDetailsUseCase возвращает один объект каталога по идентификатору.
// Отсутствие объекта - это domain.ErrPropertyNotFound, а не сбой хранилища.
type GetPropertyDetailsUseCase struct {
	repo port.CatalogRepositoryPort
}

func NewGetPropertyDetailsUseCase(repo port.CatalogRepositoryPort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{repo: repo}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, propertyID string) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": propertyID,
	})

	property, err := uc.repo.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			ucLogger.Debug("Property not found", nil)
			return nil, err
		}
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, fmt.Errorf("failed to get property %s: %w", propertyID, err)
	}

	return property, nil
}
