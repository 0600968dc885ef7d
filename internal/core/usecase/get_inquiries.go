package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// GetInquiriesUseCase возвращает все заявки в порядке поступления.
type GetInquiriesUseCase struct {
	repo port.CatalogRepositoryPort
}

func NewGetInquiriesUseCase(repo port.CatalogRepositoryPort) *GetInquiriesUseCase {
	return &GetInquiriesUseCase{repo: repo}
}

func (uc *GetInquiriesUseCase) Execute(ctx context.Context) ([]domain.Inquiry, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetInquiries"})

	inquiries, err := uc.repo.ListInquiries(ctx)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"count": len(inquiries)})
	return inquiries, nil
}
