package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// GetTeamMembersUseCase возвращает команду, отсортированную по ключу Order.
type GetTeamMembersUseCase struct {
	repo port.CatalogRepositoryPort
}

func NewGetTeamMembersUseCase(repo port.CatalogRepositoryPort) *GetTeamMembersUseCase {
	return &GetTeamMembersUseCase{repo: repo}
}

func (uc *GetTeamMembersUseCase) Execute(ctx context.Context) ([]domain.TeamMember, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetTeamMembers"})

	members, err := uc.repo.ListTeamMembers(ctx)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	ucLogger.Debug("Use case finished successfully", port.Fields{"count": len(members)})
	return members, nil
}
